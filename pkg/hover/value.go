package hover

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// Kind identifies which variant a [Value] holds.
type Kind uint8

const (
	KindNumber Kind = iota
	KindTime
	KindText
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindTime:
		return "time"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Value is one coordinate of a data point.
type Value struct {
	kind Kind
	num  float64
	t    time.Time
	text string
}

// Number returns a numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Time returns a timestamp value.
func Time(t time.Time) Value { return Value{kind: KindTime, t: t} }

// Text returns a categorical value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Parse reads a value from user input: a decimal number, an RFC 3339
// timestamp, or anything else as text.
func Parse(s string) Value {
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return Number(f)
	}
	if t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s)); err == nil {
		return Time(t)
	}
	return Text(s)
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNumber reports whether v is a plain number.
func (v Value) IsNumber() bool { return v.kind == KindNumber }

// Float returns the numeric value. Timestamps are returned as epoch
// milliseconds; text yields NaN.
func (v Value) Float() float64 {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindTime:
		return float64(v.t.UnixMilli())
	}
	return math.NaN()
}

// Millis interprets v as an epoch-millisecond timestamp, the unit chart hosts
// use for time-mode axes. Text values report ok=false.
func (v Value) Millis() (ms float64, ok bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindTime:
		return float64(v.t.UnixMilli()), true
	}
	return 0, false
}

// AsTime interprets v as a point in time: timestamps as they are, numbers as
// epoch milliseconds in UTC. Text values report ok=false.
func (v Value) AsTime() (t time.Time, ok bool) {
	switch v.kind {
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(v.num)).UTC(), true
	case KindTime:
		return v.t, true
	}
	return time.Time{}, false
}

// String is the default stringification: the shortest decimal form for
// numbers, epoch milliseconds for timestamps, the raw text otherwise.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindTime:
		return strconv.FormatInt(v.t.UnixMilli(), 10)
	}
	return v.text
}

// Fixed formats a numeric value with exactly digits decimals. Non-numeric
// values fall back to String.
func (v Value) Fixed(digits int) string {
	if v.kind != KindNumber {
		return v.String()
	}
	return FormatFixed(v.num, digits)
}

// FormatFixed formats f with exactly digits decimals. Negative digits are
// treated as zero. Exact ties round away from zero, the way chart hosts
// round fixed-point labels.
func FormatFixed(f float64, digits int) string {
	if digits < 0 {
		digits = 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	if s, ok := roundTie(f, digits); ok {
		return s
	}
	return strconv.FormatFloat(f, 'f', digits, 64)
}

// exactDigits is enough fractional digits to write any float64 exactly.
const exactDigits = 1100

// roundTie handles values that lie exactly halfway between two candidates
// with the given decimals. ok is false for every other value.
func roundTie(f float64, digits int) (string, bool) {
	exact := new(big.Float).SetFloat64(f).Text('f', exactDigits)
	dot := strings.IndexByte(exact, '.')
	if dot < 0 {
		return "", false
	}
	frac := strings.TrimRight(exact[dot+1:], "0")
	if len(frac) != digits+1 || frac[digits] != '5' {
		return "", false
	}

	kept := exact[:dot]
	if digits > 0 {
		kept = exact[:dot+1+digits]
	}
	return bumpLastDigit(kept), true
}

// bumpLastDigit adds one unit in the last place to the magnitude of a
// decimal string, carrying as needed.
func bumpLastDigit(s string) string {
	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		switch {
		case b[i] == '.' || b[i] == '-':
			continue
		case b[i] == '9':
			b[i] = '0'
		default:
			b[i]++
			return string(b)
		}
	}
	if len(b) > 0 && b[0] == '-' {
		return "-1" + string(b[1:])
	}
	return "1" + string(b)
}
