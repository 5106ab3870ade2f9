package template

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/hovertip/pkg/hover"
)

const tsMarch1 = 1709294400000 // 2024-03-01T12:00:00Z

func point(label string, x, y hover.Value) *hover.Context {
	return &hover.Context{
		Label: hover.StringPtr(label),
		X:     x,
		Y:     y,
		XAxis: &hover.Axis{Name: "x"},
		YAxis: &hover.Axis{Name: "y"},
	}
}

func TestFormat(t *testing.T) {
	upper := func(v hover.Value, a *hover.Axis) string { return a.Name + "=" + v.String() }

	tests := []struct {
		name string
		tmpl hover.Template
		ctx  func() *hover.Context
		opts Options
		want string
	}{
		{
			name: "bare placeholders survive without formatters",
			tmpl: hover.Literal(hover.DefaultContent),
			ctx:  func() *hover.Context { return point("A", hover.Number(3.14159), hover.Number(7)) },
			want: "A | X: %x | Y: %y",
		},
		{
			name: "x precision",
			tmpl: hover.Literal("%s | X: %x.2 | Y: %y"),
			ctx:  func() *hover.Context { return point("A", hover.Number(3.14159), hover.Number(7)) },
			want: "A | X: 3.14 | Y: %y",
		},
		{
			name: "y precision pads",
			tmpl: hover.Literal("%y.3"),
			ctx:  func() *hover.Context { return point("A", hover.Number(1), hover.Number(7)) },
			want: "7.000",
		},
		{
			name: "percent with precision",
			tmpl: hover.Literal("%s: %p.1%"),
			ctx: func() *hover.Context {
				c := point("slice", hover.Number(1), hover.Number(2))
				c.Percent = hover.FloatPtr(33.3333)
				return c
			},
			want: "slice: 33.3%",
		},
		{
			name: "percent without precision is untouched",
			tmpl: hover.Literal("%p%"),
			ctx: func() *hover.Context {
				c := point("slice", hover.Number(1), hover.Number(2))
				c.Percent = hover.FloatPtr(50)
				return c
			},
			want: "%p%",
		},
		{
			name: "percent absent",
			tmpl: hover.Literal("%p.2"),
			ctx:  func() *hover.Context { return point("A", hover.Number(1), hover.Number(2)) },
			want: "%p.2",
		},
		{
			name: "label absent",
			tmpl: hover.Literal("%s"),
			ctx: func() *hover.Context {
				c := point("", hover.Number(1), hover.Number(2))
				c.Label = nil
				return c
			},
			want: "%s",
		},
		{
			name: "only first label occurrence",
			tmpl: hover.Literal("%s/%s"),
			ctx:  func() *hover.Context { return point("A", hover.Number(1), hover.Number(2)) },
			want: "A/%s",
		},
		{
			name: "label is inserted literally",
			tmpl: hover.Literal("%s"),
			ctx:  func() *hover.Context { return point("$1 & $&", hover.Number(1), hover.Number(2)) },
			want: "$1 & $&",
		},
		{
			name: "time mode date",
			tmpl: hover.Literal("%x: %y"),
			ctx: func() *hover.Context {
				c := point("A", hover.Number(tsMarch1), hover.Number(2))
				c.XAxis.TimeMode = true
				return c
			},
			opts: Options{XDateFormat: "%Y-%m-%d"},
			want: "2024-03-01: %y",
		},
		{
			name: "time value on time mode axis",
			tmpl: hover.Literal("%y"),
			ctx: func() *hover.Context {
				c := point("A", hover.Number(1), hover.Time(time.Date(2023, 12, 24, 18, 30, 0, 0, time.UTC)))
				c.YAxis.TimeMode = true
				return c
			},
			opts: Options{YDateFormat: "%d.%m. %H:%M"},
			want: "24.12. 18:30",
		},
		{
			name: "date ignores precision suffix",
			tmpl: hover.Literal("%x.2"),
			ctx: func() *hover.Context {
				c := point("A", hover.Number(tsMarch1), hover.Number(2))
				c.XAxis.TimeMode = true
				return c
			},
			opts: Options{XDateFormat: "%Y"},
			want: "2024",
		},
		{
			name: "date excludes precision for the axis",
			tmpl: hover.Literal("%x | %x.2"),
			ctx: func() *hover.Context {
				c := point("A", hover.Number(tsMarch1), hover.Number(2))
				c.XAxis.TimeMode = true
				return c
			},
			opts: Options{XDateFormat: "%Y"},
			want: "2024 | %x.2",
		},
		{
			name: "date format without time mode",
			tmpl: hover.Literal("%x.1"),
			ctx:  func() *hover.Context { return point("A", hover.Number(2.26), hover.Number(2)) },
			opts: Options{XDateFormat: "%Y"},
			want: "2.3",
		},
		{
			name: "time mode without date format falls back to precision",
			tmpl: hover.Literal("%x.0"),
			ctx: func() *hover.Context {
				c := point("A", hover.Number(tsMarch1), hover.Number(2))
				c.XAxis.TimeMode = true
				return c
			},
			want: "1709294400000",
		},
		{
			name: "tick formatter fills bare placeholders",
			tmpl: hover.Literal(hover.DefaultContent),
			ctx: func() *hover.Context {
				c := point("A", hover.Number(3.14159), hover.Number(7))
				c.XAxis.TickFormatter = upper
				c.YAxis.TickFormatter = upper
				return c
			},
			want: "A | X: x=3.14159 | Y: y=7",
		},
		{
			name: "configured tick formatter beats precision",
			tmpl: hover.Literal("%x.2 | %y.1"),
			ctx: func() *hover.Context {
				c := point("A", hover.Number(3.14159), hover.Number(7))
				c.XAxis.TickFormatter = func(hover.Value, *hover.Axis) string { return "TICK" }
				c.YAxis.TickFormatter = upper
				return c
			},
			want: "TICK | y=7",
		},
		{
			name: "precision beats default tick formatter",
			tmpl: hover.Literal("%x.2 | %y"),
			ctx: func() *hover.Context {
				c := point("A", hover.Number(3.14159), hover.Number(7))
				c.XAxis.TickFormatter = upper
				c.XAxis.DefaultTicks = true
				c.YAxis.TickFormatter = upper
				c.YAxis.DefaultTicks = true
				return c
			},
			want: "3.14 | y=7",
		},
		{
			name: "tick formatter overwrites leftover placeholder after date",
			tmpl: hover.Literal("%x | %x"),
			ctx: func() *hover.Context {
				c := point("A", hover.Number(tsMarch1), hover.Number(7))
				c.XAxis.TimeMode = true
				c.XAxis.TickFormatter = func(hover.Value, *hover.Axis) string { return "tick" }
				return c
			},
			opts: Options{XDateFormat: "%Y"},
			want: "2024 | tick",
		},
		{
			name: "tick formatter takes a bare trailing dot",
			tmpl: hover.Literal("X: %x."),
			ctx: func() *hover.Context {
				c := point("A", hover.Number(3.5), hover.Number(7))
				c.XAxis.TickFormatter = upper
				c.XAxis.DefaultTicks = true
				return c
			},
			want: "X: x=3.5",
		},
		{
			name: "precision ties round away from zero",
			tmpl: hover.Literal("%x.2 %y.0 %p.1"),
			ctx: func() *hover.Context {
				c := point("A", hover.Number(0.125), hover.Number(-2.5))
				c.Percent = hover.FloatPtr(0.25)
				return c
			},
			want: "0.13 -3 0.3",
		},
		{
			name: "text value skips precision",
			tmpl: hover.Literal("%x.2 / %y"),
			ctx: func() *hover.Context {
				c := point("A", hover.Text("Q3"), hover.Number(7))
				c.XAxis.TickFormatter = func(v hover.Value, _ *hover.Axis) string { return "[" + v.String() + "]" }
				return c
			},
			want: "[Q3] / %y",
		},
		{
			name: "series override literal",
			tmpl: hover.Literal(hover.DefaultContent),
			ctx: func() *hover.Context {
				c := point("A", hover.Number(1), hover.Number(2.5))
				c.Template = hover.Literal("%s only %y.1")
				return c
			},
			want: "A only 2.5",
		},
		{
			name: "global generator",
			tmpl: hover.Generate(func(label string, x, y hover.Value) string {
				return fmt.Sprintf("%s=%s,%s %%s", label, x, y)
			}),
			ctx:  func() *hover.Context { return point("A", hover.Number(1), hover.Number(2)) },
			want: "A=1,2 %s",
		},
		{
			name: "series generator beats global literal",
			tmpl: hover.Literal("%s"),
			ctx: func() *hover.Context {
				c := point("A", hover.Number(1), hover.Number(2))
				c.Template = hover.Generate(func(string, hover.Value, hover.Value) string { return "generated %x" })
				return c
			},
			want: "generated %x",
		},
		{
			name: "custom date utility",
			tmpl: hover.Literal("%x"),
			ctx: func() *hover.Context {
				c := point("A", hover.Number(tsMarch1), hover.Number(2))
				c.XAxis.TimeMode = true
				return c
			},
			opts: Options{
				XDateFormat: "custom",
				FormatDate:  func(t time.Time, spec string) string { return spec + ":" + t.Format("Jan 2") },
			},
			want: "custom:Mar 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.tmpl, tt.ctx(), tt.opts); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatNilContext(t *testing.T) {
	if got := Format(hover.Literal("%s"), nil, Options{}); got != "%s" {
		t.Errorf("Format(nil ctx) = %q", got)
	}
}

func TestFormatNilAxes(t *testing.T) {
	ctx := &hover.Context{Label: hover.StringPtr("A"), X: hover.Number(1), Y: hover.Number(2)}
	got := Format(hover.Literal("%s %x %y.1"), ctx, Options{XDateFormat: "%Y"})
	if got != "A %x 2.0" {
		t.Errorf("Format() = %q", got)
	}
}

func TestFormatLabelProperty(t *testing.T) {
	templates := []string{"%s", "[%s]", "%s | X: %x", "pre %s post %y.2", "%p.1 %s"}
	labels := []string{"A", "series 1", "%x", "100%"}

	for _, tmpl := range templates {
		for _, label := range labels {
			ctx := point(label, hover.Number(1), hover.Number(2))
			got := Format(hover.Literal(tmpl), ctx, Options{})

			if !strings.Contains(got, label) {
				t.Errorf("Format(%q, label %q) = %q, label missing", tmpl, label, got)
			}
			if strings.Contains(got, "%s") {
				t.Errorf("Format(%q, label %q) = %q, %%s left behind", tmpl, label, got)
			}
		}
	}
}

func TestFormatPercentAbsentProperty(t *testing.T) {
	templates := []string{"%p", "%p.0", "%p.2%", "%s %p.3"}
	for _, tmpl := range templates {
		ctx := point("A", hover.Number(1), hover.Number(2))
		got := Format(hover.Literal(tmpl), ctx, Options{})
		if !strings.Contains(got, "%p") {
			t.Errorf("Format(%q) = %q, percent placeholder substituted without a percent", tmpl, got)
		}
	}
}

func TestFormatPrecisionProperty(t *testing.T) {
	values := []float64{0, 1, 3.14159, -2.71828, 1e6 + 0.125, 0.005}
	for _, v := range values {
		ctx := point("A", hover.Number(v), hover.Number(0))
		got := Format(hover.Literal("%x.2"), ctx, Options{})

		dot := strings.IndexByte(got, '.')
		if dot < 0 || len(got)-dot-1 != 2 {
			t.Errorf("Format(%v) = %q, want exactly two decimals", v, got)
		}
		if got != hover.FormatFixed(v, 2) || strings.Contains(got, hover.Number(v).String()+".2") {
			t.Errorf("Format(%v) = %q, want %q", v, got, hover.FormatFixed(v, 2))
		}
	}
}

func TestFormatDateProperty(t *testing.T) {
	for _, ms := range []float64{0, tsMarch1, 1893456000000} {
		ctx := point("A", hover.Number(ms), hover.Number(0))
		ctx.XAxis.TimeMode = true
		got := Format(hover.Literal("%x"), ctx, Options{XDateFormat: "%Y-%m-%d"})

		if strings.Contains(got, hover.Number(ms).String()) && ms != 0 {
			t.Errorf("Format(%v) = %q, raw timestamp leaked", ms, got)
		}
		if len(got) != len("2006-01-02") {
			t.Errorf("Format(%v) = %q, want a formatted date", ms, got)
		}
	}
}
