package server

import (
	"bytes"
	"encoding/json"

	"github.com/matzehuels/hovertip/pkg/chart"
	"github.com/matzehuels/hovertip/pkg/errors"
	"github.com/matzehuels/hovertip/pkg/hover"
	"github.com/matzehuels/hovertip/pkg/placement"
)

// value accepts a JSON number or a string read with hover.Parse.
type value struct {
	hover.Value
}

func (v *value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v.Value = hover.Parse(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	v.Value = hover.Number(f)
	return nil
}

type axisRequest struct {
	Mode         string `json:"mode"`
	TickDecimals *int   `json:"tickDecimals"`
	TimeFormat   string `json:"timeFormat"`
}

func (a axisRequest) options() chart.AxisOptions {
	return chart.AxisOptions{Mode: a.Mode, TickDecimals: a.TickDecimals, TimeFormat: a.TimeFormat}
}

func (a axisRequest) validate(name string) error {
	if a.Mode != "" && a.Mode != chart.ModeTime {
		return errors.New(errors.ErrCodeInvalidInput, "%s.mode must be %q or empty", name, chart.ModeTime)
	}
	if a.TickDecimals != nil && (*a.TickDecimals < 0 || *a.TickDecimals > chart.MaxTickDecimals) {
		return errors.New(errors.ErrCodeInvalidInput, "%s.tickDecimals must be between 0 and %d", name, chart.MaxTickDecimals)
	}
	return errors.ValidateDateFormat(a.TimeFormat)
}

type formatRequest struct {
	// Template nil means the default content.
	Template    *string     `json:"template"`
	Label       *string     `json:"label"`
	Percent     *float64    `json:"percent"`
	X           *value      `json:"x"`
	Y           *value      `json:"y"`
	XAxis       axisRequest `json:"xAxis"`
	YAxis       axisRequest `json:"yAxis"`
	XDateFormat string      `json:"xDateFormat"`
	YDateFormat string      `json:"yDateFormat"`
}

func (r *formatRequest) validate() error {
	if r.X == nil || r.Y == nil {
		return errors.New(errors.ErrCodeInvalidInput, "x and y are required")
	}
	if r.Template != nil {
		if err := errors.ValidateTemplate(*r.Template); err != nil {
			return err
		}
	}
	for _, spec := range []string{r.XDateFormat, r.YDateFormat} {
		if err := errors.ValidateDateFormat(spec); err != nil {
			return err
		}
	}
	if err := r.XAxis.validate("xAxis"); err != nil {
		return err
	}
	return r.YAxis.validate("yAxis")
}

func (r *formatRequest) template() hover.Template {
	if r.Template == nil {
		return hover.Literal(hover.DefaultContent)
	}
	return hover.Literal(*r.Template)
}

type formatResponse struct {
	Text string `json:"text"`
}

type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type positionRequest struct {
	Pointer pointJSON `json:"pointer"`
	Size    struct {
		W float64 `json:"w"`
		H float64 `json:"h"`
	} `json:"size"`
	Viewport struct {
		Width   float64 `json:"width"`
		Height  float64 `json:"height"`
		ScrollX float64 `json:"scrollX"`
		ScrollY float64 `json:"scrollY"`
	} `json:"viewport"`
	// Shifts nil means placement.DefaultOffset.
	Shifts *placement.Offset `json:"shifts"`
}

func (r *positionRequest) validate() error {
	if r.Size.W < 0 || r.Size.H < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "size must not be negative")
	}
	if r.Viewport.Width <= 0 || r.Viewport.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "viewport width and height must be positive")
	}
	return nil
}

type positionResponse struct {
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	Anchor   pointJSON `json:"anchor"`
	FlippedX bool      `json:"flippedX"`
	FlippedY bool      `json:"flippedY"`
}
