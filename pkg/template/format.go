package template

import (
	"github.com/matzehuels/hovertip/pkg/datefmt"
	"github.com/matzehuels/hovertip/pkg/hover"
)

// Options carries the formatter settings that come from tooltip configuration.
type Options struct {
	// XDateFormat and YDateFormat are strftime specs for time-mode axes.
	// Empty means not configured.
	XDateFormat string
	YDateFormat string
	// FormatDate is the host date utility. Nil uses datefmt.Format.
	FormatDate datefmt.Func
}

func (o Options) formatDate(v hover.Value, spec string) (string, bool) {
	t, ok := v.AsTime()
	if !ok {
		return "", false
	}
	fn := o.FormatDate
	if fn == nil {
		fn = datefmt.Format
	}
	return fn(t, spec), true
}

// Resolve picks the template that applies to ctx: the series override when
// present, raw otherwise.
func Resolve(raw hover.Template, ctx *hover.Context) hover.Template {
	if ctx == nil {
		return raw
	}
	return ctx.Template.Or(raw)
}

// Format produces the tooltip text for ctx.
func Format(raw hover.Template, ctx *hover.Context, opts Options) string {
	tmpl := Resolve(raw, ctx)
	if ctx == nil {
		return tmpl.Text()
	}
	if gen := tmpl.Generator(); gen != nil {
		return gen(ctx.LabelText(), ctx.X, ctx.Y)
	}

	content := tmpl.Text()

	if ctx.Percent != nil {
		content = withPrecision(content, Percent, hover.Number(*ctx.Percent))
	}

	if ctx.Label != nil {
		content = Match(content, Series).Replace(content, *ctx.Label)
	}

	xDate := ctx.XAxis.IsTimeMode() && opts.XDateFormat != ""
	yDate := ctx.YAxis.IsTimeMode() && opts.YDateFormat != ""
	if xDate {
		content = withDate(content, XValue, ctx.X, opts.XDateFormat, opts)
	}
	if yDate {
		content = withDate(content, YValue, ctx.Y, opts.YDateFormat, opts)
	}

	if !xDate && ctx.X.IsNumber() && !ctx.XAxis.CustomTicks() {
		content = withPrecision(content, XValue, ctx.X)
	}
	if !yDate && ctx.Y.IsNumber() && !ctx.YAxis.CustomTicks() {
		content = withPrecision(content, YValue, ctx.Y)
	}

	content = withTicks(content, XValue, ctx.X, ctx.XAxis)
	content = withTicks(content, YValue, ctx.Y, ctx.YAxis)

	return content
}

// withPrecision substitutes v only when the placeholder names a precision.
// A bare placeholder is left for the tick formatter.
func withPrecision(content string, tok Token, v hover.Value) string {
	ph := Match(content, tok)
	if !ph.HasPrecision {
		return content
	}
	return ph.Replace(content, v.Fixed(ph.Precision))
}

func withDate(content string, tok Token, v hover.Value, spec string, opts Options) string {
	ph := Match(content, tok)
	if !ph.Matched {
		return content
	}
	text, ok := opts.formatDate(v, spec)
	if !ok {
		return content
	}
	return ph.Replace(content, text)
}

func withTicks(content string, tok Token, v hover.Value, axis *hover.Axis) string {
	ph := Match(content, tok)
	if !ph.Matched {
		return content
	}
	text, ok := axis.Format(v)
	if !ok {
		return content
	}
	return ph.Replace(content, text)
}
