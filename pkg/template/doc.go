// Package template resolves tooltip templates against a hovered data point.
//
// A template is a string with a handful of placeholders:
//
//	%s      series label
//	%x, %y  x and y value
//	%x.N    x value with N fixed decimals (same for %y)
//	%p.N    percent of a part-of-whole series with N fixed decimals
//
// [Format] applies the substitution steps in a fixed order, each operating on
// the result of the previous one:
//
//  1. A series template override replaces the global template. A generator
//     template (override or global) produces the final text directly.
//  2. %p.N, when the point carries a percent.
//  3. %s, when the series has a label.
//  4. %x / %y as dates, when the axis is in time mode and a date format is
//     configured for it. This excludes step 5 for that axis.
//  5. %x.N / %y.N, when the value is a plain number and the axis has no
//     tick formatter of its own. A host default formatter does not count.
//  6. %x / %y (with any suffix) through the axis tick formatter, when the
//     axis has one.
//
// Each step replaces only the first placeholder occurrence it matches.
// Anything no step applies to stays in the output verbatim; Format never
// fails.
package template
