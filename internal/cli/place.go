package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hovertip/pkg/errors"
	"github.com/matzehuels/hovertip/pkg/placement"
)

// placeCommand creates the place command for running the positioner.
func (c *CLI) placeCommand() *cobra.Command {
	var pointer, size, viewport, scroll, shifts string

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Compute where a tooltip goes for a pointer position",
		Long: `Compute where a tooltip goes for a pointer position.

The tooltip leads the pointer by the configured shifts. On an axis where it
would overflow the far edge of the viewport it flips to the other side of the
pointer. Pairs are written as X,Y; sizes also accept WxH.`,
		Example: `  hovertip place --pointer 790,100 --size 120x24 --viewport 800x600`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			off := placement.Offset{X: cfg.TooltipOpts.Shifts.X, Y: cfg.TooltipOpts.Shifts.Y}
			if cmd.Flags().Changed("shifts") {
				if off.X, off.Y, err = parsePair(shifts); err != nil {
					return err
				}
			}

			var ptr placement.Point
			var tip placement.Size
			var vp placement.Viewport
			if ptr.X, ptr.Y, err = parsePair(pointer); err != nil {
				return err
			}
			if tip.W, tip.H, err = parsePair(size); err != nil {
				return err
			}
			if vp.Width, vp.Height, err = parsePair(viewport); err != nil {
				return err
			}
			if vp.ScrollX, vp.ScrollY, err = parsePair(scroll); err != nil {
				return err
			}

			pl := placement.Clamp(ptr, tip, vp, off)
			loggerFromContext(cmd.Context()).Debug("placed", "anchor", pl.Anchor, "offset", off)
			printPlacement(cmd, pl)
			return nil
		},
	}

	cmd.Flags().StringVar(&pointer, "pointer", "0,0", "pointer position")
	cmd.Flags().StringVar(&size, "size", "100x30", "tooltip outer size")
	cmd.Flags().StringVar(&viewport, "viewport", "800x600", "viewport size")
	cmd.Flags().StringVar(&scroll, "scroll", "0,0", "scroll offsets")
	cmd.Flags().StringVar(&shifts, "shifts", "10,20", "gap between pointer and tooltip")

	return cmd
}

func printPlacement(cmd *cobra.Command, pl placement.Placement) {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, keyValue("position", fmt.Sprintf("%s, %s", num(pl.Point.X), num(pl.Point.Y))))
	fmt.Fprintln(w, keyValue("anchor", fmt.Sprintf("%s, %s", num(pl.Anchor.X), num(pl.Anchor.Y))))
	fmt.Fprintln(w, keyValue("flipped", flipped(pl)))
}

func flipped(pl placement.Placement) string {
	switch {
	case pl.FlippedX && pl.FlippedY:
		return "x, y"
	case pl.FlippedX:
		return "x"
	case pl.FlippedY:
		return "y"
	}
	return "none"
}

func num(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// parsePair reads "A,B" or "AxB".
func parsePair(s string) (a, b float64, err error) {
	sep := ","
	if !strings.Contains(s, sep) {
		sep = "x"
	}
	left, right, ok := strings.Cut(s, sep)
	if !ok {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "expected X,Y or WxH, got %q", s)
	}
	if a, err = strconv.ParseFloat(strings.TrimSpace(left), 64); err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid number %q", left)
	}
	if b, err = strconv.ParseFloat(strings.TrimSpace(right), 64); err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid number %q", right)
	}
	return a, b, nil
}
