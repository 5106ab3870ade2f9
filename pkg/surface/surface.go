// Package surface provides the display element a tooltip is drawn into and
// the document that owns it.
//
// A [Document] hands out at most one [Surface] per owner identity. Owners are
// chart instances, so two charts on the same screen never share or clobber
// each other's tooltip.
//
// [Layer] is the terminal implementation: surfaces are lipgloss boxes
// measured in cells and composed on top of an already rendered screen.
package surface

import "github.com/matzehuels/hovertip/pkg/placement"

// Surface is a single tooltip element.
type Surface interface {
	// ID is the owner identity the surface was created for.
	ID() string

	SetContent(text string)
	Content() string

	// Size is the outer size for the current content and theme.
	Size() placement.Size

	MoveTo(p placement.Point)
	Position() placement.Point

	Show()
	Hide()
	Visible() bool

	// SetTheme styles the surface. Nil removes any styling.
	SetTheme(t *Theme)
}

// Document creates and looks up surfaces by owner identity.
type Document interface {
	Lookup(id string) (Surface, bool)
	// Create inserts a hidden surface for id, or returns the existing one.
	Create(id string) Surface
	// Remove detaches the surface for id, if any.
	Remove(id string)
}
