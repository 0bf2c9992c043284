package pdf

import (
	"strings"

	"github.com/matzehuels/mdpdf/pkg/errors"
)

// Page sizes in points.
const (
	SizeLetter = "letter"
	SizeA4     = "a4"

	// DefaultMargin is one inch.
	DefaultMargin = 72.0
)

var pageSizes = map[string][2]float64{
	SizeLetter: {612, 792},
	SizeA4:     {595.28, 841.89},
}

// Margins are page margins in points.
type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Geometry is the physical page setup.
type Geometry struct {
	PageSize string  `json:"page_size"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Margins  Margins `json:"margins"`
}

// GeometryFor returns the geometry of a named page size with equal margins.
func GeometryFor(size string, margin float64) (Geometry, error) {
	key := strings.ToLower(strings.TrimSpace(size))
	dims, ok := pageSizes[key]
	if !ok {
		return Geometry{}, errors.New(errors.ErrCodeInvalidConfig, "unknown page size %q (must be 'letter' or 'a4')", size)
	}
	g := Geometry{
		PageSize: key,
		Width:    dims[0],
		Height:   dims[1],
		Margins:  Margins{Top: margin, Right: margin, Bottom: margin, Left: margin},
	}
	if err := g.Validate(); err != nil {
		return Geometry{}, err
	}
	return g, nil
}

// ContentWidth is the width between the left and right margins.
func (g Geometry) ContentWidth() float64 { return g.Width - g.Margins.Left - g.Margins.Right }

// ContentHeight is the height between the top and bottom margins.
func (g Geometry) ContentHeight() float64 { return g.Height - g.Margins.Top - g.Margins.Bottom }

// minContent is the smallest usable content box in points.
const minContent = 144.0

// Validate checks that the margins leave a usable content box.
func (g Geometry) Validate() error {
	m := g.Margins
	if m.Top < 0 || m.Right < 0 || m.Bottom < 0 || m.Left < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "margins cannot be negative")
	}
	if g.ContentWidth() < minContent || g.ContentHeight() < minContent {
		return errors.New(errors.ErrCodeInvalidConfig, "margins leave less than %.0fpt of content on a %.0fx%.0f page", minContent, g.Width, g.Height)
	}
	return nil
}
