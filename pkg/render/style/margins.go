package style

import (
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/plotkit/pkg/errors"
)

// Margins are the distances between the figure edge and the data area.
type Margins struct {
	Left   vg.Length
	Right  vg.Length
	Top    vg.Length
	Bottom vg.Length
}

// DefaultMargins leave room for tick labels and one line of axis label.
var DefaultMargins = Margins{
	Left:   0.5 * vg.Inch,
	Right:  0.5 * vg.Inch,
	Top:    0.4 * vg.Inch,
	Bottom: 0.4 * vg.Inch,
}

// Fractions are margins expressed as positions of the data-area edges in
// figure coordinates, where (0, 0) is the bottom left and (1, 1) the top
// right corner.
type Fractions struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Fractions converts m to figure coordinates for a figure of size s.
func (m Margins) Fractions(s Size) Fractions {
	return Fractions{
		Left:   float64(m.Left / s.Width),
		Right:  1 - float64(m.Right/s.Width),
		Top:    1 - float64(m.Top/s.Height),
		Bottom: float64(m.Bottom / s.Height),
	}
}

// Validate checks that m leaves a non-empty data area inside s.
func (m Margins) Validate(s Size) error {
	if m.Left < 0 || m.Right < 0 || m.Top < 0 || m.Bottom < 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "margins must not be negative")
	}
	if m.Left+m.Right >= s.Width || m.Top+m.Bottom >= s.Height {
		return errors.New(errors.ErrCodeInvalidArgument, "margins leave no room for data in a %vx%v figure", s.Width, s.Height)
	}
	return nil
}

// MarginsInches returns Margins from inch values.
func MarginsInches(left, right, top, bottom float64) Margins {
	return Margins{
		Left:   vg.Length(left) * vg.Inch,
		Right:  vg.Length(right) * vg.Inch,
		Top:    vg.Length(top) * vg.Inch,
		Bottom: vg.Length(bottom) * vg.Inch,
	}
}
