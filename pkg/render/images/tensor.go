package images

import (
	"image"
	"image/color"
	"math"

	"github.com/matzehuels/plotkit/pkg/errors"
)

// Tensor is an image stored channel-major as (channels, height, width).
type Tensor struct {
	Channels int       `json:"channels" toml:"channels"`
	Height   int       `json:"height" toml:"height"`
	Width    int       `json:"width" toml:"width"`
	Data     []float64 `json:"data" toml:"data"`
}

// NewTensor returns a tensor after checking that data matches the shape.
func NewTensor(channels, height, width int, data []float64) (Tensor, error) {
	t := Tensor{Channels: channels, Height: height, Width: width, Data: data}
	if err := t.Validate(); err != nil {
		return Tensor{}, err
	}
	return t, nil
}

// Validate checks the channel count and that Data fills the shape exactly.
func (t Tensor) Validate() error {
	switch t.Channels {
	case 1, 3, 4:
	default:
		return errors.New(errors.ErrCodeInvalidShape, "image must have 1, 3 or 4 channels, got %d", t.Channels)
	}
	if t.Height < 1 || t.Width < 1 {
		return errors.New(errors.ErrCodeInvalidShape, "image must be at least 1x1, got %dx%d", t.Height, t.Width)
	}
	if t.Height > math.MaxInt/t.Width/t.Channels {
		return errors.New(errors.ErrCodeInvalidShape, "image of shape (%d, %d, %d) is too large",
			t.Channels, t.Height, t.Width)
	}
	if want := t.Channels * t.Height * t.Width; len(t.Data) != want {
		return errors.New(errors.ErrCodeInvalidShape, "image of shape (%d, %d, %d) needs %d values, got %d",
			t.Channels, t.Height, t.Width, want, len(t.Data))
	}
	return nil
}

// At returns the value at channel c, row y and column x.
func (t Tensor) At(c, y, x int) float64 {
	return t.Data[(c*t.Height+y)*t.Width+x]
}

// Image converts a valid tensor to an image. One channel gives an
// *image.Gray stretched from its minimum to its maximum; three or four
// channels give an *image.NRGBA with values clipped to [0, 1].
func (t Tensor) Image() image.Image {
	r := image.Rect(0, 0, t.Width, t.Height)
	if t.Channels == 1 {
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, v := range t.Data {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
		img := image.NewGray(r)
		for y := range t.Height {
			for x := range t.Width {
				v := 0.0
				if hi > lo {
					v = (t.At(0, y, x) - lo) / (hi - lo)
				}
				img.SetGray(x, y, color.Gray{Y: unit8(v)})
			}
		}
		return img
	}

	img := image.NewNRGBA(r)
	for y := range t.Height {
		for x := range t.Width {
			c := color.NRGBA{
				R: unit8(t.At(0, y, x)),
				G: unit8(t.At(1, y, x)),
				B: unit8(t.At(2, y, x)),
				A: 255,
			}
			if t.Channels == 4 {
				c.A = unit8(t.At(3, y, x))
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// FromImage converts img to a tensor with values in [0, 1]. Gray images
// give one channel, everything else three.
func FromImage(img image.Image) Tensor {
	b := img.Bounds()
	h, w := b.Dy(), b.Dx()

	switch img.(type) {
	case *image.Gray, *image.Gray16:
		t := Tensor{Channels: 1, Height: h, Width: w, Data: make([]float64, h*w)}
		for y := range h {
			for x := range w {
				g := color.Gray16Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16)
				t.Data[y*w+x] = float64(g.Y) / 0xffff
			}
		}
		return t
	}

	t := Tensor{Channels: 3, Height: h, Width: w, Data: make([]float64, 3*h*w)}
	plane := h * w
	for y := range h {
		for x := range w {
			c := color.NRGBA64Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA64)
			i := y*w + x
			t.Data[i] = float64(c.R) / 0xffff
			t.Data[plane+i] = float64(c.G) / 0xffff
			t.Data[2*plane+i] = float64(c.B) / 0xffff
		}
	}
	return t
}

func unit8(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
