package raster

import (
	"fmt"
	"image"
	"image/draw"
)

// FromGray converts a standard library *image.Gray into an Image,
// copying pixel values (scaled to [0, 255]) into the flat float64 layout.
func FromGray(src *image.Gray) (*Image, error) {
	if src == nil {
		return nil, ErrEmptyImage
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, ErrEmptyImage
	}

	out, err := NewImage(h, w)
	if err != nil {
		return nil, fmt.Errorf("FromGray: %w", err)
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			out.SetFast(row, col, float64(src.GrayAt(b.Min.X+col, b.Min.Y+row).Y))
		}
	}

	return out, nil
}

// FromImage adapts a standard image.Image into an Image. Only images
// already single-channel (*image.Gray or *image.Gray16) are accepted;
// anything else is ErrChannelMismatch, since silently desaturating a
// color frame would hide a caller bug. Use FromImageGray to opt into
// explicit, lossy grayscale conversion instead.
func FromImage(src image.Image) (*Image, error) {
	switch g := src.(type) {
	case *image.Gray:
		return FromGray(g)
	case *image.Gray16:
		b := g.Bounds()
		w, h := b.Dx(), b.Dy()
		if w == 0 || h == 0 {
			return nil, ErrEmptyImage
		}
		out, err := NewImage(h, w)
		if err != nil {
			return nil, fmt.Errorf("FromImage: %w", err)
		}
		for row := 0; row < h; row++ {
			for col := 0; col < w; col++ {
				out.SetFast(row, col, float64(g.Gray16At(b.Min.X+col, b.Min.Y+row).Y)/257.0)
			}
		}

		return out, nil
	case nil:
		return nil, ErrEmptyImage
	default:
		return nil, fmt.Errorf("FromImage: %T: %w", src, ErrChannelMismatch)
	}
}

// FromImageGray desaturates an arbitrary image.Image via image/draw into
// an 8-bit grayscale buffer before adapting it, for callers that accept
// the standard luminance conversion rather than reporting ErrChannelMismatch.
func FromImageGray(src image.Image) (*Image, error) {
	if src == nil {
		return nil, ErrEmptyImage
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, ErrEmptyImage
	}
	gray := image.NewGray(b)
	draw.Draw(gray, b, src, b.Min, draw.Src)

	return FromGray(gray)
}
