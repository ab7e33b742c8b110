package sqoa

import (
	"image"
	"image/draw"
)

// Image is the codec's own minimal pixel container: a raw buffer laid
// out per Channels, plus dimensions. It is what EncodeImage takes and
// DecodeImage returns, independent of the standard library's
// image.Image. FromImage and ToGoImage bridge the two so callers can
// still use image.Image and image/color without pulling in a PNG/JPEG
// codec dependency.
type Image struct {
	Pixels   []byte
	Width    uint32
	Height   uint32
	Channels byte
}

// FromImage converts a standard-library image.Image into an *Image with
// RGBA channels, the same way the QOI reference encoder normalizes an
// arbitrary image.Image to *image.NRGBA before handing it to its own
// encoder.
func FromImage(src image.Image) (*Image, error) {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	nrgba, ok := src.(*image.NRGBA)
	if !ok || nrgba.Bounds().Min != (image.Point{}) {
		dst := image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
		nrgba = dst
	}

	return &Image{
		Pixels:   nrgba.Pix,
		Width:    uint32(width),
		Height:   uint32(height),
		Channels: ChannelsRGBA,
	}, nil
}

// ToGoImage renders img as a standard-library image.Image. Mono/MonoA
// layouts expand to gray-as-RGB on the way out, since image/color has no
// dedicated alpha-gray model matching MONOA's byte layout.
func (img *Image) ToGoImage() image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, int(img.Width), int(img.Height)))
	count := int(img.Width) * int(img.Height)
	for i := 0; i < count; i++ {
		p := readPixelAt(img.Pixels, i, img.Channels)
		x, y := i%int(img.Width), i/int(img.Width)
		off := dst.PixOffset(x, y)
		dst.Pix[off] = p.R
		dst.Pix[off+1] = p.G
		dst.Pix[off+2] = p.B
		dst.Pix[off+3] = p.A
	}
	return dst
}
