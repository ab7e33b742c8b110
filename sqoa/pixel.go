// Package sqoa implements the SQOA pixel codec: a QOI-derived tagged-chunk
// encoding of an 8-bit-per-channel pixel buffer, backed by a recently-seen
// pixel cache and difference/run primitives.
package sqoa

// Pixel holds four 8-bit channels. The codec tracks two logical pixels at
// all times: prev (the last fully emitted/decoded pixel) and the pixel
// currently being processed.
type Pixel struct {
	R, G, B, A byte
}

// startPixel is the value both encoder and decoder seed prev with before
// the first pixel of an image.
var startPixel = Pixel{R: 0, G: 0, B: 0, A: 255}

func (p Pixel) Equals(o Pixel) bool {
	return p == o
}

// Hash is the cache slot a pixel maps to: (r*3 + g*5 + b*7 + a*11) mod
// cacheSize.
func (p Pixel) Hash() byte {
	return byte((uint32(p.R)*3 + uint32(p.G)*5 + uint32(p.B)*7 + uint32(p.A)*11) % cacheSize)
}
