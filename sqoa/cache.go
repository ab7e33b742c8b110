package sqoa

// cacheSize is the number of recently-seen-pixel slots. The canonical
// multichannel revision uses 64; this implementation does not carry the
// grayscale 128-slot variant.
const cacheSize = 64

// cache is the recently-seen-pixel table. Both encoder and decoder must
// evolve it identically: it is written on every non-run chunk emission,
// including after an INDEX lookup (the looked-up pixel is rewritten to
// its own slot, a no-op in value).
type cache [cacheSize]Pixel

func (c *cache) get(slot byte) Pixel {
	return c[slot]
}

func (c *cache) set(p Pixel) {
	c[p.Hash()] = p
}
