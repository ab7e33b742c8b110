package main

// Blank imports register the standard library's PNG and JPEG decoders
// with image.Decode, so readImage's generic image.Decode call resolves
// them by their magic bytes.
import (
	_ "image/jpeg"
	_ "image/png"
)
