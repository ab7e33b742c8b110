package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jido/seqoia/blockio"
	"github.com/jido/seqoia/sqoa"
)

func blockCodecNames() []string {
	return blockio.Names()
}

func newConvertCmd() *cobra.Command {
	var beansCompression bool

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert between .png/.jpg/.qoi/.sqoa by filename suffix",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return convert(args[0], args[1], beansCompression)
		},
	}
	cmd.Flags().BoolVar(&beansCompression, "beans", false, "use BEANS block compression for .sqoa output")
	return cmd
}

func convert(inputPath, outputPath string, beansCompression bool) error {
	img, err := readImage(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	data, err := encodeForSuffix(outputPath, img, beansCompression)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", outputPath, err)
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}

// readImage resolves inputPath's decoder by its filename suffix.
func readImage(path string) (*sqoa.Image, error) {
	switch suffix(path) {
	case ".sqoa", ".qoi":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return sqoa.DecodeImage(data)
	case ".png", ".jpg", ".jpeg":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		src, _, err := image.Decode(f)
		if err != nil {
			return nil, err
		}
		return sqoa.FromImage(src)
	default:
		return nil, fmt.Errorf("unrecognized input suffix %q", suffix(path))
	}
}

// encodeForSuffix resolves outputPath's encoder by its filename suffix.
func encodeForSuffix(path string, img *sqoa.Image, beansCompression bool) ([]byte, error) {
	switch suffix(path) {
	case ".sqoa":
		opts := sqoa.EncodeOptions{Colorspace: sqoa.ColorspaceSRGB}
		if beansCompression {
			opts.Compression = sqoa.CompressionBeans
		}
		return sqoa.EncodeImage(img, opts)
	case ".qoi":
		opts := sqoa.EncodeOptions{Colorspace: sqoa.ColorspaceSRGB, QOICompat: true}
		return sqoa.EncodeImage(img, opts)
	case ".png", ".jpg", ".jpeg":
		return nil, fmt.Errorf("encoding to %q is out of scope for this codec's CLI", suffix(path))
	default:
		return nil, fmt.Errorf("unrecognized output suffix %q", suffix(path))
	}
}

func suffix(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
