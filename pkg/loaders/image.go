package loaders

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
	"path/filepath"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ImageDirEnv names the environment variable checked first when searching for images
const ImageDirEnv = "RTW_IMAGES"

// maxParentLevels bounds how far up the tree FindImage looks for an images/ directory
const maxParentLevels = 6

// LoadImage loads a PNG or JPEG image into a texture.
// Pixels are stored row-major from the top row, each channel scaled to [0, 1].
func LoadImage(filename string) (*material.ImageTexture, error) {
	// Open file
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects PNG/JPEG from file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Straight alpha keeps RGB as stored; alpha is dropped
			c := color.NRGBA64Model.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA64)
			pixels[y*width+x] = core.NewVec3(
				float64(c.R)/65535.0,
				float64(c.G)/65535.0,
				float64(c.B)/65535.0,
			)
		}
	}

	return material.NewImageTexture(width, height, pixels), nil
}

// CandidatePaths lists where FindImage looks for name, in order
func CandidatePaths(name string) []string {
	paths := make([]string, 0, maxParentLevels+3)
	if dir := os.Getenv(ImageDirEnv); dir != "" {
		paths = append(paths, filepath.Join(dir, name))
	}
	paths = append(paths, name, filepath.Join("images", name))

	up := ""
	for level := 1; level <= maxParentLevels; level++ {
		up = filepath.Join(up, "..")
		paths = append(paths, filepath.Join(up, "images", name))
	}
	return paths
}

// FindImage returns the first candidate path for name that exists as a regular file
func FindImage(name string) (string, bool) {
	for _, path := range CandidatePaths(name) {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// LoadTexture finds and loads name. When the image cannot be found or decoded it
// logs a warning and returns an empty texture, which renders as magenta.
func LoadTexture(name string, logger core.Logger) *material.ImageTexture {
	path, ok := FindImage(name)
	if !ok {
		logger.Printf("Warning: could not find image file '%s'\n", name)
		return material.NewImageTexture(0, 0, nil)
	}

	texture, err := LoadImage(path)
	if err != nil {
		logger.Printf("Warning: %v\n", err)
		return material.NewImageTexture(0, 0, nil)
	}
	return texture
}
