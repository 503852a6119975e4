package ioutils

import (
	"bytes"
	"context"
	"image"
	_ "image/gif" // GIF decoder registration
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// JPEGQuality is the encoder quality used for every thumbnail.
const JPEGQuality = 90

// CoverService turns album cover images into thumbnails for the shells.
//
// Example usage:
//
//	svc := NewCoverService()
//
//	data, _ := api.Cover(ctx, album)
//	thumb, _ := svc.Thumbnail(ctx, data, 600)
type CoverService struct{}

// NewCoverService creates a new CoverService.
func NewCoverService() *CoverService {
	return &CoverService{}
}

// Thumbnail scales an image to fit within a maxSize square and encodes it as
// JPEG.
//
// The aspect ratio is preserved and images are never enlarged: a cover that
// already fits is only re-encoded. A maxSize of zero or less disables
// scaling.
//
// Example:
//
//	thumb, err := svc.Thumbnail(ctx, data, 600)
//	// A 1200x800 cover becomes 600x400
//	// A 300x300 cover stays 300x300
func (s *CoverService) Thumbnail(ctx context.Context, data []byte, maxSize int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width, height := Fit(bounds.Dx(), bounds.Dy(), maxSize)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Fit returns the dimensions of a width x height image scaled down to fit
// within a maxSize square. Dimensions never grow and never drop below 1.
func Fit(width, height, maxSize int) (int, int) {
	if maxSize <= 0 || (width <= maxSize && height <= maxSize) {
		return width, height
	}

	if width >= height {
		height = max(1, height*maxSize/width)
		width = maxSize
	} else {
		width = max(1, width*maxSize/height)
		height = maxSize
	}
	return width, height
}
