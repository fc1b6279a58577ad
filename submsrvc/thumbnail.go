package submsrvc

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/nfnt/resize"
)

const thumbnailMaxWidth = 240

// makeThumbnail decodes an image attachment and produces a small JPEG
// preview, keeping the aspect ratio.
func makeThumbnail(content []byte, mimeType string) ([]byte, error) {
	var img image.Image
	var err error

	switch mimeType {
	case "image/jpeg":
		img, err = jpeg.Decode(bytes.NewReader(content))
	case "image/png":
		img, err = png.Decode(bytes.NewReader(content))
	default:
		return nil, fmt.Errorf("unsupported image format: %s", mimeType)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	width := uint(img.Bounds().Dx())
	if width > thumbnailMaxWidth {
		width = thumbnailMaxWidth
	}
	resized := resize.Resize(width, 0, img, resize.Lanczos3)

	var out bytes.Buffer
	if err := jpeg.Encode(&out, resized, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return out.Bytes(), nil
}
