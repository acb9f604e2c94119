// Package imaging provides the bounded image compression pipeline used
// before an image is stored inline on a record: sniff, decode, downscale,
// re-encode as JPEG, and enforce the output size cap.
package imaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"
	"strings"

	// Register the decoders the site accepts uploads in.
	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	// MaxWidth is the width records are downscaled to
	MaxWidth = 1200
	// JPEGQuality is the single quality knob of the pipeline
	JPEGQuality = 70
	// MaxOutputBytes caps the re-encoded image size
	MaxOutputBytes = 5 * 1024 * 1024

	defaultInputCap = 5 * 1024 * 1024
	largeInputCap   = 10 * 1024 * 1024
)

var (
	// ErrNotImage is returned when the input is not an image at all
	ErrNotImage = errors.New("file is not an image")
	// ErrInputTooLarge is returned when the upload exceeds its type's ceiling
	ErrInputTooLarge = errors.New("image exceeds the upload size limit")
	// ErrTooLarge is returned when even the compressed output exceeds the cap.
	// There is no progressive quality ladder: the caller is told to pick a
	// smaller image.
	ErrTooLarge = errors.New("compressed image still exceeds 5 MB")
)

// inputCap returns the per-type upload ceiling. JPEG and PNG get the larger
// allowance since they compress predictably; everything else gets 5 MB.
func inputCap(contentType string) int {
	switch contentType {
	case "image/jpeg", "image/png":
		return largeInputCap
	default:
		return defaultInputCap
	}
}

// Compress runs the full pipeline and returns a data:image/jpeg;base64 URI
// ready to occupy an image field. The context is checked between stages so
// abandoning the upload cancels the work instead of stalling the caller.
func Compress(ctx context.Context, data []byte) (string, error) {
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w (detected %s)", ErrNotImage, contentType)
	}
	if len(data) > inputCap(contentType) {
		return "", fmt.Errorf("%w (%d bytes)", ErrInputTooLarge, len(data))
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	src = scaleDown(src)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return "", fmt.Errorf("failed to encode jpeg: %w", err)
	}

	if buf.Len() > MaxOutputBytes {
		return "", fmt.Errorf("%w (%d bytes)", ErrTooLarge, buf.Len())
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// scaleDown resizes the image so its width is at most MaxWidth, preserving
// aspect ratio. Images already narrow enough pass through untouched.
func scaleDown(src image.Image) image.Image {
	bounds := src.Bounds()
	width := bounds.Dx()
	if width <= MaxWidth {
		return src
	}

	height := bounds.Dy() * MaxWidth / width
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, MaxWidth, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}

// DecodedSize reports the decoded byte size an inline data URI implies,
// or 0 if the string is not an inline image.
func DecodedSize(dataURI string) int {
	_, b64, ok := strings.Cut(dataURI, ";base64,")
	if !ok {
		return 0
	}
	return len(b64) * 3 / 4
}
