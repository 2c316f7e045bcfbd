// Package imaging normalizes uploaded dog photos: it decodes JPEG, PNG, or
// GIF payloads (raw bytes or base64), downscales them to fit a bounding box
// while preserving aspect ratio, and re-encodes them as JPEG for storage and
// embedding.
//
// Malformed or unsupported payloads fail with ErrDecode, which the transport
// layer maps to a caller error.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

// ErrDecode reports a malformed or unsupported image payload.
var ErrDecode = errors.New("imaging: cannot decode image")

// ContentTypeJPEG is the content type of every normalized image.
const ContentTypeJPEG = "image/jpeg"

const jpegQuality = 85

// DecodeAndResize decodes an image payload and downscales it to fit within
// maxWidth by maxHeight, preserving aspect ratio. Images already inside the
// bounds are not upscaled. The result is returned base64-encoded along with
// its content type.
//
// The payload may be raw image bytes or a base64 encoding of them; both
// forms are accepted because clients submit either.
func DecodeAndResize(payload []byte, maxWidth, maxHeight int) (string, string, error) {
	raw := payload
	if decoded, err := base64.StdEncoding.DecodeString(string(payload)); err == nil {
		raw = decoded
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	img = fit(img, maxWidth, maxHeight)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", "", fmt.Errorf("imaging: re-encode failed: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), ContentTypeJPEG, nil
}

// DecodeAndResizeBase64 is DecodeAndResize for payloads already known to be
// base64 strings.
func DecodeAndResizeBase64(payload string, maxWidth, maxHeight int) (string, string, error) {
	return DecodeAndResize([]byte(payload), maxWidth, maxHeight)
}

// fit downscales img to fit within the bounding box, keeping aspect ratio.
func fit(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxWidth && h <= maxHeight {
		return img
	}

	scaleW := float64(maxWidth) / float64(w)
	scaleH := float64(maxHeight) / float64(h)
	scale := min(scaleW, scaleH)

	dstW := max(1, int(float64(w)*scale))
	dstH := max(1, int(float64(h)*scale))

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}
