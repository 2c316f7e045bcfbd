package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImagePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeResult(t *testing.T, b64 string) image.Image {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(b64)
	require.NoError(t, err)
	img, err := jpeg.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func TestDecodeAndResize_DownscalesLargeImage(t *testing.T) {
	payload := testImagePNG(t, 2048, 1024)

	b64, contentType, err := DecodeAndResize(payload, 1024, 1024)
	require.NoError(t, err)
	assert.Equal(t, ContentTypeJPEG, contentType)

	img := decodeResult(t, b64)
	assert.Equal(t, 1024, img.Bounds().Dx())
	assert.Equal(t, 512, img.Bounds().Dy())
}

func TestDecodeAndResize_KeepsSmallImage(t *testing.T) {
	payload := testImagePNG(t, 300, 200)

	b64, _, err := DecodeAndResize(payload, 1024, 1024)
	require.NoError(t, err)

	img := decodeResult(t, b64)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestDecodeAndResize_AcceptsBase64Payload(t *testing.T) {
	payload := testImagePNG(t, 64, 64)
	b64Payload := base64.StdEncoding.EncodeToString(payload)

	out, contentType, err := DecodeAndResizeBase64(b64Payload, 1024, 1024)
	require.NoError(t, err)
	assert.Equal(t, ContentTypeJPEG, contentType)
	assert.NotEmpty(t, out)
}

func TestDecodeAndResize_RejectsGarbage(t *testing.T) {
	_, _, err := DecodeAndResize([]byte("not an image"), 1024, 1024)
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestDecodeAndResize_RejectsGarbageBase64(t *testing.T) {
	b64 := base64.StdEncoding.EncodeToString([]byte("still not an image"))
	_, _, err := DecodeAndResize([]byte(b64), 1024, 1024)
	assert.True(t, errors.Is(err, ErrDecode))
}
