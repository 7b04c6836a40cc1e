package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	domainerrors "ondeta/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int, fillColor color.Color) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, fillColor)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestAvatar_ProducesSquareJPEG(t *testing.T) {
	p := NewAvatarProcessor()

	out, contentType, err := p.Avatar(encodePNG(t, 640, 360, color.NRGBA{R: 200, A: 255}))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", contentType)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, AvatarSize, cfg.Width)
	assert.Equal(t, AvatarSize, cfg.Height)
}

func TestAvatar_UpscalesSmallImages(t *testing.T) {
	out, _, err := NewAvatarProcessor().Avatar(encodePNG(t, 20, 40, color.NRGBA{G: 255, A: 255}))
	require.NoError(t, err)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, AvatarSize, cfg.Width)
}

func TestAvatar_RejectsNonImages(t *testing.T) {
	_, _, err := NewAvatarProcessor().Avatar([]byte("%PDF-1.4 not an image"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidImage)

	_, _, err = NewAvatarProcessor().Avatar([]byte("plain text"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidImage)
}

func TestAvatar_RejectsTruncatedImage(t *testing.T) {
	data := encodePNG(t, 50, 50, color.White)

	_, _, err := NewAvatarProcessor().Avatar(data[:len(data)/2])
	assert.ErrorIs(t, err, domainerrors.ErrInvalidImage)
}

func TestFill_CropsCentre(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 300, 100))
	for y := range 100 {
		for x := range 300 {
			c := color.NRGBA{B: 255, A: 255}
			if x >= 100 && x < 200 {
				c = color.NRGBA{R: 255, A: 255}
			}
			src.Set(x, y, c)
		}
	}

	dst := fill(src, 10)
	r, g, b, _ := dst.At(5, 5).RGBA()
	assert.Greater(t, r, b)
	assert.Zero(t, g)
}

func TestIsImage(t *testing.T) {
	assert.True(t, IsImage(encodePNG(t, 2, 2, color.Black)))
	assert.False(t, IsImage([]byte("hello")))
}
