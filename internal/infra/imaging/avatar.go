// Package imaging normalizes uploaded profile pictures into square JPEG avatars.
package imaging

import (
	"bytes"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"strings"

	domainerrors "ondeta/internal/domain/errors"
	"ondeta/internal/domain/service"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	// AvatarSize is the edge length of the stored square image.
	AvatarSize    = 300
	avatarQuality = 85
	avatarMIME    = "image/jpeg"

	// maxSourcePixels guards the decoder against decompression bombs.
	maxSourcePixels = 40_000_000
)

type avatarProcessor struct {
	size    int
	quality int
}

// NewAvatarProcessor returns the processor used for profile uploads.
func NewAvatarProcessor() service.ImageProcessor {
	return &avatarProcessor{size: AvatarSize, quality: avatarQuality}
}

// Avatar sniffs the payload, crops the centre to a square and scales it to the avatar size.
func (p *avatarProcessor) Avatar(data []byte) ([]byte, string, error) {
	if !IsImage(data) {
		return nil, "", domainerrors.ErrInvalidImage
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", domainerrors.ErrInvalidImage.WithDetails(err.Error())
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > maxSourcePixels {
		return nil, "", domainerrors.ErrInvalidImage.WithDetails("unsupported image dimensions")
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", domainerrors.ErrInvalidImage.WithDetails(err.Error())
	}

	dst := fill(src, p.size)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, "", domainerrors.ErrImageStoreFailed.WithDetails(err.Error())
	}

	return buf.Bytes(), avatarMIME, nil
}

// IsImage delegates to the package-level sniffer.
func (p *avatarProcessor) IsImage(data []byte) bool {
	return IsImage(data)
}

// IsImage reports whether the content sniffs as any image/* type.
// The declared multipart content type is never trusted.
func IsImage(data []byte) bool {
	return strings.HasPrefix(mimetype.Detect(data).String(), "image/")
}

// fill crops the largest centred square from src and scales it to size x size.
// Transparent pixels are flattened onto white since JPEG has no alpha.
func fill(src image.Image, size int) *image.RGBA {
	b := src.Bounds()
	side := min(b.Dx(), b.Dy())
	crop := image.Rect(0, 0, side, side).Add(image.Pt(
		b.Min.X+(b.Dx()-side)/2,
		b.Min.Y+(b.Dy()-side)/2,
	))

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Over, nil)

	return dst
}
