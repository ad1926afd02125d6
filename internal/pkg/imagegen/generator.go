package imagegen

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	jpegQuality = 85
	maxEdge     = 1024
)

var unsafeName = regexp.MustCompile(`[^a-z0-9\-]+`)

type TextToImage interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}

type ImageHost interface {
	Upload(ctx context.Context, filename string, image []byte) (string, error)
}

// Generator renders a prompt, normalises the result to a bounded JPEG and hosts it.
type Generator struct {
	renderer TextToImage
	host     ImageHost
}

func NewGenerator(renderer TextToImage, host ImageHost) *Generator {
	return &Generator{
		renderer: renderer,
		host:     host,
	}
}

func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	raw, err := g.renderer.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("g.renderer.Generate -> %w", err)
	}

	jpg, err := ToJPEG(raw)
	if err != nil {
		return "", fmt.Errorf("ToJPEG -> %w", err)
	}

	url, err := g.host.Upload(ctx, Filename(prompt), jpg)
	if err != nil {
		return "", fmt.Errorf("g.host.Upload -> %w", err)
	}

	return url, nil
}

// ToJPEG decodes a PNG or JPEG, shrinks it to fit maxEdge and re-encodes it as JPEG.
func ToJPEG(raw []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("image.Decode -> %w", err)
	}

	b := img.Bounds()
	if b.Dx() > maxEdge || b.Dy() > maxEdge {
		img = imaging.Fit(img, maxEdge, maxEdge, imaging.Lanczos)
	}

	out := &bytes.Buffer{}
	if err = imaging.Encode(out, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("imaging.Encode -> %w", err)
	}

	return out.Bytes(), nil
}

// Filename builds a unique upload name from the first words of the prompt.
func Filename(prompt string) string {
	slug := unsafeName.ReplaceAllString(strings.ToLower(strings.TrimSpace(prompt)), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > 40 {
		slug = strings.Trim(slug[:40], "-")
	}
	if slug == "" {
		slug = "image"
	}

	return fmt.Sprintf("%s-%s.jpg", slug, uuid.NewString())
}
