// Package qrcode turns payment payloads into stored PNG QR codes.
package qrcode

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	skip "github.com/skip2/go-qrcode"
)

// HandleDir is the directory prefix of every handle
const HandleDir = "qr_codes"

// Encoder turns content into image bytes
type Encoder interface {
	Encode(content string, size int) ([]byte, error)
}

type pngEncoder struct {
	level skip.RecoveryLevel
}

func (e pngEncoder) Encode(content string, size int) ([]byte, error) {
	return skip.Encode(content, e.level, size)
}

// NewPNGEncoder returns the default encoder with medium error recovery
func NewPNGEncoder() Encoder {
	return pngEncoder{level: skip.Medium}
}

// HandleFor returns the stable handle for a reference
func HandleFor(reference string) string {
	return path.Join(HandleDir, reference+".png")
}

// Payload is what the QR code encodes: a confirmation link when a base URL is
// configured, otherwise the dial string as a tel: URI.
func Payload(dialString, reference, confirmationBaseURL string) string {
	if confirmationBaseURL != "" {
		return strings.TrimRight(confirmationBaseURL, "/") + "/pay/r/" + url.PathEscape(reference)
	}
	return "tel:" + strings.ReplaceAll(dialString, "#", "%23")
}

// Generator encodes payloads and stores the images under a root directory
type Generator struct {
	root    string
	size    int
	encoder Encoder
}

// NewGenerator creates a generator writing below root
func NewGenerator(root string, size int, encoder Encoder) *Generator {
	if size <= 0 {
		size = 256
	}
	if encoder == nil {
		encoder = NewPNGEncoder()
	}
	return &Generator{root: root, size: size, encoder: encoder}
}

// Render encodes payload without touching the filesystem
func (g *Generator) Render(payload string) ([]byte, error) {
	img, err := g.encoder.Encode(payload, g.size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	return img, nil
}

// Generate encodes payload and stores it under the reference's handle.
// Calling it again for the same reference and payload is a no-op.
func (g *Generator) Generate(ctx context.Context, reference, payload string) (string, error) {
	img, err := g.Render(payload)
	if err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	handle := HandleFor(reference)
	if err := g.store(handle, img); err != nil {
		return "", err
	}
	return handle, nil
}

// Path resolves a handle to its location on disk
func (g *Generator) Path(handle string) string {
	return filepath.Join(g.root, filepath.FromSlash(handle))
}

func (g *Generator) store(handle string, img []byte) error {
	full := g.Path(handle)

	if existing, err := os.ReadFile(full); err == nil && bytes.Equal(existing, img) {
		return nil
	}

	dir := filepath.Dir(full)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create qr code directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".qr-*")
	if err != nil {
		return fmt.Errorf("failed to create qr code file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(img); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write qr code: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write qr code: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to write qr code: %w", err)
	}
	if err := os.Rename(tmp.Name(), full); err != nil {
		return fmt.Errorf("failed to store qr code: %w", err)
	}
	return nil
}
