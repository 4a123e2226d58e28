// Package imaging handles image ingestion and persistence for imgx:
// signature-based media type detection, loading image bytes from files,
// URLs, stdin, and the system clipboard, and writing generated images back
// to disk.
package imaging

import (
	"context"
	"encoding/base64"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sikiriki12/imgx/internal/errdefs"
	"github.com/sikiriki12/imgx/internal/logging"
)

// Payload is the canonical form of an ingested image: base64-encoded bytes
// plus the MIME type determined for them. It is built once per source and
// consumed once when the request is assembled.
type Payload struct {
	MIMEType string
	Data     string
}

// SourceKind identifies how a source descriptor is acquired.
type SourceKind int

const (
	SourceFile SourceKind = iota
	SourceURL
	SourceStdin
	SourceClipboard
)

// KindOf resolves a source descriptor to its kind. The order is load-bearing:
// "-" and "clipboard" are reserved words even though they would be legal
// file names, then URL schemes, then everything else is a filesystem path.
func KindOf(source string) SourceKind {
	switch {
	case source == "-":
		return SourceStdin
	case source == "clipboard":
		return SourceClipboard
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return SourceURL
	default:
		return SourceFile
	}
}

// extensionMIME is the fallback lookup used when signature detection comes
// up empty for file sources.
var extensionMIME = map[string]string{
	".jpg":  MIMEJPEG,
	".jpeg": MIMEJPEG,
	".png":  MIMEPNG,
	".webp": MIMEWEBP,
	".gif":  MIMEGIF,
	".heic": "image/heic",
	".heif": "image/heif",
	".bmp":  MIMEBMP,
	".tiff": "image/tiff",
	".tif":  "image/tiff",
	".svg":  "image/svg+xml",
}

// Loader acquires image bytes from source descriptors. The fallback MIME
// types and I/O handles are fields rather than hidden globals so tests can
// substitute them.
type Loader struct {
	HTTPClient *http.Client
	Stdin      io.Reader

	// FileFallbackMIME is the terminal default for file and URL sources
	// whose bytes, name, and headers all tell us nothing.
	FileFallbackMIME string

	// StdinFallbackMIME is the default for piped bytes; piped screenshots
	// are almost always PNG.
	StdinFallbackMIME string

	// ClipboardImage captures the clipboard image into a temporary file
	// and returns its path. The loader removes the file after use.
	ClipboardImage func() (string, error)
}

// NewLoader returns a Loader with production defaults.
func NewLoader() *Loader {
	return &Loader{
		HTTPClient:        &http.Client{Timeout: 30 * time.Second},
		Stdin:             os.Stdin,
		FileFallbackMIME:  MIMEJPEG,
		StdinFallbackMIME: MIMEPNG,
		ClipboardImage:    clipboardImage,
	}
}

// Load acquires a single source descriptor.
func (l *Loader) Load(ctx context.Context, source string) (Payload, error) {
	switch KindOf(source) {
	case SourceStdin:
		return l.loadStdin()
	case SourceClipboard:
		return l.loadClipboard()
	case SourceURL:
		return l.loadURL(ctx, source)
	default:
		return l.loadFile(source)
	}
}

// LoadAll acquires all sources concurrently. The first failure cancels the
// remaining loads and no partial results are returned.
func (l *Loader) LoadAll(ctx context.Context, sources []string) ([]Payload, error) {
	g, ctx := errgroup.WithContext(ctx)
	payloads := make([]Payload, len(sources))

	for i, source := range sources {
		g.Go(func() error {
			p, err := l.Load(ctx, source)
			if err != nil {
				return err
			}
			payloads[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return payloads, nil
}

func (l *Loader) loadFile(path string) (Payload, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Payload{}, errdefs.Inputf("resolving %s: %w", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return Payload{}, errdefs.Inputf("image not found: %s", abs)
		}
		return Payload{}, errdefs.Inputf("reading %s: %w", abs, err)
	}
	if len(data) == 0 {
		return Payload{}, errdefs.Inputf("image file is empty: %s", abs)
	}

	mimeType := DetectSignature(data)
	if mimeType == "" {
		mimeType = l.extensionFallback(abs)
		logging.Debugf("no signature match for %s, falling back to %s", abs, mimeType)
	}
	return newPayload(mimeType, data), nil
}

func (l *Loader) extensionFallback(path string) string {
	if m, ok := extensionMIME[strings.ToLower(filepath.Ext(path))]; ok {
		return m
	}
	return l.FileFallbackMIME
}

func (l *Loader) loadURL(ctx context.Context, url string) (Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Payload{}, errdefs.Inputf("building request for %s: %w", url, err)
	}

	resp, err := l.HTTPClient.Do(req)
	if err != nil {
		return Payload{}, errdefs.Inputf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Payload{}, errdefs.Inputf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Payload{}, errdefs.Inputf("reading body of %s: %w", url, err)
	}
	if len(data) == 0 {
		return Payload{}, errdefs.Inputf("empty response body from %s", url)
	}

	mimeType := DetectSignature(data)
	if mimeType == "" {
		mimeType = headerFallback(resp.Header.Get("Content-Type"), l.FileFallbackMIME)
	}
	return newPayload(mimeType, data), nil
}

// headerFallback trusts a declared content type only when it is an image
// type; anything else gets the terminal default.
func headerFallback(contentType, fallback string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err == nil && strings.HasPrefix(mediaType, "image/") {
		return mediaType
	}
	return fallback
}

func (l *Loader) loadStdin() (Payload, error) {
	data, err := io.ReadAll(l.Stdin)
	if err != nil {
		return Payload{}, errdefs.Inputf("reading stdin: %w", err)
	}
	if len(data) == 0 {
		return Payload{}, errdefs.Inputf("no image data on stdin")
	}

	mimeType := DetectSignature(data)
	if mimeType == "" {
		mimeType = l.StdinFallbackMIME
	}
	return newPayload(mimeType, data), nil
}

// loadClipboard captures the clipboard image into a temporary file and
// runs it through the file path. The temporary file is removed whether or
// not loading succeeds.
func (l *Loader) loadClipboard() (Payload, error) {
	path, err := l.ClipboardImage()
	if err != nil {
		return Payload{}, errdefs.Inputf("clipboard: %w", err)
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			logging.Warnf("removing clipboard temp file %s: %v", path, err)
		}
	}()

	return l.loadFile(path)
}

func newPayload(mimeType string, data []byte) Payload {
	return Payload{
		MIMEType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(data),
	}
}
