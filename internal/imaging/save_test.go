package imaging

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sikiriki12/imgx/internal/fragment"
)

// minimalPNG is a complete 1x1 transparent PNG.
var minimalPNG = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4,
	0x89, 0x00, 0x00, 0x00, 0x0A, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9C, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0D, 0x0A, 0x2D, 0xB4, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4E, 0x44, 0xAE,
	0x42, 0x60, 0x82,
}

func TestSaveImagesNoImages(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "never-created")
	fragments := []fragment.Fragment{
		{Kind: fragment.KindNarration, Content: "text"},
		{Kind: fragment.KindCode, Content: "print(1)"},
	}

	paths, err := SaveImages(fragments, dir)
	if err != nil {
		t.Fatalf("SaveImages: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("SaveImages returned %d paths, want 0", len(paths))
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("directory was created despite no images")
	}
}

func TestSaveImagesNamesAndOrder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")
	data := base64.StdEncoding.EncodeToString([]byte("img-bytes"))
	fragments := []fragment.Fragment{
		{Kind: fragment.KindImage, MIMEType: "image/png", Data: data},
		{Kind: fragment.KindNarration, Content: "in between"},
		{Kind: fragment.KindImage, MIMEType: "image/jpeg", Data: data},
		{Kind: fragment.KindImage, MIMEType: "", Data: data},
	}

	paths, err := SaveImages(fragments, dir)
	if err != nil {
		t.Fatalf("SaveImages: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("SaveImages returned %d paths, want 3", len(paths))
	}

	wantSuffix := []string{"-0.png", "-1.jpg", "-2.png"}
	for i, p := range paths {
		if !strings.HasSuffix(p, wantSuffix[i]) {
			t.Errorf("path %d = %q, want suffix %q", i, p, wantSuffix[i])
		}
		if !strings.HasPrefix(filepath.Base(p), "imgx-") {
			t.Errorf("path %d = %q, want an imgx- prefixed name", i, p)
		}
		if _, err := os.Stat(p); err != nil {
			t.Errorf("path %d = %q was not written: %v", i, p, err)
		}
	}
}

func TestSaveImagesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fragments := []fragment.Fragment{{
		Kind:     fragment.KindImage,
		MIMEType: "image/png",
		Data:     base64.StdEncoding.EncodeToString(minimalPNG),
	}}

	paths, err := SaveImages(fragments, dir)
	if err != nil {
		t.Fatalf("SaveImages: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("SaveImages returned %d paths, want 1", len(paths))
	}

	written, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatalf("reading written image: %v", err)
	}
	if !bytes.Equal(written, minimalPNG) {
		t.Error("written bytes differ from the original payload")
	}
	if DetectSignature(written) != MIMEPNG {
		t.Error("written file does not carry the PNG signature")
	}
}

func TestSaveImagesBadBase64(t *testing.T) {
	fragments := []fragment.Fragment{{
		Kind:     fragment.KindImage,
		MIMEType: "image/png",
		Data:     "%%%not-base64%%%",
	}}

	if _, err := SaveImages(fragments, t.TempDir()); err == nil {
		t.Fatal("SaveImages succeeded on invalid base64, want error")
	}
}

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		mimeType string
		want     string
	}{
		{"image/png", "png"},
		{"image/jpeg", "jpg"},
		{"image/webp", "webp"},
		{"", "png"},
		{"png", "png"},
	}

	for _, tt := range tests {
		if got := extensionFor(tt.mimeType); got != tt.want {
			t.Errorf("extensionFor(%q) = %q, want %q", tt.mimeType, got, tt.want)
		}
	}
}
