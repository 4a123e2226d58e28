package imaging

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sikiriki12/imgx/internal/fragment"
	"github.com/sikiriki12/imgx/internal/logging"
)

// SaveImages writes every image fragment to dir and returns the written
// paths in fragment order. The directory is created only when there is at
// least one image to write. All files from one call share a millisecond
// timestamp and are disambiguated by a zero-based index; concurrent calls
// hitting the same directory in the same millisecond are not defended
// against.
func SaveImages(fragments []fragment.Fragment, dir string) ([]string, error) {
	var images []fragment.Fragment
	for _, f := range fragments {
		if f.Kind == fragment.KindImage {
			images = append(images, f)
		}
	}
	if len(images) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	stamp := time.Now().UnixMilli()
	paths := make([]string, 0, len(images))
	for i, img := range images {
		data, err := base64.StdEncoding.DecodeString(img.Data)
		if err != nil {
			return paths, fmt.Errorf("decoding image %d: %w", i, err)
		}

		name := fmt.Sprintf("imgx-%d-%d.%s", stamp, i, extensionFor(img.MIMEType))
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, fmt.Errorf("writing %s: %w", path, err)
		}

		logging.Infof("saved image: %s", path)
		paths = append(paths, path)
	}
	return paths, nil
}

// extensionFor maps a MIME type to a file extension: the subtype verbatim,
// with jpeg shortened to jpg, defaulting to png when the type is absent.
func extensionFor(mimeType string) string {
	sub := mimeType
	if _, after, found := strings.Cut(mimeType, "/"); found {
		sub = after
	}
	switch sub {
	case "":
		return "png"
	case "jpeg":
		return "jpg"
	default:
		return sub
	}
}
