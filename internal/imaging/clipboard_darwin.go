//go:build darwin

package imaging

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// clipboardImage extracts a PNG from the macOS clipboard via osascript and
// writes it to a temporary file. The caller removes the file.
func clipboardImage() (string, error) {
	tmp, err := os.CreateTemp("", "imgx-clip-*.png")
	if err != nil {
		return "", err
	}
	path := tmp.Name()
	tmp.Close()

	script := fmt.Sprintf(`
		set tmpFile to POSIX file "%s"
		try
			set imageData to the clipboard as «class PNGf»
			set fileRef to open for access tmpFile with write permission
			write imageData to fileRef
			close access fileRef
			return "ok"
		on error
			return "no image"
		end try
	`, path)

	out, err := exec.Command("osascript", "-e", script).Output()
	if err != nil || strings.TrimSpace(string(out)) != "ok" {
		os.Remove(path)
		return "", errors.New("no image available on the clipboard")
	}
	return path, nil
}
