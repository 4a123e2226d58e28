//go:build linux

package imaging

import (
	"errors"
	"os"
	"os/exec"
)

// clipboardImage reads a PNG from the Wayland or X11 clipboard, trying
// wl-paste first and falling back to xclip, and writes it to a temporary
// file. The caller removes the file.
func clipboardImage() (string, error) {
	var data []byte
	if out, err := exec.Command("wl-paste", "--type", "image/png").Output(); err == nil && len(out) > 0 {
		data = out
	} else if out, err := exec.Command("xclip", "-selection", "clipboard", "-t", "image/png", "-o").Output(); err == nil && len(out) > 0 {
		data = out
	}
	if len(data) == 0 {
		return "", errors.New("no image available on the clipboard (requires wl-paste or xclip)")
	}

	tmp, err := os.CreateTemp("", "imgx-clip-*.png")
	if err != nil {
		return "", err
	}
	path := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(path)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
