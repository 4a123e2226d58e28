//go:build windows

package imaging

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// clipboardImage saves the Windows clipboard image to a temporary PNG via
// PowerShell. The caller removes the file.
func clipboardImage() (string, error) {
	tmp, err := os.CreateTemp("", "imgx-clip-*.png")
	if err != nil {
		return "", err
	}
	path := tmp.Name()
	tmp.Close()

	script := fmt.Sprintf(`
$img = Get-Clipboard -Format Image
if ($img -eq $null) { exit 1 }
$img.Save('%s', [System.Drawing.Imaging.ImageFormat]::Png)
`, path)

	if err := exec.Command("powershell", "-NoProfile", "-Command", script).Run(); err != nil {
		os.Remove(path)
		return "", errors.New("no image available on the clipboard")
	}

	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		os.Remove(path)
		return "", errors.New("no image available on the clipboard")
	}
	return path, nil
}
