//go:build !darwin && !linux && !windows

package imaging

import "errors"

func clipboardImage() (string, error) {
	return "", errors.New("clipboard image capture is not supported on this platform")
}
