package imaging

// Image MIME types produced by signature detection and extension fallback.
const (
	MIMEJPEG = "image/jpeg"
	MIMEPNG  = "image/png"
	MIMEGIF  = "image/gif"
	MIMEWEBP = "image/webp"
	MIMEBMP  = "image/bmp"
)

// DetectSignature classifies raw bytes by their leading magic numbers and
// returns the matching image MIME type, or "" when nothing matches. The
// signatures are disjoint, so check order does not matter; buffers shorter
// than a signature simply never match it.
func DetectSignature(data []byte) string {
	switch {
	case len(data) >= 4 && data[0] == 0x89 && data[1] == 'P' && data[2] == 'N' && data[3] == 'G':
		return MIMEPNG
	case len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return MIMEJPEG
	case len(data) >= 4 && string(data[:4]) == "GIF8":
		return MIMEGIF
	case len(data) >= 12 && string(data[:4]) == "RIFF" && string(data[8:12]) == "WEBP":
		return MIMEWEBP
	case len(data) >= 2 && data[0] == 'B' && data[1] == 'M':
		return MIMEBMP
	}
	return ""
}
