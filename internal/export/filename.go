package export

import "strings"

// Filename derives a download filename from the person's name and the export
// format, e.g. "Ada-Lovelace-CV.pdf". A blank name falls back to "cv".
func Filename(name, ext string) string {
	base := strings.Join(strings.Fields(name), "-")
	if base == "" {
		base = "cv"
	}
	return base + "-CV." + ext
}
