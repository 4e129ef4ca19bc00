package document

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// normalizeColor parses a hex color and returns it in canonical #rrggbb form.
// Empty and "none" mean no paint.
func normalizeColor(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return "", nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c.Hex(), nil
}
