package notion

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ParseID accepts an object id with or without dashes, or a URL ending in one, and returns it in
// canonical dashed form.
func ParseID(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	if i := strings.LastIndexAny(s, "/-"); i >= 0 && len(s)-i-1 == 32 {
		s = s[i+1:]
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid object id %q: %w", raw, err)
	}
	return id.String(), nil
}
