package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SavePhoto writes photo bytes to a deterministic path derived from the
// place ID and returns the path relative to the data dir, which is what
// gets recorded on the court. Writing the same place twice overwrites the
// same file.
func (s *Store) SavePhoto(placeID string, data []byte) (string, error) {
	name := sanitizeID(placeID) + ".jpg"
	rel := filepath.Join(photosDirname, name)
	abs := filepath.Join(s.dataDir, rel)

	if err := os.WriteFile(abs, data, 0644); err != nil {
		return "", fmt.Errorf("writing photo: %w", err)
	}
	return rel, nil
}

// HasPhoto reports whether a photo file already exists for the place.
func (s *Store) HasPhoto(placeID string) bool {
	abs := filepath.Join(s.dataDir, photosDirname, sanitizeID(placeID)+".jpg")
	_, err := os.Stat(abs)
	return err == nil
}

// sanitizeID maps a place ID onto a filesystem-safe name. Place IDs are
// normally URL-safe already; anything else becomes an underscore.
func sanitizeID(placeID string) string {
	var b strings.Builder
	b.Grow(len(placeID))
	for _, r := range placeID {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
