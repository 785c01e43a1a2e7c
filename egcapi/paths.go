package egcapi

import (
	"fmt"
	"os"
	"path/filepath"
)

// documentRelPath is the document location below the platform config root.
var documentRelPath = filepath.Join("Elgato", "GameCapture", "EGCAPILite", "EGCAPILite.json")

// DefaultPath returns the document path below the user's config directory
// (%AppData% on Windows).
func DefaultPath() (string, error) {
	root, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(root, documentRelPath), nil
}
