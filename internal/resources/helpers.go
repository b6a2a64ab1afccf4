package resources

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bordenet/business-justification-assistant/internal/config"
)

// findRoot walks up from cwd looking for bja/case.json.
func findRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}

	current := dir
	for {
		if _, err := os.Stat(config.ConfigPath(current)); err == nil {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return dir, nil
		}
		current = parent
	}
}
