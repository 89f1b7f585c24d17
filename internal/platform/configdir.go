package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigDir returns the per-user directory for appName's settings. When the
// OS does not report one, a conventional location under the home directory
// is used.
func ConfigDir(appName string) (string, error) {
	base, err := os.UserConfigDir()
	if err == nil && base != "" {
		return filepath.Join(base, appName), nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return filepath.Join(fallbackConfigDir(homeDir), appName), nil
}
