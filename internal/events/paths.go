package events

import (
	"os"
	"path/filepath"
)

// DefaultSocketPath returns ~/.taskmanager/taskmanager.sock
func DefaultSocketPath() (string, error) {
	home := os.Getenv("HOME")
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(home, ".taskmanager", "taskmanager.sock"), nil
}
