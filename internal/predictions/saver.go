package predictions

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirSaver writes downloaded reports into a directory on the local
// filesystem, creating it if needed.
type DirSaver struct {
	Dir string
}

// Save writes data under the saver's directory and returns the full path.
func (s DirSaver) Save(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating download dir: %w", err)
	}
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

// Compile-time check that DirSaver implements Saver.
var _ Saver = DirSaver{}
