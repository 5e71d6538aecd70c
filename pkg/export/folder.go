package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// TimestampLayout names folders created without an explicit name
const TimestampLayout = "2006-01-02_15-04-05"

// DefaultBaseDir returns ~/Desktop
func DefaultBaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Desktop"), nil
}

// ResolveFolder returns base/name, or base/music_<timestamp> when name is blank
func ResolveFolder(base, name string, now time.Time) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "music_" + now.Format(TimestampLayout)
	}
	return filepath.Join(base, name)
}

// PromptFolderName asks for an output folder name and reads one line.
// An empty answer (or EOF) means "use a timestamp".
func PromptFolderName(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, "Enter a name for the output folder (or press Enter to use a timestamp): ")
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read folder name: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// EnsureDir creates dir and any missing parents
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output folder %s: %w", dir, err)
	}
	return nil
}
