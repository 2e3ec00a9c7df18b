package lists

import (
	"os"
	"path/filepath"
	"strings"
)

// writeLines writes one entry per line with a trailing newline, creating the
// parent directory if needed. The file is fully overwritten.
func writeLines(path string, lines []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(sb.String()), 0644)
}
