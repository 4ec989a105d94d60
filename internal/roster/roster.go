// internal/roster/roster.go
//
// Reads participant names and prize labels for a round.
//
// Sources:
//   - A single comma-separated line, as typed at the prompt
//     ("pobi,honux,crong,jk").
//   - A list file: one or more entries per line, comma separated.
//     Blank lines and lines starting with "#" are skipped.
//
// Entries are trimmed; empty entries between commas are kept as "" so the
// game package can report them as blank instead of silently shifting slots.

package roster

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Separator splits entries on one line.
const Separator = ","

// ParseLine splits a comma-separated line into trimmed entries.
// An all-blank line yields no entries.
func ParseLine(line string) []string {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	parts := strings.Split(line, Separator)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// ReadFile loads entries from a list file.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, ParseLine(s)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}
