// Package dotenv loads KEY=VALUE configuration files into the process
// environment. Loading is best effort: a missing file is a no-op, and keys
// that are already set in the environment are never overwritten.
package dotenv

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Parse scans r line by line and returns the KEY=VALUE entries it finds.
// Blank lines, '#' comments, and lines without an '=' are skipped. Only the
// first '=' splits the line; any later '=' characters stay in the value.
// Key and value are both trimmed of surrounding whitespace.
func Parse(r io.Reader) map[string]string {
	vars := make(map[string]string)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		vars[key] = strings.TrimSpace(value)
	}

	// A scanner error (such as a line past bufio's limit) ends the scan
	// early; loading is best effort, so the entries read so far still
	// count and the rest of the file is dropped silently.
	return vars
}

// Read parses the file at path. ok is false when the file cannot be read,
// in which case the returned map is empty.
func Read(path string) (vars map[string]string, ok bool) {
	f, err := os.Open(path)
	if err != nil {
		return map[string]string{}, false
	}
	defer f.Close()

	return Parse(f), true
}

// Apply binds each entry into the process environment unless the key is
// already set. A pre-existing value always wins, even an empty one.
func Apply(vars map[string]string) {
	for k, v := range vars {
		if _, exists := os.LookupEnv(k); exists {
			continue
		}
		os.Setenv(k, v)
	}
}

// Load reads the file at path and applies its entries to the environment.
// A missing or unreadable file leaves the environment untouched; ok reports
// whether the file was read.
func Load(path string) (ok bool) {
	vars, ok := Read(path)
	if !ok {
		return false
	}
	Apply(vars)
	return true
}
