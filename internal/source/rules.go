package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ReadRules reads a translation rule table into header-keyed records.
func ReadRules(r io.Reader, enc Encoding) ([]map[string]string, error) {
	return readRecords(r, enc)
}

// LoadRules reads every rule file in order and concatenates the records.
func LoadRules(paths []string, enc Encoding) ([]map[string]string, error) {
	var all []map[string]string
	for _, path := range paths {
		f, err := openFile(path)
		if err != nil {
			return nil, err
		}

		records, err := ReadRules(f, enc)
		f.Close()

		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		all = append(all, records...)
	}

	return all, nil
}

// ExpandGlobs resolves rule file patterns against baseDir. Patterns may use
// doublestar wildcards (**). Matches are de-duplicated and keep pattern
// order; a pattern without wildcards must name an existing file.
func ExpandGlobs(baseDir string, patterns []string) ([]string, error) {
	var out []string

	seen := make(map[string]bool)
	for _, pattern := range patterns {
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(baseDir, pattern)
		}

		var matches []string
		if strings.ContainsAny(pattern, "*?[{") {
			var err error

			matches, err = doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("glob %q: %w", pattern, err)
			}

			if len(matches) == 0 {
				return nil, fmt.Errorf("no files match pattern %s", pattern)
			}
		} else {
			if _, err := os.Stat(pattern); err != nil {
				return nil, fmt.Errorf("rule file: %w", err)
			}

			matches = []string{pattern}
		}

		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}

	return out, nil
}
