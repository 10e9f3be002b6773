// Package fs provides file-based loading of verse texts and commentary
// sources, and atomic JSON output.
package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/skaranam/namartha"
)

// LoadVerseLines reads a verse text file and returns its lines. Line
// indices in annotations refer to positions in this slice, so every line is
// kept, including blank ones; only a single trailing newline is dropped.
func LoadVerseLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, namartha.Errorf(namartha.ENOTFOUND, "verse file not found: %s", path)
		}
		return nil, err
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n"), nil
}

// SourceFile is the on-disk commentary source format.
type SourceFile struct {
	Name    string           `json:"name"`
	Glosses []namartha.Gloss `json:"glosses"`
}

// LoadSource reads a commentary source from a JSON file.
func LoadSource(path string, opts ...namartha.SourceOption) (*namartha.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, namartha.Errorf(namartha.ENOTFOUND, "source file not found: %s", path)
		}
		return nil, err
	}

	var sf SourceFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, namartha.Errorf(namartha.EINVALID, "invalid source file %s: %v", path, err)
	}
	if sf.Name == "" {
		sf.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return namartha.NewSource(sf.Name, sf.Glosses, opts...), nil
}

// WriteJSON writes v as indented JSON to path atomically: the content goes
// to a temporary file in the same directory, which is then renamed over the
// target.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), path)
}
