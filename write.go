package counties

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirMode  = 0755
	fileMode = 0644
)

// SafeName converts a state or county name into a path segment
// by replacing spaces with underscores.
// No other characters are altered.
func SafeName(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

// CountyPath is where the series for the given county is written under baseDir
func CountyPath(baseDir, state, county string) string {
	return filepath.Join(baseDir, SafeName(state), SafeName(county)+CountyExt)
}

// WriteTree writes the tree as a json file tree, e.g.,
// the data for King County, Washington will be written to
// <baseDir>/Washington/King.json, along with a <baseDir>/state_county.json index.
//
// Directories are created as needed and existing files are overwritten.
// A failure part way through leaves the files written so far in place.
func WriteTree(tree Tree, baseDir string) error {
	if err := os.MkdirAll(baseDir, dirMode); err != nil {
		return fmt.Errorf("create base dir: %w", err)
	}
	idx := make(Index, len(tree))
	for state, byCounty := range tree {
		stateDir := filepath.Join(baseDir, SafeName(state))
		if err := os.MkdirAll(stateDir, dirMode); err != nil {
			return fmt.Errorf("create state dir for %q: %w", state, err)
		}
		for county, series := range byCounty {
			idx[state] = append(idx[state], county)
			filename := filepath.Join(stateDir, SafeName(county)+CountyExt)
			if err := writeJSON(filename, series); err != nil {
				return fmt.Errorf("write %s/%s: %w", state, county, err)
			}
		}
	}
	idx.sort()
	if err := writeJSON(filepath.Join(baseDir, IndexFile), idx); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

func writeJSON(filename string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, fileMode)
}
