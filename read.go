package counties

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadIndex reads the state/county index from a tree written by WriteTree
func LoadIndex(baseDir string) (Index, error) {
	var idx Index
	if err := readJSON(filepath.Join(baseDir, IndexFile), &idx); err != nil {
		return nil, err
	}
	return idx, nil
}

// LoadCounty reads the time series for a single county.
// The names are the original ones, as listed in the index.
func LoadCounty(baseDir, state, county string) (Series, error) {
	var series Series
	if err := readJSON(CountyPath(baseDir, state, county), &series); err != nil {
		return nil, err
	}
	return series, nil
}

// LoadTree reassembles a Tree from the files written by WriteTree
func LoadTree(baseDir string) (Tree, error) {
	idx, err := LoadIndex(baseDir)
	if err != nil {
		return nil, err
	}
	tree := make(Tree, len(idx))
	for state, names := range idx {
		byCounty := make(map[string]Series, len(names))
		for _, county := range names {
			series, err := LoadCounty(baseDir, state, county)
			if err != nil {
				return nil, fmt.Errorf("load %s/%s: %w", state, county, err)
			}
			byCounty[county] = series
		}
		tree[state] = byCounty
	}
	return tree, nil
}

func readJSON(filename string, v interface{}) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", filename, err)
	}
	return nil
}
