package counties

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFile(t *testing.T, filename string) string {
	t.Helper()
	b, err := os.ReadFile(filename)
	require.NoError(t, err)
	return string(b)
}

func TestWriteTreeSpaces(t *testing.T) {
	const input = `date,county,state,fips,cases,deaths
2020-03-01,King County,Washington State,53033,5,1
2020-03-02,King County,Washington State,53033,7,2
`
	tree, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, WriteTree(tree, dir))

	county := readFile(t, filepath.Join(dir, "Washington_State", "King_County.json"))
	assert.Equal(t, `{"2020-03-01":[5,1],"2020-03-02":[7,2]}`, county)
	assert.JSONEq(t, `{"2020-03-01": [5,1], "2020-03-02": [7,2]}`, county)

	index := readFile(t, filepath.Join(dir, IndexFile))
	assert.JSONEq(t, `{"Washington State": ["King County"]}`, index)
}

func TestWriteTreeLayout(t *testing.T) {
	tree, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "nested", "data")
	require.NoError(t, WriteTree(tree, dir))

	for _, name := range []string{
		"Washington/King.json",
		"Washington/Snohomish.json",
		"Illinois/Cook.json",
		IndexFile,
	} {
		assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(name)))
	}
	assert.JSONEq(t, `{"Washington":["King","Snohomish"],"Illinois":["Cook"]}`,
		readFile(t, filepath.Join(dir, IndexFile)))
}

func TestWriteTreeIdempotent(t *testing.T) {
	tree, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	dir := t.TempDir()
	snapshot := func() map[string]string {
		files := make(map[string]string)
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			files[path] = readFile(t, path)
			return nil
		})
		require.NoError(t, err)
		return files
	}

	require.NoError(t, WriteTree(tree, dir))
	first := snapshot()
	require.NoError(t, WriteTree(tree, dir))
	assert.Equal(t, first, snapshot())
}

func TestWriteTreeOverwrites(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "Illinois", "Cook.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0755))
	require.NoError(t, os.WriteFile(stale, []byte(`{"1999-01-01":[100,100],"padding":[0,0]}`), 0644))
	orphan := filepath.Join(dir, "Illinois", "Lake.json")
	require.NoError(t, os.WriteFile(orphan, []byte(`{}`), 0644))

	tree := make(Tree)
	tree.Set("Illinois", "Cook", "2020-03-01", Counts{3, 0})
	require.NoError(t, WriteTree(tree, dir))

	assert.Equal(t, `{"2020-03-01":[3,0]}`, readFile(t, stale))
	// files not part of the tree are left alone
	assert.FileExists(t, orphan)
}

func TestWriteTreeBadBase(t *testing.T) {
	base := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(base, nil, 0644))

	tree := make(Tree)
	tree.Set("Illinois", "Cook", "2020-03-01", Counts{3, 0})
	err := WriteTree(tree, base)
	require.Error(t, err)
	var pe *fs.PathError
	assert.True(t, errors.As(err, &pe))
}

func TestWriteTreeStateCollision(t *testing.T) {
	dir := t.TempDir()
	// a regular file where the state directory belongs
	require.NoError(t, os.WriteFile(filepath.Join(dir, "New_York"), nil, 0644))

	tree := make(Tree)
	tree.Set("New York", "Kings", "2020-03-01", Counts{1, 0})
	err := WriteTree(tree, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "New York")
	assert.NoFileExists(t, filepath.Join(dir, IndexFile))
}

func TestSafeName(t *testing.T) {
	assert.Equal(t, "New_York", SafeName("New York"))
	assert.Equal(t, "St._Mary__Parish", SafeName("St. Mary  Parish"))
	assert.Equal(t, "Doña_Ana", SafeName("Doña Ana"))
	assert.Equal(t, "Washington", SafeName("Washington"))
	assert.Equal(t, filepath.Join("base", "New_York", "New_York_City.json"),
		CountyPath("base", "New York", "New York City"))
}
