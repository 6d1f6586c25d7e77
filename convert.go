package counties

import "fmt"

const (
	// CountyCSVFile is the default data source, the NY Times county level dataset
	CountyCSVFile = "us-counties.csv"

	// TreeGOBFile is the default snapshot of the parsed tree
	TreeGOBFile = "county_covid.gob.gz"

	// DataDir is the default output directory, as fetched by the web front end
	DataDir = "data"
)

// ProcessCSVData converts the csv source into a json file tree rooted at baseDir
func ProcessCSVData(source, baseDir string) error {
	tree, err := ParseFile(source)
	if err != nil {
		return fmt.Errorf("failed to process %q -- %w", source, err)
	}
	return WriteTree(tree, baseDir)
}
