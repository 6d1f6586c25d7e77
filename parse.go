package counties

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

const (
	// headerPrefix marks a header row, any row starting with it is skipped
	headerPrefix = "date"

	// date,county,state,fips,cases,deaths
	fieldCount = 6

	// allow for pathologically long rows
	maxLineSize = 1 << 20
)

// Parse reads the NY Times style county csv data into a Tree.
//
// Rows are split on commas without any quoting support. The fips field is
// read but not retained. Later rows for the same state, county and date
// replace earlier ones.
func Parse(r io.Reader) (Tree, error) {
	tree := make(Tree)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		// NOTE: this is applied to every row, not just the first
		if strings.HasPrefix(line, headerPrefix) {
			continue
		}
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		fields := strings.Split(line, ",")
		if len(fields) != fieldCount {
			return nil, &FormatError{
				Line:   lineNo,
				Text:   line,
				Reason: fmt.Sprintf("expected %d fields, got %d", fieldCount, len(fields)),
			}
		}
		date, county, state := fields[0], fields[1], fields[2]
		cases, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, &FormatError{Line: lineNo, Text: line, Reason: "invalid case count", Err: err}
		}
		deaths, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, &FormatError{Line: lineNo, Text: line, Reason: "invalid death count", Err: err}
		}
		tree.Set(state, county, date, Counts{cases, deaths})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read failed after line %d: %w", lineNo, err)
	}
	return tree, nil
}

// ParseFile parses the named csv file
func ParseFile(filename string) (Tree, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
