package counties

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	// IndexFile is the name of the state to county index written at the
	// top of the output tree
	IndexFile = "state_county.json"

	// CountyExt is the extension of each per county time series
	CountyExt = ".json"
)

// Counts is the (cases, deaths) pair for a single date.
// It serializes as a two element array.
type Counts [2]int

// Cases reported as of the date
func (c Counts) Cases() int { return c[0] }

// Deaths reported as of the date
func (c Counts) Deaths() int { return c[1] }

// Series is a county time series indexed by the (unparsed) date string
type Series map[string]Counts

// Dates returns the series dates in ascending order
func (s Series) Dates() []string {
	dates := maps.Keys(s)
	slices.Sort(dates)
	return dates
}

// Tree is the aggregation of all records, accessed as
//
//	counts := tree[state][county][date]
type Tree map[string]map[string]Series

// Set stores the counts at the given path, replacing any prior value
func (t Tree) Set(state, county, date string, c Counts) {
	byCounty, ok := t[state]
	if !ok {
		byCounty = make(map[string]Series)
		t[state] = byCounty
	}
	series, ok := byCounty[county]
	if !ok {
		series = make(Series)
		byCounty[county] = series
	}
	series[date] = c
}

// Get returns the counts at the given path, if present
func (t Tree) Get(state, county, date string) (Counts, bool) {
	c, ok := t[state][county][date]
	return c, ok
}

// Index lists the counties known for each state
type Index map[string][]string

// Index derives the sorted county listing for each state in the tree
func (t Tree) Index() Index {
	idx := make(Index, len(t))
	for state, byCounty := range t {
		idx[state] = maps.Keys(byCounty)
	}
	idx.sort()
	return idx
}

// sort orders each county list and drops repeated names
func (idx Index) sort() {
	for state, names := range idx {
		slices.Sort(names)
		idx[state] = slices.Compact(names)
	}
}
