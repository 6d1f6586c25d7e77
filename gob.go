package counties

import (
	"compress/gzip"
	"encoding/gob"
	"io"
	"os"
	"strings"
)

// GobDump saves v to filename, gzip compressed if the name ends in ".gz"
func GobDump(filename string, v interface{}) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	var w io.Writer = f
	if strings.HasSuffix(filename, ".gz") {
		gz := gzip.NewWriter(f)
		defer func() {
			if cerr := gz.Close(); err == nil {
				err = cerr
			}
		}()
		w = gz
	}
	return gob.NewEncoder(w).Encode(v)
}

// GobLoad loads v from a file saved by GobDump
func GobLoad(filename string, v interface{}) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(filename, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return err
		}
		defer gz.Close()
		r = gz
	}
	return gob.NewDecoder(r).Decode(v)
}
