package main

import (
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// from https://physics.nist.gov/cgi-bin/cuu/Value?bohrrada0
	toAng = 0.5291_772_109_03
)

// Basename returns the name of a file without its directory or
// extensions. The basename of "/share/structure.opt.txt" is
// "structure".
func Basename(filename string) string {
	base := filepath.Base(filename)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return base
}

// toFloat converts a list of strings to float64s using
// strconv.ParseFloat
func toFloat(strs []string) ([]float64, error) {
	ret := make([]float64, len(strs))
	var err error
	for i, s := range strs {
		ret[i], err = strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}
