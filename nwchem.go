package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Markers for the sections of an NWChem output file. Geometry and
// lattice headers name their units, so the unit is whatever follows the
// marker.
const (
	geomMarker    = "Output coordinates in "
	latticeMarker = "lattice vectors in "
	dftMarker     = "Total DFT energy"
	scfMarker     = "Total SCF energy"
)

// Errors
var (
	ErrFileNotFound   = errors.New("output file not found")
	ErrNoGeometries   = errors.New("no geometries found")
	errMalformedBlock = errors.New("malformed geometry block")
)

// unitFactor maps the unit named in a coordinate header to the factor
// that converts it to angstroms
func unitFactor(unit string) (float64, bool) {
	switch unit {
	case "angstroms":
		return 1.0, true
	case "a.u.":
		return toAng, true
	case "nm":
		return 10.0, true
	}
	return 0, false
}

// headerUnit extracts the unit from a geometry or lattice header line,
// the first field after the marker
func headerUnit(line, marker string) string {
	fields := strings.Fields(strings.TrimPrefix(line, marker))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// ExtractFile scans an NWChem output file and returns the geometries
// it contains, in file order. A total energy reported after a geometry
// is attached to it, and the cell vectors of a periodic run are
// attached to every geometry that follows them. Malformed blocks are
// reported and skipped; their number is returned alongside the
// geometries.
func ExtractFile(filename string) (geoms []Geometry, skipped int, err error) {
	f, err := os.Open(filename)
	defer f.Close()
	if err != nil {
		return nil, 0, ErrFileNotFound
	}
	scanner := bufio.NewScanner(f)
	var (
		line    string
		lattice string
		count   int
	)
	for scanner.Scan() {
		line = strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, geomMarker):
			count++
			geom, gerr := readGeom(scanner, headerUnit(line, geomMarker))
			if gerr != nil {
				log.Printf("%s: geometry %d: %v, skipping\n",
					filename, count, gerr)
				skipped++
				continue
			}
			geom.Source = filename
			geom.Count = count
			geom.Lattice = lattice
			geoms = append(geoms, *geom)
		case strings.HasPrefix(line, latticeMarker):
			lat, lerr := readLattice(scanner, headerUnit(line, latticeMarker))
			if lerr != nil {
				log.Printf("%s: %v, ignoring lattice\n", filename, lerr)
				continue
			}
			lattice = lat
		case strings.HasPrefix(line, dftMarker),
			strings.HasPrefix(line, scfMarker):
			if len(geoms) == 0 {
				continue
			}
			fields := strings.Fields(line)
			v, perr := strconv.ParseFloat(fields[len(fields)-1], 64)
			if perr != nil {
				continue
			}
			geoms[len(geoms)-1].Energy = v
			geoms[len(geoms)-1].HasEnergy = true
		}
	}
	return geoms, skipped, scanner.Err()
}

// skipBlock discards lines up to and including the next blank line
func skipBlock(scanner *bufio.Scanner) {
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "" {
			return
		}
	}
}

// readGeom reads one geometry block from scanner, which must be
// positioned at the "Output coordinates" header line. Atom records
// have six fields (index, tag, charge, x, y, z); a blank line or EOF
// ends the block. Coordinates are converted to angstroms.
func readGeom(scanner *bufio.Scanner, unit string) (*Geometry, error) {
	// the header is followed by a blank line, the column labels, and
	// a separator, none of which carry data
	for i := 0; i < 3 && scanner.Scan(); i++ {
	}
	fac, ok := unitFactor(unit)
	if !ok {
		skipBlock(scanner)
		return nil, fmt.Errorf("%w: unknown units %q",
			errMalformedBlock, unit)
	}
	var (
		names  []string
		coords []float64
	)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			break
		}
		if len(fields) != 6 {
			skipBlock(scanner)
			return nil, fmt.Errorf("%w: %d fields in %q",
				errMalformedBlock, len(fields), scanner.Text())
		}
		xyz, err := toFloat(fields[3:])
		if err != nil {
			skipBlock(scanner)
			return nil, fmt.Errorf("%w: %v", errMalformedBlock, err)
		}
		names = append(names, fields[1])
		coords = append(coords, xyz...)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: empty block", errMalformedBlock)
	}
	c := mat.NewDense(len(names), 3, coords)
	if fac != 1.0 {
		c.Scale(fac, c)
	}
	return &Geometry{Names: names, Coords: c}, nil
}

// readLattice reads the three cell vectors following a "lattice
// vectors" header, lines of the form "a1=< x y z >", and returns their
// nine components in angstroms as the space-separated value of an
// extended XYZ Lattice entry
func readLattice(scanner *bufio.Scanner, unit string) (string, error) {
	fac, ok := unitFactor(unit)
	if !ok {
		return "", fmt.Errorf("unknown lattice units %q", unit)
	}
	comps := make([]float64, 0, 9)
	for len(comps) < 9 && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		i := strings.Index(line, "=<")
		if !strings.HasPrefix(line, "a") || i < 0 {
			return "", fmt.Errorf("unexpected lattice line %q", line)
		}
		v, err := toFloat(strings.Fields(
			strings.TrimSuffix(line[i+2:], ">"),
		))
		if err != nil {
			return "", fmt.Errorf("bad lattice vector %q: %v", line, err)
		}
		comps = append(comps, v...)
	}
	if len(comps) != 9 {
		return "", fmt.Errorf("%d lattice components, wanted 9", len(comps))
	}
	var b strings.Builder
	for i, c := range comps {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.8f", c*fac)
	}
	return b.String(), nil
}
