package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Geometry holds one molecular configuration extracted from an NWChem
// output file. Coordinates are stored in angstroms as an n×3 matrix.
//
// Source and Count identify where the geometry came from: Count is the
// 1-based instance number within Source. Lattice holds the nine
// components of the cell vectors for periodic runs and is empty
// otherwise. Energy is the total energy (hartree) reported after the
// geometry, when one was found.
type Geometry struct {
	Source    string
	Count     int
	Names     []string
	Coords    *mat.Dense
	Lattice   string
	Energy    float64
	HasEnergy bool
}

// NAtoms returns the number of atoms in the geometry
func (g *Geometry) NAtoms() int {
	return len(g.Names)
}

// Comment builds the XYZ comment line from the available metadata. The
// fields are key=value pairs so extended XYZ readers can consume them;
// a lattice triggers the extended format described at
// https://www.ovito.org/docs/current/reference/file_formats/input/xyz.html
func (g *Geometry) Comment() string {
	var b strings.Builder
	if g.Lattice != "" {
		fmt.Fprintf(&b, "Lattice=%q Properties=species:S:1:pos:R:3 ",
			g.Lattice)
	}
	fmt.Fprintf(&b, "source=%s step=%d", Basename(g.Source), g.Count)
	if g.HasEnergy {
		fmt.Fprintf(&b, " energy=%.8f", g.Energy)
	}
	return b.String()
}

// Write serializes g in the XYZ format: the atom count, the comment
// line, then one "symbol x y z" line per atom
func (g *Geometry) Write(w io.Writer) error {
	nw := bufio.NewWriter(w)
	fmt.Fprintf(nw, "%d\n", g.NAtoms())
	fmt.Fprintf(nw, "%s\n", g.Comment())
	for i, name := range g.Names {
		fmt.Fprintf(nw, "%-3s%20.12f%20.12f%20.12f\n",
			name,
			g.Coords.At(i, 0),
			g.Coords.At(i, 1),
			g.Coords.At(i, 2),
		)
	}
	return nw.Flush()
}
