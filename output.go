package main

import (
	"fmt"
	"os"
)

// Mode selects the file layout policy for extracted geometries
type Mode int

const (
	// Separate writes one file per geometry
	Separate Mode = iota
	// Together writes one file per NWChem output file
	Together
	// AllTogether writes a single file for the whole run
	AllTogether
)

func (m Mode) String() string {
	switch m {
	case Separate:
		return "separate"
	case Together:
		return "together"
	case AllTogether:
		return "alltogether"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts the name of a layout policy to a Mode
func ParseMode(s string) (Mode, error) {
	switch s {
	case "separate":
		return Separate, nil
	case "together":
		return Together, nil
	case "alltogether":
		return AllTogether, nil
	}
	return 0, fmt.Errorf("invalid mode %q", s)
}

// WriteOutput routes geometries to disk according to the selected mode
func WriteOutput(mode Mode, prefix string, geoms []Geometry) error {
	switch mode {
	case Separate:
		return WriteSeparate(prefix, geoms)
	case Together:
		return WriteTogether(prefix, geoms)
	case AllTogether:
		return WriteAllTogether(prefix, geoms)
	}
	return fmt.Errorf("invalid mode %d", int(mode))
}

// WriteSeparate writes every geometry to its own file. The filename is
// built from the prefix, the basename of the source file, and the
// geometry number.
func WriteSeparate(prefix string, geoms []Geometry) error {
	for i := range geoms {
		g := &geoms[i]
		filename := fmt.Sprintf("%s%s_%04d.xyz",
			prefix, Basename(g.Source), g.Count)
		f, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("create %s: %w", filename, err)
		}
		if err := g.Write(f); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", filename, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", filename, err)
		}
	}
	return nil
}

// WriteTogether concatenates the geometries from each source file into
// one file per source. Geometries arrive in file order, so a change in
// the constructed filename starts the next output file.
func WriteTogether(prefix string, geoms []Geometry) error {
	var (
		f       *os.File
		oldname string
	)
	for i := range geoms {
		g := &geoms[i]
		filename := fmt.Sprintf("%s%s.xyz", prefix, Basename(g.Source))
		if filename != oldname {
			if f != nil {
				if err := f.Close(); err != nil {
					return fmt.Errorf("close %s: %w", oldname, err)
				}
			}
			var err error
			f, err = os.Create(filename)
			if err != nil {
				return fmt.Errorf("create %s: %w", filename, err)
			}
			oldname = filename
		}
		if err := g.Write(f); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", filename, err)
		}
	}
	if f != nil {
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", oldname, err)
		}
	}
	return nil
}

// WriteAllTogether writes every geometry to the single file named by
// the prefix
func WriteAllTogether(prefix string, geoms []Geometry) error {
	filename := prefix + ".xyz"
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	for i := range geoms {
		if err := geoms[i].Write(f); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", filename, err)
		}
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filename, err)
	}
	return nil
}
