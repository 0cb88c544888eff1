package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
)

// Flags
var (
	config = flag.String("config", "",
		"TOML configuration file with defaults for the options below")
	prefix = flag.String("prefix", "",
		"prefix for output filenames")
	separate = flag.Bool("separate", false,
		"write a separate XYZ file for each geometry")
	together = flag.Bool("together", false,
		"write one XYZ file per NWChem output file")
	alltogether = flag.Bool("alltogether", false,
		"write one XYZ file for all NWChem output files")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		`Extract geometries from NWChem output files and write them in the XYZ
format under one of three layouts.

Usage: %s [options] file.nwo...
`, os.Args[0])
	flag.PrintDefaults()
}

// Options are the resolved settings for one run
type Options struct {
	Prefix string
	Mode   Mode
}

// resolve merges the command line flags with the optional
// configuration file. Flags win; exactly one output mode must be in
// effect, and alltogether needs a prefix to name its single output
// file.
func resolve(conf Config, haveConf bool,
	separate, together, alltogether bool, prefix string) (Options, error) {
	var opt Options
	var n int
	for _, set := range []bool{separate, together, alltogether} {
		if set {
			n++
		}
	}
	switch {
	case n > 1:
		return opt, errors.New(
			"-separate, -together, and -alltogether conflict")
	case n == 1:
		switch {
		case separate:
			opt.Mode = Separate
		case together:
			opt.Mode = Together
		default:
			opt.Mode = AllTogether
		}
	case haveConf:
		opt.Mode = conf.Mode
	default:
		return opt, errors.New(
			"choose one of -separate, -together, or -alltogether")
	}
	opt.Prefix = prefix
	if opt.Prefix == "" {
		opt.Prefix = conf.Prefix
	}
	if opt.Mode == AllTogether && opt.Prefix == "" {
		return opt, errors.New("-alltogether requires -prefix")
	}
	return opt, nil
}

func main() {
	flag.Usage = usage
	flag.Parse()
	files := flag.Args()
	if len(files) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	var (
		conf     Config
		haveConf bool
	)
	if *config != "" {
		var err error
		conf, err = LoadConfig(*config)
		if err != nil {
			log.Fatalf("loading %s: %v\n", *config, err)
		}
		haveConf = true
	}
	opt, err := resolve(conf, haveConf,
		*separate, *together, *alltogether, *prefix)
	if err != nil {
		log.Fatal(err)
	}
	var (
		geoms  []Geometry
		failed bool
	)
	for _, file := range files {
		gs, skipped, err := ExtractFile(file)
		if err != nil {
			log.Printf("%s: %v\n", file, err)
			failed = true
			continue
		}
		if skipped > 0 {
			failed = true
		}
		geoms = append(geoms, gs...)
	}
	if len(geoms) == 0 {
		log.Fatal(ErrNoGeometries)
	}
	if err := WriteOutput(opt.Mode, opt.Prefix, geoms); err != nil {
		log.Fatal(err)
	}
	if failed {
		os.Exit(1)
	}
}
