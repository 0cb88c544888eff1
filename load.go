package main

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

type RawConf struct {
	Prefix string
	Mode   string
}

func (rc RawConf) ToConfig() (conf Config, err error) {
	conf.Prefix = rc.Prefix
	conf.Mode, err = ParseMode(rc.Mode)
	return
}

type Config struct {
	Prefix string
	Mode   Mode
}

// LoadConfig reads a TOML configuration file holding defaults for the
// command line options
func LoadConfig(filename string) (Config, error) {
	f, err := os.Open(filename)
	defer f.Close()
	if err != nil {
		return Config{}, err
	}
	cont, err := io.ReadAll(f)
	if err != nil {
		return Config{}, err
	}
	// Defaults
	rc := RawConf{
		Mode: "together",
	}
	if err := toml.Unmarshal(cont, &rc); err != nil {
		return Config{}, err
	}
	return rc.ToConfig()
}
