package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Conf holds the generator configuration. Flags override config file values,
// which override the environment and the built in defaults.
type Conf struct {
	Version string `yaml:"version"`
	Dir     string `yaml:"dir"`
	Out     string `yaml:"out"`
	Pkg     string `yaml:"pkg"`
}

// LoadConf reads a yaml config file. A missing file is not an error, the
// zero config is returned instead.
func LoadConf(path string) (Conf, error) {
	var c Conf
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Merge returns c with every field set in o replaced by o's value.
func (c Conf) Merge(o Conf) Conf {
	if o.Version != "" {
		c.Version = o.Version
	}
	if o.Dir != "" {
		c.Dir = o.Dir
	}
	if o.Out != "" {
		c.Out = o.Out
	}
	if o.Pkg != "" {
		c.Pkg = o.Pkg
	}
	return c
}

// Default fills unset fields with the built in defaults.
func (c Conf) Default() Conf {
	if c.Dir == "" {
		c.Dir = "schemas"
	}
	if c.Out == "" {
		c.Out = "cdp"
	}
	if c.Pkg == "" {
		c.Pkg = "cdp"
	}
	return c
}
