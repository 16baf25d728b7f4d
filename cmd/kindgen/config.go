package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// config is the content of kindgen.yaml.
//
//	output: kindgen_gen.go
//	tags: integration
//	tests: true
//	derive: [values, json]
type config struct {
	Output string   `yaml:"output"`
	Tags   string   `yaml:"tags"`
	Tests  bool     `yaml:"tests"`
	Derive []string `yaml:"derive"`
}

// loadConfig reads the config file. A missing file is not an error unless
// required.
func loadConfig(path string, required bool) (config, error) {
	cfg := config{Output: "kindgen_gen.go"}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return cfg, nil
	}
	if err != nil {
		return config{}, fmt.Errorf("failed to read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// override overwrites the config with the flags given explicitly.
func (cfg *config) override(flags *pflag.FlagSet) {
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("tags") {
		cfg.Tags, _ = flags.GetString("tags")
	}
	if flags.Changed("tests") {
		cfg.Tests, _ = flags.GetBool("tests")
	}
	if flags.Changed("derive") {
		cfg.Derive, _ = flags.GetStringSlice("derive")
	}
}
