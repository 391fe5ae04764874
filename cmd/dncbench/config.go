// Copyright 2025 go-dnc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Suite names accepted in the config file and on the command line.
const (
	suiteMerge   = "merge"
	suiteQuick   = "quick"
	suiteSelect  = "select"
	suiteClosest = "closest"
)

var knownSuites = []string{suiteMerge, suiteQuick, suiteSelect, suiteClosest}

// Config controls a benchmark run.
type Config struct {
	// Seed makes every trial reproducible; trial inputs derive from it.
	Seed uint64 `yaml:"seed" json:"seed"`

	// Trials is the number of independent inputs per suite and size.
	Trials int `yaml:"trials" json:"trials"`

	// Sizes are the input lengths to run every suite at.
	Sizes []int `yaml:"sizes" json:"sizes"`

	// Suites selects which algorithms to run.
	Suites []string `yaml:"suites" json:"suites"`

	// Workers is the trial parallelism; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" json:"workers"`

	// PointScale is the side of the square random points are drawn from.
	PointScale float64 `yaml:"point_scale" json:"point_scale"`

	// ValueLimit bounds random integers to [0, ValueLimit).
	ValueLimit int `yaml:"value_limit" json:"value_limit"`

	// BruteForceLimit is the largest point set checked against the O(n^2)
	// reference. Larger sets are only checked for the comparison bound.
	BruteForceLimit int `yaml:"brute_force_limit" json:"brute_force_limit"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Seed:            42,
		Trials:          10,
		Sizes:           []int{100, 1000, 10000},
		Suites:          slices.Clone(knownSuites),
		Workers:         0,
		PointScale:      100,
		ValueLimit:      1000,
		BruteForceLimit: 2000,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Unknown keys are an
// error.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	return decodeConfig(f)
}

func decodeConfig(r io.Reader) (Config, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if len(bytes.TrimSpace(raw)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var errs []error
	if c.Trials <= 0 {
		errs = append(errs, fmt.Errorf("trials must be positive, got %d", c.Trials))
	}
	if len(c.Sizes) == 0 {
		errs = append(errs, errors.New("at least one size is required"))
	}
	for _, n := range c.Sizes {
		if n < 2 {
			errs = append(errs, fmt.Errorf("size %d is below the minimum of 2", n))
		}
	}
	if len(c.Suites) == 0 {
		errs = append(errs, errors.New("at least one suite is required"))
	}
	if unknown := lo.Without(c.Suites, knownSuites...); len(unknown) > 0 {
		errs = append(errs, fmt.Errorf("unknown suites %v (known: %v)", unknown, knownSuites))
	}
	if dup := lo.FindDuplicates(c.Suites); len(dup) > 0 {
		errs = append(errs, fmt.Errorf("duplicate suites %v", dup))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	if c.PointScale <= 0 {
		errs = append(errs, fmt.Errorf("point_scale must be positive, got %g", c.PointScale))
	}
	if c.ValueLimit <= 0 {
		errs = append(errs, fmt.Errorf("value_limit must be positive, got %d", c.ValueLimit))
	}
	if c.BruteForceLimit < 0 {
		errs = append(errs, fmt.Errorf("brute_force_limit must not be negative, got %d", c.BruteForceLimit))
	}
	return errors.Join(errs...)
}
