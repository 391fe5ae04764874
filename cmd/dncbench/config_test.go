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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.ElementsMatch(t, knownSuites, cfg.Suites)
}

func TestDefaultConfigSuitesAreCopied(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Suites[0] = "mutated"
	assert.Equal(t, suiteMerge, knownSuites[0])
}

func TestDecodeConfigOverridesDefaults(t *testing.T) {
	cfg, err := decodeConfig(strings.NewReader(`
seed: 7
trials: 3
sizes: [16, 256]
suites: [quick, closest]
point_scale: 10.5
`))
	require.NoError(t, err)

	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 3, cfg.Trials)
	assert.Equal(t, []int{16, 256}, cfg.Sizes)
	assert.Equal(t, []string{suiteQuick, suiteClosest}, cfg.Suites)
	assert.Equal(t, 10.5, cfg.PointScale)
	// untouched keys keep their defaults
	assert.Equal(t, DefaultConfig().ValueLimit, cfg.ValueLimit)
	assert.Equal(t, DefaultConfig().BruteForceLimit, cfg.BruteForceLimit)
}

func TestDecodeConfigEmpty(t *testing.T) {
	cfg, err := decodeConfig(strings.NewReader("  \n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestDecodeConfigRejectsUnknownKeys(t *testing.T) {
	_, err := decodeConfig(strings.NewReader("trails: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trails")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trials: 2\nworkers: 3\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Trials)
	assert.Equal(t, 3, cfg.Workers)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"trials", func(c *Config) { c.Trials = 0 }, "trials must be positive"},
		{"noSizes", func(c *Config) { c.Sizes = nil }, "at least one size"},
		{"smallSize", func(c *Config) { c.Sizes = []int{1} }, "below the minimum"},
		{"noSuites", func(c *Config) { c.Suites = nil }, "at least one suite"},
		{"unknownSuite", func(c *Config) { c.Suites = []string{"heap"} }, "unknown suites [heap]"},
		{"duplicateSuite", func(c *Config) { c.Suites = []string{"quick", "quick"} }, "duplicate suites [quick]"},
		{"workers", func(c *Config) { c.Workers = -1 }, "workers must not be negative"},
		{"scale", func(c *Config) { c.PointScale = 0 }, "point_scale must be positive"},
		{"limit", func(c *Config) { c.ValueLimit = -5 }, "value_limit must be positive"},
		{"bruteForce", func(c *Config) { c.BruteForceLimit = -1 }, "brute_force_limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Trials = 0
	cfg.Workers = -2
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trials")
	assert.Contains(t, err.Error(), "workers")
}
