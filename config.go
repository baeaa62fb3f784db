// Copyright 2025 Naren Yellavula
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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".arbor.yaml"

type DisplayConfig struct {
	Indent      int  `yaml:"indent"`
	ShowHeights bool `yaml:"show_heights"`
}

type ShellConfig struct {
	Prompt string `yaml:"prompt"`
}

type CacheConfig struct {
	Expiration time.Duration `yaml:"expiration"`
	Cleanup    time.Duration `yaml:"cleanup"`
}

type FilterConfig struct {
	BloomBits   uint `yaml:"bloom_bits"`
	BloomHashes uint `yaml:"bloom_hashes"`
}

type StressConfig struct {
	Ops      int  `yaml:"ops"`
	MaxKey   int  `yaml:"max_key"`
	Progress bool `yaml:"progress"`
}

type DebugConfig struct {
	Validate bool `yaml:"validate"`
}

type Config struct {
	Display DisplayConfig `yaml:"display"`
	Shell   ShellConfig   `yaml:"shell"`
	Cache   CacheConfig   `yaml:"cache"`
	Filter  FilterConfig  `yaml:"filter"`
	Stress  StressConfig  `yaml:"stress"`
	Debug   DebugConfig   `yaml:"debug"`
}

var defaultConfig = Config{
	Display: DisplayConfig{
		Indent:      4,
		ShowHeights: true,
	},
	Shell: ShellConfig{
		Prompt: "arbor> ",
	},
	Cache: CacheConfig{
		Expiration: 30 * time.Minute,
		Cleanup:    5 * time.Minute,
	},
	Filter: FilterConfig{
		BloomBits:   1 << 16,
		BloomHashes: 4,
	},
	Stress: StressConfig{
		Ops:      10000,
		MaxKey:   1000,
		Progress: true,
	},
	Debug: DebugConfig{
		Validate: false,
	},
}

func DefaultConfig() *Config {
	config := defaultConfig
	return &config
}

// LoadConfig reads the YAML file at path, or ~/.arbor.yaml when path is empty.
// A missing or unreadable file yields the defaults; fields absent from the file
// keep their default values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("failed to read config %s: %v", path, err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config %s: %v", path, err)
	}
	config.normalize()

	return config, nil
}

// normalize replaces values that cannot work with their defaults.
func (c *Config) normalize() {
	if c.Display.Indent < 0 {
		c.Display.Indent = defaultConfig.Display.Indent
	}
	if c.Shell.Prompt == "" {
		c.Shell.Prompt = defaultConfig.Shell.Prompt
	}
	if c.Cache.Expiration <= 0 {
		c.Cache.Expiration = defaultConfig.Cache.Expiration
	}
	if c.Cache.Cleanup <= 0 {
		c.Cache.Cleanup = defaultConfig.Cache.Cleanup
	}
	if c.Filter.BloomBits == 0 {
		c.Filter.BloomBits = defaultConfig.Filter.BloomBits
	}
	if c.Filter.BloomHashes == 0 {
		c.Filter.BloomHashes = defaultConfig.Filter.BloomHashes
	}
	if c.Stress.Ops <= 0 {
		c.Stress.Ops = defaultConfig.Stress.Ops
	}
	if c.Stress.MaxKey <= 0 {
		c.Stress.MaxKey = defaultConfig.Stress.MaxKey
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(path string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

// displaySettings prints the effective configuration, creating the default
// file first when none exists.
func displaySettings(w io.Writer, path string) error {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %v", err)
		}
		path = p
	}

	created := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")
		if err := createDefaultConfigFile(path); err != nil {
			return err
		}
		created = true
	}

	config, err := LoadConfig(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "🔧 Arbor Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════\n\n")
	if created {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n\n", path)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s\n\n", path)
	}

	fmt.Fprintf(w, "🌳 %sDisplay:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • indent: %d\n", config.Display.Indent)
	fmt.Fprintf(w, "  • show_heights: %t\n\n", config.Display.ShowHeights)

	fmt.Fprintf(w, "💻 %sShell:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • prompt: %q\n\n", config.Shell.Prompt)

	fmt.Fprintf(w, "📦 %sParsed tree cache:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • expiration: %s\n", config.Cache.Expiration)
	fmt.Fprintf(w, "  • cleanup: %s\n\n", config.Cache.Cleanup)

	fmt.Fprintf(w, "🔍 %sSearch filter:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • bloom_bits: %d\n", config.Filter.BloomBits)
	fmt.Fprintf(w, "  • bloom_hashes: %d\n\n", config.Filter.BloomHashes)

	fmt.Fprintf(w, "🏋 %sStress:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • ops: %d\n", config.Stress.Ops)
	fmt.Fprintf(w, "  • max_key: %d\n", config.Stress.MaxKey)
	fmt.Fprintf(w, "  • progress: %t\n\n", config.Stress.Progress)

	fmt.Fprintf(w, "🐞 %sDebug:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • validate: %t\n", config.Debug.Validate)
	if !config.Debug.Validate {
		fmt.Fprintf(w, "\n💡 To check tree invariants after every change, edit %s:\n", path)
		fmt.Fprintf(w, "   debug:\n     validate: true\n")
	}

	return nil
}
