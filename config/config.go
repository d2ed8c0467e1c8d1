// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package for build configuration
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// projectHomeEnv overrides the project root directory
const projectHomeEnv = "SHAWDICT_HOME"

// BuildConfig holds the file locations and build parameters for one
// dictionary build
type BuildConfig struct {

	// LexiconFile is the path of the pronunciation lexicon JSON
	LexiconFile string `toml:"lexicon_file"`

	// SenseCacheFile is the path of the comprehensive sense cache JSON
	SenseCacheFile string `toml:"sense_cache_file"`

	// BuildDir receives the generated dictionary and word list files
	BuildDir string `toml:"build_dir"`

	// Dialect is gb or us
	Dialect string `toml:"dialect"`

	// Corpus names the Firestore collection prefix for the search index
	Corpus string `toml:"corpus"`

	// Generation distinguishes Firestore index uploads
	Generation int `toml:"generation"`

	// DescriptionFile is the markdown front matter description, optional
	DescriptionFile string `toml:"description_file"`

	// TemplateDir holds override templates, default templates if empty
	TemplateDir string `toml:"template_dir"`
}

// DefaultConfig gives the configuration used when no config file is present
func DefaultConfig() BuildConfig {
	home := ProjectHome()
	return BuildConfig{
		LexiconFile:    home + "/data/readlex.json",
		SenseCacheFile: home + "/data/sense-cache.json",
		BuildDir:       home + "/build",
		Dialect:        "gb",
		Corpus:         "shawdict",
	}
}

// ProjectHome returns the project root directory, from the environment or
// the working directory
func ProjectHome() string {
	if home := os.Getenv(projectHomeEnv); home != "" {
		return home
	}
	return "."
}

// Load reads a TOML build configuration, filling unset fields from the
// defaults
func Load(r io.Reader) (BuildConfig, error) {
	c := DefaultConfig()
	data, err := io.ReadAll(r)
	if err != nil {
		return c, fmt.Errorf("config.Load: could not read config: %v", err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("config.Load: could not parse config: %v", err)
	}
	if c.Dialect != "gb" && c.Dialect != "us" {
		return c, fmt.Errorf("config.Load: unsupported dialect %q", c.Dialect)
	}
	return c, nil
}

// LoadFile reads the TOML build configuration at path, or the defaults when
// the file does not exist
func LoadFile(path string) (BuildConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("config.LoadFile: could not open %s: %v", path, err)
	}
	defer f.Close()
	return Load(f)
}
