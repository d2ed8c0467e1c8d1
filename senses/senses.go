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

// Package for resolving word senses
//
// This includes
// - loading the comprehensive sense cache with synset ids, dialect
//   spelling variants, definitions and irregular forms
// - the Resolver interface consumed by the consolidation engine
// - classification of lemmas foreign to the home dialect of a build
package senses

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Dialect codes used in the sense cache
const (
	DialectGB = "GB"
	DialectUS = "US"
	DialectCA = "CA"
	DialectAU = "AU"
)

// Definition is one definition of a sense with its usage examples
type Definition struct {
	Definition string   `json:"definition"`
	Examples   []string `json:"examples"`
}

// Sense is one word sense scoped to a (lemma, part of speech) pair. The
// synset id is the opaque token grouping all spellings that share the
// meaning. Variants maps dialect codes to the spellings current in that
// dialect.
type Sense struct {
	Synset         string              `json:"synset"`
	Variants       map[string][]string `json:"variants"`
	Definitions    []Definition        `json:"definitions"`
	Pronunciations map[string]string   `json:"pronunciations"`
}

// posEntry holds the sense data for one part of speech of a lemma
type posEntry struct {
	Forms         []string `json:"forms"`
	SenseVariants []Sense  `json:"sense_variants"`
}

// cacheEntry holds all sense data recorded for one lemma
type cacheEntry struct {
	Dialect    string              `json:"dialect"`
	POSEntries map[string]posEntry `json:"pos_entries"`
}

// Resolver supplies ordered sense data for lemmas. The engine never
// mutates it and instances may be shared across parallel dialect builds.
type Resolver interface {

	// Senses returns the ordered senses for a lemma under a single letter
	// part of speech code, or nil if the cache has none
	Senses(lemma, pos string) []Sense

	// AllSenses returns the senses for a lemma across all parts of speech,
	// in sorted part of speech order
	AllSenses(lemma string) []Sense
}

// Cache is a Resolver backed by the comprehensive sense cache file
type Cache struct {
	entries map[string]cacheEntry
}

// LoadCache reads the comprehensive sense cache JSON
func LoadCache(r io.Reader) (*Cache, error) {
	entries := map[string]cacheEntry{}
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&entries); err != nil {
		return nil, fmt.Errorf("senses.LoadCache: could not decode cache: %v", err)
	}
	return &Cache{entries: entries}, nil
}

// Senses implements the Resolver interface
func (c *Cache) Senses(lemma, pos string) []Sense {
	entry, ok := c.entries[strings.ToLower(lemma)]
	if !ok {
		return nil
	}
	return entry.POSEntries[pos].SenseVariants
}

// AllSenses implements the Resolver interface. Parts of speech are visited
// in sorted order so the result does not depend on map iteration.
func (c *Cache) AllSenses(lemma string) []Sense {
	entry, ok := c.entries[strings.ToLower(lemma)]
	if !ok {
		return nil
	}
	posCodes := make([]string, 0, len(entry.POSEntries))
	for pos := range entry.POSEntries {
		posCodes = append(posCodes, pos)
	}
	sort.Strings(posCodes)
	var all []Sense
	for _, pos := range posCodes {
		all = append(all, entry.POSEntries[pos].SenseVariants...)
	}
	return all
}

// IrregularForms returns the explicit irregular forms recorded for a lemma,
// keyed by single letter part of speech code
func (c *Cache) IrregularForms(lemma string) map[string][]string {
	entry, ok := c.entries[strings.ToLower(lemma)]
	if !ok {
		return nil
	}
	forms := map[string][]string{}
	for pos, pe := range entry.POSEntries {
		if len(pe.Forms) > 0 {
			forms[pos] = pe.Forms
		}
	}
	if len(forms) == 0 {
		return nil
	}
	return forms
}

// Dialect returns the dialect tag recorded for a spelling, or an empty
// string when the cache has no record or no tag
func (c *Cache) Dialect(word string) string {
	entry, ok := c.entries[strings.ToLower(word)]
	if !ok {
		return ""
	}
	return entry.Dialect
}

// Words returns all lemmas in the cache in sorted order
func (c *Cache) Words() []string {
	words := make([]string, 0, len(c.entries))
	for w := range c.entries {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// POSCodes returns the sorted part of speech codes recorded for a lemma
func (c *Cache) POSCodes(lemma string) []string {
	entry, ok := c.entries[strings.ToLower(lemma)]
	if !ok {
		return nil
	}
	posCodes := make([]string, 0, len(entry.POSEntries))
	for pos := range entry.POSEntries {
		posCodes = append(posCodes, pos)
	}
	sort.Strings(posCodes)
	return posCodes
}

// AltSpelling is a spelling of a sense in a dialect other than the home one
type AltSpelling struct {
	Word    string
	Dialect string
	IPA     string
}

// AltSpellings finds the spellings of the sense identified by synset that
// belong to dialects other than homeDialect, with a pronunciation when one
// is recorded for the variant. Dialects are visited in sorted order.
func (c *Cache) AltSpellings(lemma, synset, homeDialect string) []AltSpelling {
	lemmaLower := strings.ToLower(lemma)
	entry, ok := c.entries[lemmaLower]
	if !ok || synset == "" {
		return nil
	}
	var alts []AltSpelling
	for _, sense := range allSenses(entry) {
		if sense.Synset != synset {
			continue
		}
		dialects := make([]string, 0, len(sense.Variants))
		for d := range sense.Variants {
			dialects = append(dialects, d)
		}
		sort.Strings(dialects)
		for _, d := range dialects {
			if d == homeDialect {
				continue
			}
			for _, w := range sense.Variants[d] {
				if strings.ToLower(w) == lemmaLower {
					continue
				}
				alts = append(alts, AltSpelling{
					Word:    w,
					Dialect: d,
					IPA:     c.pronunciation(w, synset, d),
				})
			}
		}
	}
	return alts
}

// pronunciation looks up the transcription of a spelling within one synset,
// preferring the dialect specific one
func (c *Cache) pronunciation(word, synset, dialect string) string {
	entry, ok := c.entries[strings.ToLower(word)]
	if !ok {
		return ""
	}
	for _, sense := range allSenses(entry) {
		if sense.Synset != synset {
			continue
		}
		for _, key := range []string{dialect, "default", DialectUS, DialectGB} {
			if ipa, ok := sense.Pronunciations[key]; ok && ipa != "" {
				return ipa
			}
		}
	}
	return ""
}

// allSenses flattens the senses of a cache entry in sorted POS order
func allSenses(entry cacheEntry) []Sense {
	posCodes := make([]string, 0, len(entry.POSEntries))
	for pos := range entry.POSEntries {
		posCodes = append(posCodes, pos)
	}
	sort.Strings(posCodes)
	var all []Sense
	for _, pos := range posCodes {
		all = append(all, entry.POSEntries[pos].SenseVariants...)
	}
	return all
}
