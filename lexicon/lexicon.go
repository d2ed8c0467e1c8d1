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

// Package for reading the pronunciation lexicon
//
// This includes
// - parsing the lexicon JSON into raw key groups of word form records
// - deriving the lemma and canonical Shavian spelling for each group
// - classification of CLAWS part of speech tags
package lexicon

import (
	"sort"
	"strings"
)

// Namer dot prefix marking proper nouns in Shavian text (U+00B7)
const NamerDot = "·"

// Single letter part of speech codes shared with the sense cache
const (
	POSVerb         = "v"
	POSNoun         = "n"
	POSAdjective    = "a"
	POSAdverb       = "r"
	POSPreposition  = "p"
	POSInterjection = "i"
	POSConjunction  = "c"
)

// Record is a single word form occurrence from the pronunciation lexicon
type Record struct {
	Shaw string `json:"Shaw"`
	Latn string `json:"Latn"`
	POS  string `json:"pos"`
	IPA  string `json:"ipa"`
	Var  string `json:"var"`
}

// RawKey is one upstream lemma group from the lexicon. Keys have the form
// {lemma}_{pos}_{shavian}, with the Shavian part being the lemma form.
type RawKey struct {
	Key     string
	Lemma   string
	Shaw    string
	Records []Record
}

// readable labels for the single letter part of speech codes
var posLabels = map[string]string{
	POSVerb:         "verb",
	POSNoun:         "noun",
	POSAdjective:    "adjective",
	POSAdverb:       "adverb",
	POSPreposition:  "preposition",
	POSInterjection: "interjection",
	POSConjunction:  "conjunction",
}

// IsProperNoun tests whether a CLAWS tag marks a proper noun, including
// combined tags like NP0+NN1
func IsProperNoun(tag string) bool {
	return strings.Contains(tag, "NP0")
}

// CoarsePOS maps a CLAWS tag to a single letter part of speech code.
// Tags with no mapping (pronouns, determiners, numbers, etc) give an
// empty string.
func CoarsePOS(tag string) string {
	switch {
	case strings.HasPrefix(tag, "V"):
		return POSVerb
	case strings.HasPrefix(tag, "N") && !IsProperNoun(tag):
		return POSNoun
	case strings.HasPrefix(tag, "AJ"):
		return POSAdjective
	case strings.HasPrefix(tag, "AV"):
		return POSAdverb
	case strings.HasPrefix(tag, "PRP"):
		return POSPreposition
	case strings.HasPrefix(tag, "ITJ"):
		return POSInterjection
	case strings.HasPrefix(tag, "CJ"):
		return POSConjunction
	}
	return ""
}

// POSSet derives the sorted set of single letter part of speech codes
// implied by the records of one raw key. The lexicographically smallest
// code is the canonical one for sense lookup.
func POSSet(records []Record) []string {
	seen := map[string]bool{}
	for _, r := range records {
		pos := CoarsePOS(r.POS)
		if pos != "" && !seen[pos] {
			seen[pos] = true
		}
	}
	posSet := make([]string, 0, len(seen))
	for pos := range seen {
		posSet = append(posSet, pos)
	}
	sort.Strings(posSet)
	return posSet
}

// POSLabel gives the readable label for a single letter part of speech code
func POSLabel(pos string) string {
	if label, ok := posLabels[pos]; ok {
		return label
	}
	return pos
}

// NormalizeIPA rewrites the lexicon IPA convention where 'R' denotes an
// optional r in non-rhotic accents
func NormalizeIPA(ipa string) string {
	return strings.ReplaceAll(ipa, "R", "(r)")
}

// AddNamerDot prefixes Shavian text with the namer dot if the tag marks a
// proper noun
func AddNamerDot(text, tag string) string {
	if IsProperNoun(tag) && !strings.HasPrefix(text, NamerDot) {
		return NamerDot + text
	}
	return text
}

// CapitalizeIfProper capitalizes Latin text if the tag marks a proper noun
func CapitalizeIfProper(text, tag string) string {
	if !IsProperNoun(tag) || text == "" {
		return text
	}
	return strings.ToUpper(text[:1]) + strings.ToLower(text[1:])
}
