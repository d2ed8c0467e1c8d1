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

// Package for projecting consolidated entries into lookup indexes
//
// An index term is emitted only for lemma forms, so inflected forms are
// reachable through the owning entry's secondary values but never as top
// level buckets of their own. Multiple entries can share a term, e.g.
// homographs, so bucket ordering is fully specified and independent of map
// iteration order.
package index

import (
	"sort"
	"strings"

	"github.com/shawdict/shawdict/consolidate"
	"github.com/shawdict/shawdict/lexicon"
)

// Axis selects which script supplies the index terms
type Axis int

const (
	// ByShaw indexes entries by Shavian spelling
	ByShaw Axis = iota

	// ByLatn indexes entries by lowercase Latin spelling
	ByLatn
)

// Name gives the axis label used in file and collection names
func (a Axis) Name() string {
	if a == ByLatn {
		return "latn"
	}
	return "shaw"
}

// IndexEntry holds the consolidated entries reachable under one index term,
// in deterministic order
type IndexEntry struct {
	Term    string
	Entries []*consolidate.Entry
}

// termValue gives the index axis value of one form
func termValue(form consolidate.Form, axis Axis) string {
	if axis == ByLatn {
		return strings.ToLower(form.Latn)
	}
	return form.Shaw
}

// Project derives the lookup index from consolidated entries along the
// given axis. For the Shavian axis a term is emitted for each distinct
// Shavian lemma spelling of an entry, which keeps homophones like dew and
// due reachable under their shared spelling. For the Latin axis the term is
// the lowercase spelling of the first lemma form. Terms are sorted with the
// namer dot stripped so proper nouns sort beside their plain spelling.
func Project(entries []*consolidate.Entry, axis Axis) []IndexEntry {
	buckets := map[string][]*consolidate.Entry{}
	for _, entry := range entries {
		for _, term := range entryTerms(entry, axis) {
			if containsEntry(buckets[term], entry) {
				continue
			}
			buckets[term] = append(buckets[term], entry)
		}
	}
	terms := make([]string, 0, len(buckets))
	for term := range buckets {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		return sortTerm(terms[i]) < sortTerm(terms[j])
	})
	projected := make([]IndexEntry, 0, len(terms))
	for _, term := range terms {
		projected = append(projected, IndexEntry{
			Term:    term,
			Entries: orderBucket(buckets[term], term, axis),
		})
	}
	return projected
}

// entryTerms derives the top level index terms for one entry, from lemma
// forms only
func entryTerms(entry *consolidate.Entry, axis Axis) []string {
	lemmaForms := entry.LemmaForms()
	if axis == ByLatn {
		if len(lemmaForms) == 0 {
			return nil
		}
		return []string{termValue(lemmaForms[0], axis)}
	}
	var terms []string
	seen := map[string]bool{}
	for _, form := range lemmaForms {
		term := termValue(form, axis)
		if !seen[term] {
			seen[term] = true
			terms = append(terms, term)
		}
	}
	return terms
}

// orderBucket sorts the entries sharing one term: direct matches first,
// where any member form equals the term, then by lemma spelling, then by
// the concatenated part of speech set with posless entries last. The sort
// is stable so equal keys keep their merge order.
func orderBucket(bucket []*consolidate.Entry, term string, axis Axis) []*consolidate.Entry {
	ordered := make([]*consolidate.Entry, len(bucket))
	copy(ordered, bucket)
	sort.SliceStable(ordered, func(i, j int) bool {
		di, dj := isDirectMatch(ordered[i], term, axis), isDirectMatch(ordered[j], term, axis)
		if di != dj {
			return di
		}
		li, lj := lemmaText(ordered[i]), lemmaText(ordered[j])
		if li != lj {
			return li < lj
		}
		return ordered[i].POSString() < ordered[j].POSString()
	})
	return ordered
}

// isDirectMatch reports whether any member form of the entry, lemma or
// derived, equals the index term
func isDirectMatch(entry *consolidate.Entry, term string, axis Axis) bool {
	for _, form := range entry.Forms {
		if termValue(form, axis) == term {
			return true
		}
	}
	return false
}

// lemmaText gives the lowercase Latin spelling of the first lemma form
func lemmaText(entry *consolidate.Entry) string {
	for _, form := range entry.Forms {
		if form.IsLemma {
			return strings.ToLower(form.Latn)
		}
	}
	return ""
}

// sortTerm strips the namer dot for ordering
func sortTerm(term string) string {
	return strings.TrimPrefix(term, lexicon.NamerDot)
}

func containsEntry(bucket []*consolidate.Entry, entry *consolidate.Entry) bool {
	for _, e := range bucket {
		if e == entry {
			return true
		}
	}
	return false
}

// SecondaryValues collects every index value that reaches an entry on one
// axis: all member forms, foreign cross reference spellings, and proper
// noun variants with the namer dot or capitalized. Values are sorted and
// deduplicated.
func SecondaryValues(entry *consolidate.Entry, axis Axis) []string {
	seen := map[string]bool{}
	add := func(form consolidate.Form) {
		value := termValue(form, axis)
		seen[value] = true
		if lexicon.IsProperNoun(form.POS) {
			if axis == ByShaw {
				seen[lexicon.AddNamerDot(value, form.POS)] = true
			} else {
				seen[lexicon.CapitalizeIfProper(value, form.POS)] = true
			}
		}
	}
	for _, form := range entry.Forms {
		add(form)
	}
	for _, ref := range entry.CrossRefs {
		add(ref)
	}
	values := make([]string, 0, len(seen))
	for value := range seen {
		values = append(values, value)
	}
	sort.Strings(values)
	return values
}
