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

package consolidate

import (
	"fmt"
	"log"
	"sort"

	"github.com/shawdict/shawdict/lexicon"
)

// DialectDetector reports the dialect tag recorded for a spelling, or an
// empty string when unknown
type DialectDetector interface {
	Dialect(word string) string
}

// Result of one consolidation pass
type Result struct {

	// Entries in deterministic order, a total non overlapping partition of
	// all input records
	Entries []*Entry

	// DroppedForeign counts foreign raw keys with no discoverable home
	// entry. A nonzero count indicates a data gap in the sense cache.
	DroppedForeign int
}

// Merger folds raw keys sharing a signature into consolidated entries.
// State is per build: a fresh Merger must be used for each (dialect,
// dictionary direction) combination, since signatures are dialect
// dependent.
type Merger struct {

	// Assigner computes signatures, configured for the home dialect
	Assigner Assigner

	// Detector tags the dialect of Latin spellings on member forms,
	// optional
	Detector DialectDetector
}

// Merge consolidates raw keys into entries in a single deterministic pass.
// The input is sorted by lemma, canonical Shavian spelling, then key before
// merging, so the first raw key observed for a signature is canonical
// regardless of incidental input order. Raw keys with zero records are
// structurally invalid and abort the pass before any output is produced.
func (m Merger) Merge(rawKeys []lexicon.RawKey) (*Result, error) {
	sorted := make([]lexicon.RawKey, len(rawKeys))
	copy(sorted, rawKeys)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Lemma != sorted[j].Lemma {
			return sorted[i].Lemma < sorted[j].Lemma
		}
		if sorted[i].Shaw != sorted[j].Shaw {
			return sorted[i].Shaw < sorted[j].Shaw
		}
		return sorted[i].Key < sorted[j].Key
	})
	for _, rk := range sorted {
		if len(rk.Records) == 0 {
			return nil, fmt.Errorf("consolidate.Merge: raw key %q has no records", rk.Key)
		}
	}

	// Entries live in a flat arena addressed by handle, with auxiliary
	// maps from signature and synset to handle
	var entries []*Entry
	var seenForms []map[lexicon.Record]bool
	bySignature := map[Signature]int{}
	homeBySynset := map[string]int{}

	type foreignKey struct {
		rk  lexicon.RawKey
		sig Signature
	}
	var foreign []foreignKey

	for _, rk := range sorted {
		sig := m.Assigner.Assign(rk)
		if sig.Kind == Foreign {
			foreign = append(foreign, foreignKey{rk: rk, sig: sig})
			continue
		}
		h, ok := bySignature[sig]
		if !ok {
			entry := m.newEntry(rk, sig)
			entries = append(entries, entry)
			seenForms = append(seenForms, map[lexicon.Record]bool{})
			h = len(entries) - 1
			bySignature[sig] = h
			if sig.Kind == BySense {
				if _, taken := homeBySynset[sig.Synset]; !taken {
					homeBySynset[sig.Synset] = h
				}
			}
		}
		m.appendForms(entries[h], seenForms[h], rk)
	}

	// Foreign raw keys resolve to cross references on the home entry for
	// their sense, or are dropped when none exists
	dropped := 0
	for _, fk := range foreign {
		h, ok := homeBySynset[fk.sig.Synset]
		if !ok {
			dropped++
			continue
		}
		m.appendCrossRefs(entries[h], fk.rk)
	}
	if dropped > 0 {
		log.Printf("consolidate.Merge: dropped %d foreign raw keys with no home entry", dropped)
	}
	return &Result{Entries: entries, DroppedForeign: dropped}, nil
}

// newEntry starts a consolidated entry with rk as its canonical raw key.
// Definitions come from the canonical raw key's sense lookup only and are
// not re-derived when later raw keys merge in.
func (m Merger) newEntry(rk lexicon.RawKey, sig Signature) *Entry {
	entry := &Entry{
		Signature: sig,
		Key:       rk.Key,
		Lemma:     rk.Lemma,
		Shaw:      rk.Shaw,
		POS:       lexicon.POSSet(rk.Records),
	}
	for _, pos := range entry.POS {
		for _, sense := range m.Assigner.Resolver.Senses(rk.Lemma, pos) {
			for _, def := range sense.Definitions {
				entry.Definitions = append(entry.Definitions, Definition{
					Text:     def.Definition,
					POS:      pos,
					Examples: def.Examples,
				})
			}
		}
	}
	return entry
}

// appendForms adds the records of a raw key to an entry, skipping records
// already present. A record must never appear twice in one entry's form
// set.
func (m Merger) appendForms(entry *Entry, seen map[lexicon.Record]bool, rk lexicon.RawKey) {
	for _, rec := range rk.Records {
		if seen[rec] {
			continue
		}
		seen[rec] = true
		entry.Forms = append(entry.Forms, m.newForm(rec, rk))
	}
}

// appendCrossRefs records the spellings of a foreign raw key as cross
// references on the home entry
func (m Merger) appendCrossRefs(entry *Entry, rk lexicon.RawKey) {
	seen := map[lexicon.Record]bool{}
	for _, ref := range entry.CrossRefs {
		seen[ref.Record] = true
	}
	for _, rec := range rk.Records {
		if seen[rec] {
			continue
		}
		seen[rec] = true
		entry.CrossRefs = append(entry.CrossRefs, m.newForm(rec, rk))
	}
}

func (m Merger) newForm(rec lexicon.Record, rk lexicon.RawKey) Form {
	form := Form{
		Record:  rec,
		IsLemma: rec.Shaw == rk.Shaw,
	}
	if m.Detector != nil {
		form.SpellingDialect = m.Detector.Dialect(rec.Latn)
	}
	return form
}
