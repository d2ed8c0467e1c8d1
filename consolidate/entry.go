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
	"github.com/shawdict/shawdict/lexicon"
)

// Form is a single word form within a consolidated entry
type Form struct {
	lexicon.Record

	// IsLemma marks forms whose Shavian spelling equals the canonical
	// lemma spelling of the raw key they came from
	IsLemma bool

	// SpellingDialect is the dialect tag recorded for the Latin spelling,
	// or empty when unknown
	SpellingDialect string
}

// Definition is one definition attached to a consolidated entry
type Definition struct {
	Text     string
	POS      string
	Examples []string
}

// Entry is one dictionary visible word sense record after merging and
// deduplication
type Entry struct {

	// Signature under which the member raw keys merged
	Signature Signature

	// Key of the canonical raw key, first in deterministic order
	Key string

	// Lemma of the canonical raw key
	Lemma string

	// Shaw is the canonical Shavian lemma spelling, always the display
	// headword even when the entry is reached via an inflected form
	Shaw string

	// POS is the sorted coarse part of speech set of the canonical raw key
	POS []string

	// Forms are the member word forms, deduplicated, in merge order
	Forms []Form

	// Definitions from the canonical raw key's sense lookup only
	Definitions []Definition

	// CrossRefs are foreign dialect forms reachable as secondary lookup
	// values on this entry, never as entries of their own
	CrossRefs []Form
}

// LemmaForms returns the forms marked as lemma forms
func (e *Entry) LemmaForms() []Form {
	var forms []Form
	for _, f := range e.Forms {
		if f.IsLemma {
			forms = append(forms, f)
		}
	}
	return forms
}

// POSString concatenates the part of speech set for ordering, with entries
// lacking any part of speech sorting last
func (e *Entry) POSString() string {
	if len(e.POS) == 0 {
		return "zzz"
	}
	s := ""
	for _, pos := range e.POS {
		s += pos
	}
	return s
}
