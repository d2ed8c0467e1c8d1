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

// Package for consolidating raw lexicon groups into dictionary entries
//
// This includes
// - computing a grouping signature per raw key from its sense data
// - merging raw keys that share a signature into one consolidated entry
// - resolving foreign dialect spellings into cross references on the
//   home dialect entry
//
// Two raw keys merge into one entry exactly when their signatures are
// equal. A signature keyed by (lemma, synset) separates homographs with
// different meanings, since the synset differs, while unifying the
// inflected forms of one lemma. Spellings of the same sense from the other
// dialect never become entries of their own; they resolve to cross
// references on the home entry for the sense.
package consolidate

import (
	"fmt"
)

// Kind discriminates the signature variants
type Kind int

const (
	// BySense groups raw keys by (lemma, synset)
	BySense Kind = iota

	// Ungrouped isolates a raw key that has no sense data, guaranteeing it
	// never merges with anything else
	Ungrouped

	// Foreign marks a raw key whose lemma is a non home dialect spelling of
	// its sense
	Foreign
)

// Signature is the grouping key that controls which raw keys merge into one
// consolidated entry. Signatures are comparable and used as map keys.
type Signature struct {
	Kind   Kind
	Lemma  string
	Synset string

	// RawKey isolates Ungrouped signatures
	RawKey string
}

// String gives a compact form for logging
func (s Signature) String() string {
	switch s.Kind {
	case BySense:
		return fmt.Sprintf("sense(%s,%s)", s.Lemma, s.Synset)
	case Foreign:
		return fmt.Sprintf("foreign(%s,%s)", s.Lemma, s.Synset)
	}
	return fmt.Sprintf("ungrouped(%s)", s.RawKey)
}
