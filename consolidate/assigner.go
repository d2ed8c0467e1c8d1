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
	"github.com/shawdict/shawdict/senses"
)

// Assigner computes grouping signatures for raw keys. Foreign
// classification depends on the home dialect, so a fresh Assigner must be
// used per dialect build.
type Assigner struct {

	// Resolver supplies sense data, read only
	Resolver senses.Resolver

	// HomeDialect is the cache dialect code of the build, senses.DialectGB
	// or senses.DialectUS
	HomeDialect string
}

// Assign computes the grouping signature for one raw key. The
// lexicographically smallest coarse part of speech present among the
// records is the canonical one for sense lookup, and the first sense
// returned for it is canonical for grouping. Raw keys without sense data,
// common for closed class words, stay ungrouped.
func (a Assigner) Assign(rk lexicon.RawKey) Signature {
	posSet := lexicon.POSSet(rk.Records)
	if len(posSet) > 0 {
		ss := a.Resolver.Senses(rk.Lemma, posSet[0])
		if len(ss) > 0 {
			synset := ss[0].Synset
			if senses.IsForeign(rk.Lemma, synset, a.HomeDialect, a.Resolver) {
				return Signature{Kind: Foreign, Lemma: rk.Lemma, Synset: synset}
			}
			return Signature{Kind: BySense, Lemma: rk.Lemma, Synset: synset}
		}
	}
	return Signature{Kind: Ungrouped, RawKey: rk.Key}
}
