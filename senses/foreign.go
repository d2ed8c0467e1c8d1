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

package senses

import (
	"strings"
)

// IsForeign reports whether lemma is a spelling foreign to the home dialect
// for the sense identified by synset. A lemma is foreign when the home
// dialect has at least one spelling recorded for the sense and the lemma is
// not among them, e.g. "color" in a GB build when the sense lists "colour"
// as the GB spelling.
//
// Classification is always sense scoped: the same lemma may be home for one
// sense and foreign for another with the identical spelling.
func IsForeign(lemma, synset, homeDialect string, resolver Resolver) bool {
	if synset == "" {
		return false
	}
	lemmaLower := strings.ToLower(lemma)
	for _, sense := range resolver.AllSenses(lemmaLower) {
		if sense.Synset != synset {
			continue
		}
		homeSpellings, ok := sense.Variants[homeDialect]
		if !ok {
			continue
		}
		found := false
		for _, w := range homeSpellings {
			if strings.ToLower(w) == lemmaLower {
				found = true
				break
			}
		}
		if !found {
			return true
		}
	}
	return false
}

// HomeDialect maps a build dialect selector ("gb" or "us") to the dialect
// code used in the sense cache
func HomeDialect(dialect string) string {
	if strings.ToLower(dialect) == "us" {
		return DialectUS
	}
	return DialectGB
}
