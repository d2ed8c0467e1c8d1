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
	"unicode"
)

// Normalizer rewrites spellings into a target dialect using the sense
// cache, e.g. "colour" to "color" for the US dialect. Lookups are memoized
// since the same words recur across thousands of entries in one build.
// Not safe for concurrent use; each build should create its own.
type Normalizer struct {
	cache   *Cache
	dialect string
	memo    map[string]string
}

// NewNormalizer creates a Normalizer for a dialect code, DialectGB or
// DialectUS
func NewNormalizer(cache *Cache, dialect string) *Normalizer {
	return &Normalizer{
		cache:   cache,
		dialect: dialect,
		memo:    map[string]string{},
	}
}

// Normalize returns the target dialect spelling for a word, aggregated from
// all senses across all parts of speech, or the word unchanged if the cache
// has no variant. Hyphenated compounds are normalized part by part and
// initial capitalization is preserved.
func (n *Normalizer) Normalize(word string) string {
	if result, ok := n.memo[word]; ok {
		return result
	}
	if strings.Contains(word, "-") {
		parts := strings.Split(word, "-")
		for i, part := range parts {
			parts[i] = n.Normalize(part)
		}
		result := strings.Join(parts, "-")
		n.memo[word] = result
		return result
	}
	variant := n.firstVariant(strings.ToLower(word))
	if variant == "" {
		n.memo[word] = word
		return word
	}
	result := variant
	if word != "" && unicode.IsUpper([]rune(word)[0]) {
		result = strings.ToUpper(variant[:1]) + variant[1:]
	}
	n.memo[word] = result
	return result
}

// firstVariant finds the first spelling listed for the target dialect
// across the senses of a lemma
func (n *Normalizer) firstVariant(lemma string) string {
	for _, sense := range n.cache.AllSenses(lemma) {
		for _, w := range sense.Variants[n.dialect] {
			return w
		}
	}
	return ""
}
