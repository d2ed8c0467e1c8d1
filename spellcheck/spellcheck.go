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

// Package for generating hunspell spell checker word lists
//
// Affix classes are kept minimal because irregular forms are explicit in the
// sense cache: a lemma either carries flags for regular inflections or its
// recorded forms are listed as words of their own.
package spellcheck

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/shawdict/shawdict/lexicon"
	"github.com/shawdict/shawdict/senses"
)

// admits reports whether a word with the given dialect tag belongs in the
// word list of the target dialect. Words with no tag go in every dialect.
// The GB list includes Commonwealth spellings.
func admits(wordDialect, targetDialect string) bool {
	if wordDialect == "" {
		return true
	}
	if targetDialect == "us" {
		return wordDialect == senses.DialectUS
	}
	switch wordDialect {
	case senses.DialectGB, senses.DialectCA, senses.DialectAU:
		return true
	}
	return false
}

// affixFlags gives the affix classes for regular inflections of a lemma.
// Lemmas with explicit irregular forms get none, their forms are listed
// separately.
func affixFlags(pos string, hasExplicitForms bool) string {
	if hasExplicitForms {
		return ""
	}
	switch pos {
	case lexicon.POSNoun:
		return "MS"
	case lexicon.POSVerb:
		return "DGS"
	case lexicon.POSAdjective:
		return "RTY"
	}
	return ""
}

// WriteDic writes the hunspell .dic word list for one dialect: a word count
// header followed by sorted word/FLAGS lines
func WriteDic(w io.Writer, cache *senses.Cache, dialect string) error {
	words := map[string]bool{}
	for _, lemma := range cache.Words() {
		if !admits(cache.Dialect(lemma), dialect) {
			continue
		}
		irregular := cache.IrregularForms(lemma)
		for _, pos := range cache.POSCodes(lemma) {
			forms := irregular[pos]
			flags := affixFlags(pos, len(forms) > 0)
			if flags != "" {
				words[lemma+"/"+flags] = true
			} else {
				words[lemma] = true
			}
			for _, form := range forms {
				words[form] = true
			}
		}
	}
	sorted := make([]string, 0, len(words))
	for word := range words {
		sorted = append(sorted, word)
	}
	sort.Strings(sorted)
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(sorted))
	for _, word := range sorted {
		fmt.Fprintf(bw, "%s\n", word)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteDic, error flushing word list: %v", err)
	}
	log.Printf("WriteDic: wrote %d words for dialect %s", len(sorted), dialect)
	return nil
}
