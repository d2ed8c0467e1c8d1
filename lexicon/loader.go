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

package lexicon

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// LexiconConfig encapsulates parameters for lexicon loading
type LexiconConfig struct {
	LexiconFile string
}

// LoadLexicon reads the lexicon JSON, a map from raw keys to arrays of word
// form records, and derives the lemma and canonical Shavian spelling for
// each group. A raw key with no records is a structural error in the
// upstream resource and fails loudly here. Raw keys are returned sorted by
// key for a stable starting order.
func LoadLexicon(r io.Reader) ([]RawKey, error) {
	var raw map[string][]Record
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("lexicon.LoadLexicon: could not decode lexicon: %v", err)
	}
	rawKeys := make([]RawKey, 0, len(raw))
	for key, records := range raw {
		if len(records) == 0 {
			return nil, fmt.Errorf("lexicon.LoadLexicon: raw key %q has no records", key)
		}
		for i, rec := range records {
			records[i] = normalizeRecord(rec)
		}
		rk := RawKey{Key: key, Records: records}
		rk.Lemma, rk.Shaw = splitKey(key)
		if rk.Lemma == "" {
			rk.Lemma = strings.ToLower(records[0].Latn)
		}
		if rk.Shaw == "" {
			rk.Shaw = records[0].Shaw
		}
		rawKeys = append(rawKeys, rk)
	}
	sort.Slice(rawKeys, func(i, j int) bool {
		return rawKeys[i].Key < rawKeys[j].Key
	})
	return rawKeys, nil
}

// splitKey extracts the lemma and canonical Shavian spelling from a raw key
// of the form {lemma}_{pos}_{shavian}
func splitKey(key string) (lemma, shaw string) {
	parts := strings.Split(key, "_")
	if len(parts) >= 1 {
		lemma = strings.ToLower(parts[0])
	}
	if len(parts) >= 3 {
		shaw = parts[2]
	}
	return lemma, shaw
}

// normalizeRecord applies NFC normalization to the textual fields and the
// lexicon IPA convention to the transcription. Shavian text arrives in
// mixed normalization forms depending on the editor that produced it.
func normalizeRecord(rec Record) Record {
	rec.Shaw = norm.NFC.String(rec.Shaw)
	rec.Latn = norm.NFC.String(rec.Latn)
	rec.IPA = NormalizeIPA(rec.IPA)
	return rec
}
