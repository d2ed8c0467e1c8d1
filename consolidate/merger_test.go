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
	"reflect"
	"testing"

	"github.com/shawdict/shawdict/lexicon"
	"github.com/shawdict/shawdict/senses"
)

func gbMerger() Merger {
	return Merger{
		Assigner: Assigner{Resolver: colourResolver(), HomeDialect: senses.DialectGB},
	}
}

// colourLexicon builds the colour/color noun and verb raw keys with
// inflected forms
func colourLexicon() []lexicon.RawKey {
	return []lexicon.RawKey{
		{
			Key: "colour_NN1_𐑒𐑳𐑤𐑼", Lemma: "colour", Shaw: "𐑒𐑳𐑤𐑼",
			Records: []lexicon.Record{
				{Shaw: "𐑒𐑳𐑤𐑼", Latn: "colour", POS: "NN1", IPA: "ˈkʌlə", Var: "RRP"},
				{Shaw: "𐑒𐑳𐑤𐑼𐑟", Latn: "colours", POS: "NN2", IPA: "ˈkʌləz", Var: "RRP"},
			},
		},
		{
			Key: "colour_VVI_𐑒𐑳𐑤𐑼", Lemma: "colour", Shaw: "𐑒𐑳𐑤𐑼",
			Records: []lexicon.Record{
				{Shaw: "𐑒𐑳𐑤𐑼", Latn: "colour", POS: "VVI", IPA: "ˈkʌlə", Var: "RRP"},
				{Shaw: "𐑒𐑳𐑤𐑼𐑛", Latn: "coloured", POS: "VVD", IPA: "ˈkʌləd", Var: "RRP"},
			},
		},
		{
			Key: "color_NN1_𐑒𐑳𐑤𐑼", Lemma: "color", Shaw: "𐑒𐑳𐑤𐑼",
			Records: []lexicon.Record{
				{Shaw: "𐑒𐑳𐑤𐑼", Latn: "color", POS: "NN1", IPA: "ˈkʌlɚ", Var: "GenAm"},
				{Shaw: "𐑒𐑳𐑤𐑼𐑟", Latn: "colors", POS: "NN2", IPA: "ˈkʌlɚz", Var: "GenAm"},
			},
		},
		{
			Key: "color_VVI_𐑒𐑳𐑤𐑼", Lemma: "color", Shaw: "𐑒𐑳𐑤𐑼",
			Records: []lexicon.Record{
				{Shaw: "𐑒𐑳𐑤𐑼", Latn: "color", POS: "VVI", IPA: "ˈkʌlɚ", Var: "GenAm"},
			},
		},
	}
}

// Spelling variant merge: in a GB build, color and colour sharing a noun
// sense and a verb sense give exactly two entries, one per sense, with the
// US spellings as cross references
func TestMergeSpellingVariants(t *testing.T) {
	result, err := gbMerger().Merge(colourLexicon())
	if err != nil {
		t.Fatalf("TestMergeSpellingVariants: unexpected error: %v", err)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("TestMergeSpellingVariants: %d entries, want 2", len(result.Entries))
	}
	for _, entry := range result.Entries {
		if entry.Lemma != "colour" {
			t.Errorf("TestMergeSpellingVariants: canonical lemma = %q, want colour", entry.Lemma)
		}
		if len(entry.CrossRefs) == 0 {
			t.Errorf("TestMergeSpellingVariants: entry %s has no cross references", entry.Key)
		}
		for _, ref := range entry.CrossRefs {
			if ref.Latn != "color" && ref.Latn != "colors" {
				t.Errorf("TestMergeSpellingVariants: unexpected cross reference %q", ref.Latn)
			}
		}
	}
	if result.DroppedForeign != 0 {
		t.Errorf("TestMergeSpellingVariants: dropped = %d, want 0", result.DroppedForeign)
	}
}

// Homograph separation: dew and due share the Shavian spelling 𐑛𐑿 but have
// different synsets, so they never merge
func TestMergeHomographs(t *testing.T) {
	rawKeys := []lexicon.RawKey{
		{
			Key: "dew_NN1_𐑛𐑿", Lemma: "dew", Shaw: "𐑛𐑿",
			Records: []lexicon.Record{
				{Shaw: "𐑛𐑿", Latn: "dew", POS: "NN1", IPA: "djuː", Var: "RRP"},
			},
		},
		{
			Key: "due_AJ0_𐑛𐑿", Lemma: "due", Shaw: "𐑛𐑿",
			Records: []lexicon.Record{
				{Shaw: "𐑛𐑿", Latn: "due", POS: "AJ0", IPA: "djuː", Var: "RRP"},
			},
		},
	}
	result, err := gbMerger().Merge(rawKeys)
	if err != nil {
		t.Fatalf("TestMergeHomographs: unexpected error: %v", err)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("TestMergeHomographs: %d entries, want 2", len(result.Entries))
	}
}

// A word with three distinct senses under one spelling produces exactly
// three entries, never more
func TestMergeNoAccidentalDuplication(t *testing.T) {
	rawKeys := []lexicon.RawKey{
		{
			Key: "due_AJ0_𐑛𐑿", Lemma: "due", Shaw: "𐑛𐑿",
			Records: []lexicon.Record{{Shaw: "𐑛𐑿", Latn: "due", POS: "AJ0", Var: "RRP"}},
		},
		{
			Key: "due_AV0_𐑛𐑿", Lemma: "due", Shaw: "𐑛𐑿",
			Records: []lexicon.Record{{Shaw: "𐑛𐑿", Latn: "due", POS: "AV0", Var: "RRP"}},
		},
		{
			Key: "due_NN1_𐑛𐑿", Lemma: "due", Shaw: "𐑛𐑿",
			Records: []lexicon.Record{
				{Shaw: "𐑛𐑿", Latn: "due", POS: "NN1", Var: "RRP"},
				{Shaw: "𐑛𐑿𐑟", Latn: "dues", POS: "NN2", Var: "RRP"},
			},
		},
	}
	result, err := gbMerger().Merge(rawKeys)
	if err != nil {
		t.Fatalf("TestMergeNoAccidentalDuplication: unexpected error: %v", err)
	}
	if len(result.Entries) != 3 {
		t.Fatalf("TestMergeNoAccidentalDuplication: %d entries, want 3",
			len(result.Entries))
	}
}

// Partition property: every record is a member of exactly one entry
func TestMergePartition(t *testing.T) {
	rawKeys := colourLexicon()
	result, err := gbMerger().Merge(rawKeys)
	if err != nil {
		t.Fatalf("TestMergePartition: unexpected error: %v", err)
	}
	counts := map[lexicon.Record]int{}
	for _, entry := range result.Entries {
		for _, form := range entry.Forms {
			counts[form.Record]++
		}
		for _, ref := range entry.CrossRefs {
			counts[ref.Record]++
		}
	}
	for _, rk := range rawKeys {
		for _, rec := range rk.Records {
			if counts[rec] != 1 {
				t.Errorf("TestMergePartition: record %v appears %d times, want 1",
					rec, counts[rec])
			}
		}
	}
}

// Duplicate records within merging raw keys never appear twice in one
// entry's form set
func TestMergeDedupesForms(t *testing.T) {
	rec := lexicon.Record{Shaw: "𐑛𐑿", Latn: "dew", POS: "NN1", IPA: "djuː", Var: "RRP"}
	rawKeys := []lexicon.RawKey{
		{
			Key: "dew_NN1_𐑛𐑿", Lemma: "dew", Shaw: "𐑛𐑿",
			Records: []lexicon.Record{rec, rec},
		},
	}
	result, err := gbMerger().Merge(rawKeys)
	if err != nil {
		t.Fatalf("TestMergeDedupesForms: unexpected error: %v", err)
	}
	if len(result.Entries) != 1 {
		t.Fatalf("TestMergeDedupesForms: %d entries, want 1", len(result.Entries))
	}
	if len(result.Entries[0].Forms) != 1 {
		t.Errorf("TestMergeDedupesForms: %d forms, want 1", len(result.Entries[0].Forms))
	}
}

// A foreign raw key with no discoverable home entry is dropped and counted
func TestMergeDroppedForeign(t *testing.T) {
	rawKeys := []lexicon.RawKey{
		{
			Key: "color_NN1_𐑒𐑳𐑤𐑼", Lemma: "color", Shaw: "𐑒𐑳𐑤𐑼",
			Records: []lexicon.Record{
				{Shaw: "𐑒𐑳𐑤𐑼", Latn: "color", POS: "NN1", Var: "GenAm"},
			},
		},
	}
	result, err := gbMerger().Merge(rawKeys)
	if err != nil {
		t.Fatalf("TestMergeDroppedForeign: unexpected error: %v", err)
	}
	if len(result.Entries) != 0 {
		t.Errorf("TestMergeDroppedForeign: %d entries, want 0", len(result.Entries))
	}
	if result.DroppedForeign != 1 {
		t.Errorf("TestMergeDroppedForeign: dropped = %d, want 1", result.DroppedForeign)
	}
}

// Definitions come from the canonical raw key's sense lookup only and are
// not duplicated by later merges
func TestMergeDefinitions(t *testing.T) {
	result, err := gbMerger().Merge(colourLexicon())
	if err != nil {
		t.Fatalf("TestMergeDefinitions: unexpected error: %v", err)
	}
	for _, entry := range result.Entries {
		if len(entry.Definitions) != 1 {
			t.Errorf("TestMergeDefinitions: entry %s has %d definitions, want 1",
				entry.Key, len(entry.Definitions))
		}
	}
}

// Merging is idempotent and independent of input order: two runs over
// differently ordered input give identical results
func TestMergeDeterministic(t *testing.T) {
	rawKeys := colourLexicon()
	reversed := make([]lexicon.RawKey, len(rawKeys))
	for i, rk := range rawKeys {
		reversed[len(rawKeys)-1-i] = rk
	}
	first, err := gbMerger().Merge(rawKeys)
	if err != nil {
		t.Fatalf("TestMergeDeterministic: unexpected error: %v", err)
	}
	second, err := gbMerger().Merge(reversed)
	if err != nil {
		t.Fatalf("TestMergeDeterministic: unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("TestMergeDeterministic: results differ across input orders")
	}
	third, err := gbMerger().Merge(rawKeys)
	if err != nil {
		t.Fatalf("TestMergeDeterministic: unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, third) {
		t.Error("TestMergeDeterministic: results differ across repeated runs")
	}
}

// Synonyms sharing a synset but spelled differently in the same dialect
// stay separate, since the lemma is part of the signature
func TestMergeSynonymsStaySeparate(t *testing.T) {
	variants := map[string][]string{"GB": {"colour", "tinge"}}
	resolver := mockResolver{data: map[string]map[string][]senses.Sense{
		"colour": {"n": {newSense("04963771-n", variants, "a visual attribute")}},
		"tinge":  {"n": {newSense("04963771-n", variants, "a visual attribute")}},
	}}
	merger := Merger{Assigner: Assigner{Resolver: resolver, HomeDialect: senses.DialectGB}}
	rawKeys := []lexicon.RawKey{
		{
			Key: "colour_NN1_𐑒𐑳𐑤𐑼", Lemma: "colour", Shaw: "𐑒𐑳𐑤𐑼",
			Records: []lexicon.Record{{Shaw: "𐑒𐑳𐑤𐑼", Latn: "colour", POS: "NN1", Var: "RRP"}},
		},
		{
			Key: "tinge_NN1_𐑑𐑦𐑯𐑡", Lemma: "tinge", Shaw: "𐑑𐑦𐑯𐑡",
			Records: []lexicon.Record{{Shaw: "𐑑𐑦𐑯𐑡", Latn: "tinge", POS: "NN1", Var: "RRP"}},
		},
	}
	result, err := merger.Merge(rawKeys)
	if err != nil {
		t.Fatalf("TestMergeSynonymsStaySeparate: unexpected error: %v", err)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("TestMergeSynonymsStaySeparate: %d entries, want 2", len(result.Entries))
	}
}

// Structurally invalid input fails before any output is produced
func TestMergeEmptyRawKey(t *testing.T) {
	rawKeys := []lexicon.RawKey{{Key: "dew_NN1_𐑛𐑿", Lemma: "dew", Shaw: "𐑛𐑿"}}
	_, err := gbMerger().Merge(rawKeys)
	if err == nil {
		t.Error("TestMergeEmptyRawKey: expected error for raw key with no records")
	}
}

// Implements the DialectDetector interface with fixed data
type mockDetector struct {
	dialects map[string]string
}

func (m mockDetector) Dialect(word string) string {
	return m.dialects[word]
}

// The dialect detector tags member form spellings when configured
func TestMergeSpellingDialect(t *testing.T) {
	merger := gbMerger()
	merger.Detector = mockDetector{dialects: map[string]string{
		"colour": "GB", "colours": "GB", "color": "US", "colors": "US",
	}}
	result, err := merger.Merge(colourLexicon())
	if err != nil {
		t.Fatalf("TestMergeSpellingDialect: unexpected error: %v", err)
	}
	for _, entry := range result.Entries {
		for _, form := range entry.Forms {
			if form.SpellingDialect != "GB" {
				t.Errorf("TestMergeSpellingDialect: form %q dialect = %q, want GB",
					form.Latn, form.SpellingDialect)
			}
		}
		for _, ref := range entry.CrossRefs {
			if ref.SpellingDialect != "US" {
				t.Errorf("TestMergeSpellingDialect: cross ref %q dialect = %q, want US",
					ref.Latn, ref.SpellingDialect)
			}
		}
	}
}
