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

// Package for generating Apple Dictionary Service XML files
// This includes XML templates embedded in source for zero-config usage.
// Custom templates can be provided via the TemplateDir config variable.
package generator

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"text/template"

	"github.com/shawdict/shawdict/consolidate"
	"github.com/shawdict/shawdict/index"
	"github.com/shawdict/shawdict/lexicon"
	"github.com/shawdict/shawdict/senses"
)

// Definition caps keep oversized entries readable in the dictionary pane
const (
	maxDefsPerEntry = 20
	maxDefsPerGroup = 5
)

// Direction selects which dictionary to generate
type Direction int

const (
	// ShawEng is the Shavian to English dictionary
	ShawEng Direction = iota

	// EngShaw is the English to Shavian dictionary
	EngShaw

	// ShawShaw is the all Shavian dictionary with transliterated labels
	ShawShaw
)

// Name gives the direction label used in flag values and file names
func (d Direction) Name() string {
	switch d {
	case EngShaw:
		return "eng-shaw"
	case ShawShaw:
		return "shaw-shaw"
	}
	return "shaw-eng"
}

// Axis gives the index axis the direction is looked up on
func (d Direction) Axis() index.Axis {
	if d == EngShaw {
		return index.ByLatn
	}
	return index.ByShaw
}

// displayShavian reports whether entry text is shown in Shavian
func (d Direction) displayShavian() bool {
	return d != ShawEng
}

// translateLabels reports whether labels and definitions are transliterated
func (d Direction) translateLabels() bool {
	return d != ShawEng
}

// dictName gives the display name and language pair for the header comment
func (d Direction) dictName() (name, fromLang, toLang string) {
	switch d {
	case EngShaw:
		return "English–Shavian", "English", "Shavian"
	case ShawShaw:
		return "Shavian–Shavian", "Shavian", "Shavian"
	}
	return "Shavian–English", "Shavian", "English"
}

// XMLOutputConfig holds parameters for writing one dictionary
type XMLOutputConfig struct {

	// Direction of the dictionary
	Direction Direction

	// HomeDialect is GB or US, controls which spellings are primary
	HomeDialect string

	// DescriptionHTML is the front matter body, already rendered to HTML
	DescriptionHTML string

	// For rendering entries, default to embedded templates if nil
	Templates map[string]*template.Template
}

// Generator writes consolidated entries as Apple Dictionary Service XML
type Generator struct {
	Config XMLOutputConfig

	// Cache supplies alternate spellings and irregular forms
	Cache *senses.Cache

	// Normalizer groups spelling variants under one display line
	Normalizer *senses.Normalizer

	// ShavianLookup translates English words for transliterated labels,
	// keyed by lowercase Latin spelling
	ShavianLookup map[string]string
}

// headerContent holds the header comment fields
type headerContent struct {
	Name, FromLang, ToLang string
}

// frontMatterContent holds the front matter body
type frontMatterContent struct {
	Description string
}

// formLine is one rendered line in the forms block
type formLine struct {
	Class, Text string
}

// irregularLine is one rendered irregular forms paragraph
type irregularLine struct {
	Label, Forms string
}

// defGroup is one part of speech group of definitions
type defGroup struct {
	Label       string
	Definitions []string
	NoDefs      string
}

// entryContent holds the content for one dictionary entry
type entryContent struct {
	Id             string
	Title          string
	Indices        []string
	Headword       string
	FormLines      []formLine
	IrregularForms []irregularLine
	DefGroups      []defGroup
	Separator      bool
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return xmlEscaper.Replace(s)
}

// variantLabel maps pronunciation variant codes to display labels
func variantLabel(varCode string) string {
	switch varCode {
	case "RRP":
		return "GB"
	case "GenAm":
		return "US"
	}
	return varCode
}

// preferredVariant gives the pronunciation variant code of the home dialect
func preferredVariant(homeDialect string) string {
	if homeDialect == senses.DialectUS {
		return "GenAm"
	}
	return "RRP"
}

// BuildShavianLookup indexes lemma spellings for word by word
// transliteration of labels and definitions
func BuildShavianLookup(rawKeys []lexicon.RawKey) map[string]string {
	lookup := make(map[string]string)
	for _, rk := range rawKeys {
		for _, rec := range rk.Records {
			latn := strings.ToLower(rec.Latn)
			if _, ok := lookup[latn]; !ok {
				lookup[latn] = rec.Shaw
			}
		}
	}
	return lookup
}

// translateToShavian transliterates text word by word, keeping words with no
// Shavian spelling as they are
func (g *Generator) translateToShavian(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		trimmed := strings.Trim(word, ".,;:()!?\"'")
		if shaw, ok := g.ShavianLookup[strings.ToLower(trimmed)]; ok {
			words[i] = strings.Replace(word, trimmed, shaw, 1)
		}
	}
	return strings.Join(words, " ")
}

// WriteDictionary writes the full dictionary for one projected index:
// header, front matter, one d:entry per consolidated entry under each index
// term, and footer.
func (g *Generator) WriteDictionary(w io.Writer, projected []index.IndexEntry) error {
	templates := g.Config.Templates
	if templates == nil {
		templates = NewTemplateMap("")
	}
	bw := bufio.NewWriter(w)
	name, fromLang, toLang := g.Config.Direction.dictName()
	header := headerContent{Name: name, FromLang: fromLang, ToLang: toLang}
	if err := templates["header-template.xml"].Execute(bw, header); err != nil {
		return fmt.Errorf("WriteDictionary, error executing header template: %v", err)
	}
	front := frontMatterContent{Description: g.Config.DescriptionHTML}
	if err := templates["front-matter-template.xml"].Execute(bw, front); err != nil {
		return fmt.Errorf("WriteDictionary, error executing front matter template: %v", err)
	}
	written := 0
	entryTmpl := templates["entry-template.xml"]
	for _, ie := range projected {
		for i, entry := range ie.Entries {
			content := g.newEntryContent(ie.Term, i, entry)
			content.Separator = i < len(ie.Entries)-1
			if err := entryTmpl.Execute(bw, content); err != nil {
				return fmt.Errorf("WriteDictionary, error executing entry template for %q: %v",
					entry.Key, err)
			}
			written++
		}
	}
	if err := templates["footer-template.xml"].Execute(bw, nil); err != nil {
		return fmt.Errorf("WriteDictionary, error executing footer template: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteDictionary, error flushing output: %v", err)
	}
	log.Printf("WriteDictionary: wrote %d entries for %s", written,
		g.Config.Direction.Name())
	return nil
}

// newEntryContent renders one consolidated entry into template data
func (g *Generator) newEntryContent(term string, idx int, entry *consolidate.Entry) entryContent {
	axis := g.Config.Direction.Axis()
	content := entryContent{
		Id:    escape(fmt.Sprintf("%s_%s_%d", axis.Name(), term, idx)),
		Title: escape(term),
	}
	for _, value := range index.SecondaryValues(entry, axis) {
		content.Indices = append(content.Indices, escape(value))
	}
	content.Headword = escape(g.headword(term, entry))
	content.FormLines = g.formLines(entry)
	content.IrregularForms = g.irregularLines(entry)
	content.DefGroups = g.defGroups(entry)
	return content
}

// headword gives the h1 display text: the canonical Shavian spelling for
// Shavian indexed dictionaries, the first lemma form's Latin spelling
// otherwise, with proper noun formatting applied
func (g *Generator) headword(term string, entry *consolidate.Entry) string {
	lemmaForms := entry.LemmaForms()
	firstPOS := ""
	if len(lemmaForms) > 0 {
		firstPOS = lemmaForms[0].POS
	}
	if g.Config.Direction.Axis() == index.ByShaw {
		return lexicon.AddNamerDot(entry.Shaw, firstPOS)
	}
	if len(lemmaForms) > 0 {
		return lexicon.CapitalizeIfProper(lemmaForms[0].Latn, firstPOS)
	}
	return term
}

// wordGroup is the set of forms sharing one normalized spelling
type wordGroup struct {
	baseWord string
	isLemma  bool
	forms    []consolidate.Form
}

// formLines renders the forms block. Forms are grouped by dialect
// normalized spelling so that spelling variants like colour and color, and
// pronunciation variants of one word, share a line. Lemma lines come first.
func (g *Generator) formLines(entry *consolidate.Entry) []formLine {
	groups := map[string]*wordGroup{}
	var order []string
	for _, form := range entry.Forms {
		baseWord := strings.ToLower(form.Latn)
		if g.Normalizer != nil {
			baseWord = strings.ToLower(g.Normalizer.Normalize(form.Latn))
		}
		key := fmt.Sprintf("%s|%t", baseWord, form.IsLemma)
		group, ok := groups[key]
		if !ok {
			group = &wordGroup{baseWord: baseWord, isLemma: form.IsLemma}
			groups[key] = group
			order = append(order, key)
		}
		group.forms = append(group.forms, form)
	}
	sort.SliceStable(order, func(i, j int) bool {
		gi, gj := groups[order[i]], groups[order[j]]
		if gi.isLemma != gj.isLemma {
			return gi.isLemma
		}
		return gi.baseWord < gj.baseWord
	})
	var lines []formLine
	for _, key := range order {
		group := groups[key]
		class := "derived-form"
		if group.isLemma {
			class = "lemma-form"
		}
		lines = append(lines, formLine{
			Class: class,
			Text:  g.formLineText(entry, group),
		})
	}
	return lines
}

// splitHomeAlt separates a word group's forms into home dialect and
// alternate dialect forms. The spelling dialect decides when known, the
// pronunciation variant code otherwise.
func (g *Generator) splitHomeAlt(forms []consolidate.Form) (home, alt []consolidate.Form) {
	preferred := preferredVariant(g.Config.HomeDialect)
	for _, form := range forms {
		isHome := false
		if form.SpellingDialect != "" {
			isHome = form.SpellingDialect == g.Config.HomeDialect
		} else {
			isHome = form.Var == preferred || form.Var == ""
		}
		if isHome {
			home = append(home, form)
		} else {
			alt = append(alt, form)
		}
	}
	return home, alt
}

// displayText gives a form's display spelling with proper noun formatting
func (g *Generator) displayText(form consolidate.Form) string {
	if g.Config.Direction.displayShavian() {
		return lexicon.AddNamerDot(form.Shaw, form.POS)
	}
	return lexicon.CapitalizeIfProper(form.Latn, form.POS)
}

// formLineText renders one forms line: the home form with IPA, additional
// pronunciations, alternate dialect spellings from the sense cache, and
// alternate dialect forms present in the entry itself
func (g *Generator) formLineText(entry *consolidate.Entry, group *wordGroup) string {
	home, alt := g.splitHomeAlt(group.forms)
	var b strings.Builder
	altDialect := senses.DialectUS
	if g.Config.HomeDialect == senses.DialectUS {
		altDialect = senses.DialectGB
	}
	if len(home) == 0 {
		if len(alt) == 0 {
			return ""
		}
		form := alt[0]
		b.WriteString(escape(g.displayText(form)))
		fmt.Fprintf(&b, ` <span class="ipa">/%s/</span>`, escape(form.IPA))
		fmt.Fprintf(&b, ` <span class="variant">(%s)</span>`, altDialect)
		return b.String()
	}
	homeForm := home[0]
	homeDisplay := g.displayText(homeForm)
	b.WriteString(escape(homeDisplay))
	fmt.Fprintf(&b, ` <span class="ipa">/%s/</span>`, escape(homeForm.IPA))

	// additional pronunciations of the same spelling, e.g. due GB and US
	for _, form := range home[1:] {
		if form.IPA == homeForm.IPA {
			continue
		}
		label := variantLabel(form.Var)
		if label != "" && label != g.Config.HomeDialect {
			fmt.Fprintf(&b, ` <span class="variant">(%s, %s /%s/)</span>`,
				escape(homeDisplay), label, escape(form.IPA))
		} else {
			fmt.Fprintf(&b, ` <span class="variant">(%s /%s/)</span>`,
				escape(homeDisplay), escape(form.IPA))
		}
	}

	// alternate dialect spellings of the sense, from the cache
	if group.isLemma && g.Cache != nil && g.Config.Direction != ShawShaw {
		synset := entry.Signature.Synset
		for _, altSp := range g.Cache.AltSpellings(homeForm.Latn, synset, g.Config.HomeDialect) {
			spellingDiffers := !strings.EqualFold(altSp.Word, homeForm.Latn)
			pronunciationDiffers := altSp.IPA != "" && altSp.IPA != homeForm.IPA
			if !spellingDiffers && !pronunciationDiffers {
				continue
			}
			if pronunciationDiffers {
				fmt.Fprintf(&b, ` <span class="variant">(%s, %s /%s/)</span>`,
					escape(altSp.Word), altSp.Dialect, escape(altSp.IPA))
			} else {
				fmt.Fprintf(&b, ` <span class="variant">(%s, %s)</span>`,
					escape(altSp.Word), altSp.Dialect)
			}
		}
	}

	// alternate dialect forms carried by the entry itself
	if len(alt) > 0 {
		altForm := alt[0]
		altDisplay := g.displayText(altForm)
		if altForm.IPA == homeForm.IPA {
			fmt.Fprintf(&b, ` <span class="variant">(%s, %s)</span>`,
				escape(altDisplay), altDialect)
		} else {
			fmt.Fprintf(&b, ` <span class="variant">(%s, %s /%s/)</span>`,
				escape(altDisplay), altDialect, escape(altForm.IPA))
		}
	}
	return b.String()
}

// irregularLines renders the irregular forms block from the sense cache
func (g *Generator) irregularLines(entry *consolidate.Entry) []irregularLine {
	if g.Cache == nil {
		return nil
	}
	lemmaForms := entry.LemmaForms()
	if len(lemmaForms) == 0 {
		return nil
	}
	irregular := g.Cache.IrregularForms(lemmaForms[0].Latn)
	if len(irregular) == 0 {
		return nil
	}
	posCodes := make([]string, 0, len(irregular))
	for pos := range irregular {
		posCodes = append(posCodes, pos)
	}
	sort.Strings(posCodes)
	var lines []irregularLine
	for _, pos := range posCodes {
		label := fmt.Sprintf("Irregular %s forms", lexicon.POSLabel(pos))
		forms := strings.Join(irregular[pos], ", ")
		if g.Config.Direction.translateLabels() {
			label = g.translateToShavian(label)
			forms = g.translateToShavian(forms)
		}
		lines = append(lines, irregularLine{
			Label: escape(label),
			Forms: escape(forms),
		})
	}
	return lines
}

// defGroups renders the definitions block, grouped by part of speech in
// first appearance order, or the no definitions fallback when the entry has
// none
func (g *Generator) defGroups(entry *consolidate.Entry) []defGroup {
	noDefs := "(No definitions available)"
	if g.Config.Direction.translateLabels() {
		noDefs = "(" + g.translateToShavian("No definitions available") + ")"
	}
	if len(entry.Definitions) == 0 {
		var groups []defGroup
		for _, pos := range entry.POS {
			label := lexicon.POSLabel(pos)
			if g.Config.Direction.translateLabels() {
				label = g.translateToShavian(label)
			}
			groups = append(groups, defGroup{
				Label:  escape(label),
				NoDefs: escape(noDefs),
			})
		}
		if len(groups) == 0 {
			groups = append(groups, defGroup{NoDefs: escape(noDefs)})
		}
		return groups
	}
	defs := entry.Definitions
	if len(defs) > maxDefsPerEntry {
		defs = defs[:maxDefsPerEntry]
	}
	var order []string
	byPOS := map[string][]string{}
	for _, def := range defs {
		if _, ok := byPOS[def.POS]; !ok {
			order = append(order, def.POS)
		}
		if len(byPOS[def.POS]) >= maxDefsPerGroup {
			continue
		}
		text := def.Text
		if g.Config.Direction.translateLabels() {
			text = g.translateToShavian(text)
		}
		byPOS[def.POS] = append(byPOS[def.POS], escape(text))
	}
	var groups []defGroup
	for _, pos := range order {
		label := lexicon.POSLabel(pos)
		if g.Config.Direction.translateLabels() {
			label = g.translateToShavian(label)
		}
		groups = append(groups, defGroup{
			Label:       escape(label),
			Definitions: byPOS[pos],
		})
	}
	return groups
}
