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

package generator

import (
	"log"
	"text/template"
)

// Templates from source for zero-config usage
const headerTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<d:dictionary xmlns="http://www.w3.org/1999/xhtml" xmlns:d="http://www.apple.com/DTDs/DictionaryService-1.0.rdf">
<!-- {{.Name}}: {{.FromLang}} to {{.ToLang}} -->
`

const frontMatterTemplate = `  <d:entry id="front_back_matter" d:title="About This Dictionary">
    <h1>About This Dictionary</h1>
    {{.Description}}
  </d:entry>

`

const entryTemplate = `  <d:entry id="{{.Id}}" d:title="{{.Title}}">
{{range .Indices}}    <d:index d:value="{{.}}"/>
{{end}}    <h1>{{.Headword}}</h1>
    <div class="forms">
{{range .FormLines}}      <div class="{{.Class}}">{{.Text}}</div>
{{end}}    </div>
{{if .IrregularForms}}    <div class="irregular-forms">
{{range .IrregularForms}}      <p><i>{{.Label}}:</i> {{.Forms}}</p>
{{end}}    </div>
{{end}}    <div class="definitions">
{{range .DefGroups}}      <div class="pos-group">
        <h3><i>{{.Label}}</i></h3>
{{if .Definitions}}        <ol class="definition-list">
{{range .Definitions}}          <li class="definition">{{.}}</li>
{{end}}        </ol>
{{else}}        <p><i>{{.NoDefs}}</i></p>
{{end}}      </div>
{{end}}    </div>
{{if .Separator}}    <hr/>
{{end}}  </d:entry>
`

const footerTemplate = `</d:dictionary>
`

// NewTemplateMap builds the template map for dictionary rendering. A
// directory of override templates can be given, defaulting to the embedded
// templates when empty or unparseable.
func NewTemplateMap(templateDir string) map[string]*template.Template {
	templateMap := make(map[string]*template.Template)
	tNames := map[string]string{
		"header-template.xml":       headerTemplate,
		"front-matter-template.xml": frontMatterTemplate,
		"entry-template.xml":        entryTemplate,
		"footer-template.xml":       footerTemplate,
	}
	for tName, defTmpl := range tNames {
		var tmpl *template.Template
		if len(templateDir) > 0 {
			fileName := templateDir + "/" + tName
			var err error
			tmpl, err = template.New(tName).ParseFiles(fileName)
			if err != nil {
				log.Printf("NewTemplateMap: error parsing template, using default %s: %v",
					tName, err)
				tmpl = template.Must(template.New(tName).Parse(defTmpl))
			}
		} else {
			tmpl = template.Must(template.New(tName).Parse(defTmpl))
		}
		templateMap[tName] = tmpl
	}
	return templateMap
}
