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
	"fmt"
	"io"
	"strings"

	"github.com/gomarkdown/markdown"
)

const defaultDescription = "<p>Shavian dictionary for macOS.</p>"

// LoadDescription reads the front matter description in markdown and
// renders it to HTML
func LoadDescription(r io.Reader) (string, error) {
	md, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("LoadDescription, error reading description: %v", err)
	}
	html := markdown.ToHTML(md, nil, nil)
	return strings.TrimSpace(string(html)), nil
}

// DefaultDescription gives the front matter body used when no description
// file is configured
func DefaultDescription() string {
	return defaultDescription
}
