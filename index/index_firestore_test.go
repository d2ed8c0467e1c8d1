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

package index

import (
	"reflect"
	"testing"

	"github.com/shawdict/shawdict/consolidate"
)

func TestAxisName(t *testing.T) {
	if ByShaw.Name() != "shaw" {
		t.Errorf("TestAxisName: ByShaw = %q, want shaw", ByShaw.Name())
	}
	if ByLatn.Name() != "latn" {
		t.Errorf("TestAxisName: ByLatn = %q, want latn", ByLatn.Name())
	}
}

func TestNewTermRecord(t *testing.T) {
	ie := IndexEntry{
		Term: "𐑛𐑿",
		Entries: []*consolidate.Entry{
			newEntry("dew_NN1_𐑛𐑿", "dew", "𐑛𐑿", []string{"n"},
				form("𐑛𐑿", "dew", "NN1", true)),
			newEntry("due_AJ0_𐑛𐑿", "due", "𐑛𐑿", []string{"a"},
				form("𐑛𐑿", "due", "AJ0", true)),
		},
	}
	record := newTermRecord(ie)
	if record.Term != "𐑛𐑿" {
		t.Errorf("TestNewTermRecord: term = %q, want 𐑛𐑿", record.Term)
	}
	wantIds := []string{"dew_NN1_𐑛𐑿", "due_AJ0_𐑛𐑿"}
	if !reflect.DeepEqual(record.EntryIds, wantIds) {
		t.Errorf("TestNewTermRecord: entry ids = %v, want %v", record.EntryIds, wantIds)
	}
	wantLemmas := []string{"dew", "due"}
	if !reflect.DeepEqual(record.Lemmas, wantLemmas) {
		t.Errorf("TestNewTermRecord: lemmas = %v, want %v", record.Lemmas, wantLemmas)
	}
}
