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

// Functions for uploading the lookup index for the web frontend.

package index

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FsClient defines Firestore interfaces needed
type FsClient interface {
	Collection(path string) *firestore.CollectionRef
}

// TermRecord is one document in the search index collection
type TermRecord struct {
	Term     string   `firestore:"term"`
	EntryIds []string `firestore:"entry_ids"`
	Lemmas   []string `firestore:"lemmas"`
}

// UpdateSearchIndex writes term to entry references for one projection
// axis. Documents that already exist are not updated.
func UpdateSearchIndex(ctx context.Context, client FsClient, projected []IndexEntry, corpus string, generation int, axis Axis) error {
	fsCol := fmt.Sprintf("%s_index_%s_%d", strings.ToLower(corpus), axis.Name(), generation)
	i := 0
	for _, ie := range projected {
		record := newTermRecord(ie)
		ref := client.Collection(fsCol).Doc(ie.Term)
		_, err := ref.Get(ctx)
		if err == nil {
			continue
		}
		if status.Code(err) != codes.NotFound {
			return fmt.Errorf("UpdateSearchIndex, failed getting ref %v: %v", ref, err)
		}
		if _, err := ref.Set(ctx, record); err != nil {
			return fmt.Errorf("UpdateSearchIndex, failed setting entry for term %q: %v", ie.Term, err)
		}
		i++
	}
	log.Printf("UpdateSearchIndex wrote %d of %d terms to %s", i, len(projected), fsCol)
	return nil
}

// newTermRecord flattens one index entry into its upload record
func newTermRecord(ie IndexEntry) TermRecord {
	record := TermRecord{Term: ie.Term}
	for _, entry := range ie.Entries {
		record.EntryIds = append(record.EntryIds, entry.Key)
		record.Lemmas = append(record.Lemmas, entry.Lemma)
	}
	return record
}
