// Package schema normalizes heterogeneous CSV column names to a canonical
// set, so downstream code never touches source-specific spellings.
package schema

import (
	"fmt"
	"sort"
	"strings"
)

// Canonical column names use underscores. Input sources spell the same
// fields with hyphens, underscores or dots.
var canonicalColumns = []string{
	"age",
	"workclass",
	"fnlwgt",
	"education",
	"education_num",
	"marital_status",
	"occupation",
	"relationship",
	"race",
	"sex",
	"capital_gain",
	"capital_loss",
	"hours_per_week",
	"native_country",
	"income",
}

// MissingColumnsError reports every required canonical column that could not
// be resolved against the loaded headers.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("schema: missing required columns: %s", strings.Join(e.Columns, ", "))
}

// Resolver maps canonical column names to the actual headers observed in a
// loaded table. It is built once per table.
type Resolver struct {
	mapping map[string]string
}

// NewResolver builds a Resolver from the table's actual headers. Each
// canonical name is bound to the first header matching one of its separator
// variants; headers that match no canonical name are mapped to themselves.
func NewResolver(headers []string) *Resolver {
	present := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		present[h] = struct{}{}
	}

	mapping := make(map[string]string)
	for _, canonical := range canonicalColumns {
		for _, v := range variants(canonical) {
			if _, ok := present[v]; ok {
				mapping[canonical] = v
				break
			}
		}
	}
	for _, h := range headers {
		if _, ok := mapping[h]; !ok {
			mapping[h] = h
		}
	}
	return &Resolver{mapping: mapping}
}

// Resolve returns the actual header for a canonical name and whether the
// resolution succeeded.
func (r *Resolver) Resolve(canonical string) (string, bool) {
	actual, ok := r.mapping[canonical]
	return actual, ok
}

// Lookup resolves like Resolve but falls back to the input name itself, for
// optional columns where a miss is acceptable and surfaces downstream.
func (r *Resolver) Lookup(canonical string) string {
	if actual, ok := r.mapping[canonical]; ok {
		return actual
	}
	return canonical
}

// Require checks that every given canonical column resolves, returning a
// MissingColumnsError naming all misses at once.
func (r *Resolver) Require(canonicals ...string) error {
	var missing []string
	for _, c := range canonicals {
		if _, ok := r.mapping[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &MissingColumnsError{Columns: missing}
	}
	return nil
}

// variants returns the recognized source spellings of a canonical name:
// hyphen, underscore and dot separated.
func variants(canonical string) []string {
	out := []string{
		strings.ReplaceAll(canonical, "_", "-"),
		canonical,
		strings.ReplaceAll(canonical, "_", "."),
	}
	return out
}
