// Package classdump implements the `brewin classes` CLI subcommand: a
// locale-stable, sorted listing of every registered class and its methods,
// grounded on the pack's golang.org/x/text/collate for comparison instead
// of sort.Strings' byte-order comparison (SPEC_FULL.md §3), so the
// ordering stays stable under non-ASCII class names.
package classdump

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/RuralBrick/brewin-interpreter/internal/runtime"
)

// ClassSummary is one class's name and its sorted method names.
type ClassSummary struct {
	Name    string
	Parent  string
	Methods []string
	Fields  []string
}

// Dump produces a collation-sorted summary of every class in reg's
// built-in namespace. Names are resolved with LookupClass, which covers
// only declared classes, so template instantiations (compiled or not) are
// not listed.
func Dump(reg *runtime.ClassRegistry, names []string) []ClassSummary {
	col := collate.New(language.Und)
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Slice(sorted, func(i, j int) bool {
		return col.CompareString(sorted[i], sorted[j]) < 0
	})

	var summaries []ClassSummary
	for _, name := range sorted {
		def, ok := reg.LookupClass(name)
		if !ok {
			continue
		}
		summaries = append(summaries, summarize(col, def))
	}
	return summaries
}

func summarize(col *collate.Collator, def *runtime.ClassDef) ClassSummary {
	s := ClassSummary{Name: def.Name}
	if def.Parent != nil {
		s.Parent = def.Parent.Name
	}
	for name := range def.Methods {
		s.Methods = append(s.Methods, name)
	}
	sort.Slice(s.Methods, func(i, j int) bool {
		return col.CompareString(s.Methods[i], s.Methods[j]) < 0
	})
	for _, name := range def.FieldOrder {
		s.Fields = append(s.Fields, name)
	}
	return s
}
