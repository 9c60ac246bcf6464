// Package astquery supports the CLI's `brewin ast --json --query` path:
// dumping a parsed program's AST as JSON and letting a caller pull out a
// piece of it with a gjson path expression, grounded on the pack's
// tidwall/gjson + tidwall/sjson pairing (SPEC_FULL.md §3) — sjson builds
// the JSON document, gjson reads back out of it.
package astquery

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/RuralBrick/brewin-interpreter/internal/ast"
)

// ToJSON renders a parsed program's top-level forms as a JSON document:
// {"forms":[<node>, ...]}, where an Atom becomes {"atom":..., "line":...}
// and a List becomes {"line":..., "items":[<node>, ...]}.
func ToJSON(forms []ast.Node) (string, error) {
	doc := "{}"
	var err error
	for i, form := range forms {
		doc, err = setNode(doc, "forms."+strconv.Itoa(i), form)
		if err != nil {
			return "", err
		}
	}
	return doc, nil
}

func setNode(doc, path string, node ast.Node) (string, error) {
	var err error
	switch n := node.(type) {
	case *ast.Atom:
		doc, err = sjson.Set(doc, path+".atom", n.Text())
		if err != nil {
			return "", err
		}
		return sjson.Set(doc, path+".line", n.Line())
	case *ast.List:
		doc, err = sjson.Set(doc, path+".line", n.Line())
		if err != nil {
			return "", err
		}
		for i, item := range n.Items {
			doc, err = setNode(doc, path+".items."+strconv.Itoa(i), item)
			if err != nil {
				return "", err
			}
		}
		return doc, nil
	default:
		return doc, nil
	}
}

// Query evaluates a gjson path expression against a JSON-dumped AST.
func Query(jsonDoc, path string) gjson.Result {
	return gjson.Get(jsonDoc, path)
}
