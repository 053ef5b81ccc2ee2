package schema

import (
	"testing"

	"github.com/ioccc-tools/mkiocccentry-core/pkgs/jsontree"
)

func mustParse(t *testing.T, src string) *jsontree.Node {
	t.Helper()
	n, err := jsontree.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return n
}

func TestJSONTypeMatches(t *testing.T) {
	obj := mustParse(t, `{"a": 1, "b": "x", "c": true, "d": null, "e": [1], "f": {}}`)
	byName := map[string]*jsontree.Node{}
	for _, m := range obj.Members {
		byName[m.MemberName.Lexeme] = m.MemberValue
	}

	if !TypeInteger.Matches(byName[`"a"`]) {
		t.Fatalf("1 should match TypeInteger")
	}
	if !TypeString.Matches(byName[`"b"`]) {
		t.Fatalf("\"x\" should match TypeString")
	}
	if !TypeBool.Matches(byName[`"c"`]) {
		t.Fatalf("true should match TypeBool")
	}
	if !TypeNull.Matches(byName[`"d"`]) {
		t.Fatalf("null should match TypeNull")
	}
	if !TypeArray.Matches(byName[`"e"`]) {
		t.Fatalf("[1] should match TypeArray")
	}
	if !TypeObject.Matches(byName[`"f"`]) {
		t.Fatalf("{} should match TypeObject")
	}
	if TypeString.Matches(byName[`"a"`]) {
		t.Fatalf("1 should not match TypeString")
	}
}

func TestContextSiblingLookup(t *testing.T) {
	obj := mustParse(t, `{"author_count": 2, "authors": []}`)
	ctx := &Context{Object: obj, Errors: &[]ValidationError{}}
	sib := ctx.Sibling("author_count")
	if sib == nil || sib.Kind != jsontree.KindNumber {
		t.Fatalf("got %+v, want the author_count number node", sib)
	}
	if ctx.Sibling("missing") != nil {
		t.Fatalf("expected nil for a missing sibling")
	}
}

func TestContextFailAccumulates(t *testing.T) {
	errs := []ValidationError{}
	ctx := &Context{Errors: &errs, Depth: 2}
	ctx.Fail(201, "versionCheck", "bad version")
	ctx.Fail(202, "versionCheck", "another")
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2", len(errs))
	}
	if errs[0].Code != 201 || errs[0].Depth != 2 {
		t.Fatalf("got %+v", errs[0])
	}
}

func TestSchemaLookup(t *testing.T) {
	s := Schema{
		{Name: "title", JSONType: TypeString, MaxCount: 1, Required: true},
		{Name: "abstract", JSONType: TypeString, MaxCount: 1, Required: true},
	}
	f, ok := s.Lookup("title")
	if !ok || f.JSONType != TypeString {
		t.Fatalf("got %+v, %v", f, ok)
	}
	if _, ok := s.Lookup("nope"); ok {
		t.Fatalf("expected no match for an absent field")
	}
}
