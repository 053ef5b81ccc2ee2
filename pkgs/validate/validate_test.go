package validate_test

import (
	"testing"

	"github.com/ioccc-tools/mkiocccentry-core/pkgs/checks"
	"github.com/ioccc-tools/mkiocccentry-core/pkgs/ignorelist"
	"github.com/ioccc-tools/mkiocccentry-core/pkgs/jsontree"
	"github.com/ioccc-tools/mkiocccentry-core/pkgs/validate"
)

const commonFields = `
	"no_comment": "mkiocccentry - the IOCCC entry tool",
	"IOCCC_contest_id": "test",
	"chkentry_version": "1.0 2024-01-01",
	"fnamchk_version": "1.0 2024-01-01",
	"jparse_version": "1.0 2024-01-01",
	"jval_version": "1.0 2024-01-01",
	"jnum_chk_version": "1.0 2024-01-01",
	"iocccsize_version": "1.0 2024-01-01",
	"formed_timestamp": 1700000000,
	"formed_timestamp_usec": 0,
	"timestamp_epoch": "Thu Jan 01 00:00:00 1970 UTC",
	"min_timestamp": 1,
	"formed_UTC": "Thu Jan 01 00:00:00 1970 UTC"`

func mustParse(t *testing.T, src string) *jsontree.Node {
	t.Helper()
	n, err := jsontree.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse error: %v\nsrc: %s", err, src)
	}
	return n
}

// TestMinimalInfoDocumentValidates is scenario 1 from §8: common
// members plus title/abstract/manifest/size members and nothing else
// should validate cleanly.
func TestMinimalInfoDocumentValidates(t *testing.T) {
	src := `{` + commonFields + `,
		"IOCCC_info_version": "1.0 2024-01-01",
		"title": "my-title",
		"abstract": "a short abstract",
		"rule_2a_size": 100,
		"rule_2b_size": 80,
		"rule_2a_override": false,
		"rule_2a_mismatch": false,
		"rule_2b_override": false,
		"highbit_warning": false,
		"nul_warning": false,
		"trigraph_warning": false,
		"wordbuf_warning": false,
		"ungetc_warning": false,
		"manifest": [
			{"info_JSON": "info.json"},
			{"author_JSON": "author.json"},
			{"c_src": "prog.c"},
			{"Makefile": "Makefile"},
			{"remarks": "remarks.md"}
		]
	}`
	root := mustParse(t, src)
	errs := validate.Walk(root, checks.InfoSchema)
	if !validate.Valid(errs) {
		t.Fatalf("expected no validation errors, got %+v", errs)
	}
}

// TestAuthorCountMismatch is scenario 4 from §8.
func TestAuthorCountMismatch(t *testing.T) {
	src := `{` + commonFields + `,
		"IOCCC_author_version": "1.0 2024-01-01",
		"author_count": 2,
		"authors": [
			{"name": "Alice", "author_number": 0, "email": "a@example.com", "country": "US"},
			{"name": "Bob", "author_number": 1, "email": "b@example.com", "country": "US"},
			{"name": "Carol", "author_number": 2, "email": "c@example.com", "country": "US"}
		]
	}`
	root := mustParse(t, src)
	errs := validate.Walk(root, checks.AuthorSchema)
	if validate.Valid(errs) {
		t.Fatalf("expected an author-count mismatch error")
	}
	found := false
	for _, e := range errs {
		if e.Code == checks.CodeAuthorCount {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected CodeAuthorCount among errors, got %+v", errs)
	}
}

func TestUnknownMemberIsReported(t *testing.T) {
	src := `{` + commonFields + `, "not_a_real_field": 1}`
	root := mustParse(t, src)
	errs := validate.Walk(root, checks.CommonSchema)
	found := false
	for _, e := range errs {
		if e.Code == validate.CodeUnknownMember {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an unknown-member error, got %+v", errs)
	}
}

func TestMissingRequiredMemberIsReported(t *testing.T) {
	root := mustParse(t, `{"no_comment": "mkiocccentry - the IOCCC entry tool"}`)
	errs := validate.Walk(root, checks.CommonSchema)
	count := 0
	for _, e := range errs {
		if e.Code == validate.CodeMissingRequired {
			count++
		}
	}
	if count == 0 {
		t.Fatalf("expected missing-required errors, got %+v", errs)
	}
}

func TestTopLevelMustBeObject(t *testing.T) {
	root := mustParse(t, `[1, 2, 3]`)
	errs := validate.Walk(root, checks.CommonSchema)
	if len(errs) != 1 || errs[0].Code != validate.CodeNotObjectRoot {
		t.Fatalf("got %+v, want a single CodeNotObjectRoot error", errs)
	}
}

func TestTypeMismatchIsReported(t *testing.T) {
	root := mustParse(t, `{"formed_timestamp": "not-an-integer"}`)
	errs := validate.Walk(root, checks.CommonSchema)
	found := false
	for _, e := range errs {
		if e.Code == validate.CodeTypeMismatch {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a type-mismatch error, got %+v", errs)
	}
}

func TestValidatorIdempotence(t *testing.T) {
	src := `{` + commonFields + `,
		"IOCCC_author_version": "1.0 2024-01-01",
		"author_count": 1,
		"authors": [{"name": "Alice", "author_number": 0, "email": "a@example.com", "country": "US"}]
	}`
	root := mustParse(t, src)
	first := validate.Walk(root, checks.AuthorSchema)
	second := validate.Walk(root, checks.AuthorSchema)
	if len(first) != len(second) {
		t.Fatalf("validating twice produced different error counts: %d vs %d", len(first), len(second))
	}
}

func TestIgnoreListSuppressesCode(t *testing.T) {
	root := mustParse(t, `{"not_a_real_field": 1}`)
	list := ignorelist.New()
	list.Ignore(validate.CodeUnknownMember)
	list.Ignore(validate.CodeMissingRequired)
	errs := validate.WalkWithIgnoreList(root, checks.CommonSchema, list)
	if !validate.Valid(errs) {
		t.Fatalf("expected every error to be suppressed, got %+v", errs)
	}
}
