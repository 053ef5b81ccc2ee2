// Package validate implements component G: a depth-first walker that
// checks a parse tree against a schema table (component H) by
// dispatching to field-level predicates (component I).
package validate

import (
	"fmt"

	"github.com/ioccc-tools/mkiocccentry-core/pkgs/ignorelist"
	"github.com/ioccc-tools/mkiocccentry-core/pkgs/jsontree"
	"github.com/ioccc-tools/mkiocccentry-core/pkgs/schema"
)

// Walker-level diagnostic codes (§4.G, §7 "Schema errors"). Distinct
// from component I's field-specific codes in pkgs/checks.
const (
	CodeNotObjectRoot   = 270
	CodeUnknownMember   = 271
	CodeTypeMismatch    = 272
	CodeMissingRequired = 273
	CodeTooManyMembers  = 274
)

// fieldCount tracks how many times a schema field was seen during one
// walk, for the post-walk max_count/required check.
type fieldCount struct {
	count int
	found bool
}

// Walk validates root against sch and returns every accumulated
// violation (§4.G). A predicate never aborts the walk; Walk always
// runs to completion and returns an error list rather than stopping
// at the first problem (§7 "Propagation").
func Walk(root *jsontree.Node, sch schema.Schema) []schema.ValidationError {
	return WalkWithIgnoreList(root, sch, nil)
}

// WalkWithIgnoreList is Walk with an explicit ignore registry. A nil
// ignore list performs no suppression.
func WalkWithIgnoreList(root *jsontree.Node, sch schema.Schema, ignore *ignorelist.List) []schema.ValidationError {
	errs := []schema.ValidationError{}

	if root == nil || root.Kind != jsontree.KindObject {
		errs = append(errs, schema.ValidationError{
			Code:         CodeNotObjectRoot,
			NodeRef:      root,
			Depth:        0,
			FunctionName: "Walk",
			Message:      "top-level value must be an Object",
		})
		return filterIgnored(errs, ignore)
	}

	counts := make(map[string]*fieldCount, len(sch))
	for _, f := range sch {
		counts[f.Name] = &fieldCount{}
	}

	for _, member := range root.Members {
		name := stripQuotes(member.MemberName.Lexeme)
		field, ok := sch.Lookup(name)
		if !ok {
			errs = append(errs, schema.ValidationError{
				Code:         CodeUnknownMember,
				NodeRef:      member,
				Depth:        1,
				FunctionName: "Walk",
				Message:      "unknown member: " + name,
			})
			continue
		}

		fc := counts[name]
		fc.found = true
		fc.count++

		value := member.MemberValue
		if !field.JSONType.Matches(value) {
			errs = append(errs, schema.ValidationError{
				Code:         CodeTypeMismatch,
				NodeRef:      value,
				Depth:        1,
				FunctionName: "Walk",
				Message:      fmt.Sprintf("member %q must be %s", name, field.JSONType),
			})
			continue
		}

		if field.Check != nil {
			ctx := &schema.Context{
				Node:     value,
				Member:   member,
				Depth:    1,
				Object:   root,
				Errors:   &errs,
				FieldDef: field,
			}
			field.Check(ctx)
		}
	}

	for _, f := range sch {
		fc := counts[f.Name]
		if f.Required && !fc.found {
			errs = append(errs, schema.ValidationError{
				Code:         CodeMissingRequired,
				NodeRef:      root,
				Depth:        0,
				FunctionName: "Walk",
				Message:      "missing required member: " + f.Name,
			})
		}
		if f.MaxCount > 0 && fc.count > f.MaxCount {
			errs = append(errs, schema.ValidationError{
				Code:         CodeTooManyMembers,
				NodeRef:      root,
				Depth:        0,
				FunctionName: "Walk",
				Message:      fmt.Sprintf("member %q appears %d times, max %d", f.Name, fc.count, f.MaxCount),
			})
		}
	}

	return filterIgnored(errs, ignore)
}

// Valid reports whether errs is empty (§4.G "the final verdict is
// valid = errors.is_empty()").
func Valid(errs []schema.ValidationError) bool {
	return len(errs) == 0
}

func filterIgnored(errs []schema.ValidationError, ignore *ignorelist.List) []schema.ValidationError {
	if ignore == nil {
		return errs
	}
	out := errs[:0:0]
	for _, e := range errs {
		if !ignore.IsIgnored(e.Code) {
			out = append(out, e)
		}
	}
	return out
}

func stripQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
