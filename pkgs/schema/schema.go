// Package schema implements component H: a declarative, table-driven
// description of the members a JSON document of a given kind may
// contain, plus the shared types (field descriptor, validation error,
// check context) that component G's walker and component I's
// predicates both build on.
//
// The three concrete schemas (Common, Info, Author) are not defined
// here: their field-level checks live in pkgs/checks, and a Go import
// cycle would result if this package also referenced that one to
// build the table instances. They live in pkgs/checks instead,
// assembled from the Field/Schema types this package exports — see
// DESIGN.md.
package schema

import "github.com/ioccc-tools/mkiocccentry-core/pkgs/jsontree"

// JSONType is the set of JSON value kinds a schema field may require.
type JSONType int

const (
	TypeString JSONType = iota
	TypeNumber
	TypeInteger
	TypeBool
	TypeNull
	TypeObject
	TypeArray
	TypeMemberOfStringOrNull
)

func (t JSONType) String() string {
	switch t {
	case TypeString:
		return "String"
	case TypeNumber:
		return "Number"
	case TypeInteger:
		return "Integer"
	case TypeBool:
		return "Bool"
	case TypeNull:
		return "Null"
	case TypeObject:
		return "Object"
	case TypeArray:
		return "Array"
	case TypeMemberOfStringOrNull:
		return "MemberOfStringOrNull"
	default:
		return "Unknown"
	}
}

// Matches reports whether node's JSON kind satisfies t.
func (t JSONType) Matches(node *jsontree.Node) bool {
	switch t {
	case TypeString:
		return node.Kind == jsontree.KindString
	case TypeNumber:
		return node.Kind == jsontree.KindNumber
	case TypeInteger:
		return node.Kind == jsontree.KindNumber && node.Number.Converted && !node.Number.IsFloating && !node.Number.IsENotation
	case TypeBool:
		return node.Kind == jsontree.KindBool
	case TypeNull:
		return node.Kind == jsontree.KindNull
	case TypeObject:
		return node.Kind == jsontree.KindObject
	case TypeArray:
		return node.Kind == jsontree.KindArray
	case TypeMemberOfStringOrNull:
		return node.Kind == jsontree.KindString || node.Kind == jsontree.KindNull
	default:
		return false
	}
}

// ValidationError is the lightweight (non-error) record §3 calls for:
// the walker appends one of these and keeps going rather than
// returning early, so the caller sees every problem in one pass.
type ValidationError struct {
	Code         int
	NodeRef      *jsontree.Node
	Depth        int
	FunctionName string
	Message      string
}

// Context is what the walker hands to a field-level predicate: the
// member's value node, its depth, the enclosing object (for
// cross-sibling lookups), and the accumulating error slice.
type Context struct {
	Node     *jsontree.Node // the member's value
	Member   *jsontree.Node // the KindMember node itself
	Depth    int
	Object   *jsontree.Node // enclosing KindObject, for sibling lookups
	Errors   *[]ValidationError
	FieldDef Field // the schema descriptor the walker dispatched from
}

// Sibling looks up a member by name within ctx.Object. Returns nil if
// absent or if ctx.Object is nil.
func (c *Context) Sibling(name string) *jsontree.Node {
	if c.Object == nil {
		return nil
	}
	for _, m := range c.Object.Members {
		if unquote(m.MemberName.Lexeme) == name {
			return m.MemberValue
		}
	}
	return nil
}

// Fail appends a validation error at ctx's current node/depth.
func (c *Context) Fail(code int, functionName, message string) {
	*c.Errors = append(*c.Errors, ValidationError{
		Code:         code,
		NodeRef:      c.Node,
		Depth:        c.Depth,
		FunctionName: functionName,
		Message:      message,
	})
}

func unquote(lexeme string) string {
	if len(lexeme) >= 2 && lexeme[0] == '"' && lexeme[len(lexeme)-1] == '"' {
		return lexeme[1 : len(lexeme)-1]
	}
	return lexeme
}

// CheckFunc is a field-level predicate (component I), uniform in
// signature per §9 "Predicate dispatch" regardless of what it checks.
type CheckFunc func(ctx *Context)

// Field is one schema field descriptor (§3).
type Field struct {
	Name       string
	JSONType   JSONType
	MaxCount   int // 0 = unlimited
	CanBeEmpty bool
	Required   bool
	Check      CheckFunc
}

// Schema is an ordered sequence of field descriptors. Lookup is by
// exact name match; order is fixed so cross-sibling lookups are
// stable (§4.H).
type Schema []Field

// Lookup returns the field descriptor named name, or ok=false.
func (s Schema) Lookup(name string) (Field, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
