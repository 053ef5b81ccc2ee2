// Package jsontree implements component D: a recursive-descent parser
// that consumes pkgs/jsonlex tokens and builds a typed parse tree, using
// pkgs/jsonnum and pkgs/jsonstring to convert numeric and string
// literals as it goes.
package jsontree

import (
	"weak"

	"github.com/ioccc-tools/mkiocccentry-core/pkgs/jsonnum"
	"github.com/ioccc-tools/mkiocccentry-core/pkgs/jsonstring"
)

// Kind tags which variant a Node holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	KindMember
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	case KindMember:
		return "Member"
	default:
		return "Unknown"
	}
}

// Span locates a node in the original source buffer.
type Span struct {
	Line   int
	Column int
	Offset int
	Length int
}

// Node is the tagged variant over every JSON value kind described in
// spec §3. The tree is value-owned: a Node owns its Items/Members
// children outright. Parent is a weak reference only — a lookup
// relation, never an ownership edge — so the tree has no retain cycles
// even though children can walk back up to their parent.
type Node struct {
	Kind   Kind
	Depth  int
	Span   Span
	Parent weak.Pointer[Node]

	// Converted is false when a Number or String node failed semantic
	// conversion (§4.E/§4.F); field checkers must treat such nodes as
	// unusable regardless of their lexical shape.
	Converted bool

	Bool   bool
	Number jsonnum.Record
	String jsonstring.Record

	Items   []*Node // Array children
	Members []*Node // Object children, each KindMember, order preserved

	// Member-only fields.
	MemberName  jsonstring.Record
	MemberValue *Node
}

// ParentNode resolves the weak parent reference, or nil at the root or
// if the parent has since been collected (which cannot happen while the
// root itself is still reachable, since the tree is a single owned
// value graph rooted above every node it contains).
func (n *Node) ParentNode() *Node {
	return n.Parent.Value()
}

// setParent records p as n's weak parent reference.
func (n *Node) setParent(p *Node) {
	if p != nil {
		n.Parent = weak.Make(p)
	}
}
