package jsontree

import (
	"fmt"

	ioerrors "github.com/ioccc-tools/mkiocccentry-core/pkgs/errors"
	"github.com/ioccc-tools/mkiocccentry-core/pkgs/jsonlex"
	"github.com/ioccc-tools/mkiocccentry-core/pkgs/jsonnum"
	"github.com/ioccc-tools/mkiocccentry-core/pkgs/jsonstring"
)

// DefaultMaxDepth is the default nesting-depth bound for Parse, matching
// the historic tool's JSON_MAX_DEPTH constant (spec §4.D).
const DefaultMaxDepth = 1_000_000

// ParseError reports why Parse failed.
type ParseError struct {
	Message string
	Pos     jsonlex.Pos
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("jsontree: %s at line %d, column %d", e.Message, e.Pos.Line, e.Pos.Column)
}

// Parser is a recursive-descent JSON parser bounded by MaxDepth.
type Parser struct {
	lex      *jsonlex.Lexer
	tok      jsonlex.Token
	MaxDepth int
}

// New creates a Parser over src with the default depth bound.
func New(src []byte) *Parser {
	p := &Parser{lex: jsonlex.New(src), MaxDepth: DefaultMaxDepth}
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.tok = p.lex.NextToken()
}

// Parse consumes the full buffer src and returns its parse tree. The
// top-level value may be any JSON value; component G (the validator)
// is the one that insists the top level be an Object (§6).
func Parse(src []byte) (*Node, error) {
	p := New(src)
	node, err := p.parseValue(nil, 0)
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != jsonlex.EOF {
		return nil, &ParseError{Message: "trailing garbage after top-level value", Pos: p.tok.Pos}
	}
	return node, nil
}

func (p *Parser) parseValue(parent *Node, depth int) (*Node, error) {
	if depth > p.MaxDepth {
		return nil, &ParseError{Message: "maximum nesting depth exceeded", Pos: p.tok.Pos}
	}

	switch p.tok.Kind {
	case jsonlex.ERROR:
		return nil, &ParseError{Message: p.tok.Message, Pos: p.tok.Pos}
	case jsonlex.LBRACE:
		return p.parseObject(parent, depth)
	case jsonlex.LBRACKET:
		return p.parseArray(parent, depth)
	case jsonlex.STRING:
		return p.parseString(parent, depth)
	case jsonlex.NUMBER:
		return p.parseNumber(parent, depth)
	case jsonlex.TRUE:
		n := &Node{Kind: KindBool, Bool: true, Depth: depth, Span: toSpan(p.tok.Pos), Converted: true}
		n.setParent(parent)
		p.advance()
		return n, nil
	case jsonlex.FALSE:
		n := &Node{Kind: KindBool, Bool: false, Depth: depth, Span: toSpan(p.tok.Pos), Converted: true}
		n.setParent(parent)
		p.advance()
		return n, nil
	case jsonlex.NULL:
		n := &Node{Kind: KindNull, Depth: depth, Span: toSpan(p.tok.Pos), Converted: true}
		n.setParent(parent)
		p.advance()
		return n, nil
	default:
		return nil, &ParseError{Message: "unexpected token " + p.tok.Kind.String(), Pos: p.tok.Pos}
	}
}

func (p *Parser) parseString(parent *Node, depth int) (*Node, error) {
	rec, err := jsonstring.Decode(p.tok.Lexeme)
	n := &Node{Kind: KindString, Depth: depth, Span: toSpan(p.tok.Pos)}
	n.setParent(parent)
	if err != nil {
		n.String = jsonstring.Record{Lexeme: p.tok.Lexeme, Converted: false}
		n.Converted = false
	} else {
		n.String = rec
		n.Converted = true
	}
	p.advance()
	return n, nil
}

func (p *Parser) parseNumber(parent *Node, depth int) (*Node, error) {
	rec := jsonnum.Decode(p.tok.Lexeme)
	n := &Node{Kind: KindNumber, Depth: depth, Span: toSpan(p.tok.Pos), Number: rec, Converted: rec.Converted}
	n.setParent(parent)
	p.advance()
	return n, nil
}

func (p *Parser) parseArray(parent *Node, depth int) (*Node, error) {
	start := p.tok.Pos
	n := &Node{Kind: KindArray, Depth: depth, Converted: true}
	n.setParent(parent)
	p.advance() // consume '['

	if p.tok.Kind == jsonlex.RBRACKET {
		n.Span = spanFrom(start, p.tok.Pos)
		p.advance()
		return n, nil
	}

	for {
		item, err := p.parseValue(n, depth+1)
		if err != nil {
			return nil, err
		}
		n.Items = append(n.Items, item)

		switch p.tok.Kind {
		case jsonlex.COMMA:
			p.advance()
			continue
		case jsonlex.RBRACKET:
			n.Span = spanFrom(start, p.tok.Pos)
			p.advance()
			return n, nil
		default:
			return nil, &ParseError{Message: "expected ',' or ']' in array", Pos: p.tok.Pos}
		}
	}
}

func (p *Parser) parseObject(parent *Node, depth int) (*Node, error) {
	start := p.tok.Pos
	n := &Node{Kind: KindObject, Depth: depth, Converted: true}
	n.setParent(parent)
	p.advance() // consume '{'

	if p.tok.Kind == jsonlex.RBRACE {
		n.Span = spanFrom(start, p.tok.Pos)
		p.advance()
		return n, nil
	}

	for {
		if p.tok.Kind != jsonlex.STRING {
			return nil, &ParseError{Message: "expected string member name", Pos: p.tok.Pos}
		}
		nameTok := p.tok
		nameRec, err := jsonstring.Decode(nameTok.Lexeme)
		if err != nil {
			return nil, ioerrors.NewParseError("invalid member name", err)
		}
		p.advance()

		if p.tok.Kind != jsonlex.COLON {
			return nil, &ParseError{Message: "expected ':' after member name", Pos: p.tok.Pos}
		}
		p.advance()

		member := &Node{Kind: KindMember, Depth: depth, Span: toSpan(nameTok.Pos), MemberName: nameRec, Converted: true}
		member.setParent(n)

		value, err := p.parseValue(member, depth+1)
		if err != nil {
			return nil, err
		}
		member.MemberValue = value
		member.Span.Length = value.Span.Offset + value.Span.Length - nameTok.Pos.Offset
		n.Members = append(n.Members, member)

		switch p.tok.Kind {
		case jsonlex.COMMA:
			p.advance()
			continue
		case jsonlex.RBRACE:
			n.Span = spanFrom(start, p.tok.Pos)
			p.advance()
			return n, nil
		default:
			return nil, &ParseError{Message: "expected ',' or '}' in object", Pos: p.tok.Pos}
		}
	}
}

func toSpan(pos jsonlex.Pos) Span {
	return Span{Line: pos.Line, Column: pos.Column, Offset: pos.Offset, Length: pos.Length}
}

func spanFrom(start, end jsonlex.Pos) Span {
	return Span{
		Line:   start.Line,
		Column: start.Column,
		Offset: start.Offset,
		Length: end.Offset + end.Length - start.Offset,
	}
}

