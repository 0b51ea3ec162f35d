// Package keyvalues parses Valve KeyValues text (VMF, refs lists, gameinfo style files).
//
// The format is a sequence of key/value pairs where a value is either a
// string or a brace delimited block of further pairs. Keys and string values
// may be quoted or bare. Line comments start with //. Backslashes carry no
// escape meaning, so Windows paths survive unchanged.
package keyvalues

import (
	"bufio"
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Node is a key with either a string value or child nodes
type Node struct {
	Key      string
	Value    string
	Children []*Node

	// Block is true for `key { ... }` nodes
	Block bool
}

// Child returns the first child whose key matches name case-insensitively
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if strings.EqualFold(c.Key, name) {
			return c
		}
	}
	return nil
}

// Walk visits n and every descendant depth first in document order. Returning
// false from fn skips the children of that node.
func (n *Node) Walk(fn func(node *Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

type tokenKind int

const (
	tokString tokenKind = iota
	tokOpen
	tokClose
	tokEOF
)

type token struct {
	kind   tokenKind
	text   string
	quoted bool
	line   int
}

type lexer struct {
	r    *bufio.Reader
	line int
}

func (l *lexer) next() (token, error) {
	for {
		c, _, err := l.r.ReadRune()
		if err == io.EOF {
			return token{kind: tokEOF, line: l.line}, nil
		}
		if err != nil {
			return token{}, goerr.Wrap(err, "failed to read keyvalues")
		}

		switch {
		case c == '\n':
			l.line++
		case c == ' ' || c == '\t' || c == '\r' || c == '\uFEFF':
		case c == '{':
			return token{kind: tokOpen, line: l.line}, nil
		case c == '}':
			return token{kind: tokClose, line: l.line}, nil
		case c == '/':
			p, err := l.r.Peek(1)
			if err == nil && p[0] == '/' {
				if _, err := l.r.ReadString('\n'); err == nil {
					l.line++
				}
				continue
			}
			return l.bare(c)
		case c == '"':
			return l.quoted()
		default:
			return l.bare(c)
		}
	}
}

func (l *lexer) quoted() (token, error) {
	start := l.line
	var sb strings.Builder
	for {
		c, _, err := l.r.ReadRune()
		if err == io.EOF {
			return token{}, goerr.New("unterminated quoted string", goerr.V("line", start+1))
		}
		if err != nil {
			return token{}, goerr.Wrap(err, "failed to read keyvalues")
		}
		if c == '"' {
			return token{kind: tokString, text: sb.String(), quoted: true, line: start}, nil
		}
		if c == '\n' {
			l.line++
		}
		sb.WriteRune(c)
	}
}

func (l *lexer) bare(first rune) (token, error) {
	var sb strings.Builder
	sb.WriteRune(first)
	for {
		c, _, err := l.r.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return token{}, goerr.Wrap(err, "failed to read keyvalues")
		}
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '{' || c == '}' || c == '"' {
			_ = l.r.UnreadRune()
			break
		}
		sb.WriteRune(c)
	}
	return token{kind: tokString, text: sb.String(), line: l.line}, nil
}

// isConditional reports whether t is a platform conditional such as [$WIN32]
func isConditional(t token) bool {
	return t.kind == tokString && !t.quoted && strings.HasPrefix(t.text, "[") && strings.HasSuffix(t.text, "]")
}

type parser struct {
	lex    *lexer
	peeked *token
}

func (p *parser) next() (token, error) {
	if p.peeked != nil {
		t := *p.peeked
		p.peeked = nil
		return t, nil
	}
	for {
		t, err := p.lex.next()
		if err != nil {
			return token{}, err
		}
		if isConditional(t) {
			continue
		}
		return t, nil
	}
}

func (p *parser) peek() (token, error) {
	if p.peeked == nil {
		t, err := p.next()
		if err != nil {
			return token{}, err
		}
		p.peeked = &t
	}
	return *p.peeked, nil
}

// parseList reads pairs until a closing brace (nested) or EOF (top level)
func (p *parser) parseList(nested bool) ([]*Node, error) {
	var nodes []*Node
	for {
		t, err := p.next()
		if err != nil {
			return nil, err
		}

		switch t.kind {
		case tokEOF:
			if nested {
				return nil, goerr.New("unexpected end of input, missing '}'")
			}
			return nodes, nil
		case tokClose:
			if !nested {
				return nil, goerr.New("unexpected '}'", goerr.V("line", t.line+1))
			}
			return nodes, nil
		case tokOpen:
			return nil, goerr.New("unexpected '{' without key", goerr.V("line", t.line+1))
		}

		node := &Node{Key: t.text}
		v, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch v.kind {
		case tokOpen:
			_, _ = p.next()
			children, err := p.parseList(true)
			if err != nil {
				return nil, err
			}
			node.Block = true
			node.Children = children
		case tokString:
			_, _ = p.next()
			node.Value = v.text
		default:
			return nil, goerr.New("key without value", goerr.V("key", t.text), goerr.V("line", t.line+1))
		}
		nodes = append(nodes, node)
	}
}

// Parse reads a KeyValues document and returns a root node whose children
// are the top level pairs
func Parse(r io.Reader) (*Node, error) {
	p := &parser{lex: &lexer{r: bufio.NewReader(r)}}
	children, err := p.parseList(false)
	if err != nil {
		return nil, err
	}
	return &Node{Block: true, Children: children}, nil
}

// ParseString is Parse over a string
func ParseString(s string) (*Node, error) {
	return Parse(strings.NewReader(s))
}
