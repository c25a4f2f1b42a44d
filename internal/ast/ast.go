// Package ast defines the nested-list program tree that internal/sexpr
// produces and internal/interp consumes. The grammar is uniform
// S-expressions, so the tree has exactly two node kinds: a leaf Atom
// carrying a token, and a List of child nodes.
package ast

import (
	"strings"

	"github.com/cwbudde/go-brewin/internal/token"
)

// Node is either an Atom (a leaf token) or a List (a parenthesized form).
type Node interface {
	// Line returns the source line of the token that introduces this node.
	Line() int
	String() string
}

// Atom is a leaf token: a literal, a keyword, or an identifier.
type Atom struct {
	Tok token.Token
}

// NewAtom wraps a token as a leaf node.
func NewAtom(tok token.Token) *Atom {
	return &Atom{Tok: tok}
}

// Line implements Node.
func (a *Atom) Line() int { return a.Tok.Pos.Line }

// String implements Node.
func (a *Atom) String() string { return a.Tok.Literal }

// List is a parenthesized form: (head child1 child2 ...). Every
// statement and expression in the language is either a List or an Atom.
type List struct {
	Items []Node
}

// NewList wraps a slice of child nodes as a list node.
func NewList(items []Node) *List {
	return &List{Items: items}
}

// Line implements Node. A list's line is its first child's line, or 0 for
// an empty list (which never arises from a well-formed parse).
func (l *List) Line() int {
	if len(l.Items) == 0 {
		return 0
	}
	return l.Items[0].Line()
}

// String implements Node.
func (l *List) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, item := range l.Items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(item.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Head returns the literal of the first element when it is an Atom, and
// whether that was the case. Every statement/expression form is
// dispatched on this value.
func (l *List) Head() (string, bool) {
	if len(l.Items) == 0 {
		return "", false
	}
	a, ok := l.Items[0].(*Atom)
	if !ok {
		return "", false
	}
	return a.Tok.Literal, true
}

// Len returns the number of items in the list.
func (l *List) Len() int { return len(l.Items) }

// At returns the item at index i, or nil if out of range.
func (l *List) At(i int) Node {
	if i < 0 || i >= len(l.Items) {
		return nil
	}
	return l.Items[i]
}
