package sexpr

import (
	"fmt"

	"github.com/cwbudde/go-brewin/internal/ast"
	"github.com/cwbudde/go-brewin/internal/token"
)

// parser builds an ast.Node tree from a lexer's token stream using
// ordinary recursive descent: a list is "(" followed by zero or more
// forms followed by ")"; anything else is a leaf atom.
type parser struct {
	lex  *lexer
	tok  token.Token
	errs []string
}

func newParser(input string) (*parser, error) {
	p := &parser{lex: newLexer(input)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) parseForm() (ast.Node, error) {
	switch p.tok.Type {
	case token.LParen:
		openPos := p.tok.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		var items []ast.Node
		for p.tok.Type != token.RParen {
			if p.tok.Type == token.EOF {
				return nil, fmt.Errorf("unclosed '(' opened at %s", openPos)
			}
			item, err := p.parseForm()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		if err := p.advance(); err != nil { // consume ")"
			return nil, err
		}
		return ast.NewList(items), nil
	case token.RParen:
		return nil, fmt.Errorf("unexpected ')' at %s", p.tok.Pos)
	case token.Atom:
		a := ast.NewAtom(p.tok)
		if err := p.advance(); err != nil {
			return nil, err
		}
		return a, nil
	default:
		return nil, fmt.Errorf("unexpected end of input")
	}
}

// Parse turns Brewin source text into a program tree: a List whose items
// are the top-level forms (normally a sequence of (class ...) forms).
// It returns the §6 pair (ok?, tree|message): on success ok is true and
// message is empty; on failure ok is false and message describes the
// parse error.
func Parse(source string) (ok bool, tree ast.Node, message string) {
	p, err := newParser(source)
	if err != nil {
		return false, nil, err.Error()
	}

	var forms []ast.Node
	for p.tok.Type != token.EOF {
		form, err := p.parseForm()
		if err != nil {
			return false, nil, err.Error()
		}
		forms = append(forms, form)
	}

	return true, ast.NewList(forms), ""
}
