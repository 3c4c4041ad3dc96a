package dot

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/graphcausal/cgm/graph"
)

// ErrSyntax wraps every parse failure raised while reading DOT text.
var ErrSyntax = fmt.Errorf("dot: syntax error")

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokArrow
	tokLBrace
	tokRBrace
	tokLBracket
	tokRBracket
	tokSemicolon
	tokEquals
	tokEOF
)

type token struct {
	kind tokenKind
	text string
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// tokenize lexes the small subset of DOT emitted by Write: identifiers,
// "->", braces, brackets, ";" and "=". It has no notion of quoted
// identifiers, comments or undirected "--" edges, since those never
// appear in a digraph-only, dir=none-tagged document.
func tokenize(input string) ([]token, error) {
	var toks []token
	i, n := 0, len(input)
	for i < n {
		c := input[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '{':
			toks = append(toks, token{kind: tokLBrace})
			i++
		case c == '}':
			toks = append(toks, token{kind: tokRBrace})
			i++
		case c == '[':
			toks = append(toks, token{kind: tokLBracket})
			i++
		case c == ']':
			toks = append(toks, token{kind: tokRBracket})
			i++
		case c == ';':
			toks = append(toks, token{kind: tokSemicolon})
			i++
		case c == '=':
			toks = append(toks, token{kind: tokEquals})
			i++
		case c == '-' && i+1 < n && input[i+1] == '>':
			toks = append(toks, token{kind: tokArrow})
			i += 2
		case isIdentByte(c):
			start := i
			for i < n && isIdentByte(input[i]) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: input[start:i]})
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at offset %d", ErrSyntax, c, i)
		}
	}
	return toks, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	if p.pos >= len(p.toks) {
		return token{kind: tokEOF}
	}
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.peek()
	p.pos++
	return t
}

func (p *parser) expectKind(k tokenKind, what string) (token, error) {
	t := p.next()
	if t.kind != k {
		return token{}, fmt.Errorf("%w: expected %s", ErrSyntax, what)
	}
	return t, nil
}

type parsedEdge struct {
	from, to   string
	undirected bool
}

// parseBody consumes statements until the closing brace, collecting the
// label set in first-seen order and the edge list in source order.
func (p *parser) parseBody() ([]string, []parsedEdge, error) {
	seen := map[string]bool{}
	var order []string
	var edges []parsedEdge

	record := func(label string) {
		if !seen[label] {
			seen[label] = true
			order = append(order, label)
		}
	}

	for {
		switch p.peek().kind {
		case tokRBrace:
			p.next()
			return order, edges, nil
		case tokEOF:
			return nil, nil, fmt.Errorf("%w: unexpected end of input inside graph body", ErrSyntax)
		}

		left, err := p.expectKind(tokIdent, "identifier")
		if err != nil {
			return nil, nil, err
		}
		record(left.text)

		if p.peek().kind == tokArrow {
			p.next()
			right, err := p.expectKind(tokIdent, "identifier after ->")
			if err != nil {
				return nil, nil, err
			}
			record(right.text)

			undirected, err := p.parseOptionalAttrList()
			if err != nil {
				return nil, nil, err
			}
			edges = append(edges, parsedEdge{from: left.text, to: right.text, undirected: undirected})
		}

		if p.peek().kind == tokSemicolon {
			p.next()
		}
	}
}

// parseOptionalAttrList consumes an optional "[ key = value ; ... ]"
// attribute list and reports whether it set dir=none.
func (p *parser) parseOptionalAttrList() (bool, error) {
	if p.peek().kind != tokLBracket {
		return false, nil
	}
	p.next()
	undirected := false
	for p.peek().kind != tokRBracket {
		if p.peek().kind == tokEOF {
			return false, fmt.Errorf("%w: unterminated attribute list", ErrSyntax)
		}
		key, err := p.expectKind(tokIdent, "attribute name")
		if err != nil {
			return false, err
		}
		if _, err := p.expectKind(tokEquals, "'=' in attribute"); err != nil {
			return false, err
		}
		val, err := p.expectKind(tokIdent, "attribute value")
		if err != nil {
			return false, err
		}
		if key.text == "dir" && val.text == "none" {
			undirected = true
		}
		if p.peek().kind == tokSemicolon {
			p.next()
		}
	}
	p.next() // consume ']'
	return undirected, nil
}

// Read parses DOT text written by Write back into a partially-directed
// graph: every directed edge statement becomes a directed edge, every
// edge statement carrying "dir=none" becomes an undirected edge, and
// every node statement and edge endpoint becomes a vertex, so an isolated
// vertex declared with no edges still survives the round trip.
func Read(r io.Reader) (*graph.Graph, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	toks, err := tokenize(string(raw))
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}

	head, err := p.expectKind(tokIdent, "'digraph'")
	if err != nil {
		return nil, err
	}
	if strings.ToLower(head.text) != "digraph" {
		return nil, fmt.Errorf("%w: only \"digraph\" documents are supported, got %q", ErrSyntax, head.text)
	}
	if p.peek().kind == tokIdent {
		p.next() // optional graph id
	}
	if _, err := p.expectKind(tokLBrace, "'{'"); err != nil {
		return nil, err
	}

	labels, edges, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	sorted := append([]string(nil), labels...)
	sort.Strings(sorted)

	g := graph.NewPartiallyDirected(sorted)
	for _, e := range edges {
		if e.undirected {
			if err := g.AddUndirectedEdge(e.from, e.to); err != nil {
				return nil, err
			}
			continue
		}
		if err := g.AddDirectedEdge(e.from, e.to); err != nil {
			return nil, err
		}
	}
	return g, nil
}
