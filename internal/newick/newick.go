// Package newick parses and formats phylogenetic trees in Newick
// notation, e.g. "(A:0.1,B:0.2,(C:0.3,D:0.4)E:0.5)F;". Taxon names from
// a parsed tree feed the distmat package.
package newick

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrSyntax marks malformed Newick input.
var ErrSyntax = errors.New("malformed newick")

// Node is one node of a phylogenetic tree: a taxon label (possibly
// empty for internal nodes), the length of the branch leading to it and
// its children. A NaN length means no length was given.
type Node struct {
	Label    string
	Length   float64
	Children []*Node
}

// Leaf reports whether the node has no children.
func (n *Node) Leaf() bool { return len(n.Children) == 0 }

// Tree is a rooted phylogenetic tree.
type Tree struct {
	Root *Node
}

// Taxa lists the leaf labels in the order they appear in the tree.
func (t Tree) Taxa() []string {
	var taxa []string
	var walk func(*Node)
	walk = func(n *Node) {
		if n.Leaf() {
			taxa = append(taxa, n.Label)
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	if t.Root != nil {
		walk(t.Root)
	}
	return taxa
}

// String formats the tree in Newick notation, ending with a semicolon.
// Branch lengths are omitted where they are NaN, reversing Parse.
func (t Tree) String() string {
	var b strings.Builder
	if t.Root != nil {
		writeNode(&b, t.Root)
	}
	b.WriteByte(';')
	return b.String()
}

func writeNode(b *strings.Builder, n *Node) {
	if !n.Leaf() {
		b.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				b.WriteByte(',')
			}
			writeNode(b, c)
		}
		b.WriteByte(')')
	}
	b.WriteString(n.Label)
	if !math.IsNaN(n.Length) {
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(n.Length, 'g', -1, 64))
	}
}

// Parse reads one Newick tree, which must span the whole input up to
// the terminating semicolon.
func Parse(s string) (Tree, error) {
	p := &parser{in: s}
	root, err := p.node()
	if err != nil {
		return Tree{}, err
	}
	if !p.eat(';') {
		return Tree{}, fmt.Errorf("pos %d: expected ';': %w", p.pos, ErrSyntax)
	}
	p.skipSpace()
	if p.pos != len(p.in) {
		return Tree{}, fmt.Errorf("pos %d: trailing input: %w", p.pos, ErrSyntax)
	}
	return Tree{Root: root}, nil
}

type parser struct {
	in  string
	pos int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.in) && (p.in[p.pos] == ' ' || p.in[p.pos] == '\t' || p.in[p.pos] == '\n' || p.in[p.pos] == '\r') {
		p.pos++
	}
}

// eat consumes c if it is the next character.
func (p *parser) eat(c byte) bool {
	p.skipSpace()
	if p.pos < len(p.in) && p.in[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

// node parses "(child,child,...)label:length" with every part optional
// except that a bare node needs at least a label.
func (p *parser) node() (*Node, error) {
	n := &Node{Length: math.NaN()}
	if p.eat('(') {
		for {
			child, err := p.node()
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
			if !p.eat(',') {
				break
			}
		}
		if !p.eat(')') {
			return nil, fmt.Errorf("pos %d: expected ')': %w", p.pos, ErrSyntax)
		}
	}
	n.Label = p.label()
	if n.Leaf() && n.Label == "" {
		return nil, fmt.Errorf("pos %d: expected taxon label: %w", p.pos, ErrSyntax)
	}
	if p.eat(':') {
		length, err := p.number()
		if err != nil {
			return nil, err
		}
		n.Length = length
	}
	return n, nil
}

func (p *parser) label() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.in) && !strings.ContainsRune("(),:; \t\n\r", rune(p.in[p.pos])) {
		p.pos++
	}
	return p.in[start:p.pos]
}

func (p *parser) number() (float64, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.in) && !strings.ContainsRune("(),:; \t\n\r", rune(p.in[p.pos])) {
		p.pos++
	}
	f, err := strconv.ParseFloat(p.in[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("pos %d: branch length %q: %w", start, p.in[start:p.pos], ErrSyntax)
	}
	return f, nil
}
