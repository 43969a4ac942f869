// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package newick reads and writes phylogenetic trees
// in the parenthetical newick format.
//
// A tree is described as:
//
//	tree     := subtree ';'
//	subtree  := leaf | '(' subtree (',' subtree)* ')' label? (':' length)?
//	leaf     := label (':' length)?
//
// Labels can be quoted with single quotes,
// and a doubled quote inside a quoted label is a literal quote.
// Bracketed comments can be nested,
// and its content is stored in the comment
// of the most recently read node.
package newick

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/js-arias/phytools/tree"
)

// Parse errors.
var (
	ErrUnbalanced   = errors.New("unbalanced parentheses in tree description")
	ErrBranchLength = errors.New("invalid branch length")
	ErrComment      = errors.New("unexpected end of input inside a comment")
	ErrQuote        = errors.New("unexpected end of input inside a quoted label")
	ErrUnexpected   = errors.New("unexpected token")
	ErrEmpty        = errors.New("empty tree description")
)

// Parse reads a tree in newick format
// and returns its root.
func Parse(s string) (*tree.Node, error) {
	return ParseWith(s, nil)
}

// ParseWith reads a tree in newick format
// using a translation table
// to replace the labels of the tips.
// Tip labels not found in the table are kept.
func ParseWith(s string, table map[string]string) (*tree.Node, error) {
	p := &parser{
		lex:      &lexer{s: s},
		table:    table,
		needNode: true,
	}
	return p.parse()
}

type parser struct {
	lex   *lexer
	table map[string]string

	root    *tree.Node
	node    *tree.Node
	pending string

	open, closed int

	// needNode is true if the next item
	// must be a subtree.
	needNode bool

	// canLabel is true after a closing parenthesis.
	canLabel bool
}

func (p *parser) parse() (*tree.Node, error) {
	for {
		tk, err := p.lex.next()
		if err != nil {
			return nil, err
		}

		switch tk.kind {
		case tokEOF, tokSemicolon:
			if p.open != p.closed {
				return nil, fmt.Errorf("at byte %d: %w", tk.pos, ErrUnbalanced)
			}
			if p.root == nil {
				return nil, ErrEmpty
			}
			if p.needNode {
				return nil, fmt.Errorf("at byte %d: %w: expecting a subtree", tk.pos, ErrUnexpected)
			}
			return p.root, nil
		case tokOpen:
			if !p.needNode {
				return nil, fmt.Errorf("at byte %d: %w: %q", tk.pos, ErrUnexpected, "(")
			}
			p.open++
			p.addNode(tree.New(""))
		case tokClose:
			if p.needNode {
				return nil, fmt.Errorf("at byte %d: %w: empty subtree", tk.pos, ErrUnexpected)
			}
			if p.node.Parent() == nil {
				return nil, fmt.Errorf("at byte %d: %w", tk.pos, ErrUnbalanced)
			}
			p.closed++
			p.node = p.node.Parent()
			p.canLabel = true
		case tokComma:
			if p.needNode {
				return nil, fmt.Errorf("at byte %d: %w: empty subtree", tk.pos, ErrUnexpected)
			}
			if p.node.Parent() == nil {
				return nil, fmt.Errorf("at byte %d: %w", tk.pos, ErrUnbalanced)
			}
			p.node = p.node.Parent()
			p.needNode = true
			p.canLabel = false
		case tokColon:
			if err := p.length(tk); err != nil {
				return nil, err
			}
		case tokComment:
			if p.node == nil {
				p.pending = tk.val
				continue
			}
			p.node.Comment = tk.val
		case tokLabel:
			if p.needNode {
				lb := tk.val
				if v, ok := p.table[lb]; ok {
					lb = v
				}
				p.addNode(tree.New(lb))
				p.needNode = false
				continue
			}
			if !p.canLabel {
				return nil, fmt.Errorf("at byte %d: %w: label %q", tk.pos, ErrUnexpected, tk.val)
			}
			p.node.Label = tk.val
			p.canLabel = false
		}
	}
}

func (p *parser) addNode(nd *tree.Node) {
	if p.root == nil {
		p.root = nd
		nd.Comment = p.pending
	} else {
		p.node.AddChild(nd)
	}
	p.node = nd
	p.canLabel = false
}

func (p *parser) length(colon token) error {
	if p.needNode {
		return fmt.Errorf("at byte %d: %w: %q", colon.pos, ErrUnexpected, ":")
	}
	if p.node.HasLength() {
		return fmt.Errorf("at byte %d: %w: branch length already defined", colon.pos, ErrUnexpected)
	}

	tk, err := p.lex.next()
	if err != nil {
		return err
	}
	if tk.kind != tokLabel {
		return fmt.Errorf("at byte %d: %w: expecting a number", tk.pos, ErrBranchLength)
	}
	v, err := strconv.ParseFloat(tk.val, 64)
	if err != nil {
		return fmt.Errorf("at byte %d: %w %q: %v", tk.pos, ErrBranchLength, tk.val, err)
	}
	p.node.SetLength(v)
	p.canLabel = false
	return nil
}
