// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokOpen
	tokClose
	tokComma
	tokColon
	tokSemicolon
	tokComment
	tokLabel
)

type token struct {
	kind tokenKind
	val  string
	pos  int
}

// delimiters are the characters
// that end an unquoted label.
const delimiters = "(),:;[]'"

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDelimiter(c byte) bool {
	return isSpace(c) || strings.IndexByte(delimiters, c) >= 0
}

type lexer struct {
	s   string
	pos int
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.s) && isSpace(l.s[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.s) {
		return token{kind: tokEOF, pos: l.pos}, nil
	}

	start := l.pos
	switch l.s[start] {
	case '(':
		l.pos++
		return token{kind: tokOpen, pos: start}, nil
	case ')':
		l.pos++
		return token{kind: tokClose, pos: start}, nil
	case ',':
		l.pos++
		return token{kind: tokComma, pos: start}, nil
	case ':':
		l.pos++
		return token{kind: tokColon, pos: start}, nil
	case ';':
		l.pos++
		return token{kind: tokSemicolon, pos: start}, nil
	case '[':
		return l.comment()
	case ']':
		return token{}, fmt.Errorf("at byte %d: %w: %q", start, ErrUnexpected, "]")
	case '\'':
		return l.quoted()
	}

	for l.pos < len(l.s) && !isDelimiter(l.s[l.pos]) {
		l.pos++
	}
	return token{kind: tokLabel, val: l.s[start:l.pos], pos: start}, nil
}

// comment reads a bracketed comment.
// Comments can be nested,
// and the content is returned without the outer brackets.
func (l *lexer) comment() (token, error) {
	start := l.pos
	depth := 0
	for i := start; i < len(l.s); i++ {
		switch l.s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				l.pos = i + 1
				return token{kind: tokComment, val: l.s[start+1 : i], pos: start}, nil
			}
		}
	}
	l.pos = len(l.s)
	return token{}, fmt.Errorf("at byte %d: %w", start, ErrComment)
}

// quoted reads a label delimited by single quotes.
// A doubled quote inside the label is a literal quote.
func (l *lexer) quoted() (token, error) {
	start := l.pos
	var b strings.Builder
	for i := start + 1; i < len(l.s); i++ {
		c := l.s[i]
		if c != '\'' {
			b.WriteByte(c)
			continue
		}
		if i+1 < len(l.s) && l.s[i+1] == '\'' {
			b.WriteByte('\'')
			i++
			continue
		}
		l.pos = i + 1
		return token{kind: tokLabel, val: b.String(), pos: start}, nil
	}
	l.pos = len(l.s)
	return token{}, fmt.Errorf("at byte %d: %w", start, ErrQuote)
}
