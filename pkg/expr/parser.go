// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package expr

import (
	"fmt"
	"unicode"
)

// SyntaxError describes a malformed S-expression, identifying the offending
// position within the original text.
type SyntaxError struct {
	// Offset (in runes) of the error within the text.
	Offset int
	// Description of the problem.
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Msg)
}

// Parse a given string into exactly one S-expression, or return an error if
// the string is malformed.
func Parse(text string) (SExp, error) {
	p := NewParser(text)
	// Parse the input
	sExp, err := p.Parse()
	//
	if err != nil {
		return nil, err
	} else if sExp == nil {
		return nil, p.error("empty expression")
	}
	// Sanity check everything was parsed
	if p.SkipWhiteSpace(); p.index != len(p.text) {
		return nil, p.error("unexpected remainder")
	}
	// Done
	return sExp, nil
}

// ParseAll converts a given string into zero or more S-expressions, or returns
// an error if the string is malformed.
func ParseAll(text string) ([]SExp, error) {
	p := NewParser(text)
	//
	terms := make([]SExp, 0)
	// Parse the input
	for {
		term, err := p.Parse()
		// Sanity check everything was parsed
		if err != nil {
			return terms, err
		} else if term == nil {
			// EOF reached
			return terms, nil
		}

		terms = append(terms, term)
	}
}

// Parser represents a parser in the process of parsing a given string into one
// or more S-expressions.
type Parser struct {
	// Cache (for simplicity)
	text []rune
	// Determine current position within text
	index int
}

// NewParser constructs a new instance of Parser
func NewParser(text string) *Parser {
	return &Parser{[]rune(text), 0}
}

// Parse the next S-Expression, or produce an error.  This returns nil when the
// end of the text is reached.
func (p *Parser) Parse() (SExp, *SyntaxError) {
	// Extract next token from the stream
	token := p.Next()
	//
	switch {
	case token == nil:
		return nil, nil
	case len(token) == 1 && (token[0] == ')' || token[0] == ']'):
		p.index-- // backup
		return nil, p.error("unexpected end-of-list")
	case len(token) == 1 && token[0] == '(':
		elements, err := p.parseSequence(')')
		if err != nil {
			return nil, err
		}
		//
		return &List{elements}, nil
	case len(token) == 1 && token[0] == '[':
		elements, err := p.parseSequence(']')
		if err != nil {
			return nil, err
		}
		//
		return &Array{elements}, nil
	default:
		// Must be a symbol
		return &Symbol{string(token)}, nil
	}
}

// Next extracts the next token from a given string.
func (p *Parser) Next() []rune {
	// Skip any whitespace and/or comments.
	p.SkipWhiteSpace()
	// Catch end-of-file
	if p.index == len(p.text) {
		return nil
	}
	// Check what we have
	switch p.text[p.index] {
	case '(', ')', '[', ']':
		// List/array begin / end
		p.index = p.index + 1
		return p.text[p.index-1 : p.index]
	}
	// Symbol
	return p.parseSymbol()
}

// SkipWhiteSpace skips over any whitespace, including comments.
func (p *Parser) SkipWhiteSpace() {
	for p.index < len(p.text) && (unicode.IsSpace(p.text[p.index]) || p.text[p.index] == ';') {
		if p.text[p.index] != ';' {
			p.index++
			continue
		}
		// Skip comment up to end of line
		for p.index < len(p.text) && p.text[p.index] != '\n' {
			p.index++
		}
	}
}

func (p *Parser) parseSymbol() []rune {
	start := p.index
	//
	for p.index < len(p.text) && isSymbolLetter(p.text[p.index]) {
		p.index++
	}
	//
	return p.text[start:p.index]
}

func (p *Parser) parseSequence(terminator rune) ([]SExp, *SyntaxError) {
	var elements []SExp

	for {
		p.SkipWhiteSpace()
		//
		if p.index == len(p.text) {
			return nil, p.error("unexpected end-of-file")
		} else if p.text[p.index] == terminator {
			p.index++
			return elements, nil
		}
		// Parse next element
		element, err := p.Parse()
		if err != nil {
			return nil, err
		}
		// Continue around!
		elements = append(elements, element)
	}
}

// Construct a parser error at the current position in the input stream.
func (p *Parser) error(msg string) *SyntaxError {
	return &SyntaxError{p.index, msg}
}

func isSymbolLetter(r rune) bool {
	return r != '(' && r != ')' && r != '[' && r != ']' && r != ';' && !unicode.IsSpace(r)
}
