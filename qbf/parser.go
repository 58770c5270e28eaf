package qbf

import (
	"fmt"
	"io"
	"text/scanner"
)

// Parsed is the result of parsing a textual formula.
type Parsed struct {
	Formula Formula
	// Free associates the name of each unquantified variable with the
	// variable representing it in Formula.
	Free map[string]*Variable
}

type parser struct {
	s      scanner.Scanner
	eof    bool   // Have we reached eof yet?
	tok    rune   // Class of the last token read
	token  string // Last token read
	scopes []map[string]*Variable
	free   map[string]*Variable
}

// Parse parses the formula from the given input Reader.
// Formulas are written using the following operators (from lowest to highest priority) :
//
// - for an equivalence, the "=" operator,
// - for an implication, the "->" operator,
// - for a disjunction ("or"), the "|" operator,
// - for an exclusive disjunction ("xor"), the "+" operator,
// - for a conjunction ("and"), the "&" operator,
// - for a negation, the "^" unary operator.
//
// Parentheses can be used to group subformulas, and 0 and 1 denote the constants.
// A quantifier is written as a keyword ("exists", "forall" or "unique"),
// followed by the names it binds, a colon, and its body, which extends as far
// as possible. For instance:
//
//	forall a: exists b: (a + b) & ^(a = b)
//
// A name bound again by a nested quantifier denotes a new variable in the
// nested body. Names bound by no quantifier are free variables.
func Parse(r io.Reader) (*Parsed, error) {
	var s scanner.Scanner
	s.Init(r)
	s.Error = func(*scanner.Scanner, string) {}
	p := parser{s: s, free: make(map[string]*Variable)}
	p.scan()
	f, err := p.parseEquiv()
	if err != nil {
		return nil, err
	}
	if !p.eof {
		return nil, fmt.Errorf("unexpected token %q at %s", p.token, p.s.Pos())
	}
	return &Parsed{Formula: f, Free: p.free}, nil
}

func isOperator(token string) bool {
	return token == "=" || token == "->" || token == "|" || token == "+" || token == "&" || token == ":"
}

func quantifierKind(token string) (Kind, bool) {
	switch token {
	case "exists":
		return KindExists, true
	case "forall":
		return KindForall, true
	case "unique":
		return KindExistsUnique, true
	default:
		return 0, false
	}
}

func (p *parser) scan() {
	if p.eof {
		return
	}
	p.tok = p.s.Scan()
	p.eof = p.tok == scanner.EOF
	p.token = p.s.TokenText()
}

// lookup returns the variable currently associated with name.
// Unknown names are free variables.
func (p *parser) lookup(name string) *Variable {
	for i := len(p.scopes) - 1; i >= 0; i-- {
		if v, ok := p.scopes[i][name]; ok {
			return v
		}
	}
	v, ok := p.free[name]
	if !ok {
		v = NewVariable()
		p.free[name] = v
	}
	return v
}

func (p *parser) parseEquiv() (f Formula, err error) {
	if p.eof {
		return nil, fmt.Errorf("at position %v, expected expression, found EOF", p.s.Pos())
	}
	if isOperator(p.token) {
		return nil, fmt.Errorf("unexpected token %q at %s", p.token, p.s.Pos())
	}
	f, err = p.parseImplies()
	if err != nil {
		return nil, err
	}
	if p.eof {
		return f, nil
	}
	if p.token == "=" {
		p.scan()
		if p.eof {
			return nil, fmt.Errorf("unexpected EOF")
		}
		f2, err := p.parseEquiv()
		if err != nil {
			return nil, err
		}
		return Iff(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseImplies() (f Formula, err error) {
	f, err = p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.eof {
		return f, nil
	}
	if p.token == "-" {
		p.scan()
		if p.eof {
			return nil, fmt.Errorf("unexpected EOF")
		}
		if p.token != ">" {
			return nil, fmt.Errorf("invalid token %q at %v", "-"+p.token, p.s.Pos())
		}
		p.scan()
		if p.eof {
			return nil, fmt.Errorf("unexpected EOF")
		}
		f2, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		return Implies(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseOr() (f Formula, err error) {
	f, err = p.parseXor()
	if err != nil {
		return nil, err
	}
	if p.eof {
		return f, nil
	}
	if p.token == "|" {
		p.scan()
		if p.eof {
			return nil, fmt.Errorf("unexpected EOF")
		}
		f2, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		return Or(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseXor() (f Formula, err error) {
	f, err = p.parseAnd()
	if err != nil {
		return nil, err
	}
	if p.eof {
		return f, nil
	}
	if p.token == "+" {
		p.scan()
		if p.eof {
			return nil, fmt.Errorf("unexpected EOF")
		}
		f2, err := p.parseXor()
		if err != nil {
			return nil, err
		}
		return Xor(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseAnd() (f Formula, err error) {
	f, err = p.parseNot()
	if err != nil {
		return nil, err
	}
	if p.eof {
		return f, nil
	}
	if p.token == "&" {
		p.scan()
		if p.eof {
			return nil, fmt.Errorf("unexpected EOF")
		}
		f2, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		return And(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseNot() (f Formula, err error) {
	if isOperator(p.token) {
		return nil, fmt.Errorf("unexpected token %q at %s", p.token, p.s.Pos())
	}
	if p.token == "^" {
		p.scan()
		if p.eof {
			return nil, fmt.Errorf("unexpected EOF")
		}
		f, err = p.parseNot()
		if err != nil {
			return nil, err
		}
		return Not(f), nil
	}
	return p.parseBasic()
}

func (p *parser) parseQuantifier(kind Kind) (f Formula, err error) {
	p.scan()
	scope := make(map[string]*Variable)
	var vars []*Variable
	for !p.eof && p.tok == scanner.Ident {
		if _, ok := quantifierKind(p.token); ok {
			return nil, fmt.Errorf("unexpected keyword %q at %s", p.token, p.s.Pos())
		}
		if _, ok := scope[p.token]; ok {
			return nil, fmt.Errorf("name %q bound twice at %s", p.token, p.s.Pos())
		}
		v := NewVariable()
		scope[p.token] = v
		vars = append(vars, v)
		p.scan()
	}
	if len(vars) == 0 {
		return nil, fmt.Errorf("expected variable names after %s at %s", kind, p.s.Pos())
	}
	if p.eof || p.token != ":" {
		return nil, fmt.Errorf("expected ':' after quantified names at %s", p.s.Pos())
	}
	p.scan()
	p.scopes = append(p.scopes, scope)
	body, err := p.parseEquiv()
	p.scopes = p.scopes[:len(p.scopes)-1]
	if err != nil {
		return nil, err
	}
	return Quantify(kind, vars, body), nil
}

func (p *parser) parseBasic() (f Formula, err error) {
	if p.eof {
		return nil, fmt.Errorf("at position %v, expected expression, found EOF", p.s.Pos())
	}
	if isOperator(p.token) || p.token == ")" {
		return nil, fmt.Errorf("unexpected token %q at %s", p.token, p.s.Pos())
	}
	if p.token == "(" {
		p.scan()
		f, err = p.parseEquiv()
		if err != nil {
			return nil, err
		}
		if p.eof {
			return nil, fmt.Errorf("expected closing parenthesis, found EOF at %s", p.s.Pos())
		}
		if p.token != ")" {
			return nil, fmt.Errorf("expected closing parenthesis, found %q at %s", p.token, p.s.Pos())
		}
		p.scan()
		return f, nil
	}
	switch p.tok {
	case scanner.Int:
		defer p.scan()
		switch p.token {
		case "0":
			return False, nil
		case "1":
			return True, nil
		default:
			return nil, fmt.Errorf("invalid constant %q at %s", p.token, p.s.Pos())
		}
	case scanner.Ident:
		if kind, ok := quantifierKind(p.token); ok {
			return p.parseQuantifier(kind)
		}
		defer p.scan()
		return p.lookup(p.token), nil
	default:
		return nil, fmt.Errorf("unexpected token %q at %s", p.token, p.s.Pos())
	}
}
