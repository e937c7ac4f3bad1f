// Package mathexpr evaluates arithmetic expressions over a fixed set of
// operators, constants and math functions. Nothing outside that set is
// reachable: unknown names, statements and attribute access simply do not
// parse, which makes the evaluator safe to point at untrusted chat input.
package mathexpr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

const maxFactorialArg = 170

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// Eval parses and evaluates a single arithmetic expression.
// Supported operators: + - * / ^ (power, right-associative) and parentheses.
func Eval(expression string) (float64, error) {
	p := &parser{tokens: nil, pos: 0}
	tokens, err := tokenize(expression)
	if err != nil {
		return 0, err
	}
	if len(tokens) == 0 {
		return 0, fmt.Errorf("empty expression")
	}
	p.tokens = tokens

	result, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.tokens) {
		return 0, fmt.Errorf("unexpected token %q", p.tokens[p.pos].text)
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, fmt.Errorf("result out of range")
	}
	return result, nil
}

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenIdent
	tokenOp
	tokenLParen
	tokenRParen
	tokenComma
)

type token struct {
	kind tokenKind
	text string
	num  float64
}

func tokenize(input string) ([]token, error) {
	out := make([]token, 0, 16)
	runes := []rune(input)

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsDigit(r) || r == '.':
			start := i
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				i++
			}
			text := string(runes[start:i])
			value, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q", text)
			}
			out = append(out, token{kind: tokenNumber, text: text, num: value})
		case unicode.IsLetter(r):
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			out = append(out, token{kind: tokenIdent, text: strings.ToLower(string(runes[start:i]))})
		case strings.ContainsRune("+-*/^", r):
			text := string(r)
			// "**" is an accepted spelling of the power operator.
			if r == '*' && i+1 < len(runes) && runes[i+1] == '*' {
				text = "^"
				i++
			}
			out = append(out, token{kind: tokenOp, text: text})
			i++
		case r == '(':
			out = append(out, token{kind: tokenLParen, text: "("})
			i++
		case r == ')':
			out = append(out, token{kind: tokenRParen, text: ")"})
			i++
		case r == ',':
			out = append(out, token{kind: tokenComma, text: ","})
			i++
		default:
			return nil, fmt.Errorf("unexpected character %q", string(r))
		}
	}

	return out, nil
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) acceptOp(ops string) (string, bool) {
	tok, ok := p.peek()
	if !ok || tok.kind != tokenOp || !strings.Contains(ops, tok.text) {
		return "", false
	}
	p.pos++
	return tok.text, true
}

func (p *parser) expect(kind tokenKind, label string) error {
	tok, ok := p.peek()
	if !ok || tok.kind != kind {
		return fmt.Errorf("expected %s", label)
	}
	p.pos++
	return nil
}

// parseExpr handles + and - at the lowest precedence.
func (p *parser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.acceptOp("+-")
		if !ok {
			return left, nil
		}
		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == "+" {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.acceptOp("*/")
		if !ok {
			return left, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if op == "*" {
			left *= right
		} else {
			if right == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			left /= right
		}
	}
}

// parseUnary binds looser than ^ so that -2^2 evaluates to -(2^2).
func (p *parser) parseUnary() (float64, error) {
	if op, ok := p.acceptOp("+-"); ok {
		value, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if op == "-" {
			return -value, nil
		}
		return value, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (float64, error) {
	base, err := p.parseAtom()
	if err != nil {
		return 0, err
	}
	if _, ok := p.acceptOp("^"); ok {
		// Right-associative; the exponent may carry its own sign.
		exponent, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return math.Pow(base, exponent), nil
	}
	return base, nil
}

func (p *parser) parseAtom() (float64, error) {
	tok, ok := p.peek()
	if !ok {
		return 0, fmt.Errorf("unexpected end of expression")
	}

	switch tok.kind {
	case tokenNumber:
		p.pos++
		return tok.num, nil
	case tokenLParen:
		p.pos++
		value, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if err := p.expect(tokenRParen, ")"); err != nil {
			return 0, err
		}
		return value, nil
	case tokenIdent:
		p.pos++
		if next, ok := p.peek(); ok && next.kind == tokenLParen {
			p.pos++
			args, err := p.parseArgs()
			if err != nil {
				return 0, err
			}
			return applyFunction(tok.text, args)
		}
		if value, ok := constants[tok.text]; ok {
			return value, nil
		}
		return 0, fmt.Errorf("unknown name %q", tok.text)
	default:
		return 0, fmt.Errorf("unexpected token %q", tok.text)
	}
}

// parseArgs consumes arguments up to and including the closing parenthesis.
func (p *parser) parseArgs() ([]float64, error) {
	if tok, ok := p.peek(); ok && tok.kind == tokenRParen {
		p.pos++
		return nil, nil
	}

	args := make([]float64, 0, 2)
	for {
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, value)

		tok, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("expected )")
		}
		switch tok.kind {
		case tokenComma:
			p.pos++
		case tokenRParen:
			p.pos++
			return args, nil
		default:
			return nil, fmt.Errorf("unexpected token %q", tok.text)
		}
	}
}

func applyFunction(name string, args []float64) (float64, error) {
	switch name {
	case "abs":
		if err := wantArgs(name, args, 1); err != nil {
			return 0, err
		}
		return math.Abs(args[0]), nil
	case "round":
		// Halves round to even: round(2.5) is 2, round(3.5) is 4.
		if len(args) == 2 {
			shift := math.Pow(10, math.Trunc(args[1]))
			return math.RoundToEven(args[0]*shift) / shift, nil
		}
		if err := wantArgs(name, args, 1); err != nil {
			return 0, err
		}
		return math.RoundToEven(args[0]), nil
	case "min", "max":
		if len(args) < 2 {
			return 0, fmt.Errorf("%s needs at least 2 arguments", name)
		}
		out := args[0]
		for _, v := range args[1:] {
			if name == "min" && v < out || name == "max" && v > out {
				out = v
			}
		}
		return out, nil
	case "sqrt":
		if err := wantArgs(name, args, 1); err != nil {
			return 0, err
		}
		if args[0] < 0 {
			return 0, fmt.Errorf("sqrt of negative number")
		}
		return math.Sqrt(args[0]), nil
	case "sin":
		if err := wantArgs(name, args, 1); err != nil {
			return 0, err
		}
		return math.Sin(args[0]), nil
	case "cos":
		if err := wantArgs(name, args, 1); err != nil {
			return 0, err
		}
		return math.Cos(args[0]), nil
	case "tan":
		if err := wantArgs(name, args, 1); err != nil {
			return 0, err
		}
		return math.Tan(args[0]), nil
	case "log":
		if err := wantArgs(name, args, 1); err != nil {
			return 0, err
		}
		if args[0] <= 0 {
			return 0, fmt.Errorf("log of non-positive number")
		}
		return math.Log10(args[0]), nil
	case "ln":
		if err := wantArgs(name, args, 1); err != nil {
			return 0, err
		}
		if args[0] <= 0 {
			return 0, fmt.Errorf("ln of non-positive number")
		}
		return math.Log(args[0]), nil
	case "exp":
		if err := wantArgs(name, args, 1); err != nil {
			return 0, err
		}
		return math.Exp(args[0]), nil
	case "floor":
		if err := wantArgs(name, args, 1); err != nil {
			return 0, err
		}
		return math.Floor(args[0]), nil
	case "ceil":
		if err := wantArgs(name, args, 1); err != nil {
			return 0, err
		}
		return math.Ceil(args[0]), nil
	case "pow":
		if err := wantArgs(name, args, 2); err != nil {
			return 0, err
		}
		return math.Pow(args[0], args[1]), nil
	case "factorial":
		if err := wantArgs(name, args, 1); err != nil {
			return 0, err
		}
		return factorial(args[0])
	default:
		return 0, fmt.Errorf("unknown function %q", name)
	}
}

func wantArgs(name string, args []float64, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s takes %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

func factorial(v float64) (float64, error) {
	if v < 0 || v != math.Trunc(v) {
		return 0, fmt.Errorf("factorial requires a non-negative integer")
	}
	if v > maxFactorialArg {
		return 0, fmt.Errorf("factorial argument too large")
	}
	out := 1.0
	for i := 2.0; i <= v; i++ {
		out *= i
	}
	return out, nil
}
