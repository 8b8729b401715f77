package payroll

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Variables is the named-value bag a formula is evaluated against. Component
// codes become variable names, so it stays a plain string-keyed map instead
// of a struct.
type Variables map[string]float64

// Formulas may start with an "=" marker, a convention carried over from
// spreadsheet-style component configuration screens.
const formulaMarker = "="

var (
	bracedRef = regexp.MustCompile(`\{([^{}]+)\}`)
	identRef  = regexp.MustCompile(`\b[A-Za-z_][A-Za-z0-9_]*\b`)
)

// Evaluate resolves a salary-component formula against vars. Only numeric
// literals, variable references and + - * / ( ) are accepted; there is no
// script engine behind this. Unknown variables resolve to 0. On any parse or
// evaluation failure the result is (0, err) so one malformed formula can
// never abort a payroll computation.
func Evaluate(formula string, vars Variables) (float64, error) {
	expr := strings.TrimSpace(formula)
	if expr == "" {
		return 0, nil
	}
	expr = strings.TrimPrefix(expr, formulaMarker)

	expr = substituteBraced(expr, vars)
	expr = substituteBare(expr, vars)
	expr = zeroUnknown(expr)

	p := &exprParser{input: expr}
	val, err := p.parse()
	if err != nil {
		return 0, fmt.Errorf("formula %q: %w", formula, err)
	}
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, fmt.Errorf("formula %q: result is not finite", formula)
	}
	return val, nil
}

// substituteBraced replaces every {name} reference. Unknown names become 0.
func substituteBraced(expr string, vars Variables) string {
	return bracedRef.ReplaceAllStringFunc(expr, func(m string) string {
		name := strings.TrimSpace(m[1 : len(m)-1])
		return formatValue(vars[name])
	})
}

// substituteBare replaces bare identifiers that match a known variable,
// scanning longest name first so a variable whose name is a prefix of
// another (base vs base_salary) is never partially replaced.
func substituteBare(expr string, vars Variables) string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		if !strings.Contains(expr, name) {
			continue
		}
		expr = replaceIdentifier(expr, name, formatValue(vars[name]))
	}
	return expr
}

// zeroUnknown replaces identifiers that survived substitution. An unknown
// variable resolves to 0 whether it was referenced braced or bare.
func zeroUnknown(expr string) string {
	return identRef.ReplaceAllString(expr, "0")
}

// replaceIdentifier swaps whole-word occurrences of name only. Word
// characters on either side mean the match is inside a longer identifier and
// must be left alone.
func replaceIdentifier(expr, name, value string) string {
	var b strings.Builder
	for i := 0; i < len(expr); {
		j := strings.Index(expr[i:], name)
		if j < 0 {
			b.WriteString(expr[i:])
			break
		}
		start := i + j
		end := start + len(name)

		before := start > 0 && isWordChar(expr[start-1])
		after := end < len(expr) && isWordChar(expr[end])

		b.WriteString(expr[i:start])
		if before || after {
			b.WriteString(name)
		} else {
			b.WriteString(value)
		}
		i = end
	}
	return b.String()
}

func isWordChar(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v < 0 {
		// Parenthesize so "a*b" with b=-2 stays valid arithmetic.
		return "(" + s + ")"
	}
	return s
}

// exprParser is a recursive descent parser over pure arithmetic:
//
//	expr   := term (('+'|'-') term)*
//	term   := unary (('*'|'/') unary)*
//	unary  := '-' unary | factor
//	factor := number | '(' expr ')'
type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) parse() (float64, error) {
	val, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return 0, fmt.Errorf("unexpected character %q at position %d", p.input[p.pos], p.pos)
	}
	return val, nil
}

func (p *exprParser) parseExpr() (float64, error) {
	val, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		if p.pos >= len(p.input) {
			return val, nil
		}
		switch p.input[p.pos] {
		case '+':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			val += rhs
		case '-':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			val -= rhs
		default:
			return val, nil
		}
	}
}

func (p *exprParser) parseTerm() (float64, error) {
	val, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		if p.pos >= len(p.input) {
			return val, nil
		}
		switch p.input[p.pos] {
		case '*':
			p.pos++
			rhs, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			val *= rhs
		case '/':
			p.pos++
			rhs, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			val /= rhs
		default:
			return val, nil
		}
	}
}

func (p *exprParser) parseUnary() (float64, error) {
	p.skipSpace()
	if p.pos < len(p.input) && p.input[p.pos] == '-' {
		p.pos++
		val, err := p.parseUnary()
		return -val, err
	}
	return p.parseFactor()
}

func (p *exprParser) parseFactor() (float64, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0, fmt.Errorf("unexpected end of expression")
	}

	if p.input[p.pos] == '(' {
		p.pos++
		val, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		p.skipSpace()
		if p.pos >= len(p.input) || p.input[p.pos] != ')' {
			return 0, fmt.Errorf("missing closing parenthesis")
		}
		p.pos++
		return val, nil
	}

	return p.parseNumber()
}

func (p *exprParser) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c >= '0' && c <= '9' || c == '.' {
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		return 0, fmt.Errorf("unexpected character %q at position %d", p.input[start], start)
	}
	val, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", p.input[start:p.pos])
	}
	return val, nil
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}
