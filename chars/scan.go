package chars

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/textparse/combinator"
)

// Position represents a location in scanned text.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func (p Position) advance(text string) Position {
	for _, r := range text {
		p.Offset += utf8.RuneLen(r)
		if r == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
	}
	return p
}

// Token is a scanned token with its position.
type Token struct {
	Kind     string
	Literal  string
	Position Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Position, t.Kind, t.Literal)
}

// Scan splits input into Number, Word and Punct tokens, skipping
// whitespace. The token kind travels as the built value of the parse.
func Scan(input string) ([]Token, error) {
	kind := func(k string) *combinator.Parser[string] {
		return combinator.Build[string](func(string, string) string { return k })
	}
	space := combinator.Many(0, -1, combinator.SingleChar[string](unicode.IsSpace))
	number := Number[string]().Then(kind("Number"))
	word := Word[string]().Then(kind("Word"))
	punct := combinator.SingleChar[string](isPunct).Then(kind("Punct"))
	token := number.Or(word).Or(punct)

	var tokens []Token
	pos := Position{Line: 1, Column: 1}
	rest := input
	for rest != "" {
		st, err := combinator.Run(space, combinator.NewState(rest, ""))
		if err != nil {
			return tokens, fmt.Errorf("skip whitespace: %w", err)
		}
		pos = pos.advance(st.Matched)
		rest = st.Unconsumed
		if rest == "" {
			break
		}

		st, err = combinator.Run(token, combinator.NewState(rest, ""))
		if err != nil {
			return tokens, fmt.Errorf("scan token: %w", err)
		}
		if !st.Ok || st.Matched == "" {
			return tokens, fmt.Errorf("no token matches at %s", pos)
		}
		tokens = append(tokens, Token{Kind: st.Value, Literal: st.Matched, Position: pos})
		pos = pos.advance(st.Matched)
		rest = st.Unconsumed
	}
	return tokens, nil
}

func isPunct(r rune) bool { return !unicode.IsSpace(r) }
