// Package chars provides ready-made character-class and text parsers built
// entirely on the combinator engine's public interface. Character
// classification is delegated to the predicates passed to SingleChar, so
// nothing here adds engine machinery.
package chars

import (
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/textparse/combinator"
)

// Whitespace matches one or more whitespace characters.
func Whitespace[B any]() *combinator.Parser[B] {
	return combinator.Many(1, -1, combinator.SingleChar[B](unicode.IsSpace))
}

// Digits matches one or more decimal digits.
func Digits[B any]() *combinator.Parser[B] {
	return combinator.Many(1, -1, combinator.SingleChar[B](isDigit))
}

// Letters matches one or more letters.
func Letters[B any]() *combinator.Parser[B] {
	return combinator.Many(1, -1, combinator.SingleChar[B](unicode.IsLetter))
}

// Word matches a run of letters. It is an alias kept for readability at
// call sites that scan prose rather than identifiers.
func Word[B any]() *combinator.Parser[B] {
	return Letters[B]()
}

// Number matches an optional sign, an integer part and an optional decimal
// fraction.
func Number[B any]() *combinator.Parser[B] {
	sign := combinator.Many(0, 1, combinator.SingleChar[B](isSign))
	frac := combinator.Many(0, 1, combinator.Literal[B](".", true).Then(Digits[B]()))
	return sign.Then(Digits[B]()).Then(frac)
}

// Line matches everything up to the next line feed. The line feed is
// consumed either way; it is part of the matched text only when
// keepTerminator is set. The last line of input needs no terminator.
func Line[B any](keepTerminator bool) *combinator.Parser[B] {
	return combinator.CharUntil[B](isLineFeed, keepTerminator)
}

// UpTo consumes input up to and including the first occurrence of lit,
// failing when lit does not occur. With keepLiteral false the matched text
// stops short of the literal, though it is still consumed. Every position
// is re-tested, so the cost is linear in the distance to the match.
func UpTo[B any](lit string, caseSensitive, keepLiteral bool) *combinator.Parser[B] {
	prefix := combinator.Reluctant(combinator.Many(0, -1, combinator.SingleChar[B](anyChar)))
	p := prefix.Then(combinator.Literal[B](lit, caseSensitive))
	if keepLiteral {
		return p
	}
	return p.Then(combinator.Morph[B](func(matched string) string {
		return matched[:len(matched)-len(lit)]
	}))
}

// Balanced matches a balanced run of open/close delimiters, from an
// opening delimiter through its matching close, inclusive. It fails when
// the input does not start with open or the delimiters never balance.
func Balanced[B any](open, close rune) *combinator.Parser[B] {
	depth := func(d int, matched string) int {
		switch r, _ := utf8.DecodeLastRuneInString(matched); r {
		case open:
			return d + 1
		case close:
			return d - 1
		}
		return d
	}
	sub := combinator.SingleChar[int](func(r rune) bool { return r == open }).
		Build(depth).
		Then(combinator.RepeatUntil(func(d int, _ string, _ int) bool { return d == 0 },
			combinator.SingleChar[int](anyChar).Build(depth))).
		Then(combinator.Test[int](func(d int, _ string) bool { return d == 0 }))

	keep := func(v B, _ int, _ string) B { return v }
	return combinator.Absorb(keep, sub, 0)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isSign(r rune) bool { return r == '+' || r == '-' }

func isLineFeed(r rune) bool { return r == '\n' }

func anyChar(rune) bool { return true }
