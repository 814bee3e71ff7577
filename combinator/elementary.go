package combinator

import (
	"strings"
	"unicode/utf8"
)

// Literal matches str at the start of the unconsumed input. With
// caseSensitive false the comparison uses Unicode case folding over a
// prefix of the same byte length as str.
func Literal[B any](str string, caseSensitive bool) *Parser[B] {
	return newStep(func(s State[B]) (State[B], error) {
		if len(s.Unconsumed) < len(str) {
			s.Ok = false
			return s, nil
		}
		prefix := s.Unconsumed[:len(str)]
		ok := prefix == str
		if !ok && !caseSensitive {
			ok = strings.EqualFold(prefix, str)
		}
		if !ok {
			s.Ok = false
			return s, nil
		}
		s.Matched += prefix
		s.Unconsumed = s.Unconsumed[len(str):]
		s.Ok = true
		return s, nil
	})
}

// Fail reports soft failure without consuming input.
func Fail[B any]() *Parser[B] {
	return newStep(func(s State[B]) (State[B], error) {
		s.Ok = false
		return s, nil
	})
}

// Succeed succeeds without consuming input.
func Succeed[B any]() *Parser[B] {
	return newStep(func(s State[B]) (State[B], error) {
		s.Ok = true
		return s, nil
	})
}

// Test inspects the current value and matched text without consuming
// input: it succeeds iff pred holds, carrying the matched text over
// unchanged in either case.
func Test[B any](pred func(value B, matched string) bool) *Parser[B] {
	return newStep(func(s State[B]) (State[B], error) {
		s.Ok = pred(s.Value, s.Matched)
		return s, nil
	})
}

// SingleChar consumes exactly one character satisfying pred. It fails on
// empty input or a failing predicate.
func SingleChar[B any](pred func(r rune) bool) *Parser[B] {
	return newStep(func(s State[B]) (State[B], error) {
		if s.Unconsumed == "" {
			s.Ok = false
			return s, nil
		}
		r, size := utf8.DecodeRuneInString(s.Unconsumed)
		if !pred(r) {
			s.Ok = false
			return s, nil
		}
		s.Matched += s.Unconsumed[:size]
		s.Unconsumed = s.Unconsumed[size:]
		s.Ok = true
		return s, nil
	})
}

// Everything consumes the entire remaining input. It always succeeds.
func Everything[B any]() *Parser[B] {
	return newStep(func(s State[B]) (State[B], error) {
		s.Matched += s.Unconsumed
		s.Unconsumed = ""
		s.Ok = true
		return s, nil
	})
}

// EndOfInput succeeds iff no input remains; it consumes nothing.
func EndOfInput[B any]() *Parser[B] {
	return newStep(func(s State[B]) (State[B], error) {
		s.Ok = s.Unconsumed == ""
		return s, nil
	})
}

// CharWhile consumes characters one at a time while pred holds. It always
// succeeds, including on a zero-length match. The terminating character is
// removed from the unconsumed input either way; it appears in the matched
// text only when keepTerminator is set.
func CharWhile[B any](pred func(r rune) bool, keepTerminator bool) *Parser[B] {
	return charRun[B](func(r rune) bool { return !pred(r) }, keepTerminator)
}

// CharUntil consumes characters until pred holds, with the same
// terminator handling as CharWhile.
func CharUntil[B any](pred func(r rune) bool, keepTerminator bool) *Parser[B] {
	return charRun[B](pred, keepTerminator)
}

func charRun[B any](stop func(r rune) bool, keepTerminator bool) *Parser[B] {
	return newStep(func(s State[B]) (State[B], error) {
		rest := s.Unconsumed
		for i := 0; i < len(rest); {
			r, size := utf8.DecodeRuneInString(rest[i:])
			if stop(r) {
				matchEnd := i
				if keepTerminator {
					matchEnd = i + size
				}
				s.Matched += rest[:matchEnd]
				s.Unconsumed = rest[i+size:]
				s.Ok = true
				return s, nil
			}
			i += size
		}
		s.Matched += rest
		s.Unconsumed = ""
		s.Ok = true
		return s, nil
	})
}

// Build recomputes the chain value from the current value and matched
// text. Unlike the Build method it is valid as the first element of a
// chain, where it runs against the initial state.
func Build[B any](f func(value B, matched string) B) *Parser[B] {
	return newStep(func(s State[B]) (State[B], error) {
		s.Value = f(s.Value, s.Matched)
		return s, nil
	})
}
