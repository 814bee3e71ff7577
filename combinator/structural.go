package combinator

import "strings"

// Many runs p repeatedly from the current state. A run counts only when p
// succeeds; the first failing attempt stops the loop and its partial
// effects are discarded. Negative max means unbounded repetition, negative
// min means no lower bound. The composite succeeds iff the number of
// counted runs reaches min. A run that consumes nothing ends the loop as a
// satisfied repetition, since every further run would only repeat it.
func Many[B any](min, max int, p *Parser[B]) *Parser[B] {
	return newStep(func(s State[B]) (State[B], error) {
		cur := s
		count := 0
		var lastFail State[B]
		failed := false
		for max < 0 || count < max {
			out, err := p.apply(cur)
			if err != nil {
				return State[B]{}, err
			}
			if !out.Ok {
				lastFail = out
				failed = true
				break
			}
			if out.Unconsumed == cur.Unconsumed && out.Matched == cur.Matched {
				out.Ok = true
				return out, nil
			}
			cur = out
			count++
		}
		if min >= 0 && count < min {
			if failed {
				return lastFail, nil
			}
			cur.Ok = false
			return cur, nil
		}
		cur.Ok = true
		return cur, nil
	})
}

// Absorb runs sub, which carries its own independent built-value type,
// against the current unconsumed input starting from init. On success the
// enclosing chain advances past sub's consumption, appends sub's matched
// text and replaces its value via combine. On failure the composite fails
// with value and matched text unchanged.
func Absorb[B, T any](combine func(value B, subValue T, subMatched string) B, sub *Parser[T], init T) *Parser[B] {
	return newStep(func(s State[B]) (State[B], error) {
		out, err := sub.apply(NewState(s.Unconsumed, init))
		if err != nil {
			return State[B]{}, err
		}
		if !out.Ok {
			s.Ok = false
			return s, nil
		}
		s.Unconsumed = out.Unconsumed
		s.Value = combine(s.Value, out.Value, out.Matched)
		s.Matched += out.Matched
		s.Ok = true
		return s, nil
	})
}

// Morph rewrites the matched text in place; value, success and the
// unconsumed input are untouched.
func Morph[B any](f func(matched string) string) *Parser[B] {
	return newStep(func(s State[B]) (State[B], error) {
		s.Matched = f(s.Matched)
		return s, nil
	})
}

// RepeatWhile runs p as long as it keeps succeeding and pred, evaluated
// after each successful run with the 0-based run index, holds. It always
// succeeds, even with zero runs.
func RepeatWhile[B any](pred func(value B, matched string, index int) bool, p *Parser[B]) *Parser[B] {
	return repeatCond(pred, p, false)
}

// RepeatUntil runs p until pred holds, with the same contract as
// RepeatWhile otherwise.
func RepeatUntil[B any](pred func(value B, matched string, index int) bool, p *Parser[B]) *Parser[B] {
	return repeatCond(pred, p, true)
}

func repeatCond[B any](pred func(value B, matched string, index int) bool, p *Parser[B], until bool) *Parser[B] {
	return newStep(func(s State[B]) (State[B], error) {
		cur := s
		for i := 0; ; i++ {
			out, err := p.apply(cur)
			if err != nil {
				return State[B]{}, err
			}
			if !out.Ok {
				break
			}
			// Same zero-width rule as Many: a run that consumed nothing
			// cannot make progress, so stop after evaluating the predicate.
			stalled := out.Unconsumed == cur.Unconsumed && out.Matched == cur.Matched
			cur = out
			if pred(cur.Value, cur.Matched, i) == until || stalled {
				break
			}
		}
		cur.Ok = true
		return cur, nil
	})
}

// Force copies the matched text and unconsumed input out of the original
// input buffer so the buffer can be released once nothing else references
// it. It has no effect on the parse outcome.
func Force[B any]() *Parser[B] {
	return newStep(func(s State[B]) (State[B], error) {
		s.Matched = strings.Clone(s.Matched)
		s.Unconsumed = strings.Clone(s.Unconsumed)
		return s, nil
	})
}
