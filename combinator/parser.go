// Package combinator implements a parser-combinator engine. Parsers thread
// a State through a chain of steps: each step consumes a prefix of the
// unconsumed input and reports a soft pass/fail outcome, while an
// accumulated "built value" carries the caller-visible result. On top of
// plain fail-fast sequencing the engine supports backtracking lookahead
// (Reluctant, Greedy), steps that run inside an already-failed chain
// (Oblivious) and a typed signal channel that unwinds past normal
// short-circuiting (ThrowAnyway, Except).
package combinator

import (
	"sort"
	"unicode/utf8"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("textparse.combinator")

type lookMode int

const (
	lookNone lookMode = iota
	lookReluctant
	lookGreedy
)

// Parser consumes a prefix of a state's unconsumed input and produces a new
// state, or raises a Signal. All parser variants share this one capability;
// they are built from the constructors in this package and composed with
// Then, SkipThen, Build and Or.
//
// Sequences keep their links in a flat, left-associative list so that a
// lookahead link can be evaluated against the remainder of its chain.
type Parser[B any] struct {
	step  func(State[B]) (State[B], error)
	links []link[B] // non-nil for sequence chains; step is nil then

	look      lookMode
	oblivious bool
	inspector bool // runs inside a failed chain, seeing the failed state
}

type link[B any] struct {
	p    *Parser[B]
	drop bool // reset Matched to the chain's base before this link
}

func newStep[B any](step func(State[B]) (State[B], error)) *Parser[B] {
	return &Parser[B]{step: step}
}

// Run evaluates p against s and returns the resulting state. A signal
// raised by p and not intercepted by an Except surfaces as the returned
// error; no partial state is produced in that case.
func Run[B any](p *Parser[B], s State[B]) (State[B], error) {
	return p.apply(s)
}

func (p *Parser[B]) apply(s State[B]) (State[B], error) {
	if p.links != nil {
		return evalLinks(p.links, s, s.Matched)
	}
	return p.step(s)
}

// Then sequences p and q: q runs on p's output and the composite fails as
// soon as p fails, without running q. The composite matched text is p's
// followed by q's.
func (p *Parser[B]) Then(q *Parser[B]) *Parser[B] {
	return joinChain(p, q, false)
}

// SkipThen sequences p and q like Then, but the composite matched text is
// q's alone; p's text is consumed silently.
func (p *Parser[B]) SkipThen(q *Parser[B]) *Parser[B] {
	return joinChain(p, q, true)
}

// Or tries p first and keeps its result on success. When p soft-fails, q
// runs against the original incoming state, untouched by p's partial
// consumption, and its result stands either way. Signals raised by p
// propagate without trying q.
func (p *Parser[B]) Or(q *Parser[B]) *Parser[B] {
	return newStep(func(s State[B]) (State[B], error) {
		out, err := p.apply(s)
		if err != nil {
			return State[B]{}, err
		}
		if out.Ok {
			return out, nil
		}
		return q.apply(s)
	})
}

// Build attaches a value computation to p: once p has succeeded, the chain
// value is recomputed from the current value and matched text. It is
// shorthand for chaining the elementary Build step after p.
func (p *Parser[B]) Build(f func(value B, matched string) B) *Parser[B] {
	return p.Then(Build[B](f))
}

func joinChain[B any](p, q *Parser[B], drop bool) *Parser[B] {
	links := make([]link[B], 0, 2)
	if p.links != nil && p.look == lookNone && !p.oblivious {
		links = append(links, p.links...)
	} else {
		links = append(links, link[B]{p: p})
	}
	links = append(links, link[B]{p: q, drop: drop})
	return &Parser[B]{links: links}
}

// evalLinks walks a chain. base is the matched text accumulated outside
// this chain; drop links reset to it rather than to the empty string so a
// SkipThen buried in a sub-chain cannot erase its caller's matched text.
func evalLinks[B any](links []link[B], in State[B], base string) (State[B], error) {
	cur, lastGood := in, in
	for i, l := range links {
		switch {
		case cur.Ok:
			if l.p.look != lookNone && i < len(links)-1 {
				return evalLookahead(l, links[i+1:], cur, base)
			}
			next := cur
			if l.drop {
				next.Matched = base
			}
			out, err := l.p.apply(next)
			if err != nil {
				return State[B]{}, err
			}
			cur = out
			if out.Ok {
				lastGood = out
			}
		case l.p.inspector:
			out, err := l.p.apply(cur)
			if err != nil {
				return State[B]{}, err
			}
			cur = out
		case l.p.oblivious:
			next := lastGood
			if l.drop {
				next.Matched = base
			}
			out, err := l.p.apply(next)
			if err != nil {
				return State[B]{}, err
			}
			cur = out
			if out.Ok {
				lastGood = out
			}
		}
	}
	return cur, nil
}

// evalLookahead drives the trial loop for a reluctant or greedy link: it
// enumerates the link parser's possible match lengths, orders them
// shortest- or longest-first and commits to the first candidate that lets
// the remainder of the chain succeed.
func evalLookahead[B any](l link[B], rest []link[B], cur State[B], base string) (State[B], error) {
	start := cur
	if l.drop {
		start.Matched = base
	}

	cands, err := matchCandidates(l.p, start)
	if err != nil {
		return State[B]{}, err
	}
	if l.p.look == lookGreedy {
		sort.Slice(cands, func(i, j int) bool {
			return len(cands[i].Unconsumed) < len(cands[j].Unconsumed)
		})
	} else {
		sort.Slice(cands, func(i, j int) bool {
			return len(cands[i].Unconsumed) > len(cands[j].Unconsumed)
		})
	}
	log.Debugf("lookahead: trying %d candidate match lengths", len(cands))

	var lastFail State[B]
	haveFail := false
	for _, cand := range cands {
		out, err := evalLinks(rest, cand, base)
		if err != nil {
			return State[B]{}, err
		}
		if out.Ok {
			log.Debugf("lookahead: committed with %d bytes unconsumed", len(cand.Unconsumed))
			return out, nil
		}
		lastFail = out
		haveFail = true
	}
	if haveFail {
		return lastFail, nil
	}

	// The wrapped parser itself never matched; report its own failure.
	out, err := l.p.apply(start)
	if err != nil {
		return State[B]{}, err
	}
	out.Ok = false
	return out, nil
}

// matchCandidates enumerates the distinct amounts of input p can consume
// from s by running it against successively longer prefixes of the
// unconsumed input. Returned states have their unconsumed input restored
// relative to the full input, one state per distinct consumption length.
func matchCandidates[B any](p *Parser[B], s State[B]) ([]State[B], error) {
	full := s.Unconsumed
	seen := make(map[int]bool)
	var out []State[B]
	for k := 0; k <= len(full); k++ {
		if k < len(full) && !utf8.RuneStart(full[k]) {
			continue
		}
		trial := s
		trial.Unconsumed = full[:k]
		res, err := p.apply(trial)
		if err != nil {
			return nil, err
		}
		if !res.Ok {
			continue
		}
		consumed := k - len(res.Unconsumed)
		if seen[consumed] {
			continue
		}
		seen[consumed] = true
		res.Unconsumed = full[consumed:]
		out = append(out, res)
	}
	return out, nil
}
