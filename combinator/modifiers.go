package combinator

// NoConsume runs p and keeps its reported outcome, value and matched text,
// but restores the unconsumed input to its pre-call state: a peek.
func NoConsume[B any](p *Parser[B]) *Parser[B] {
	return newStep(func(s State[B]) (State[B], error) {
		out, err := p.apply(s)
		if err != nil {
			return State[B]{}, err
		}
		out.Unconsumed = s.Unconsumed
		return out, nil
	})
}

// NoBuild runs p but discards any value change it would have produced;
// success, matched text and consumption pass through unchanged.
func NoBuild[B any](p *Parser[B]) *Parser[B] {
	return newStep(func(s State[B]) (State[B], error) {
		out, err := p.apply(s)
		if err != nil {
			return State[B]{}, err
		}
		out.Value = s.Value
		return out, nil
	})
}

// Reluctant marks p for shortest-match-first lookahead. Inside a chain the
// engine widens p's match one candidate length at a time until the
// remainder of the chain succeeds; with no chain remainder p runs as its
// ordinary, non-lookahead self.
func Reluctant[B any](p *Parser[B]) *Parser[B] {
	c := *p
	c.look = lookReluctant
	return &c
}

// Greedy marks p for longest-match-first lookahead: trials start from p's
// longest possible match and narrow until the remainder of the chain
// succeeds.
func Greedy[B any](p *Parser[B]) *Parser[B] {
	c := *p
	c.look = lookGreedy
	return &c
}

// Oblivious marks p as eligible to run even when its chain has already
// failed. It is then fed the last successful state in the chain, not the
// failed one, and its own outcome becomes the chain's current outcome, so
// it can resurrect a failed chain.
func Oblivious[B any](p *Parser[B]) *Parser[B] {
	c := *p
	c.oblivious = true
	return &c
}
