package combinator

import "errors"

// Signal is a typed, out-of-band unwind, distinct from soft failure: it
// propagates through every enclosing combinator, Or branches included,
// until a kind-matching Except intercepts it or it reaches Run. Ordinary
// grammar mismatch belongs on the soft-failure channel; signals are for
// escaping normal grammar flow.
type Signal struct {
	Kind    string
	Message string
}

// NewSignal builds a signal of the given kind. The message is free-form
// context for the top-level caller.
func NewSignal(kind, message string) *Signal {
	return &Signal{Kind: kind, Message: message}
}

func (s *Signal) Error() string {
	if s.Message == "" {
		return "parse signal: " + s.Kind
	}
	return "parse signal: " + s.Kind + ": " + s.Message
}

// ThrowOnSuccess raises sig when the chain has succeeded so far. Unlike
// ordinary steps it also runs inside an already-failed chain, where it
// passes the failed state through unchanged.
func ThrowOnSuccess[B any](sig *Signal) *Parser[B] {
	p := newStep(func(s State[B]) (State[B], error) {
		if s.Ok {
			return State[B]{}, sig
		}
		return s, nil
	})
	p.inspector = true
	return p
}

// ThrowOnFailure raises sig when the chain has failed so far and passes a
// succeeding chain through unchanged.
func ThrowOnFailure[B any](sig *Signal) *Parser[B] {
	p := newStep(func(s State[B]) (State[B], error) {
		if !s.Ok {
			return State[B]{}, sig
		}
		return s, nil
	})
	p.inspector = true
	return p
}

// ThrowAnyway raises sig unconditionally.
func ThrowAnyway[B any](sig *Signal) *Parser[B] {
	p := newStep(func(s State[B]) (State[B], error) {
		return State[B]{}, sig
	})
	p.inspector = true
	return p
}

// Except runs main and intercepts signals of the given kind. On
// interception the handler, if non-nil, runs against the state from before
// main began; with no handler the original state is reported back as a
// soft failure. Either way the unconsumed input is restored to its
// pre-main value. Signals of any other kind propagate.
func Except[B any](main *Parser[B], kind string, handler *Parser[B]) *Parser[B] {
	return newStep(func(s State[B]) (State[B], error) {
		out, err := main.apply(s)
		if err == nil {
			return out, nil
		}
		var sig *Signal
		if !errors.As(err, &sig) || sig.Kind != kind {
			return State[B]{}, err
		}
		if handler != nil {
			return handler.apply(s)
		}
		s.Ok = false
		return s, nil
	})
}
