package combinator

// State carries a parse through a chain of parsers. It is passed and
// returned by value; parsers never share mutable state.
//
// Unconsumed and Matched are substrings of the one input string given to
// NewState, so they reference the original backing array rather than copy
// it. Force produces detached copies when the original buffer must be
// released early.
type State[B any] struct {
	// Unconsumed is the suffix of the original input not yet committed.
	Unconsumed string

	// Matched is the input text attributed to the current chain link.
	// Matching steps extend it, Morph rewrites it and inspecting steps
	// leave it alone; it is not maintained by the engine itself.
	Matched string

	// Value is the caller-visible accumulated result.
	Value B

	// Ok reports soft success or failure of the current link.
	Ok bool
}

// NewState builds the initial state for a top-level parse: nothing consumed,
// nothing matched, the given starting value.
func NewState[B any](input string, value B) State[B] {
	return State[B]{Unconsumed: input, Value: value, Ok: true}
}
