package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/dhamidi/textparse/chars"
	"github.com/dhamidi/textparse/combinator"
	"github.com/spf13/cobra"
)

func newSumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sum <expression>",
		Short: "Evaluate a +/- expression of integers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := evalSum(args[0])
			if err != nil {
				return fmt.Errorf("evaluate %q: %w", args[0], err)
			}
			fmt.Println(total)
			return nil
		},
	}
	return cmd
}

type sumValue struct {
	total int
	sign  int
	bad   bool
}

// evalSum parses and evaluates expressions like "1 + 2 - 3" with the
// combinator engine, threading the running total as the built value.
func evalSum(input string) (int, error) {
	space := combinator.Many(0, -1, combinator.SingleChar[sumValue](unicode.IsSpace))

	// Each operand is absorbed from an independent sub-parse so that only
	// its own digits, not the whole chain's matched text, get converted.
	operand := combinator.Absorb(func(v sumValue, _ int, digits string) sumValue {
		n, err := strconv.Atoi(digits)
		if err != nil {
			v.bad = true
			return v
		}
		v.total += v.sign * n
		return v
	}, chars.Digits[int](), 0)

	// An operand whose digits do not fit an int must raise a signal, not
	// silently contribute nothing to the total. The guard throws only when
	// the bad flag is set; on a clean operand the Or falls through.
	outOfRange := combinator.NewSignal("range", "integer operand out of range")
	operand = operand.Then(
		combinator.Test[sumValue](func(v sumValue, _ string) bool { return v.bad }).
			Then(combinator.ThrowOnSuccess[sumValue](outOfRange)).
			Or(combinator.Succeed[sumValue]()))

	operator := combinator.SingleChar[sumValue](func(r rune) bool { return r == '+' || r == '-' }).
		Build(func(v sumValue, matched string) sumValue {
			if strings.HasSuffix(matched, "-") {
				v.sign = -1
			} else {
				v.sign = 1
			}
			return v
		})

	syntax := combinator.NewSignal("syntax", "expected integers joined by + or -")
	expr := combinator.Build[sumValue](func(v sumValue, _ string) sumValue { v.sign = 1; return v }).
		Then(space).
		Then(operand).
		Then(combinator.Many(0, -1, space.Then(operator).Then(space).Then(operand))).
		Then(space).
		Then(combinator.EndOfInput[sumValue]()).
		Then(combinator.ThrowOnFailure[sumValue](syntax))

	st, err := combinator.Run(expr, combinator.NewState(input, sumValue{}))
	if err != nil {
		return 0, err
	}
	return st.Value.total, nil
}
