package chars

import (
	"testing"

	"github.com/dhamidi/textparse/combinator"
)

func TestDigits(t *testing.T) {
	st, err := combinator.Run(Digits[int](), combinator.NewState("123ab", 0))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !st.Ok || st.Matched != "123" || st.Unconsumed != "ab" {
		t.Errorf("got (%v, %q, %q), want (true, %q, %q)", st.Ok, st.Matched, st.Unconsumed, "123", "ab")
	}

	st, err = combinator.Run(Digits[int](), combinator.NewState("ab", 0))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if st.Ok {
		t.Error("expected failure without a leading digit")
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		input      string
		ok         bool
		matched    string
		unconsumed string
	}{
		{"-3.14xyz", true, "-3.14", "xyz"},
		{"+7", true, "+7", ""},
		{"12.", true, "12", "."},
		{"42", true, "42", ""},
		{"abc", false, "", ""},
		{"-", false, "", ""},
	}
	for _, tt := range tests {
		st, err := combinator.Run(Number[int](), combinator.NewState(tt.input, 0))
		if err != nil {
			t.Fatalf("Number on %q: %v", tt.input, err)
		}
		if st.Ok != tt.ok {
			t.Errorf("Number on %q: ok = %v, want %v", tt.input, st.Ok, tt.ok)
			continue
		}
		if !tt.ok {
			continue
		}
		if st.Matched != tt.matched || st.Unconsumed != tt.unconsumed {
			t.Errorf("Number on %q = (%q, %q), want (%q, %q)",
				tt.input, st.Matched, st.Unconsumed, tt.matched, tt.unconsumed)
		}
	}
}

func TestWhitespace(t *testing.T) {
	st, err := combinator.Run(Whitespace[int](), combinator.NewState(" \t\nx", 0))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !st.Ok || st.Matched != " \t\n" || st.Unconsumed != "x" {
		t.Errorf("got (%v, %q, %q)", st.Ok, st.Matched, st.Unconsumed)
	}
}

func TestLine(t *testing.T) {
	st, err := combinator.Run(Line[int](false), combinator.NewState("ab\ncd", 0))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if st.Matched != "ab" || st.Unconsumed != "cd" {
		t.Errorf("got (%q, %q), want (%q, %q)", st.Matched, st.Unconsumed, "ab", "cd")
	}

	st, err = combinator.Run(Line[int](true), combinator.NewState("ab\ncd", 0))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if st.Matched != "ab\n" || st.Unconsumed != "cd" {
		t.Errorf("got (%q, %q), want (%q, %q)", st.Matched, st.Unconsumed, "ab\n", "cd")
	}
}

func TestUpTo(t *testing.T) {
	st, err := combinator.Run(UpTo[int]("world", true, true), combinator.NewState("hello world!", 0))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !st.Ok || st.Matched != "hello world" || st.Unconsumed != "!" {
		t.Errorf("got (%v, %q, %q), want (true, %q, %q)", st.Ok, st.Matched, st.Unconsumed, "hello world", "!")
	}

	st, err = combinator.Run(UpTo[int]("world", true, false), combinator.NewState("hello world!", 0))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !st.Ok || st.Matched != "hello " || st.Unconsumed != "!" {
		t.Errorf("got (%v, %q, %q), want the literal consumed but not reported", st.Ok, st.Matched, st.Unconsumed)
	}

	st, err = combinator.Run(UpTo[int]("absent", true, true), combinator.NewState("hello world!", 0))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if st.Ok {
		t.Error("expected failure when the literal never occurs")
	}
}

func TestBalanced(t *testing.T) {
	st, err := combinator.Run(Balanced[int]('(', ')'), combinator.NewState("(a(b)c)x", 0))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !st.Ok || st.Matched != "(a(b)c)" || st.Unconsumed != "x" {
		t.Errorf("got (%v, %q, %q), want (true, %q, %q)", st.Ok, st.Matched, st.Unconsumed, "(a(b)c)", "x")
	}

	for _, input := range []string{"((a)", "x", ""} {
		st, err = combinator.Run(Balanced[int]('(', ')'), combinator.NewState(input, 0))
		if err != nil {
			t.Fatalf("run on %q: %v", input, err)
		}
		if st.Ok {
			t.Errorf("expected failure on %q", input)
		}
	}
}

func TestScan(t *testing.T) {
	tokens, err := Scan("foo 42 +\nbar")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	want := []Token{
		{Kind: "Word", Literal: "foo", Position: Position{Offset: 0, Line: 1, Column: 1}},
		{Kind: "Number", Literal: "42", Position: Position{Offset: 4, Line: 1, Column: 5}},
		{Kind: "Punct", Literal: "+", Position: Position{Offset: 7, Line: 1, Column: 8}},
		{Kind: "Word", Literal: "bar", Position: Position{Offset: 9, Line: 2, Column: 1}},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, tok := range tokens {
		if tok != want[i] {
			t.Errorf("token %d = %v, want %v", i, tok, want[i])
		}
	}
}
