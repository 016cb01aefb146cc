package parser

import "testing"

func newTestParser() *Parser {
	return New([]CommandDef{
		{Canonical: "move", Aliases: []string{"go", "walk"}},
		{Canonical: "harvest", Aliases: []string{"pick", "reap"}},
		{Canonical: "sell"},
		{Canonical: "select", Aliases: []string{"hold"}},
		{Canonical: "next", Aliases: []string{"sleep", "end day"}},
		{Canonical: "inventory", Aliases: []string{"inv"}},
	})
}

func TestParseExactCommand(t *testing.T) {
	p := newTestParser()

	intent := p.Parse("harvest")
	if !intent.Matched() || intent.Verb != "harvest" {
		t.Fatalf("exact match failed: %+v", intent)
	}
	if intent.Confidence != 1.0 {
		t.Fatalf("exact match confidence = %v", intent.Confidence)
	}
}

func TestParseAlias(t *testing.T) {
	p := newTestParser()

	intent := p.Parse("inv")
	if intent.Verb != "inventory" {
		t.Fatalf("alias: %+v", intent)
	}

	intent = p.Parse("pick")
	if intent.Verb != "harvest" {
		t.Fatalf("alias: %+v", intent)
	}
}

func TestParseMultiWordAlias(t *testing.T) {
	p := newTestParser()

	intent := p.Parse("end day")
	if intent.Verb != "next" {
		t.Fatalf("phrase alias: %+v", intent)
	}
	if len(intent.Args) != 0 {
		t.Fatalf("phrase alias leaked args: %+v", intent.Args)
	}
}

func TestParseKeepsArguments(t *testing.T) {
	p := newTestParser()

	intent := p.Parse("sell Potato Seed")
	if intent.Verb != "sell" {
		t.Fatalf("verb = %q", intent.Verb)
	}
	if len(intent.Args) != 2 || intent.Args[0] != "potato" || intent.Args[1] != "seed" {
		t.Fatalf("args = %v", intent.Args)
	}
	if intent.CommandLine() != "sell potato seed" {
		t.Fatalf("command line = %q", intent.CommandLine())
	}
}

func TestParsePrefix(t *testing.T) {
	p := newTestParser()

	intent := p.Parse("harv")
	if intent.Verb != "harvest" {
		t.Fatalf("prefix match: %+v", intent)
	}
}

func TestParseTolleratesTypos(t *testing.T) {
	p := newTestParser()

	intent := p.Parse("harvst")
	if intent.Verb != "harvest" {
		t.Fatalf("one-letter typo: %+v", intent)
	}

	intent = p.Parse("invenotry")
	if intent.Verb != "inventory" {
		t.Fatalf("transposition: %+v", intent)
	}
}

func TestParseSuggestsNearMisses(t *testing.T) {
	p := newTestParser()

	intent := p.Parse("hrvets")
	if intent.Matched() {
		t.Fatalf("distant typo matched: %+v", intent)
	}
	if intent.Suggestion != "harvest" {
		t.Fatalf("suggestion = %q, want harvest", intent.Suggestion)
	}
}

func TestParseUnknownInput(t *testing.T) {
	p := newTestParser()

	for _, input := range []string{"", "   ", "xylophone", "!!!"} {
		intent := p.Parse(input)
		if intent.Matched() {
			t.Fatalf("matched %q as %q", input, intent.Verb)
		}
	}
}

func TestNormalise(t *testing.T) {
	cases := map[string]string{
		"  Sell   Potato-Seed ": "sell potato seed",
		"MOVE_UP":               "move up",
		"don't":                 "don t",
		"":                      "",
	}
	for input, want := range cases {
		if got := normalise(input); got != want {
			t.Fatalf("normalise(%q) = %q, want %q", input, got, want)
		}
	}
}
