package commands

import (
	"errors"
	"testing"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add buy milk", TypeAdd},
		{"filter active", TypeFilter},
		{"show completed", TypeFilter},
		{"toggle 1770638400000", TypeToggle},
		{"done 1770638400000", TypeToggle},
		{"delete 1770638400000", TypeDelete},
		{"/rm 1770638400000", TypeDelete},
		{"theme", TypeTheme},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAddSplitsDescription(t *testing.T) {
	cmd, err := Parse("/add  Buy milk :: two litres, *semi-skimmed* ")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Title != "Buy milk" || cmd.Add.Description != "two litres, *semi-skimmed*" {
		t.Fatalf("unexpected add args: %+v", *cmd.Add)
	}

	cmd, err = Parse("add Call mum")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Title != "Call mum" || cmd.Add.Description != "" {
		t.Fatalf("unexpected add args: %+v", *cmd.Add)
	}
}

func TestParseRejectsBadArguments(t *testing.T) {
	for _, in := range []string{"add", "add :: only description", "filter", "filter a b", "toggle", "rm 1 2", "theme dark"} {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("parse %q: expected invalid argument error, got %v", in, err)
		}
	}
}

func TestParseEmptyAndUnknown(t *testing.T) {
	_, err := Parse("  / ")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeEmptyInput {
		t.Fatalf("expected empty input error, got %v", err)
	}

	_, err = Parse("/snooze overdue 2 days")
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}
