package commands

import (
	"errors"
	"testing"
)

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add write docs :: in markdown")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Title != "write docs" || a.Description != "in markdown" {
				t.Fatalf("unexpected args: %+v", a)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteTargetsAndTheme(t *testing.T) {
	var got []string
	h := Handlers{
		Filter: func(a FilterArgs) (Result, error) { got = append(got, "filter:"+a.Name); return Result{}, nil },
		Toggle: func(a TargetArgs) (Result, error) { got = append(got, "toggle:"+a.ID); return Result{}, nil },
		Delete: func(a TargetArgs) (Result, error) { got = append(got, "delete:"+a.ID); return Result{}, nil },
		Theme:  func() (Result, error) { got = append(got, "theme"); return Result{}, nil },
	}
	for _, in := range []string{"filter Completed", "toggle 7", "rm 7", "theme"} {
		cmd, err := Parse(in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", in, err)
		}
		if _, err := Execute(cmd, h); err != nil {
			t.Fatalf("execute %q failed: %v", in, err)
		}
	}
	want := []string{"filter:completed", "toggle:7", "delete:7", "theme"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("theme")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
