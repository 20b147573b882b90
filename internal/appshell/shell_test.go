package appshell

import (
	"context"
	"io"
	"testing"
)

func TestRun_DefaultsToHelp(t *testing.T) {
	var got []string
	code := run(func(_ context.Context, argv []string, _, _ io.Writer) int {
		got = argv
		return 0
	}, nil, io.Discard, io.Discard)
	if code != 0 || len(got) != 1 || got[0] != "--help" {
		t.Fatalf("code=%d argv=%v", code, got)
	}
}

func TestRun_PassesCode(t *testing.T) {
	code := run(func(context.Context, []string, io.Writer, io.Writer) int { return 1 },
		[]string{"collect"}, io.Discard, io.Discard)
	if code != 1 {
		t.Fatalf("want 1, got %d", code)
	}
}
