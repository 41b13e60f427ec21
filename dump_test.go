package dsarray

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/uax/uax11"
)

func TestDump(t *testing.T) {
	var sb strings.Builder
	opts := &DumpOptions{MaxWidth: 10, Context: uax11.LatinContext}
	if err := Dump(Of("zero", "one", "two"), &sb, opts); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}
	out := sb.String()
	t.Logf("\n%s", out)
	for _, want := range []string{"#3 one", "#1 zero", "#1 two"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected dump to contain %q", want)
		}
	}
}

func TestDumpEmptyChildren(t *testing.T) {
	var sb strings.Builder
	a := Of(0, 1)
	if err := Dump(a, &sb, &DumpOptions{}); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}
	if !strings.Contains(sb.String(), "◌") {
		t.Errorf("expected empty child marker in dump:\n%s", sb.String())
	}
	sb.Reset()
	if err := Dump(New[int](), &sb, &DumpOptions{}); err != nil || sb.String() != "◌\n" {
		t.Errorf("unexpected dump of empty array: %q, %v", sb.String(), err)
	}
}

func TestTruncate(t *testing.T) {
	s := truncate("abcdefghij", 5, uax11.LatinContext)
	if s != "abcd…" {
		t.Errorf("truncate = %q, want %q", s, "abcd…")
	}
	if s := truncate("abc", 5, uax11.LatinContext); s != "abc" {
		t.Errorf("short strings must not be truncated, got %q", s)
	}
}

func TestToDot(t *testing.T) {
	var sb strings.Builder
	if err := ToDot(Of(1, 2, 3), &sb); err != nil {
		t.Fatalf("ToDot failed: %v", err)
	}
	out := sb.String()
	if !strings.HasPrefix(out, "strict digraph {") || !strings.HasSuffix(out, "}\n") {
		t.Fatalf("output is not a DOT graph:\n%s", out)
	}
	if !strings.Contains(out, `label="2\n#3"`) {
		t.Errorf("expected root node label in DOT output:\n%s", out)
	}
	if strings.Count(out, "->") != 6 {
		t.Errorf("expected 6 edges (2 inner, 4 empty), got %d", strings.Count(out, "->"))
	}
}

// flakyWriter fails its first write only.
type flakyWriter struct {
	writes int
}

func (w *flakyWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.writes == 1 {
		return 0, errors.New("disk full")
	}
	return len(p), nil
}

func TestToDotReportsWriteError(t *testing.T) {
	w := &flakyWriter{}
	if err := ToDot(Of(1, 2, 3), w); err == nil {
		t.Errorf("expected ToDot to report a failing writer")
	}
	if w.writes != 1 {
		t.Errorf("expected DOT output to be written at once, got %d writes", w.writes)
	}
}
