package dbgprint

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bearcove/hotmeal/dom"
	"github.com/bearcove/hotmeal/names"
	"github.com/bearcove/hotmeal/patch"
)

func TestDumpIsPlainWhenNotATerminal(t *testing.T) {
	d, err := dom.Parse(strings.NewReader(`<div class="a">hi<!--note--></div>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var buf bytes.Buffer
	if err := Dump(&buf, d); err != nil {
		t.Fatalf("dump: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<div", `class="a"`, `TEXT "hi"`, `COMMENT "note"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("dump missing %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected plain (no ANSI escapes) output to a non-terminal buffer, got:\n%s", out)
	}
}

func TestSprintRendersOneLinePerPatch(t *testing.T) {
	patches := []patch.Patch{
		patch.SetText(patch.Path(0), "hi"),
		patch.SetAttribute(patch.Path(0), names.QName("class"), "a"),
		patch.RemoveAttribute(patch.Path(0), names.QName("class")),
		patch.Remove(patch.Path(1)),
		patch.Move(patch.Path(0), patch.InsertionPoint{Parent: patch.Path(), Index: 1}),
	}
	out := Sprint(patches)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != len(patches) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(patches), len(lines), out)
	}
}
