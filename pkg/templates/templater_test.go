package templates

import (
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestFormatSubstitutesSlots(t *testing.T) {
	tpl := New(Set{"label": `<label{{attrs}}>{{text}}{{tooltip}}</label>`})
	got := tpl.Format("label", Slots{"attrs": ` for="name"`, "text": "Name"})
	if want := `<label for="name">Name</label>`; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestFormatKeepsMalformedPlaceholders(t *testing.T) {
	got := FormatString(`{{ spaced }}{{ok}}{{bad-name}}`, Slots{"ok": "x"})
	if want := `{{ spaced }}x{{bad-name}}`; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestFormatUnknownTemplateIsEmpty(t *testing.T) {
	if got := New().Format("missing", Slots{"content": "x"}); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestSlotsWithPrefersExplicitValues(t *testing.T) {
	got := Slots{"text": "explicit"}.With(map[string]string{"text": "var", "extra": "1"})
	if diff := cmp.Diff(Slots{"text": "explicit", "extra": "1"}, got); diff != "" {
		t.Fatalf("slots mismatch (-want +got):\n%s", diff)
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	tpl := New(Base())
	before := tpl.Snapshot()

	tpl.Push()
	tpl.Set("label", "<b>{{text}}</b>")
	tpl.Set("brandNew", "x")
	tpl.Remove("error")
	tpl.Pop()

	if diff := cmp.Diff(before, tpl.Snapshot()); diff != "" {
		t.Fatalf("pop did not restore registry (-want +got):\n%s", diff)
	}
	if tpl.Depth() != 0 {
		t.Fatalf("expected depth 0, got %d", tpl.Depth())
	}
}

func TestPushPopNests(t *testing.T) {
	tpl := New(Set{"a": "1"})
	tpl.Push()
	tpl.Set("a", "2")
	tpl.Push()
	tpl.Set("a", "3")

	tpl.Pop()
	if got, _ := tpl.Get("a"); got != "2" {
		t.Fatalf("inner pop: want 2, got %s", got)
	}
	tpl.Pop()
	if got, _ := tpl.Get("a"); got != "1" {
		t.Fatalf("outer pop: want 1, got %s", got)
	}
}

func TestPopOnEmptyStackPanics(t *testing.T) {
	defer func() {
		recovered := recover()
		err, ok := recovered.(error)
		if !ok || !errors.Is(err, ErrEmptyScopeStack) {
			t.Fatalf("expected ErrEmptyScopeStack panic, got %v", recovered)
		}
	}()
	New().Pop()
}

func TestLoadFileYAML(t *testing.T) {
	set, err := LoadFile(filepath.Join("testdata", "overrides.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Set{
		"label": `<label class="custom"{{attrs}}>{{text}}</label>`,
		"error": `<p class="err">{{content}}</p>`,
	}
	if diff := cmp.Diff(want, set); diff != "" {
		t.Fatalf("templates mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFSJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"tpl.json": {Data: []byte(`{"help": "<p>{{content}}</p>"}`)},
	}
	set, err := LoadFS(fsys, "tpl.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if set["help"] != "<p>{{content}}</p>" {
		t.Fatalf("unexpected set %v", set)
	}
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	if _, err := Parse([]byte("  "), "empty.yaml"); err == nil {
		t.Fatalf("expected error for empty document")
	}
	if _, err := Parse([]byte("- a\n- b\n"), "list.yaml"); err == nil {
		t.Fatalf("expected error for non-mapping document")
	}
}

func TestTemplaterLoadAddsEntries(t *testing.T) {
	tpl := New(Base())
	if err := tpl.Load(filepath.Join("testdata", "overrides.yaml")); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := tpl.Format("error", Slots{"content": "x"}); got != `<p class="err">x</p>` {
		t.Fatalf("unexpected error template output %q", got)
	}
}

func TestSetMergeAndFill(t *testing.T) {
	base := Set{"a": "1", "b": "2"}
	merged := base.Merge(Set{"b": "3"}, Set{"c": "4"})
	if diff := cmp.Diff(Set{"a": "1", "b": "3", "c": "4"}, merged); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
	filled := Set{"b": "x"}.Fill(base)
	if diff := cmp.Diff(Set{"a": "1", "b": "x"}, filled); diff != "" {
		t.Fatalf("fill mismatch (-want +got):\n%s", diff)
	}
	if base["b"] != "2" {
		t.Fatalf("merge mutated receiver")
	}
}
