package attrs

import "testing"

func TestInjectClasses(t *testing.T) {
	cases := []struct {
		name     string
		existing string
		inject   []string
		want     string
	}{
		{name: "empty", inject: []string{"form-control"}, want: "form-control"},
		{name: "append keeps order", existing: "b a", inject: []string{"c"}, want: "b a c"},
		{name: "no duplicate", existing: "form-control is-invalid", inject: []string{"form-control"}, want: "form-control is-invalid"},
		{name: "multi token argument", existing: "a", inject: []string{"b a c"}, want: "a b c"},
		{name: "case sensitive", existing: "Btn", inject: []string{"btn"}, want: "Btn btn"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := New()
			if tc.existing != "" {
				a.Set("class", tc.existing)
			}
			got := InjectClasses(a, tc.inject...).Value("class")
			if got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestInjectClassesLeavesOtherAttributes(t *testing.T) {
	a := New("id", "x", "class", "one", "name", "y")
	InjectClasses(a, "two")
	if got, want := a.Format(), ` id="x" class="one two" name="y"`; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestInjectClassesNilBag(t *testing.T) {
	if got := InjectClasses(nil, "a").Value("class"); got != "a" {
		t.Fatalf("want class a, got %q", got)
	}
}

func TestCheckClassesExactToken(t *testing.T) {
	list := SplitClasses("my-form-horizontal  form-inline")
	if CheckClasses("form-horizontal", list) {
		t.Fatalf("substring must not match")
	}
	if !CheckClasses("form-inline", list) {
		t.Fatalf("expected exact token match")
	}
}

func TestRemoveClasses(t *testing.T) {
	a := New("class", "a b c")
	RemoveClasses(a, "b")
	if a.Value("class") != "a c" {
		t.Fatalf("unexpected class %q", a.Value("class"))
	}
	RemoveClasses(a, "a c")
	if a.Has("class") {
		t.Fatalf("expected class removed")
	}
}

func TestInjectARIAKeepsCallerValue(t *testing.T) {
	a := New("aria-describedby", "custom")
	InjectARIA(a, "describedby", "field-help")
	if a.Value("aria-describedby") != "custom" {
		t.Fatalf("caller value overwritten")
	}
}

func TestClassPrefix(t *testing.T) {
	if got := ClassPrefix(New("class", "container-class")); got != "container-class " {
		t.Fatalf("unexpected prefix %q", got)
	}
	if got := ClassPrefix(New()); got != "" {
		t.Fatalf("expected empty prefix, got %q", got)
	}
}
