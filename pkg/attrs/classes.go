package attrs

import "strings"

// SplitClasses breaks a class attribute into its tokens.
func SplitClasses(raw string) []string {
	return strings.Fields(raw)
}

// CheckClasses reports whether class is one of the tokens in list. Matching is
// exact and case-sensitive; "form-horizontal-ish" does not match
// "form-horizontal".
func CheckClasses(class string, list []string) bool {
	for _, token := range list {
		if token == class {
			return true
		}
	}
	return false
}

// HasClass reports whether a's class attribute carries class.
func HasClass(a *Attrs, class string) bool {
	return CheckClasses(class, SplitClasses(a.Value("class")))
}

// InjectClasses appends each class token to a's class attribute unless it is
// already present. Existing tokens keep their relative order. Arguments may
// carry several space separated tokens. A nil bag is replaced by a new one.
func InjectClasses(a *Attrs, classes ...string) *Attrs {
	if a == nil {
		a = &Attrs{}
	}
	existing := SplitClasses(a.Value("class"))
	added := false
	for _, raw := range classes {
		for _, token := range SplitClasses(raw) {
			if CheckClasses(token, existing) {
				continue
			}
			existing = append(existing, token)
			added = true
		}
	}
	if added {
		a.Set("class", strings.Join(existing, " "))
	}
	return a
}

// RemoveClasses drops the supplied tokens from a's class attribute. The class
// attribute is deleted when nothing remains.
func RemoveClasses(a *Attrs, classes ...string) *Attrs {
	if a == nil || !a.Has("class") {
		return a
	}
	drop := make(map[string]struct{})
	for _, raw := range classes {
		for _, token := range SplitClasses(raw) {
			drop[token] = struct{}{}
		}
	}
	var kept []string
	for _, token := range SplitClasses(a.Value("class")) {
		if _, ok := drop[token]; !ok {
			kept = append(kept, token)
		}
	}
	if len(kept) == 0 {
		return a.Delete("class")
	}
	return a.Set("class", strings.Join(kept, " "))
}

// InjectARIA sets aria-{name} unless the caller already supplied it.
func InjectARIA(a *Attrs, name, value string) *Attrs {
	if a == nil {
		a = &Attrs{}
	}
	key := "aria-" + strings.TrimPrefix(name, "aria-")
	return a.SetDefault(key, value)
}

// ClassPrefix renders the class attribute as "token token " so templates can
// concatenate it ahead of their own classes. Empty when no class is set.
func ClassPrefix(a *Attrs) string {
	tokens := SplitClasses(a.Value("class"))
	if len(tokens) == 0 {
		return ""
	}
	return strings.Join(tokens, " ") + " "
}
