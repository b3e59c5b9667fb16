// Package annotate implements the reversible "deleted" marker wrapped around
// definition and memory hook bodies while they are soft-deleted.
//
// The annotated form is user-facing text: a kind-specific prefix, the original
// body verbatim, and a single closing parenthesis. Because the original text
// travels inside the marker, decoding restores it exactly without any side
// metadata.
package annotate

import "strings"

// Kind selects the marker prefix. The two kinds use visibly different
// prefixes so the origin of a deletion is legible in rendered text.
type Kind string

const (
	KindDefinition Kind = "definition"
	KindMemoryHook Kind = "memory_hook"
)

const (
	definitionPrefix = "This definition was removed by its author (original: "
	memoryHookPrefix = "This memory hook was removed by its author (original: "
	suffix           = ")"
)

// Prefix returns the marker prefix for a kind.
func Prefix(kind Kind) string {
	if kind == KindMemoryHook {
		return memoryHookPrefix
	}
	return definitionPrefix
}

// Suffix returns the marker suffix shared by all kinds.
func Suffix() string {
	return suffix
}

// Encode wraps the original text in the kind's deletion marker.
func Encode(original string, kind Kind) string {
	return Prefix(kind) + original + suffix
}

// Decode extracts the original text from an annotated body. Input that does
// not carry the kind's marker is returned unchanged, so calling Decode on
// never-annotated text is a safe no-op.
func Decode(annotated string, kind Kind) string {
	prefix := Prefix(kind)
	if !strings.HasPrefix(annotated, prefix) || !strings.HasSuffix(annotated, suffix) {
		return annotated
	}
	return annotated[len(prefix) : len(annotated)-len(suffix)]
}

// IsAnnotated reports whether the body carries the kind's deletion marker.
func IsAnnotated(body string, kind Kind) bool {
	return strings.HasPrefix(body, Prefix(kind)) && strings.HasSuffix(body, suffix)
}
