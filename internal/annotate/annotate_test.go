package annotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	inputs := []string{
		"a furry animal",
		"",
		"contains (parentheses) inside",
		"trailing paren)",
		"multi\nline\nbody",
		"日本語の意味",
	}

	for _, kind := range []Kind{KindDefinition, KindMemoryHook} {
		for _, in := range inputs {
			encoded := Encode(in, kind)
			assert.Contains(t, encoded, in)
			assert.Equal(t, in, Decode(encoded, kind))
		}
	}
}

func TestDecode_NonAnnotatedInputUnchanged(t *testing.T) {
	inputs := []string{
		"a furry animal",
		"",
		"This definition was removed", // prefix-like but incomplete
	}

	for _, in := range inputs {
		assert.Equal(t, in, Decode(in, KindDefinition))
		assert.Equal(t, in, Decode(in, KindMemoryHook))
	}
}

func TestDecode_WrongKindUnchanged(t *testing.T) {
	encoded := Encode("remember the cat", KindMemoryHook)

	// A definition decode must not strip a memory hook marker.
	assert.Equal(t, encoded, Decode(encoded, KindDefinition))
	assert.Equal(t, "remember the cat", Decode(encoded, KindMemoryHook))
}

func TestPrefixesDifferByKind(t *testing.T) {
	assert.NotEqual(t, Prefix(KindDefinition), Prefix(KindMemoryHook))
}

func TestIsAnnotated(t *testing.T) {
	assert.True(t, IsAnnotated(Encode("x", KindDefinition), KindDefinition))
	assert.False(t, IsAnnotated("x", KindDefinition))
	assert.False(t, IsAnnotated(Encode("x", KindMemoryHook), KindDefinition))
}
