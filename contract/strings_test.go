package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	tests := map[string]bool{
		"":       true,
		" ":      true,
		"\t\r\n": true,
		"a":      false,
		"  a  ":  false,
	}
	for text, empty := range tests {
		assert.Equal(t, empty, IsEmpty(text), "IsEmpty(%q)", text)
		assert.Equal(t, !empty, IsNonEmpty(text), "IsNonEmpty(%q)", text)
	}
}

func TestQuoted(t *testing.T) {
	assert.Equal(t, `"abc"`, Quoted("abc"))
	assert.Equal(t, `""`, Quoted(""))
	assert.Equal(t, `"a"b"`, Quoted(`a"b`))
}
