package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandStringRunes(t *testing.T) {
	asserts := assert.New(t)

	res := RandStringRunes(16)
	asserts.Len(res, 16)
	res2 := RandStringRunes(16)
	asserts.NotEqual(res, res2)
}

func TestContainsUint(t *testing.T) {
	asserts := assert.New(t)
	asserts.True(ContainsUint([]uint{0, 1, 2}, 1))
	asserts.False(ContainsUint([]uint{0, 1, 2}, 3))
}

func TestContainsString(t *testing.T) {
	asserts := assert.New(t)
	asserts.True(ContainsString([]string{"a", "b"}, "a"))
	asserts.False(ContainsString([]string{"a", "b"}, "c"))
}

func TestReplace(t *testing.T) {
	asserts := assert.New(t)
	res := Replace(map[string]string{"{num}": "1"}, "{num} {num}")
	asserts.Equal("1 1", res)
}

func TestIsEmptyAfterTrim(t *testing.T) {
	asserts := assert.New(t)
	asserts.True(IsEmptyAfterTrim("  \t "))
	asserts.True(IsEmptyAfterTrim(""))
	asserts.False(IsEmptyAfterTrim(" a "))
}
