package scan

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerBumpWhile(t *testing.T) {
	s := New("   foo")
	n := s.BumpWhile(unicode.IsSpace)
	assert.Equal(t, 3, n)
	c, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, 'f', c)
}

func TestScannerNthLookahead(t *testing.T) {
	s := New("abc")
	r, ok := s.Nth(2)
	require.True(t, ok)
	assert.Equal(t, 'c', r)

	_, ok = s.Nth(3)
	assert.False(t, ok)
}

func TestScannerAtStr(t *testing.T) {
	s := New("</script>")
	assert.True(t, s.AtStr("</script>"))
	assert.False(t, s.AtStr("<script>"))
}

func TestScannerBumpUntilEOL(t *testing.T) {
	s := New("hello\nworld")
	s.BumpUntilEOL()
	assert.Equal(t, "hello", s.CurrentText(0))
	c, _ := s.Current()
	assert.Equal(t, '\n', c)
}

func TestScannerIsCheapToClone(t *testing.T) {
	s := New("abcdef")
	s.Bump()
	snapshot := s // value copy
	s.Bump()
	s.Bump()
	assert.Equal(t, 1, snapshot.Pos())
	assert.Equal(t, 3, s.Pos())
}

func TestScannerPastEOFReturnsFalse(t *testing.T) {
	s := New("")
	_, ok := s.Current()
	assert.False(t, ok)
	_, ok = s.Bump()
	assert.False(t, ok)
}
