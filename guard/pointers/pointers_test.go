//go:build unit

package pointers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPtr(t *testing.T) {
	t.Parallel()

	p := Ptr(42)
	require.NotNil(t, p)
	assert.Equal(t, 42, *p)

	s := Ptr("handle")
	require.NotNil(t, s)
	assert.Equal(t, "handle", *s)
}

func TestDeref(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, Deref(Ptr(7)))
	assert.Equal(t, 0, Deref[int](nil))
	assert.Equal(t, "", Deref[string](nil))
}

func TestDerefOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, DerefOr(Ptr(7), 50))
	assert.Equal(t, 50, DerefOr(nil, 50))
}

func TestClone(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Clone[int](nil))

	original := Ptr(10)
	copied := Clone(original)

	require.NotNil(t, copied)
	assert.Equal(t, *original, *copied)
	assert.NotSame(t, original, copied)

	*copied = 11
	assert.Equal(t, 10, *original)
}
