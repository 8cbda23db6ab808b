//go:build unit

package unitofwork

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSameEntity_PointerIdentity(t *testing.T) {
	t.Parallel()

	first := &order{ID: "1"}
	second := &order{ID: "1"}

	require.True(t, sameEntity(first, first))
	require.False(t, sameEntity(first, second))
}

func TestSameEntity_MapAndFuncIdentity(t *testing.T) {
	t.Parallel()

	m := map[string]int{"a": 1}
	fn := func() {}

	require.True(t, sameEntity(m, m))
	require.False(t, sameEntity(m, map[string]int{"a": 1}))
	require.True(t, sameEntity(fn, fn))
}

func TestSameEntity_SliceIdentity(t *testing.T) {
	t.Parallel()

	backing := []int{1, 2, 3}
	same := backing
	distinct := []int{1, 2, 3}

	require.True(t, sameEntity(backing, same))
	require.False(t, sameEntity(backing, distinct))
}

func TestSameEntity_ComparableValueFallback(t *testing.T) {
	t.Parallel()

	require.True(t, sameEntity("id-1", "id-1"))
	require.False(t, sameEntity("id-1", "id-2"))
	require.False(t, sameEntity("1", 1))
}

func TestSameEntity_KindMismatch(t *testing.T) {
	t.Parallel()

	entity := &order{ID: "1"}

	require.False(t, sameEntity(entity, "1"))
	require.False(t, sameEntity(entity, map[string]int{}))
}

func TestRemoveEntity_PreservesOrder(t *testing.T) {
	t.Parallel()

	first := &order{ID: "1"}
	second := &order{ID: "2"}
	third := &order{ID: "3"}
	bucket := []any{first, second, third}

	bucket = removeEntity(bucket, second)

	require.Equal(t, []any{first, third}, bucket)
	require.Equal(t, bucket, removeEntity(bucket, &order{ID: "absent"}))
}
