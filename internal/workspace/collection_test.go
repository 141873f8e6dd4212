package workspace

// Тесты кэша подтверждённого состояния (internal/workspace/collection.go).
//
// Подготовка окружения:
//   go test ./internal/workspace -v -race -count=1

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/models"
)

func TestCollection_ReplaceAll_CopiesInput(t *testing.T) {
	t.Parallel()

	var c Collection[models.News]

	src := []models.News{{ID: 1}, {ID: 2}}
	c.ReplaceAll(src)

	src[0].Title = "mutated"
	require.Empty(t, c.Snapshot()[0].Title)
	require.Equal(t, 2, c.Len())
}

func TestCollection_Snapshot_IsolatedFromMutations(t *testing.T) {
	t.Parallel()

	var c Collection[models.News]
	c.ReplaceAll([]models.News{{ID: 1}})

	snap := c.Snapshot()
	c.Append(models.News{ID: 2})

	require.Len(t, snap, 1)
	require.Equal(t, 2, c.Len())
}

func TestCollection_ReplaceByID(t *testing.T) {
	t.Parallel()

	var c Collection[models.News]
	c.ReplaceAll([]models.News{{ID: 1, Title: "old"}, {ID: 2}})

	require.True(t, c.ReplaceByID(models.News{ID: 1, Title: "new"}))

	got, ok := c.ByID(1)
	require.True(t, ok)
	require.Equal(t, "new", got.Title)

	// Неизвестный id: false, содержимое не меняется.
	require.False(t, c.ReplaceByID(models.News{ID: 99}))
	require.Equal(t, 2, c.Len())
}

func TestCollection_RemoveByID(t *testing.T) {
	t.Parallel()

	var c Collection[models.News]
	c.ReplaceAll([]models.News{{ID: 1}, {ID: 2}, {ID: 3}})

	require.True(t, c.RemoveByID(2))
	require.Equal(t, 2, c.Len())

	_, ok := c.ByID(2)
	require.False(t, ok)

	require.False(t, c.RemoveByID(2))
}
