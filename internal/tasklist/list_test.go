package tasklist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"taskman/internal/service"
	"taskman/internal/tasklist"
)

func sample() []service.Task {
	return []service.Task{
		{ID: "1", UserEmail: "a@x.com", Title: "Buy milk", Description: "two litres"},
		{ID: "2", UserEmail: "a@x.com", Title: "Write report", Description: "quarterly desc"},
		{ID: "3", UserEmail: "a@x.com", Title: "Call mom"},
	}
}

func TestList_Prepend(t *testing.T) {
	list := tasklist.New(sample())
	created := service.Task{ID: "4", Title: "New task"}

	list.Prepend(created)

	require.Equal(t, 4, list.Len())
	require.Equal(t, created, list.Tasks()[0])
	require.Equal(t, "1", list.Tasks()[1].ID)
}

func TestList_Replace(t *testing.T) {
	list := tasklist.New(sample())
	updated := service.Task{ID: "2", Title: "Write report", Completed: true}

	require.True(t, list.Replace(updated))

	tasks := list.Tasks()
	require.Equal(t, updated, tasks[1])
	// No other element changed.
	require.Equal(t, "Buy milk", tasks[0].Title)
	require.Equal(t, "Call mom", tasks[2].Title)
	require.Equal(t, 3, list.Len())

	require.False(t, list.Replace(service.Task{ID: "nope"}))
}

func TestList_Remove(t *testing.T) {
	list := tasklist.New(sample())

	require.True(t, list.Remove("2"))
	require.Equal(t, 2, list.Len())
	for _, task := range list.Tasks() {
		require.NotEqual(t, "2", task.ID)
	}

	require.False(t, list.Remove("2"))
}

func TestList_Filtered(t *testing.T) {
	list := tasklist.New(sample())

	t.Run("empty filter returns everything in order", func(t *testing.T) {
		require.Equal(t, list.Tasks(), list.Filtered(""))
	})

	t.Run("matches title case-insensitively", func(t *testing.T) {
		result := list.Filtered("MILK")
		require.Len(t, result, 1)
		require.Equal(t, "1", result[0].ID)
	})

	t.Run("matches description", func(t *testing.T) {
		result := list.Filtered("desc")
		require.Len(t, result, 1)
		require.Equal(t, "2", result[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		require.Empty(t, list.Filtered("zzz"))
	})

	t.Run("does not mutate the collection", func(t *testing.T) {
		list.Filtered("milk")
		require.Equal(t, 3, list.Len())
	})
}

func TestList_Resolve(t *testing.T) {
	list := tasklist.New(sample())

	t.Run("by number", func(t *testing.T) {
		task, err := list.Resolve("2")
		require.NoError(t, err)
		require.Equal(t, "2", task.ID)
	})

	t.Run("number out of range", func(t *testing.T) {
		_, err := list.Resolve("4")
		require.ErrorIs(t, err, tasklist.ErrNotFound)
		_, err = list.Resolve("0")
		require.ErrorIs(t, err, tasklist.ErrNotFound)
	})

	t.Run("by id", func(t *testing.T) {
		// IDs win only for non-numeric refs; numeric refs are positions.
		other := tasklist.New([]service.Task{{ID: "abc", Title: "x"}})
		task, err := other.Resolve("abc")
		require.NoError(t, err)
		require.Equal(t, "abc", task.ID)
	})

	t.Run("by title case-insensitive", func(t *testing.T) {
		task, err := list.Resolve("call mom")
		require.NoError(t, err)
		require.Equal(t, "3", task.ID)
	})

	t.Run("ambiguous title", func(t *testing.T) {
		dup := tasklist.New([]service.Task{
			{ID: "1", Title: "Same"},
			{ID: "2", Title: "same"},
		})
		_, err := dup.Resolve("same")
		require.ErrorIs(t, err, tasklist.ErrAmbiguous)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := list.Resolve("does not exist")
		require.ErrorIs(t, err, tasklist.ErrNotFound)
	})
}
