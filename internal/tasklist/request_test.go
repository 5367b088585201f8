package tasklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/todols/pkg/types"
)

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name: "empty request lists",
			req:  Request{},
		},
		{
			name:    "add without names",
			req:     Request{Add: true, Dues: []string{"01-01-2025 00:00:00"}},
			wantErr: types.ErrMissingField,
		},
		{
			name:    "update without fields",
			req:     Request{Update: ptr(1)},
			wantErr: types.ErrMissingField,
		},
		{
			name: "update with status only",
			req:  Request{Update: ptr(1), Statuses: []types.Status{types.StatusCompleted}},
		},
		{
			name:    "filter without criterion",
			req:     Request{Filter: true},
			wantErr: types.ErrNoCriterion,
		},
		{
			name:    "filter with two criteria",
			req:     Request{Filter: true, Names: []string{"a"}, Dues: []string{"b"}},
			wantErr: types.ErrConflictingCriteria,
		},
		{
			name: "filter with one criterion",
			req:  Request{Filter: true, Statuses: []types.Status{types.StatusTodo}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRequestApply(t *testing.T) {
	t.Run("list only", func(t *testing.T) {
		s := storeOf(t, "a", "b")
		entries, err := Request{}.Apply(s)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, entryPositions(entries))
	})

	t.Run("add then sort", func(t *testing.T) {
		s := storeOf(t, "task10", "task2")
		req := Request{
			Add:   true,
			Names: []string{"task1"},
			Dues:  []string{"01-01-2025 00:00:00"},
			Sort:  SortByDescription,
		}
		entries, err := req.Apply(s)
		require.NoError(t, err)
		assert.Equal(t, []string{"task1", "task2", "task10"}, descriptions(s.Tasks()))
		assert.Equal(t, []int{1, 2, 3}, entryPositions(entries))
	})

	t.Run("update uses first value of each group", func(t *testing.T) {
		s := storeOf(t, "a", "b")
		req := Request{
			Update:   ptr(2),
			Names:    []string{"renamed", "ignored"},
			Statuses: []types.Status{types.StatusInProgress},
		}
		_, err := req.Apply(s)
		require.NoError(t, err)
		task, err := s.At(2)
		require.NoError(t, err)
		assert.Equal(t, "renamed", task.Description)
		assert.Equal(t, types.StatusInProgress, task.Status)
	})

	t.Run("delete then sort reversed", func(t *testing.T) {
		s := storeOf(t, "a", "b", "c", "d")
		_, err := Request{Delete: []int{2}, Sort: SortByDescription, Reverse: true}.Apply(s)
		require.NoError(t, err)
		assert.Equal(t, []string{"d", "c", "a"}, descriptions(s.Tasks()))
	})

	t.Run("filter does not mutate", func(t *testing.T) {
		s := statusStore()
		req := Request{
			Filter:   true,
			Reverse:  true,
			Statuses: []types.Status{types.StatusCompleted},
			Delete:   []int{1},
		}
		entries, err := req.Apply(s)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 4}, entryPositions(entries))
		assert.Equal(t, 4, s.Len())
	})

	t.Run("failing update stops before delete", func(t *testing.T) {
		s := storeOf(t, "a", "b")
		_, err := Request{Update: ptr(9), Names: []string{"x"}, Delete: []int{1}}.Apply(s)
		assert.ErrorIs(t, err, types.ErrIndexOutOfRange)
		assert.Equal(t, 2, s.Len())
	})
}

func TestRequestMutates(t *testing.T) {
	assert.False(t, Request{}.Mutates())
	assert.False(t, Request{Filter: true, Delete: []int{1}}.Mutates())
	assert.True(t, Request{Delete: []int{1}}.Mutates())
	assert.True(t, Request{Sort: SortByStatus}.Mutates())
}
