package tasklist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/todols/pkg/types"
)

func statusStore() *Store {
	return New(
		types.NewTask("Alpha", time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local), types.StatusTodo),
		types.NewTask("beta", time.Date(2025, 4, 1, 9, 0, 0, 0, time.Local), types.StatusInProgress),
		types.NewTask("Another", time.Date(2025, 3, 15, 18, 30, 0, 0, time.Local), types.StatusCompleted),
		types.NewTask("gamma", time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local), types.StatusTodo),
	)
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		c    Criterion
		want []int
	}{
		{
			name: "description regex",
			c:    Criterion{Description: ptr("^A")},
			want: []int{1, 3},
		},
		{
			name: "description regex reversed",
			c:    Criterion{Description: ptr("^A"), Reverse: true},
			want: []int{2, 4},
		},
		{
			name: "due regex on formatted text",
			c:    Criterion{Due: ptr(`^\d{2}-03-2025`)},
			want: []int{1, 3},
		},
		{
			name: "due regex on time of day",
			c:    Criterion{Due: ptr("18:30:00$")},
			want: []int{3},
		},
		{
			name: "status",
			c:    Criterion{Status: ptr(types.StatusTodo)},
			want: []int{1, 4},
		},
		{
			name: "status reversed keeps original positions",
			c:    Criterion{Status: ptr(types.StatusCompleted), Reverse: true},
			want: []int{1, 2, 4},
		},
		{
			name: "no match",
			c:    Criterion{Description: ptr("zzz")},
			want: []int{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := statusStore()
			got, err := s.Filter(tt.c)
			require.NoError(t, err)
			assert.Equal(t, tt.want, entryPositions(got))
		})
	}
}

func TestFilterPrecedence(t *testing.T) {
	s := statusStore()
	got, err := s.Filter(Criterion{Description: ptr("beta"), Status: ptr(types.StatusTodo)})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, entryPositions(got))
}

func TestFilterErrors(t *testing.T) {
	t.Run("invalid pattern leaves store unmodified", func(t *testing.T) {
		s := statusStore()
		before := descriptions(s.Tasks())
		_, err := s.Filter(Criterion{Description: ptr("^A[")})
		assert.ErrorIs(t, err, types.ErrPattern)
		assert.Equal(t, before, descriptions(s.Tasks()))
	})

	t.Run("invalid due pattern", func(t *testing.T) {
		_, err := statusStore().Filter(Criterion{Due: ptr("(")})
		assert.ErrorIs(t, err, types.ErrPattern)
	})

	t.Run("no criterion", func(t *testing.T) {
		_, err := statusStore().Filter(Criterion{Reverse: true})
		assert.ErrorIs(t, err, types.ErrNoCriterion)
	})
}

func TestCriterionCount(t *testing.T) {
	assert.Equal(t, 0, Criterion{}.Count())
	assert.Equal(t, 2, Criterion{Description: ptr("a"), Due: ptr("b")}.Count())
}
