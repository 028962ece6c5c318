package sparsesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/sparsesheet-go/pkg/sparsesheet/models"
)

func rangeOf(b [4]int) models.Range {
	return models.NewRange(b[0], b[1], b[2], b[3])
}

func TestUsedRange(t *testing.T) {
	s := NewSparseSheet()
	_, ok := UsedRange(s)
	assert.False(t, ok)

	require.NoError(t, s.Set(2, 5, 1))
	r, ok := UsedRange(s)
	require.True(t, ok)
	assert.Equal(t, models.NewRange(0, 0, 2, 5), r)
}

func TestView(t *testing.T) {
	s := NewSparseSheet()
	require.NoError(t, s.Set(0, 0, 1))
	require.NoError(t, s.Set(0, 2, 3))
	require.NoError(t, s.Set(2, 1, 0))
	require.NoError(t, s.Set(5, 5, 9))

	view, err := View(s, models.NewRange(0, 0, 2, 2))
	require.NoError(t, err)

	require.Len(t, view.Rows, 2)
	assert.Equal(t, 0, view.Rows[0].R)
	assert.Equal(t, map[int]float64{0: 1, 2: 3}, view.Rows[0].C)
	assert.Equal(t, 2, view.Rows[1].R)
	assert.Equal(t, map[int]float64{1: 0}, view.Rows[1].C)
	assert.Equal(t, 6, view.Width)
	assert.Equal(t, 6, view.Height)

	v, ok := view.Value(2, 1)
	assert.True(t, ok)
	assert.Equal(t, 0.0, v)
	_, ok = view.Value(1, 1)
	assert.False(t, ok)
}

func TestViewRejectsInvalidArea(t *testing.T) {
	_, err := View(NewSparseSheet(), models.NewRange(3, 0, 1, 0))
	assert.ErrorIs(t, err, ErrInvalidRange)
}
