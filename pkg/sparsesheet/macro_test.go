package sparsesheet_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/sparsesheet-go/pkg/sparsesheet"
	"github.com/ukaji3/sparsesheet-go/pkg/sparsesheet/macro"
)

type recordingMacro struct {
	target sparsesheet.Sheet
}

func (m *recordingMacro) Execute(sheet sparsesheet.Sheet) error {
	m.target = sheet
	return sheet.Set(1, 1, 42)
}

type failingMacro struct{}

func (failingMacro) Execute(sheet sparsesheet.Sheet) error {
	return sheet.Set(-1, 0, 1)
}

func TestMacroSheetPassesItself(t *testing.T) {
	s := sparsesheet.NewMacroSheet()
	m := &recordingMacro{}

	require.NoError(t, s.ExecuteMacro(m))
	assert.Same(t, s, m.target)

	got, err := s.Get(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 42.0, got)
}

func TestMacroSheetSurfacesStoreErrors(t *testing.T) {
	s := sparsesheet.NewMacroSheet()
	err := s.ExecuteMacro(failingMacro{})
	assert.True(t, errors.Is(err, sparsesheet.ErrInvalidCoordinate))
}

func TestWithMacrosWrapsExistingSheet(t *testing.T) {
	base := sparsesheet.NewSparseSheet()
	require.NoError(t, base.Set(0, 0, 7))

	s := sparsesheet.WithMacros(base)
	m, err := macro.NewBulkAssign(1, 0, 1, 1, 2)
	require.NoError(t, err)
	require.NoError(t, s.ExecuteMacro(m))

	got, err := base.Get(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
	got, err = base.Get(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, got)
	assert.Equal(t, 2, base.Height())
}
