package ratings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatrix_PutGetColumnMajor(t *testing.T) {
	m := NewMatrix[string](4)
	require.NoError(t, m.Put(1, 2, &ChoiceList[string]{Choices: []string{"a"}}))

	cell, err := m.Get(1, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, cell.Choices)

	other, err := m.Get(2, 1)
	require.NoError(t, err)
	require.Nil(t, other) // below-diagonal cell independent of (1,2)
}

func TestMatrix_OutOfRange(t *testing.T) {
	m := NewMatrix[int](3)
	_, err := m.Get(5, 0)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestMatrixCoord_Valid(t *testing.T) {
	require.True(t, MatrixCoord{Col: 0, Row: 0}.Valid(1))
	require.False(t, MatrixCoord{Col: 1, Row: 0}.Valid(1))
}
