package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/enrollment/internal/pkg/apperrors"
)

func TestInputReader_LinesAndTokens(t *testing.T) {
	in := NewInputReader(strings.NewReader("Amara Okafor\r\n  2\n\n 3 \n"))

	name, err := in.NextLine()
	require.NoError(t, err)
	assert.Equal(t, "Amara Okafor", name)

	choice, err := in.NextInt()
	require.NoError(t, err)
	assert.Equal(t, 2, choice)

	credits, err := in.NextInt()
	require.NoError(t, err)
	assert.Equal(t, 3, credits)

	rest, err := in.NextLine()
	require.NoError(t, err)
	assert.Equal(t, " ", rest)

	_, err = in.NextInt()
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestInputReader_LastLineWithoutTerminator(t *testing.T) {
	in := NewInputReader(strings.NewReader("Lena"))

	name, err := in.NextLine()
	require.NoError(t, err)
	assert.Equal(t, "Lena", name)

	_, err = in.NextLine()
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestInputReader_NotAnInteger(t *testing.T) {
	in := NewInputReader(strings.NewReader("3.5\n"))

	_, err := in.NextInt()
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), `"3.5"`)
}

func TestInputReader_CloseWithoutCloser(t *testing.T) {
	assert.NoError(t, NewInputReader(strings.NewReader("")).Close())
}
