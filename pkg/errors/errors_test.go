package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsCodeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", Wrap(CodeNotFound, "nothing here", nil))
	require.True(t, IsCode(err, CodeNotFound))
	require.False(t, IsCode(err, CodeInvalidInput))
	require.False(t, IsCode(errors.New("plain"), CodeNotFound))
}

func TestMessageOfDropsCause(t *testing.T) {
	err := Wrap(CodeInvalidInput, "Dates must be YYYY-MM-DD.", errors.New("parsing time"))
	require.Equal(t, "Dates must be YYYY-MM-DD.: parsing time", err.Error())
	require.Equal(t, "Dates must be YYYY-MM-DD.", MessageOf(err))
	require.Equal(t, "plain", MessageOf(errors.New("plain")))
	require.Empty(t, MessageOf(nil))
}
