package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrToTime(t *testing.T) {
	parsed, err := StrToTime("2026-08-24 10:30:00")
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, 10, parsed.Hour())

	_, err = StrToTime("24/08/2026")
	assert.Error(t, err)
}
