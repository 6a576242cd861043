package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(buf, "debug", FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())

	logger.Debug().Str("scheme", "myapp").Msg("callback received")
	assert.Contains(t, buf.String(), `"level":"debug"`)
	assert.Contains(t, buf.String(), `"scheme":"myapp"`)

	logger, err = New(buf, "", FormatText)
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNew_Invalid(t *testing.T) {
	testCases := []struct {
		description string
		level       string
		format      string
	}{
		{description: "unknown format", level: "info", format: "xml"},
		{description: "unknown level", level: "verbose", format: FormatJSON},
	}
	for _, testCase := range testCases {
		_, err := New(&bytes.Buffer{}, testCase.level, testCase.format)
		assert.Error(t, err, testCase.description)
	}
}
