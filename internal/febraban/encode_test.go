package febraban

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBar_RoundTrip(t *testing.T) {
	for _, s := range samples {
		c, err := Parse(s.bar)
		require.NoError(t, err, s.name)
		assert.Equal(t, s.bar, c.Bar(), s.name)
	}
}

func TestLine_RoundTrip(t *testing.T) {
	for _, s := range samples {
		c, err := Parse(s.line)
		require.NoError(t, err, s.name)
		assert.Equal(t, s.line, c.Line(false), s.name)
	}
}

func TestBar_FromLine(t *testing.T) {
	for _, s := range samples {
		c, err := Parse(s.line)
		require.NoError(t, err, s.name)
		assert.Equal(t, s.bar, c.Bar(), s.name)
	}
}

func TestLine_FromBar(t *testing.T) {
	for _, s := range samples {
		c, err := Parse(s.bar)
		require.NoError(t, err, s.name)
		assert.Equal(t, s.line, c.Line(false), s.name)
	}
}

func TestLine_Formatted(t *testing.T) {
	for _, s := range samples {
		c, err := Parse(s.bar)
		require.NoError(t, err, s.name)
		assert.Equal(t, s.formatted, c.Line(true), s.name)
	}
}

func TestLine_FormattedStripsToPlain(t *testing.T) {
	strip := strings.NewReplacer(".", "", " ", "")
	for _, s := range samples {
		c, err := Parse(s.line)
		require.NoError(t, err, s.name)
		assert.Equal(t, c.Line(false), strip.Replace(c.Line(true)), s.name)
	}
}
