package collect_test

import (
	"regexp"
	"testing"

	"codeberg.org/mutker/droidpulse/internal/collect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFieldsCoercion(t *testing.T) {
	patterns := map[string]*regexp.Regexp{
		"count":   regexp.MustCompile(`count:\s*(-?\d+)`),
		"ratio":   regexp.MustCompile(`ratio:\s*([\d.]+)`),
		"enabled": regexp.MustCompile(`enabled:\s*(\w+)`),
		"name":    regexp.MustCompile(`name:\s*(.+)`),
		"missing": regexp.MustCompile(`missing:\s*(\d+)`),
	}
	out := "count: -3\nratio: 0.75\nenabled: true\nname: pixel 7  "

	f := collect.ExtractFields(out, patterns)

	require.NotNil(t, f.Int("count"))
	assert.Equal(t, -3, *f.Int("count"))
	require.NotNil(t, f.Float("ratio"))
	assert.InDelta(t, 0.75, *f.Float("ratio"), 0.001)
	require.NotNil(t, f.Bool("enabled"))
	assert.True(t, *f.Bool("enabled"))
	require.NotNil(t, f.Str("name"))
	assert.Equal(t, "pixel 7", *f.Str("name"), "String values are trimmed")

	assert.Nil(t, f.Int("missing"), "Unmatched patterns leave the field absent")
	assert.Nil(t, f.Str("missing"))
}

func TestFieldsTypeMismatch(t *testing.T) {
	patterns := map[string]*regexp.Regexp{
		"level": regexp.MustCompile(`level:\s*(\d+)`),
	}
	f := collect.ExtractFields("level: 42", patterns)

	assert.Nil(t, f.Str("level"), "An int field is not a string")
	assert.Nil(t, f.Bool("level"))
	require.NotNil(t, f.Float("level"), "Ints widen to float on request")
	assert.InDelta(t, 42.0, *f.Float("level"), 0.001)
}
