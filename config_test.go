package dedalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverridesSubset(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader("strip_quote_marker: false\n"))
	require.NoError(t, err)
	assert.False(t, cfg.StripQuoteMarker)
	assert.True(t, cfg.KeepSentinelStratum)
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("not: [valid"))
	assert.Error(t, err)
}
