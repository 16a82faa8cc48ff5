package config

import (
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationUnmarshalText(t *testing.T) {
	t.Parallel()

	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("90m")))
	assert.Equal(t, 90*time.Minute, d.AsDuration())

	require.Error(t, d.UnmarshalText([]byte("not-a-duration")))
}

func TestDurationInTOML(t *testing.T) {
	t.Parallel()

	var fc fileConfig
	require.NoError(t, toml.Unmarshal([]byte(`session_ttl = "45m"`), &fc))
	assert.Equal(t, 45*time.Minute, fc.SessionTTL.AsDuration())

	assert.Error(t, toml.Unmarshal([]byte(`session_ttl = "bogus"`), &fc))
}

func TestDurationString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1h0m0s", Duration(time.Hour).String())

	text, err := Duration(30 * time.Second).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "30s", string(text))
}
