package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UTCMillis(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	ts := time.Date(2024, 3, 9, 14, 5, 7, 123456789, loc)

	assert.Equal(t, "2024-03-09T12:05:07.123Z", Timestamp(ts))
}

func TestTimestamp_ParsesAsRFC3339(t *testing.T) {
	now := time.Now()
	parsed, err := time.Parse(time.RFC3339Nano, Timestamp(now))
	require.NoError(t, err)
	assert.WithinDuration(t, now, parsed, time.Millisecond)
}

func TestRootResponse_NullEnv(t *testing.T) {
	body, err := json.Marshal(RootResponse{Message: Greeting, Timestamp: "t"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Hello from App1!","env":null,"timestamp":"t"}`, string(body))
}

func TestRootResponse_EmptyEnv(t *testing.T) {
	env := ""
	body, err := json.Marshal(RootResponse{Message: Greeting, Env: &env, Timestamp: "t"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Hello from App1!","env":"","timestamp":"t"}`, string(body))
}
