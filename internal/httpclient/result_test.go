package httpclient

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Ok(t *testing.T) {
	r := Ok("payload")

	assert.True(t, r.IsOk())
	assert.False(t, r.IsErr())
	assert.Equal(t, "payload", r.Value())
	assert.NoError(t, r.Err())
	assert.Empty(t, r.ErrorMessage())

	v, err := r.Unwrap()
	require.NoError(t, err)
	assert.Equal(t, "payload", v)
}

func TestResult_Fail(t *testing.T) {
	boom := errors.New("boom")
	r := Fail[int](boom)

	assert.False(t, r.IsOk())
	assert.True(t, r.IsErr())
	assert.Zero(t, r.Value())
	assert.Same(t, boom, r.Err())
	assert.Equal(t, "boom", r.ErrorMessage())

	_, err := r.Unwrap()
	assert.ErrorIs(t, err, boom)
}

// TestResult_FailNil verifies a nil failure never produces a success.
func TestResult_FailNil(t *testing.T) {
	r := Fail[string](nil)

	assert.True(t, r.IsErr())
	assert.ErrorIs(t, r.Err(), ErrNilFailure)
}

// TestResult_ZeroIsFailure verifies the zero value is never a success.
func TestResult_ZeroIsFailure(t *testing.T) {
	var r Result[int]

	assert.False(t, r.IsOk())
	assert.True(t, r.IsErr())
	assert.ErrorIs(t, r.Err(), ErrNilFailure)
	assert.Equal(t, ErrNilFailure.Error(), r.ErrorMessage())

	_, err := r.Unwrap()
	assert.ErrorIs(t, err, ErrNilFailure)
}

func TestRequestError_Messages(t *testing.T) {
	cause := errors.New("dial tcp: i/o timeout")

	exhausted := &RequestError{Method: "GET", URL: "https://example.com", Attempts: 3, Exhausted: true, Err: cause}
	assert.Equal(t, "Failed to GET https://example.com after 3 attempts: dial tcp: i/o timeout", exhausted.Error())
	assert.ErrorIs(t, exhausted, ErrRetriesExhausted)
	assert.ErrorIs(t, exhausted, cause)

	single := &RequestError{Method: "POST", URL: "https://example.com/x", Attempts: 1, Err: cause}
	assert.Equal(t, "Failed to POST https://example.com/x: dial tcp: i/o timeout", single.Error())
	assert.NotErrorIs(t, single, ErrRetriesExhausted)
}
