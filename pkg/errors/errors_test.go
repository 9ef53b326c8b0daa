package errors_test

import (
	"errors"
	"io/fs"
	"testing"

	pkgerrors "github.com/agentstation/birdmap/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "column",
			ID:       "Picture",
		}
		assert.Equal(t, "column Picture not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("sheet", "Plan1")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "source",
			Message: "unknown source",
		}
		assert.Equal(t, "validation failed for field source: unknown source", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "bad record"}
		assert.Equal(t, "validation failed: bad record", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestFetchError(t *testing.T) {
	t.Run("status code", func(t *testing.T) {
		err := pkgerrors.NewFetchError("https://example.org/a", 404, "404 Not Found")
		assert.Equal(t, "fetch https://example.org/a failed (status 404): 404 Not Found", err.Error())
		assert.True(t, pkgerrors.IsFetchError(err))
		assert.False(t, pkgerrors.IsRateLimited(err))
	})

	t.Run("rate limited", func(t *testing.T) {
		err := pkgerrors.NewFetchError("https://example.org/a", 429, "slow down")
		assert.True(t, pkgerrors.IsRateLimited(err))
	})

	t.Run("server error", func(t *testing.T) {
		err := pkgerrors.NewFetchError("https://example.org/a", 503, "unavailable")
		assert.True(t, errors.Is(err, pkgerrors.ErrUnavailable))
	})

	t.Run("wrapped transport error", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := pkgerrors.WrapFetch("https://example.org/a", cause)
		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		assert.True(t, pkgerrors.IsFetchError(err))
		assert.Nil(t, pkgerrors.WrapFetch("x", nil))
	})
}

func TestIOError(t *testing.T) {
	err := pkgerrors.WrapIO("read", "bird_data.json", fs.ErrNotExist)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read of bird_data.json")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var ioErr *pkgerrors.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read", ioErr.Operation)
	assert.Nil(t, pkgerrors.WrapIO("read", "x", nil))
}

func TestParseError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := pkgerrors.WrapParse("json", "bird_data.json", cause)
	assert.Equal(t, "parse error in json file bird_data.json: unexpected end of JSON input", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := pkgerrors.NewParseError("html", "", "no body", nil)
	assert.Equal(t, "html parse error: no body", bare.Error())
}

func TestResourceAndConfigErrors(t *testing.T) {
	cause := errors.New("boom")

	res := pkgerrors.WrapResource("load", "sheet", "aves.xlsx", cause)
	assert.Equal(t, "failed to load sheet aves.xlsx: boom", res.Error())
	assert.ErrorIs(t, res, cause)

	cfg := pkgerrors.NewConfigError("overrides", "unknown mode", cause)
	assert.Equal(t, "configuration error in overrides: unknown mode", cfg.Error())
	assert.ErrorIs(t, cfg, cause)
}
