package errors_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/aztfmod/cafmerge/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestLoadError(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		err := pkgerrors.NewLoadError("defs.json", pkgerrors.NewNotFoundError("file", "defs.json"))
		assert.Equal(t, "error: defs.json does not exist", err.Error())
		assert.True(t, pkgerrors.IsLoadError(err))
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("parse failure", func(t *testing.T) {
		cause := pkgerrors.NewParseError("json", "defs.json", "unexpected end of JSON input", nil)
		err := pkgerrors.NewLoadError("defs.json", cause)
		assert.Contains(t, err.Error(), "defs.json")
		assert.Contains(t, err.Error(), "unexpected end of JSON input")
		assert.False(t, pkgerrors.IsNotFound(err))

		var parseErr *pkgerrors.ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, "json", parseErr.Format)
	})

	t.Run("wrap nil", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapLoad("x", nil))
	})
}

func TestWriteError(t *testing.T) {
	err := pkgerrors.WrapWrite("out.json", pkgerrors.NewIOError("create", "out.json", fs.ErrPermission))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsWriteError(err))
	assert.False(t, pkgerrors.IsLoadError(err))
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.Contains(t, err.Error(), "out.json")

	assert.NoError(t, pkgerrors.WrapWrite("x", nil))
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "unknown_namespace",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field unknown_namespace: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "invalid configuration"}
		assert.Equal(t, "validation failed: invalid configuration", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestConfigError(t *testing.T) {
	cause := errors.New("bad yaml")
	err := pkgerrors.NewConfigError("app", "failed to read config", cause)
	assert.Equal(t, "configuration error in app: failed to read config: bad yaml", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := &pkgerrors.ConfigError{Message: "missing"}
	assert.Equal(t, "configuration error: missing", bare.Error())
}

func TestIOError(t *testing.T) {
	err := pkgerrors.WrapIO("read", "defs.json", fs.ErrClosed)
	assert.Equal(t, "IO error during read of defs.json: "+fs.ErrClosed.Error(), err.Error())
	assert.ErrorIs(t, err, fs.ErrClosed)

	assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
	assert.NoError(t, pkgerrors.WrapParse("json", "x", nil))
}
