package xerrors_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/proto2cpp/proto2cpp/internal/xerrors"
)

func TestPosString(t *testing.T) {
	assert.Equal(t, "3:7", xerrors.Pos{Line: 3, Column: 7}.String())
	assert.Equal(t, "a.proto:3:7", xerrors.Pos{File: "a.proto", Line: 3, Column: 7}.String())
}

func TestInvalidFormatsMessage(t *testing.T) {
	err := xerrors.Invalid(xerrors.Pos{File: "a.proto", Line: 1, Column: 1}, "unexpected %q", "}")
	assert.EqualError(t, err, `a.proto:1:1: invalid proto: unexpected "}"`)

	var target *xerrors.InvalidProtoError
	assert.True(t, errors.As(err, &target))
}

func TestSchemaFormatsMessage(t *testing.T) {
	err := xerrors.Schema("unknown type %q", "Foo")
	assert.EqualError(t, err, `schema error: unknown type "Foo"`)

	var target *xerrors.SchemaError
	assert.True(t, errors.As(err, &target))
}

func TestIoWrapsUnderlyingError(t *testing.T) {
	err := xerrors.Io("open", "a.proto", io.ErrUnexpectedEOF)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Contains(t, err.Error(), "a.proto")

	assert.Nil(t, xerrors.Io("open", "a.proto", nil))
}
