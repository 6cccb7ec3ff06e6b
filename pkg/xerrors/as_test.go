package xerrors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dbradix/art/pkg/xerrors"
)

type CustomError struct {
	message string
}

func (e CustomError) Error() string {
	return e.message
}

type AnotherError struct {
	code int
	msg  string
}

func (e *AnotherError) Error() string {
	return e.msg
}

func TestAsADirect(t *testing.T) {
	err := CustomError{message: "test error"}
	aerr := &AnotherError{code: 1, msg: "another error"}

	e, ok := xerrors.AsA[CustomError](err)
	assert.True(t, ok)
	assert.Equal(t, err, e)

	pe, ok := xerrors.AsA[*AnotherError](aerr)
	assert.True(t, ok)
	assert.Equal(t, aerr, pe)
}

func TestAsAWrapped(t *testing.T) {
	err := CustomError{message: "test error"}
	wrapped := fmt.Errorf("wrapped: %w", err)

	e, ok := xerrors.AsA[CustomError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, err, e)

	err1 := fmt.Errorf("first: %w", err)
	err2 := fmt.Errorf("custom: %w", err1)

	e, ok = xerrors.AsA[CustomError](err2)
	assert.True(t, ok)
	assert.Equal(t, err, e)
}

func TestAsANonMatching(t *testing.T) {
	aerr := &AnotherError{code: 1, msg: "another error"}

	_, ok := xerrors.AsA[CustomError](aerr)
	assert.False(t, ok)
}
