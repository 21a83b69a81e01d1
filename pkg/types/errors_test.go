package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want Kind
	}{
		{ErrInvalidItem, KindValidation},
		{fmt.Errorf("%w: got -2", ErrInvalidQuantity), KindValidation},
		{ErrInvalidOperation, KindValidation},
		{ErrItemNotFound, KindNotFound},
		{ErrInvalidQuantityType, KindQuantityType},
		{ErrFileNotFound, KindFileNotFound},
		{fmt.Errorf("%w: unexpected EOF", ErrMalformed), KindParse},
		{ErrRead, KindIO},
		{ErrWrite, KindIO},
		{errors.New("something else"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			e := NewError("op", tt.err)
			assert.Equal(t, tt.want, e.Kind)
			assert.Equal(t, tt.want, KindOf(e))
		})
	}
}

func TestErrorUnwrapsToSentinel(t *testing.T) {
	e := NewError("remove", ErrItemNotFound)
	e.Item = "grape"

	var err error = fmt.Errorf("cli: %w", e)
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, `remove "grape": item not found in inventory`, e.Error())
}

func TestErrorMessageWithPath(t *testing.T) {
	e := NewError("load", ErrFileNotFound)
	e.Path = "inventory.json"
	assert.Equal(t, "load inventory.json: file not found, starting with empty inventory", e.Error())
}

func TestIsWarning(t *testing.T) {
	assert.True(t, IsWarning(NewError("load", ErrFileNotFound)))
	assert.True(t, IsWarning(ErrFileNotFound))
	assert.False(t, IsWarning(NewError("load", ErrMalformed)))
	assert.False(t, IsWarning(nil))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestLogAppend(t *testing.T) {
	var log Log
	var sink LogSink = &log
	sink.Append("first")
	sink.Append("second")
	assert.Equal(t, Log{"first", "second"}, log)
}
