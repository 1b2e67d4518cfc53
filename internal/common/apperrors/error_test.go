package apperrors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorChaining(t *testing.T) {
	ErrBase := New("base error")
	assert.Equal(t, "base error", ErrBase.Error())
	assert.Equal(t, "derived", ErrBase.New("derived").Error())
	assert.ErrorIs(t, ErrBase, ErrBase)

	ErrDerived := ErrBase.New("derived")
	assert.Equal(t, "derived", ErrDerived.Error())
	assert.ErrorIs(t, ErrDerived, ErrBase)

	goErr := errors.New("socket closed")
	wrapped := ErrDerived.Err(goErr)
	assert.Equal(t, "derived", wrapped.Error())
	assert.ErrorIs(t, wrapped, ErrBase)
	assert.ErrorIs(t, wrapped, goErr)

	wrapped = ErrDerived.MsgErr("request failed", goErr)
	assert.Equal(t, "request failed", wrapped.Error())
	assert.ErrorIs(t, wrapped, ErrDerived)
	assert.ErrorIs(t, wrapped, goErr)

	errA := fmt.Errorf("first")
	errB := fmt.Errorf("second")
	multi := ErrDerived.Err(errA, errB)
	assert.ErrorIs(t, multi, errA)
	assert.ErrorIs(t, multi, errB)
	assert.Len(t, multi.UnwrapAll(), 3)
}

func TestErrorExpansion(t *testing.T) {
	root := New("transport failure")
	wrapped := root.Err(fmt.Errorf("dial tcp: connection refused")).SetExpandError(true)
	assert.Equal(t, "transport failure; transport failure; dial tcp: connection refused", wrapped.ErrorAll())

	compact := wrapped.SetExpandError(false)
	assert.Equal(t, "transport failure", compact.ErrorAll())
}

func TestStatusCode(t *testing.T) {
	root := New("not found").SetStatusCode(http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, root.StatusCode())

	derived := root.Msg("meeting not found")
	assert.Equal(t, http.StatusNotFound, derived.StatusCode())
	assert.ErrorIs(t, derived, root)
}
