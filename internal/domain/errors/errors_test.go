package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Constructors(t *testing.T) {
	err := NewAppError(http.StatusBadRequest, CodeBadRequest, "bad", ErrBadRequest)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, CodeBadRequest, err.Code)
	assert.Equal(t, "bad", err.Message)
	assert.Equal(t, ErrBadRequest.Error(), err.Error())

	notFound := NotFound("missing")
	assert.Equal(t, http.StatusNotFound, notFound.Status)
	assert.Equal(t, CodeNotFound, notFound.Code)
	assert.ErrorIs(t, notFound, ErrNotFound)

	conflict := Conflict("exists")
	assert.Equal(t, http.StatusConflict, conflict.Status)
	assert.Equal(t, CodeConflict, conflict.Code)

	internal := InternalError(stderrors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.Equal(t, CodeInternalError, internal.Code)

	custom := NewError("custom", ErrForbidden)
	assert.Equal(t, ErrForbidden.Error(), custom.Error())

	badReq := BadRequest("bad request")
	assert.Equal(t, http.StatusBadRequest, badReq.Status)
	assert.Equal(t, CodeInvalidInput, badReq.Code)

	unauth := Unauthorized("unauthorized")
	assert.Equal(t, http.StatusUnauthorized, unauth.Status)
	assert.Equal(t, CodeUnauthorized, unauth.Code)

	forbidden := Forbidden("forbidden")
	assert.Equal(t, http.StatusForbidden, forbidden.Status)
	assert.Equal(t, CodeForbidden, forbidden.Code)

	internalMsg := InternalServerError("boom")
	assert.Equal(t, http.StatusInternalServerError, internalMsg.Status)
	assert.Equal(t, "boom", internalMsg.Message)
	assert.Equal(t, "boom", internalMsg.Error())
}

func TestUnprocessable(t *testing.T) {
	err := Unprocessable("cannot ship", ErrInvalidTransition)
	assert.Equal(t, http.StatusUnprocessableEntity, err.Status)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	generic := Unprocessable("nope", nil)
	assert.ErrorIs(t, generic, ErrUnprocessable)

	fields := ValidationFailed(map[string]string{"site_name": "is required"})
	assert.Equal(t, http.StatusUnprocessableEntity, fields.Status)
	assert.Equal(t, "is required", fields.Fields["site_name"])
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))

	app := BadRequest("x")
	assert.Same(t, app, FromError(fmt.Errorf("wrapped: %w", app)))

	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("load: %w", ErrNotFound), http.StatusNotFound},
		{ErrAlreadyExists, http.StatusConflict},
		{ErrInvalidInput, http.StatusBadRequest},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrTokenExpired, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrInsufficientBalance, http.StatusUnprocessableEntity},
		{fmt.Errorf("order: %w", ErrInvalidTransition), http.StatusUnprocessableEntity},
		{ErrDefaultRequired, http.StatusUnprocessableEntity},
		{stderrors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, FromError(tc.err).Status, tc.err.Error())
	}
}
