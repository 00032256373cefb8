package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeCourseNotMapped, http.StatusBadRequest},
		{ErrCodeUserNotFound, http.StatusForbidden},
		{ErrCodeCourseIncomplete, http.StatusForbidden},
		{ErrCodeAlreadyMinted, http.StatusConflict},
		{ErrCodeConfiguration, http.StatusInternalServerError},
		{ErrCodeStore, http.StatusInternalServerError},
		{ErrCodeSigning, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, New(tc.code, "x").HTTPStatus(), string(tc.code))
	}
}

func TestClientMessageHidesInternalCause(t *testing.T) {
	err := Wrap(ErrCodeConfiguration, "MINT_SIGNER_PRIVATE_KEY is not set", fmt.Errorf("boom"))
	assert.Equal(t, "Server configuration error", err.ClientMessage())
	assert.NotContains(t, err.ClientMessage(), "MINT_SIGNER_PRIVATE_KEY")

	store := Wrap(ErrCodeStore, "convex query failed", fmt.Errorf("dial tcp: timeout"))
	assert.Equal(t, "Internal server error", store.ClientMessage())
}

func TestClientMessagePassesEligibilityThrough(t *testing.T) {
	err := Newf(ErrCodeCourseIncomplete, "Course not completed (%d%% done). Complete all lessons first.", 40)
	assert.Equal(t, "Course not completed (40% done). Complete all lessons first.", err.ClientMessage())
}

func TestAsAppErrorWrapsUnknown(t *testing.T) {
	err := AsAppError(fmt.Errorf("raw"))
	assert.Equal(t, ErrCodeInternal, err.Code)
	assert.Equal(t, "Internal server error", err.ClientMessage())

	orig := New(ErrCodeAlreadyMinted, "Badge already minted for this course")
	assert.Same(t, orig, AsAppError(fmt.Errorf("wrapped: %w", orig)))
}
