package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalStripsInternals(t *testing.T) {
	appErr := Wrap(errors.New("pq: connection refused"), CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "HTTPCode")
	assert.NotContains(t, string(raw), "connection refused")
	assert.Equal(t, "Internal server error", decoded["message"])
}

func TestWithDetailsDoesNotMutateSentinel(t *testing.T) {
	detailed := ErrInvalidOTP.WithDetails(map[string]string{"otp": "expired"})

	assert.NotNil(t, detailed.Details)
	assert.Nil(t, ErrInvalidOTP.Details, "shared sentinel must stay clean")
	assert.Equal(t, ErrInvalidOTP.Code, detailed.Code)
}

func TestUnwrap(t *testing.T) {
	inner := errors.New("row not found")
	appErr := ErrNotFound(inner, "enquiry", "Enquiry not found")

	assert.True(t, errors.Is(appErr, inner))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}

func TestHandleErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleError(c, ErrInvalidCredentials)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Domain  string `json:"domain"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, string(CodeInvalidCredentials), body.Error.Code)
	assert.Equal(t, "auth", body.Error.Domain)
}

func TestHandleErrorWrapsUnknownErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleError(c, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}
