package errors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/crystal-vistas/vistas-ops/internal/core/jobid"
	"github.com/crystal-vistas/vistas-ops/internal/core/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestFromStore(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantStatus    int
		wantType      string
		wantRetryable bool
	}{
		{name: "not found", err: fmt.Errorf("get job: %w", storage.ErrNotFound), wantStatus: http.StatusNotFound, wantType: HttpNotFoundError},
		{name: "duplicate", err: storage.ErrDuplicate, wantStatus: http.StatusConflict, wantType: HttpConflictError, wantRetryable: true},
		{name: "unavailable", err: fmt.Errorf("%w: dial tcp: refused", storage.ErrUnavailable), wantStatus: http.StatusServiceUnavailable, wantType: HttpStoreUnavailableError, wantRetryable: true},
		{name: "exhausted", err: fmt.Errorf("allocate: %w", jobid.ErrIdentifierSpaceExhausted), wantStatus: http.StatusConflict, wantType: HttpIdentifierSpaceError},
		{name: "other", err: fmt.Errorf("boom"), wantStatus: http.StatusInternalServerError, wantType: HttpInternalError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			apiErr := FromStore(tc.err, "job")
			require.Equal(t, tc.wantStatus, apiErr.StatusCode)
			require.Equal(t, tc.wantType, apiErr.ErrorType)
			require.Equal(t, tc.wantRetryable, apiErr.Retryable)
		})
	}
}

func TestWrite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	resp := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(resp)

	Write(c, &APIError{
		StatusCode: http.StatusServiceUnavailable,
		ErrorType:  HttpStoreUnavailableError,
		Message:    "down",
		Retryable:  true,
	})

	require.Equal(t, http.StatusServiceUnavailable, resp.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, HttpStoreUnavailableError, body.ErrorType)
	require.Equal(t, "down", body.Message)
	require.True(t, body.Retryable)
}

func TestBindJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		body       string
		max        int64
		wantStatus int
		wantType   string
	}{
		{name: "ok", body: `{"name":"x"}`, max: 64},
		{name: "too large", body: `{"name":"xxxxxxxxxxxxxxxxxxxx"}`, max: 8, wantStatus: http.StatusRequestEntityTooLarge, wantType: HttpRequestTooLargeError},
		{name: "malformed", body: `{"name":`, max: 64, wantStatus: http.StatusBadRequest, wantType: HttpInvalidJsonError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tc.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var dst struct {
				Name string `json:"name"`
			}
			apiErr := BindJSON(c, tc.max, &dst)
			if tc.wantStatus == 0 {
				require.Nil(t, apiErr)
				require.Equal(t, "x", dst.Name)
				return
			}
			require.NotNil(t, apiErr)
			require.Equal(t, tc.wantStatus, apiErr.StatusCode)
			require.Equal(t, tc.wantType, apiErr.ErrorType)
		})
	}
}
