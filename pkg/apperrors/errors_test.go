package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_WithDetailsKeepsOriginal(t *testing.T) {
	withDetails := ErrIncompleteContent.WithDetails(map[string]string{"resume": "must not be blank"})

	assert.Nil(t, ErrIncompleteContent.Details, "предопределенная ошибка не мутируется")
	assert.True(t, errors.Is(withDetails, ErrIncompleteContent))
	assert.False(t, errors.Is(withDetails, ErrDuplicateApplication))

	wrapped := fmt.Errorf("submit: %w", ErrJobInactive.WithError(errors.New("cause")))
	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeJobInactive, appErr.Code)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
}

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		debug      bool
		wantStatus int
		wantCode   ErrorCode
		wantDetail bool
	}{
		{"доменная ошибка", ErrNotOwner, false, http.StatusForbidden, CodeNotOwner, false},
		{"валидация с деталями", ValidationError(map[string]string{"title": "required"}), false, http.StatusBadRequest, CodeValidationFailed, true},
		{"неизвестная ошибка скрыта", errors.New("pq: connection refused"), false, http.StatusInternalServerError, CodeInternalError, false},
		{"неизвестная ошибка в debug", errors.New("pq: connection refused"), true, http.StatusInternalServerError, CodeInternalError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetDebug(tt.debug)
			t.Cleanup(func() { SetDebug(true) })

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)

			HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.True(t, c.IsAborted())

			var body struct {
				Error struct {
					Code    ErrorCode `json:"code"`
					Details any       `json:"details"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetail, body.Error.Details != nil)
		})
	}
}
