package errs

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSendError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "validation error",
			err:          NewValidation("missing required fields: title"),
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"missing required fields: title"}`,
		},
		{
			name:         "conflict error",
			err:          NewConflict("a post with this slug already exists"),
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"a post with this slug already exists"}`,
		},
		{
			name:         "not found error",
			err:          NewNotFound("post not found"),
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"post not found"}`,
		},
		{
			name:         "unexpected error is masked",
			err:          errors.New("connection reset by peer"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"an unexpected error occurred"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			SendError(c, tt.err)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
