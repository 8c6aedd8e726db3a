package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	md "github.com/Astemirdum/library-catalog/pkg/middleware"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTextErrorHandler(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		handler      echo.HandlerFunc
		expectedCode int
		expectedBody string
	}{
		{
			name: "http error",
			handler: func(c echo.Context) error {
				return echo.NewHTTPError(http.StatusNotFound, "author 9999: not found")
			},
			expectedCode: http.StatusNotFound,
			expectedBody: "author 9999: not found",
		},
		{
			name: "plain error",
			handler: func(c echo.Context) error {
				return errors.New("db down")
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: http.StatusText(http.StatusInternalServerError),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			e.HTTPErrorHandler = md.TextErrorHandler(zap.NewNop())
			e.GET("/", tt.handler)

			w := httptest.NewRecorder()
			e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, w.Body.String())
			require.Contains(t, w.Header().Get(echo.HeaderContentType), echo.MIMETextPlain)
		})
	}
}
