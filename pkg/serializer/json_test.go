package serializer

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestJSONSerializer(t *testing.T) {
	e := echo.New()
	e.JSONSerializer = JSONSerializer{}

	type payload struct {
		Title string `json:"title"`
	}

	t.Run("round trip", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Emma"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var p payload
		require.NoError(t, c.Bind(&p))
		require.Equal(t, "Emma", p.Title)

		require.NoError(t, c.JSON(http.StatusOK, p))
		require.JSONEq(t, `{"title":"Emma"}`, rec.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c := e.NewContext(req, httptest.NewRecorder())

		var p payload
		err := c.Bind(&p)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		require.Equal(t, http.StatusBadRequest, he.Code)
		require.Contains(t, he.Message, "invalid json body")
	})
}
