package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	md "github.com/Astemirdum/library-catalog/pkg/middleware"
	"github.com/Astemirdum/library-catalog/pkg/serializer"
	"github.com/Astemirdum/library-catalog/pkg/validate"
	_ "github.com/Astemirdum/library-catalog/swagger"
)

type Handler struct {
	librarySvc     LibraryService
	enqueuer       Enqueuer
	requestTimeout time.Duration
	log            *zap.Logger
}

type Option func(h *Handler)

func WithRequestTimeout(d time.Duration) Option {
	return func(h *Handler) {
		h.requestTimeout = d
	}
}

func New(librarySvc LibraryService, enqueuer Enqueuer, log *zap.Logger, opts ...Option) *Handler {
	h := &Handler{
		librarySvc: librarySvc,
		enqueuer:   enqueuer,
		log:        log.Named("handler"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HideBanner = true
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.Validator = validate.NewCustomValidator()
	e.JSONSerializer = serializer.JSONSerializer{}
	e.HTTPErrorHandler = md.TextErrorHandler(h.log)

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	mws := []echo.MiddlewareFunc{
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	}
	if h.requestTimeout > 0 {
		mws = append(mws, middleware.ContextTimeout(h.requestTimeout))
	}
	api := e.Group("/api/v1", mws...)
	h.registerRoutes(api)

	return e
}

func (h *Handler) registerRoutes(api *echo.Group) {
	api.GET("/authors", h.GetAuthors)
	api.POST("/authors", h.CreateAuthor)
	api.GET("/authors/:id", h.GetAuthor)
	api.PUT("/authors/:id", h.UpdateAuthor)
	api.DELETE("/authors/:id", h.DeleteAuthor)
	api.GET("/authors/:id/books", h.GetAuthorBooks)
	api.GET("/authors/:id/coauthored", h.GetCoAuthored)

	api.GET("/books", h.GetBooks)
	api.POST("/books", h.CreateBook)
	api.GET("/books/:id", h.GetBook)

	api.GET("/users", h.GetUsers)
	api.POST("/users", h.CreateUser)
	api.GET("/users/:id", h.GetUser)
	api.GET("/users/:id/borrows", h.GetUserBorrows)

	api.GET("/librarians", h.GetLibrarians)
	api.POST("/librarians", h.CreateLibrarian)
	api.GET("/librarians/top", h.GetTopLibrarians)
	api.GET("/librarians/:id", h.GetLibrarian)

	api.POST("/borrows", h.CreateBorrow)
	api.GET("/borrows/late", h.GetLateBorrows)
	api.GET("/borrows/due", h.GetDueBorrows)
	api.GET("/borrows/:id", h.GetBorrow)

	api.GET("/reports/summary", h.GetSummary)
}

// Health godoc
// @Summary liveness check
// @Tags manage
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /manage/health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps service errors onto HTTP statuses; the message is the error text.
func httpError(err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidArgument):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrNotImplemented):
		return echo.NewHTTPError(http.StatusNotImplemented, errs.ErrNotImplemented.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).SetInternal(err)
	}
}

func paramID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	return id, nil
}

// queryInt parses an optional integer query parameter; ok is false when it is absent.
func queryInt(c echo.Context, name string) (v int, ok bool, err error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, false, nil
	}
	if v, err = strconv.Atoi(raw); err != nil {
		return 0, false, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return v, true, nil
}
