package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-catalog/library/internal/model"
)

// GetBooks godoc
// @Summary list books with an optional filter
// @Description authorId (with q) wins over authorName, then minAuthors, then q.
// @Tags books
// @Produce json
// @Param q query string false "title fragment"
// @Param authorId query int false "author id"
// @Param authorName query string false "author name fragment"
// @Param minAuthors query int false "keep books with more authors than this"
// @Success 200 {array} model.Book
// @Router /books [get]
func (h *Handler) GetBooks(c echo.Context) error {
	f := model.BookFilter{Title: c.QueryParam("q")}
	if raw := c.QueryParam("authorId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "authorId is invalid")
		}
		f.AuthorID = &id
	}
	if c.QueryParams().Has("authorName") {
		name := c.QueryParam("authorName")
		f.AuthorName = &name
	}
	minAuthors, ok, err := queryInt(c, "minAuthors")
	if err != nil {
		return err
	}
	if ok {
		f.MinAuthors = &minAuthors
	}

	books, err := h.librarySvc.FindBooks(c.Request().Context(), f)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// GetBook godoc
// @Summary get book with its authors
// @Tags books
// @Produce json
// @Param id path int true "book id"
// @Success 200 {object} model.Book
// @Failure 404 {string} string
// @Router /books/{id} [get]
func (h *Handler) GetBook(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	book, err := h.librarySvc.GetBook(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// CreateBook godoc
// @Summary create book
// @Tags books
// @Accept json
// @Produce json
// @Param book body model.CreateBookRequest true "book"
// @Success 201 {object} model.Book
// @Failure 400 {string} string
// @Router /books [post]
func (h *Handler) CreateBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.librarySvc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}
