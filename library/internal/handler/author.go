package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/library/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
)

// GetAuthors godoc
// @Summary list authors, or search them by a name fragment
// @Tags authors
// @Produce json
// @Param q query string false "case-insensitive full name fragment"
// @Success 200 {array} model.Author
// @Router /authors [get]
func (h *Handler) GetAuthors(c echo.Context) error {
	ctx := c.Request().Context()
	var (
		authors []model.Author
		err     error
	)
	if c.QueryParams().Has("q") {
		authors, err = h.librarySvc.SearchAuthors(ctx, c.QueryParam("q"))
	} else {
		authors, err = h.librarySvc.AllAuthors(ctx)
	}
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, authors)
}

// GetAuthor godoc
// @Summary get author
// @Tags authors
// @Produce json
// @Param id path int true "author id"
// @Success 200 {object} model.Author
// @Failure 404 {string} string
// @Router /authors/{id} [get]
func (h *Handler) GetAuthor(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	author, err := h.librarySvc.GetAuthor(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, author)
}

// CreateAuthor godoc
// @Summary create author
// @Tags authors
// @Accept json
// @Produce json
// @Param author body model.AuthorRequest true "author"
// @Success 201 {object} model.Author
// @Failure 400 {string} string
// @Router /authors [post]
func (h *Handler) CreateAuthor(c echo.Context) error {
	var req model.AuthorRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	author, err := h.librarySvc.CreateAuthor(c.Request().Context(), fullName(req))
	if err != nil {
		return httpError(err)
	}
	h.publishAuthor(model.AuthorCreated, author)
	return c.JSON(http.StatusCreated, author)
}

// UpdateAuthor godoc
// @Summary rename author
// @Tags authors
// @Accept json
// @Produce json
// @Param id path int true "author id"
// @Param author body model.AuthorRequest true "author"
// @Success 200 {object} model.Author
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /authors/{id} [put]
func (h *Handler) UpdateAuthor(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req model.AuthorRequest
	if err = c.Bind(&req); err != nil {
		return err
	}
	author, err := h.librarySvc.UpdateAuthor(c.Request().Context(), id, fullName(req))
	if err != nil {
		return httpError(err)
	}
	h.publishAuthor(model.AuthorUpdated, author)
	return c.JSON(http.StatusOK, author)
}

// DeleteAuthor godoc
// @Summary delete author (not implemented)
// @Tags authors
// @Param id path int true "author id"
// @Failure 501 {string} string
// @Router /authors/{id} [delete]
func (h *Handler) DeleteAuthor(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err = h.librarySvc.DeleteAuthor(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetAuthorBooks godoc
// @Summary books of an author (not implemented)
// @Tags authors
// @Param id path int true "author id"
// @Failure 501 {string} string
// @Router /authors/{id}/books [get]
func (h *Handler) GetAuthorBooks(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	books, err := h.librarySvc.AuthorBooks(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// GetCoAuthored godoc
// @Summary whether the author shares a book with another author
// @Tags authors
// @Produce json
// @Param id path int true "author id"
// @Success 200 {object} model.CoAuthored
// @Failure 404 {string} string
// @Router /authors/{id}/coauthored [get]
func (h *Handler) GetCoAuthored(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	ok, err := h.librarySvc.HasCoAuthoredBook(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, model.CoAuthored{AuthorID: id, CoAuthored: ok})
}

func fullName(req model.AuthorRequest) string {
	if req.FullName == nil {
		return ""
	}
	return *req.FullName
}

// publishAuthor is best effort: a failed publish never fails the request.
func (h *Handler) publishAuthor(typ model.AuthorEventType, a model.Author) {
	event := model.AuthorEvent{
		Type:      typ,
		AuthorID:  a.ID,
		FullName:  a.FullName,
		Timestamp: time.Now().UTC(),
	}
	if err := h.enqueuer.Enqueue(kafka.AuthorsTopic, event); err != nil {
		h.log.Warn("publish author event", zap.Int64("id", a.ID), zap.Error(err))
	}
}
