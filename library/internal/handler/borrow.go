package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-catalog/library/internal/model"
)

// CreateBorrow godoc
// @Summary register a borrow
// @Tags borrows
// @Accept json
// @Produce json
// @Param borrow body model.CreateBorrowRequest true "borrow"
// @Success 201 {object} model.Borrow
// @Failure 400 {string} string
// @Router /borrows [post]
func (h *Handler) CreateBorrow(c echo.Context) error {
	var req model.CreateBorrowRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	borrow, err := h.librarySvc.CreateBorrow(c.Request().Context(), req.Borrow())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, borrow)
}

// GetBorrow godoc
// @Summary get borrow
// @Tags borrows
// @Produce json
// @Param id path string true "borrow id"
// @Success 200 {object} model.Borrow
// @Failure 404 {string} string
// @Router /borrows/{id} [get]
func (h *Handler) GetBorrow(c echo.Context) error {
	borrow, err := h.librarySvc.GetBorrow(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, borrow)
}

// GetLateBorrows godoc
// @Summary open borrows past their requested return
// @Tags borrows
// @Produce json
// @Success 200 {array} model.Borrow
// @Router /borrows/late [get]
func (h *Handler) GetLateBorrows(c echo.Context) error {
	borrows, err := h.librarySvc.LateBorrows(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, borrows)
}

// GetDueBorrows godoc
// @Summary open borrows due within the next days
// @Tags borrows
// @Produce json
// @Param days query int true "window in days"
// @Success 200 {array} model.Borrow
// @Failure 400 {string} string
// @Router /borrows/due [get]
func (h *Handler) GetDueBorrows(c echo.Context) error {
	days, ok, err := queryInt(c, "days")
	if err != nil {
		return err
	}
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "days is required")
	}
	borrows, err := h.librarySvc.BorrowsDueWithin(c.Request().Context(), days)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, borrows)
}

// GetSummary godoc
// @Summary late borrows, borrows due within a week and top librarians
// @Tags reports
// @Produce json
// @Success 200 {object} SummaryResponse
// @Router /reports/summary [get]
func (h *Handler) GetSummary(c echo.Context) error {
	sum, err := h.librarySvc.Summary(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, SummaryResponse{
		Late:          sum.Late,
		DueSoon:       sum.DueSoon,
		TopLibrarians: ranksResponse(sum.TopLibrarians),
	})
}

type SummaryResponse struct {
	Late          []model.Borrow          `json:"late"`
	DueSoon       []model.Borrow          `json:"dueSoon"`
	TopLibrarians []LibrarianRankResponse `json:"topLibrarians"`
}
