package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-catalog/library/internal/model"
)

type PersonResponse struct {
	ID        int64        `json:"id"`
	Gender    model.Gender `json:"gender"`
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	Birth     model.Date   `json:"birth" swaggertype:"string" format:"date"`
}

type LibrarianRankResponse struct {
	PersonResponse
	BorrowCount int `json:"borrowCount"`
}

func toPersonResponse(p model.Person) PersonResponse {
	return PersonResponse{
		ID:        p.ID,
		Gender:    p.Gender,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Birth:     model.Date{Time: p.Birth},
	}
}

func usersResponse(users []model.User) []PersonResponse {
	out := make([]PersonResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toPersonResponse(u.Person))
	}
	return out
}

func librariansResponse(librarians []model.Librarian) []PersonResponse {
	out := make([]PersonResponse, 0, len(librarians))
	for _, l := range librarians {
		out = append(out, toPersonResponse(l.Person))
	}
	return out
}

func ranksResponse(ranks []model.LibrarianRank) []LibrarianRankResponse {
	out := make([]LibrarianRankResponse, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, LibrarianRankResponse{
			PersonResponse: toPersonResponse(r.Person),
			BorrowCount:    r.BorrowCount,
		})
	}
	return out
}

func bindPerson(c echo.Context) (model.Person, error) {
	var req model.CreatePersonRequest
	if err := c.Bind(&req); err != nil {
		return model.Person{}, err
	}
	if err := c.Validate(req); err != nil {
		return model.Person{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req.Person(), nil
}

// CreateUser godoc
// @Summary register a borrower
// @Tags users
// @Accept json
// @Produce json
// @Param user body model.CreatePersonRequest true "user"
// @Success 201 {object} PersonResponse
// @Failure 400 {string} string
// @Router /users [post]
func (h *Handler) CreateUser(c echo.Context) error {
	p, err := bindPerson(c)
	if err != nil {
		return err
	}
	user, err := h.librarySvc.CreateUser(c.Request().Context(), p)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, toPersonResponse(user.Person))
}

// GetUsers godoc
// @Summary list users, optionally only those older than an age
// @Tags users
// @Produce json
// @Param olderThan query int false "age in years"
// @Success 200 {array} PersonResponse
// @Router /users [get]
func (h *Handler) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()
	age, ok, err := queryInt(c, "olderThan")
	if err != nil {
		return err
	}
	var users []model.User
	if ok {
		users, err = h.librarySvc.FindUsersOlderThan(ctx, age)
	} else {
		users, err = h.librarySvc.AllUsers(ctx)
	}
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, usersResponse(users))
}

// GetUser godoc
// @Summary get user
// @Tags users
// @Produce json
// @Param id path int true "user id"
// @Success 200 {object} PersonResponse
// @Failure 404 {string} string
// @Router /users/{id} [get]
func (h *Handler) GetUser(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	user, err := h.librarySvc.GetUser(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toPersonResponse(user.Person))
}

// GetUserBorrows godoc
// @Summary borrows the user has not returned
// @Tags users
// @Produce json
// @Param id path int true "user id"
// @Success 200 {array} model.Borrow
// @Failure 404 {string} string
// @Router /users/{id}/borrows [get]
func (h *Handler) GetUserBorrows(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	borrows, err := h.librarySvc.UserBorrows(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, borrows)
}

// CreateLibrarian godoc
// @Summary register a librarian
// @Tags librarians
// @Accept json
// @Produce json
// @Param librarian body model.CreatePersonRequest true "librarian"
// @Success 201 {object} PersonResponse
// @Failure 400 {string} string
// @Router /librarians [post]
func (h *Handler) CreateLibrarian(c echo.Context) error {
	p, err := bindPerson(c)
	if err != nil {
		return err
	}
	librarian, err := h.librarySvc.CreateLibrarian(c.Request().Context(), p)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, toPersonResponse(librarian.Person))
}

// GetLibrarians godoc
// @Summary list librarians
// @Tags librarians
// @Produce json
// @Success 200 {array} PersonResponse
// @Router /librarians [get]
func (h *Handler) GetLibrarians(c echo.Context) error {
	librarians, err := h.librarySvc.AllLibrarians(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, librariansResponse(librarians))
}

// GetLibrarian godoc
// @Summary get librarian
// @Tags librarians
// @Produce json
// @Param id path int true "librarian id"
// @Success 200 {object} PersonResponse
// @Failure 404 {string} string
// @Router /librarians/{id} [get]
func (h *Handler) GetLibrarian(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	librarian, err := h.librarySvc.GetLibrarian(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toPersonResponse(librarian.Person))
}

// GetTopLibrarians godoc
// @Summary the three librarians who registered most borrows
// @Tags librarians
// @Produce json
// @Success 200 {array} LibrarianRankResponse
// @Router /librarians/top [get]
func (h *Handler) GetTopLibrarians(c echo.Context) error {
	ranks, err := h.librarySvc.TopLibrarians(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ranksResponse(ranks))
}
