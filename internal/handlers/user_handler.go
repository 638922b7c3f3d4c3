package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/httpresp"
	"github.com/gabrielbarbershop/booking-api/internal/middleware"
	ucUser "github.com/gabrielbarbershop/booking-api/internal/usecase/user"
)

type UserHandler struct {
	queries     *ucUser.Queries
	createAdmin *ucUser.CreateUserAsAdmin
	update      *ucUser.UpdateUser
	remove      *ucUser.DeleteUser
}

func NewUserHandler(
	queries *ucUser.Queries,
	createAdmin *ucUser.CreateUserAsAdmin,
	update *ucUser.UpdateUser,
	remove *ucUser.DeleteUser,
) *UserHandler {
	return &UserHandler{
		queries:     queries,
		createAdmin: createAdmin,
		update:      update,
		remove:      remove,
	}
}

// --------- Requests ---------

type RegisterAdminRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	CPF        string `json:"cpf" binding:"required"`
	Password   string `json:"password" binding:"required,min=6"`
	Phone      string `json:"phone"`
	PhotoURL   string `json:"photo_url"`
	UserTypeID uint   `json:"user_type_id"`
}

type UpdateUserRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	CPF        string `json:"cpf" binding:"required"`
	Phone      string `json:"phone"`
	PhotoURL   string `json:"photo_url"`
	Password   string `json:"password"`
	UserTypeID uint   `json:"user_type_id"`
}

// --------- Handlers ---------

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.queries.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, users)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	u, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, u)
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	u, err := h.queries.GetByID(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, u)
}

// RegisterAdmin requires an explicit, existing user type; it never falls
// back to the client default.
func (h *UserHandler) RegisterAdmin(c *gin.Context) {
	var req RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	u, err := h.createAdmin.Execute(c.Request.Context(), ucUser.CreateUserInput{
		Name:       req.Name,
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		CPF:        req.CPF,
		Password:   req.Password,
		Phone:      req.Phone,
		PhotoURL:   req.PhotoURL,
		UserTypeID: req.UserTypeID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, u)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	u, err := h.update.Execute(c.Request.Context(), id, ucUser.UpdateUserInput{
		Name:       req.Name,
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		CPF:        req.CPF,
		Phone:      req.Phone,
		PhotoURL:   req.PhotoURL,
		Password:   req.Password,
		UserTypeID: req.UserTypeID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, u)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// --------- Helpers ---------

func paramID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "O id informado não é válido.")
		return 0, false
	}
	return uint(id), true
}
