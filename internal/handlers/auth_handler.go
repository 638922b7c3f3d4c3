package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/token"
	ucUser "github.com/gabrielbarbershop/booking-api/internal/usecase/user"
	"github.com/gabrielbarbershop/booking-api/internal/validators"
)

type AuthHandler struct {
	authenticate *ucUser.AuthenticateUser
	createUser   *ucUser.CreateUser
	tokens       *token.Service
}

func NewAuthHandler(
	authenticate *ucUser.AuthenticateUser,
	createUser *ucUser.CreateUser,
	tokens *token.Service,
) *AuthHandler {
	return &AuthHandler{
		authenticate: authenticate,
		createUser:   createUser,
		tokens:       tokens,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	CPF      string `json:"cpf" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	PhotoURL string `json:"photo_url"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := h.authenticate.Execute(c.Request.Context(), email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	tok, err := h.tokens.Generate(u.ID, u.Email, u.Role())
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tok,
		"user":  u,
	})
}

// Register creates a client-typed user and logs them straight in. The
// password never appears in the response: the model hides it.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	u, err := h.createUser.Execute(c.Request.Context(), ucUser.CreateUserInput{
		Name:     req.Name,
		Email:    email,
		CPF:      req.CPF,
		Password: req.Password,
		Phone:    req.Phone,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	tok, err := h.tokens.Generate(u.ID, u.Email, u.Role())
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": tok,
		"user":  u,
	})
}
