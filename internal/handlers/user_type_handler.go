package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

// User types are a tiny lookup table; plain gorm CRUD. Deleting one is
// unconditional even if users still reference it.
type UserTypeHandler struct {
	db *gorm.DB
}

func NewUserTypeHandler(db *gorm.DB) *UserTypeHandler {
	return &UserTypeHandler{db: db}
}

type UserTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *UserTypeHandler) List(c *gin.Context) {
	var types []models.UserType
	if err := h.db.WithContext(c.Request.Context()).
		Order("id ASC").
		Find(&types).Error; err != nil {
		httperr.Internal(c, "failed_to_list_user_types", "Erro ao listar tipos de usuário.")
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *UserTypeHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var ut models.UserType
	if err := h.db.WithContext(c.Request.Context()).First(&ut, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_type_not_found", "Tipo de usuário não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_user_type", "Erro ao buscar tipo de usuário.")
		return
	}
	c.JSON(http.StatusOK, ut)
}

func (h *UserTypeHandler) Create(c *gin.Context) {
	var req UserTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ut := models.UserType{Name: req.Name}
	if err := h.db.WithContext(c.Request.Context()).Create(&ut).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user_type", "Erro ao criar tipo de usuário.")
		return
	}
	c.JSON(http.StatusCreated, ut)
}

func (h *UserTypeHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var ut models.UserType
	if err := h.db.WithContext(c.Request.Context()).First(&ut, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_type_not_found", "Tipo de usuário não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_user_type", "Erro ao buscar tipo de usuário.")
		return
	}

	var req UserTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ut.Name = req.Name
	if err := h.db.WithContext(c.Request.Context()).Save(&ut).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user_type", "Erro ao atualizar tipo de usuário.")
		return
	}
	c.JSON(http.StatusOK, ut)
}

func (h *UserTypeHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.UserType{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_user_type", "Erro ao excluir tipo de usuário.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "user_type_not_found", "Tipo de usuário não encontrado.")
		return
	}

	c.Status(http.StatusNoContent)
}
