package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/okabeach/flat-manager/internal/httperr"
	"github.com/okabeach/flat-manager/internal/middleware"
	"github.com/okabeach/flat-manager/internal/models"
)

type PropertyHandler struct {
	db *gorm.DB
}

func NewPropertyHandler(db *gorm.DB) *PropertyHandler {
	return &PropertyHandler{db: db}
}

type UpdatePropertyRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func (h *PropertyHandler) GetMeProperty(c *gin.Context) {
	propertyIDVal, _ := c.Get(middleware.ContextPropertyID)
	propertyID := propertyIDVal.(uint)

	var property models.Property
	if err := h.db.First(&property, propertyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "property_not_found", "Propriedade não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_property", "Erro ao buscar dados da propriedade.")
		return
	}

	c.JSON(http.StatusOK, property)
}

func (h *PropertyHandler) UpdateMeProperty(c *gin.Context) {
	propertyIDVal, _ := c.Get(middleware.ContextPropertyID)
	propertyID := propertyIDVal.(uint)

	var property models.Property
	if err := h.db.First(&property, propertyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "property_not_found", "Propriedade não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_property", "Erro ao buscar dados da propriedade.")
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			httperr.BadRequest(c, "invalid_name", "Nome da propriedade não pode ficar vazio.")
			return
		}
		property.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		property.Phone = *req.Phone
	}
	if req.Address != nil {
		property.Address = *req.Address
	}

	if err := h.db.Save(&property).Error; err != nil {
		httperr.Internal(c, "failed_to_update_property", "Erro ao salvar os dados da propriedade.")
		return
	}

	c.JSON(http.StatusOK, property)
}
