package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"menu-service/internal/models"
	"menu-service/internal/repository"
)

type CatalogHandler struct {
	repo   *repository.MenuRepository
	logger *logrus.Entry
}

func NewCatalogHandler(repo *repository.MenuRepository, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		repo:   repo,
		logger: logger.WithField("component", "handlers.catalog"),
	}
}

// GetCatalog returns the assembled storefront catalog for a company
// @Summary Get storefront catalog
// @Description Returns the full nested menu document for a company code
// @Tags storefront
// @Produce json
// @Param companyCode path string true "Company code"
// @Success 200 {object} models.CatalogDocument
// @Failure 404 {object} models.ErrorResponse
// @Router /storefront/catalog/{companyCode} [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	companyCode := c.Param("companyCode")
	if companyCode == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "COMPANY_CODE_REQUIRED",
				Message: "Company code is required",
			},
		})
		return
	}

	doc, err := h.repo.GetCatalog(c.Request.Context(), companyCode)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Error: models.Error{
					Code:    "COMPANY_NOT_FOUND",
					Message: "No active company with this code",
				},
			})
			return
		}
		h.logger.WithError(err).WithField("company_code", companyCode).Error("Failed to build catalog")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "CATALOG_FAILED",
				Message: "Failed to load catalog",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    doc,
	})
}
