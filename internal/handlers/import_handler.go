package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"menu-service/internal/events"
	"menu-service/internal/importer"
	"menu-service/internal/middleware"
	"menu-service/internal/models"
	"menu-service/internal/repository"
)

type ImportHandler struct {
	repo            *repository.MenuRepository
	importer        *importer.Importer
	eventsPublisher *events.Publisher
	logger          *logrus.Entry
}

func NewImportHandler(repo *repository.MenuRepository, imp *importer.Importer, eventsPublisher *events.Publisher, logger *logrus.Logger) *ImportHandler {
	return &ImportHandler{
		repo:            repo,
		importer:        imp,
		eventsPublisher: eventsPublisher,
		logger:          logger.WithField("component", "handlers.import"),
	}
}

// ImportMenu imports a full menu workbook for a company
// @Summary Import menu workbook
// @Description Replaces the company's catalog with the contents of an uploaded XLSX workbook
// @Tags menu
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "XLSX workbook"
// @Success 200 {object} importer.ImportResult
// @Failure 400 {object} models.ErrorResponse
// @Router /menu/import [post]
func (h *ImportHandler) ImportMenu(c *gin.Context) {
	companyID := middleware.GetCompanyID(c)
	if companyID == 0 {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "COMPANY_REQUIRED",
				Message: "Company context is required for this operation",
			},
		})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "FILE_REQUIRED",
				Message: "Please upload an Excel workbook",
			},
		})
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".xlsx") {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "INVALID_FORMAT",
				Message: "Only XLSX files are supported",
			},
		})
		return
	}

	wb, err := importer.LoadWorkbook(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "PARSE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}
	if len(wb.Sheets) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "EMPTY_FILE",
				Message: "The workbook contains no sheets",
			},
		})
		return
	}

	result, err := h.importer.Import(c.Request.Context(), companyID, wb)
	if err != nil {
		h.logger.WithError(err).Error("Menu import failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "IMPORT_FAILED",
				Message: err.Error(),
			},
		})
		return
	}

	// The old cached document is stale the moment the wipe ran.
	if company, err := h.repo.GetCompanyByID(c.Request.Context(), companyID); err == nil {
		h.repo.InvalidateCatalog(c.Request.Context(), company.Code)
	}

	if h.eventsPublisher != nil {
		event := events.MenuImportedEvent{
			ImportID:     result.ImportID,
			CompanyID:    companyID,
			FileName:     header.Filename,
			TotalRecords: result.TotalRecords,
			SuccessCount: result.SuccessCount,
			FailedCount:  result.FailedCount,
		}
		if err := h.eventsPublisher.PublishMenuImported(c.Request.Context(), event); err != nil {
			h.logger.WithError(err).Warn("Failed to publish menu imported event")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  result,
	})
}
