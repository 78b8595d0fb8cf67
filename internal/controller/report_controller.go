package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/toeflcenter/backend/internal/dto"
	"github.com/toeflcenter/backend/internal/service"
)

type ReportController struct {
	reportService service.ReportService
}

func NewReportController(reportService service.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// GetReports godoc
// @Summary List performance reports
// @Tags Reports
// @Produce json
// @Success 200 {array} dto.ReportResponseDTO
// @Router /reports [get]
func (c *ReportController) GetReports(ctx *gin.Context) {
	reports, err := c.reportService.GetAllReports()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reports)
}

// GetReport godoc
// @Summary Get a report by id
// @Tags Reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} dto.ReportResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /reports/{id} [get]
func (c *ReportController) GetReport(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	report, err := c.reportService.GetReport(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// CreateReport godoc
// @Summary Create a performance report
// @Tags Reports
// @Accept json
// @Produce json
// @Param report body dto.ReportCreateDTO true "Report data"
// @Success 201 {object} dto.ReportResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /reports [post]
func (c *ReportController) CreateReport(ctx *gin.Context) {
	var req dto.ReportCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateReport: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	report, err := c.reportService.CreateReport(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, report)
}

// UpdateReport godoc
// @Summary Update a report
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path int true "Report ID"
// @Param report body dto.ReportUpdateDTO true "Fields to update"
// @Success 200 {object} dto.ReportResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /reports/{id} [put]
func (c *ReportController) UpdateReport(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ReportUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateReport: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	report, err := c.reportService.UpdateReport(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// DeleteReport godoc
// @Summary Delete a report
// @Tags Reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /reports/{id} [delete]
func (c *ReportController) DeleteReport(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.reportService.DeleteReport(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Report deleted successfully"})
}
