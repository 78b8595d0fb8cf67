package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/toeflcenter/backend/internal/dto"
	"github.com/toeflcenter/backend/internal/middleware"
	"github.com/toeflcenter/backend/internal/service"
)

type ResultController struct {
	resultService service.ResultService
}

func NewResultController(resultService service.ResultService) *ResultController {
	return &ResultController{resultService: resultService}
}

// GetResults godoc
// @Summary List results
// @Description Admins see every result; users see only their own.
// @Tags Results
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ResultResponseDTO
// @Failure 401 {object} dto.ErrorResponse
// @Router /results [get]
func (c *ResultController) GetResults(ctx *gin.Context) {
	callerID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authorized, no token"})
		return
	}

	results, err := c.resultService.GetResults(callerID, middleware.IsAdmin(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// GetResult godoc
// @Summary Get a result by id
// @Tags Results
// @Produce json
// @Security BearerAuth
// @Param id path int true "Result ID"
// @Success 200 {object} dto.ResultResponseDTO
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /results/{id} [get]
func (c *ResultController) GetResult(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	callerID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authorized, no token"})
		return
	}

	result, err := c.resultService.GetResult(id, callerID, middleware.IsAdmin(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// CreateResult godoc
// @Summary (Admin) Record a result directly
// @Description The passed flag is always derived from the score server-side.
// @Tags Results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param result body dto.ResultCreateDTO true "Result data"
// @Success 201 {object} dto.ResultResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /results [post]
func (c *ResultController) CreateResult(ctx *gin.Context) {
	var req dto.ResultCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateResult: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.resultService.CreateResult(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// UpdateResult godoc
// @Summary (Admin) Update a result
// @Description A score change re-derives the passed flag before persisting.
// @Tags Results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Result ID"
// @Param result body dto.ResultUpdateDTO true "Fields to update"
// @Success 200 {object} dto.ResultResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /results/{id} [put]
func (c *ResultController) UpdateResult(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ResultUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateResult: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.resultService.UpdateResult(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// DeleteResult godoc
// @Summary (Admin) Delete a result
// @Tags Results
// @Produce json
// @Security BearerAuth
// @Param id path int true "Result ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /results/{id} [delete]
func (c *ResultController) DeleteResult(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.resultService.DeleteResult(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Result deleted successfully"})
}
