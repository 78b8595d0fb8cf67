package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/toeflcenter/backend/internal/dto"
	"github.com/toeflcenter/backend/internal/middleware"
	"github.com/toeflcenter/backend/internal/service"
)

type ScheduleController struct {
	scheduleService service.ScheduleService
}

func NewScheduleController(scheduleService service.ScheduleService) *ScheduleController {
	return &ScheduleController{scheduleService: scheduleService}
}

// GetSchedules godoc
// @Summary List test schedules
// @Tags Schedules
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ScheduleResponseDTO
// @Failure 401 {object} dto.ErrorResponse
// @Router /schedules [get]
func (c *ScheduleController) GetSchedules(ctx *gin.Context) {
	schedules, err := c.scheduleService.GetAllSchedules()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, schedules)
}

// GetSchedule godoc
// @Summary Get a schedule by id
// @Tags Schedules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Success 200 {object} dto.ScheduleResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /schedules/{id} [get]
func (c *ScheduleController) GetSchedule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	schedule, err := c.scheduleService.GetSchedule(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, schedule)
}

// CreateSchedule godoc
// @Summary (Admin) Create a test schedule
// @Tags Schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param schedule body dto.ScheduleCreateDTO true "Schedule data"
// @Success 201 {object} dto.ScheduleResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /schedules [post]
func (c *ScheduleController) CreateSchedule(ctx *gin.Context) {
	var req dto.ScheduleCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateSchedule: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	schedule, err := c.scheduleService.CreateSchedule(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, schedule)
}

// UpdateSchedule godoc
// @Summary (Admin) Update a schedule
// @Tags Schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Param schedule body dto.ScheduleUpdateDTO true "Fields to update"
// @Success 200 {object} dto.ScheduleResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /schedules/{id} [put]
func (c *ScheduleController) UpdateSchedule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ScheduleUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateSchedule: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	schedule, err := c.scheduleService.UpdateSchedule(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, schedule)
}

// DeleteSchedule godoc
// @Summary (Admin) Delete a schedule
// @Tags Schedules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /schedules/{id} [delete]
func (c *ScheduleController) DeleteSchedule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.scheduleService.DeleteSchedule(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Schedule deleted successfully"})
}

// Register godoc
// @Summary Register the current user for a schedule
// @Description Fails when the schedule is full or the user already registered.
// @Tags Schedules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Success 200 {object} dto.ScheduleResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /schedules/{id}/register [post]
func (c *ScheduleController) Register(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authorized, no token"})
		return
	}

	schedule, err := c.scheduleService.RegisterUser(id, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	log.Info().Uint("scheduleId", id).Uint("userId", userID).Msg("User registered for schedule")
	ctx.JSON(http.StatusOK, schedule)
}
