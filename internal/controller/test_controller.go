package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/toeflcenter/backend/internal/dto"
	"github.com/toeflcenter/backend/internal/middleware"
	"github.com/toeflcenter/backend/internal/service"
)

type TestController struct {
	adminTestService  service.AdminTestService
	userTestService   service.UserTestService
	submissionService service.TestSubmissionService
}

func NewTestController(
	adminTestService service.AdminTestService,
	userTestService service.UserTestService,
	submissionService service.TestSubmissionService,
) *TestController {
	return &TestController{
		adminTestService:  adminTestService,
		userTestService:   userTestService,
		submissionService: submissionService,
	}
}

// GetAllTests godoc
// @Summary List all available tests
// @Tags Tests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 401 {object} dto.ErrorResponse
// @Router /tests [get]
func (c *TestController) GetAllTests(ctx *gin.Context) {
	tests, err := c.userTestService.GetAllTests()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTest godoc
// @Summary Get full details of a test, questions in order
// @Tags Tests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Success 200 {object} dto.TestResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /tests/{id} [get]
func (c *TestController) GetTest(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	test, err := c.userTestService.GetTestDetails(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, test)
}

// CreateTest godoc
// @Summary (Admin) Create a new test with its questions
// @Tags Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test body dto.TestCreateDTO true "Test definition including ordered questions and choices"
// @Success 201 {object} dto.TestResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /tests [post]
func (c *TestController) CreateTest(ctx *gin.Context) {
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateTest: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	test, err := c.adminTestService.CreateTest(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, test)
}

// UpdateTest godoc
// @Summary (Admin) Update a test
// @Tags Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Param test body dto.TestUpdateDTO true "Fields to update; a question list replaces the existing set"
// @Success 200 {object} dto.TestResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /tests/{id} [put]
func (c *TestController) UpdateTest(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.TestUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateTest: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	test, err := c.adminTestService.UpdateTest(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, test)
}

// DeleteTest godoc
// @Summary (Admin) Delete a test and its questions
// @Tags Tests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tests/{id} [delete]
func (c *TestController) DeleteTest(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminTestService.DeleteTest(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Test deleted successfully"})
}

// SubmitTest godoc
// @Summary Submit answers for a test and receive the graded result
// @Description Grades the submitted answers, stores the result, and issues a certificate when the score reaches the passing threshold.
// @Tags Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Param submission body dto.TestSubmissionDTO true "Answers keyed by question index"
// @Success 201 {object} dto.ResultResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed answers"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{id}/submit [post]
func (c *TestController) SubmitTest(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authorized, no token"})
		return
	}

	var req dto.TestSubmissionDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitTest: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	log.Info().Uint("testID", id).Uint("userID", userID).Int("answerCount", len(req.Answers)).Msg("Received test submission")

	result, err := c.submissionService.SubmitTest(id, userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, result)
}
