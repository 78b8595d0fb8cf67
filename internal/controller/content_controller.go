package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/toeflcenter/backend/internal/dto"
	"github.com/toeflcenter/backend/internal/service"
)

type ContentController struct {
	contentService service.ContentService
}

func NewContentController(contentService service.ContentService) *ContentController {
	return &ContentController{contentService: contentService}
}

// GetContents godoc
// @Summary (Admin) List study materials and test questions
// @Tags Content
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ContentResponseDTO
// @Failure 401 {object} dto.ErrorResponse
// @Router /content [get]
func (c *ContentController) GetContents(ctx *gin.Context) {
	contents, err := c.contentService.GetAllContents()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, contents)
}

// GetContent godoc
// @Summary (Admin) Get a content item by id
// @Tags Content
// @Produce json
// @Security BearerAuth
// @Param id path int true "Content ID"
// @Success 200 {object} dto.ContentResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /content/{id} [get]
func (c *ContentController) GetContent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	content, err := c.contentService.GetContent(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, content)
}

// CreateContent godoc
// @Summary (Admin) Create a content item
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param content body dto.ContentCreateDTO true "Content data"
// @Success 201 {object} dto.ContentResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /content [post]
func (c *ContentController) CreateContent(ctx *gin.Context) {
	var req dto.ContentCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateContent: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	content, err := c.contentService.CreateContent(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, content)
}

// UpdateContent godoc
// @Summary (Admin) Update a content item
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Content ID"
// @Param content body dto.ContentUpdateDTO true "Fields to update"
// @Success 200 {object} dto.ContentResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /content/{id} [put]
func (c *ContentController) UpdateContent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ContentUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateContent: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	content, err := c.contentService.UpdateContent(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, content)
}

// DeleteContent godoc
// @Summary (Admin) Delete a content item
// @Tags Content
// @Produce json
// @Security BearerAuth
// @Param id path int true "Content ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /content/{id} [delete]
func (c *ContentController) DeleteContent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.contentService.DeleteContent(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Content deleted successfully"})
}
