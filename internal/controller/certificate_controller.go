package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/toeflcenter/backend/internal/dto"
	"github.com/toeflcenter/backend/internal/middleware"
	"github.com/toeflcenter/backend/internal/service"
)

type CertificateController struct {
	certificateService service.CertificateService
}

func NewCertificateController(certificateService service.CertificateService) *CertificateController {
	return &CertificateController{certificateService: certificateService}
}

// GetCertificates godoc
// @Summary (Admin) List all certificates
// @Tags Certificates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CertificateResponseDTO
// @Failure 401 {object} dto.ErrorResponse
// @Router /certificates [get]
func (c *CertificateController) GetCertificates(ctx *gin.Context) {
	certificates, err := c.certificateService.GetAllCertificates()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, certificates)
}

// GetCertificate godoc
// @Summary Get a certificate by id
// @Description A user can only fetch their own certificate; admins can fetch any.
// @Tags Certificates
// @Produce json
// @Security BearerAuth
// @Param id path int true "Certificate ID"
// @Success 200 {object} dto.CertificateResponseDTO
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /certificates/{id} [get]
func (c *CertificateController) GetCertificate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	callerID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authorized, no token"})
		return
	}

	certificate, err := c.certificateService.GetCertificate(id, callerID, middleware.IsAdmin(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, certificate)
}

// CreateCertificate godoc
// @Summary (Admin) Issue a certificate for a passed result
// @Tags Certificates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param certificate body dto.CertificateCreateDTO true "Certificate data"
// @Success 201 {object} dto.CertificateResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /certificates [post]
func (c *CertificateController) CreateCertificate(ctx *gin.Context) {
	var req dto.CertificateCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateCertificate: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	certificate, err := c.certificateService.CreateCertificate(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, certificate)
}

// UpdateCertificate godoc
// @Summary (Admin) Update a certificate
// @Tags Certificates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Certificate ID"
// @Param certificate body dto.CertificateUpdateDTO true "Fields to update"
// @Success 200 {object} dto.CertificateResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /certificates/{id} [put]
func (c *CertificateController) UpdateCertificate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CertificateUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateCertificate: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	certificate, err := c.certificateService.UpdateCertificate(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, certificate)
}

// DeleteCertificate godoc
// @Summary (Admin) Delete a certificate
// @Tags Certificates
// @Produce json
// @Security BearerAuth
// @Param id path int true "Certificate ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /certificates/{id} [delete]
func (c *CertificateController) DeleteCertificate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.certificateService.DeleteCertificate(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Certificate deleted successfully"})
}
