package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/coursepass/internal/app/models/dto"
	"github.com/yigit/coursepass/internal/app/models/dto/enums"
	"github.com/yigit/coursepass/internal/app/services"
	"github.com/yigit/coursepass/internal/middleware"
)

// AdminController manages access codes
type AdminController struct {
	adminService services.AdminService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		adminService: adminService,
		logger:       logger,
	}
}

// CreateAccessCode creates a new access code
// @Summary Create an access code
// @Tags admin
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param request body dto.CreateAccessCodeRequest true "Access code"
// @Success 201 {object} dto.APIResponse{data=dto.AccessCodeResponse} "Access code created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Invalid admin credentials"
// @Failure 409 {object} dto.APIResponse "Access code already exists"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /admin/access-codes [post]
func (c *AdminController) CreateAccessCode(ctx *gin.Context) {
	req, ok := middleware.ValidatedBody[dto.CreateAccessCodeRequest](ctx)
	if !ok {
		middleware.RespondError(ctx, http.StatusBadRequest, enums.ErrorCodeBadRequest, "Invalid request format")
		return
	}

	code, err := c.adminService.CreateAccessCode(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("admin", ctx.GetString(middleware.AdminUserKey)).
		Str("code", code.Code).
		Msg("Access code created by admin")

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewAccessCodeResponse(code)))
}

// ListAccessCodes lists every access code
// @Summary List access codes
// @Tags admin
// @Produce json
// @Security BasicAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AccessCodeResponse} "Access codes"
// @Failure 401 {object} dto.APIResponse "Invalid admin credentials"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /admin/access-codes [get]
func (c *AdminController) ListAccessCodes(ctx *gin.Context) {
	codes, err := c.adminService.ListAccessCodes(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.AccessCodeResponse, 0, len(codes))
	for _, code := range codes {
		resp = append(resp, dto.NewAccessCodeResponse(code))
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// UpdateAccessCode activates or deactivates an access code
// @Summary Activate or deactivate an access code
// @Description Existing sessions of a deactivated code stay valid until they expire.
// @Tags admin
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param id path string true "Access code ID" Format(uuid)
// @Param request body dto.UpdateAccessCodeRequest true "New state"
// @Success 200 {object} dto.APIResponse{data=dto.AccessCodeResponse} "Access code updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Invalid admin credentials"
// @Failure 404 {object} dto.APIResponse "Access code not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /admin/access-codes/{id} [patch]
func (c *AdminController) UpdateAccessCode(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		middleware.RespondError(ctx, http.StatusBadRequest, enums.ErrorCodeBadRequest, "Invalid access code ID")
		return
	}

	req, ok := middleware.ValidatedBody[dto.UpdateAccessCodeRequest](ctx)
	if !ok {
		middleware.RespondError(ctx, http.StatusBadRequest, enums.ErrorCodeBadRequest, "Invalid request format")
		return
	}

	code, err := c.adminService.SetAccessCodeActive(ctx.Request.Context(), id, *req.IsActive)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewAccessCodeResponse(code)))
}
