package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/gpacalc/internal/app/models/dto"
	"github.com/yigit/gpacalc/internal/app/services"
	"github.com/yigit/gpacalc/internal/middleware"
)

// GPAController handles GPA calculation requests
type GPAController struct {
	gpaService services.GPAService
}

// NewGPAController creates a new GPAController
func NewGPAController(gpaService services.GPAService) *GPAController {
	return &GPAController{
		gpaService: gpaService,
	}
}

// NewCalculateRequest allocates the body bound by middleware.ValidateRequest
func NewCalculateRequest() interface{} {
	return &dto.CalculateRequest{}
}

// Calculate computes the GPA of the posted courses
// @Summary Calculate GPA
// @Description Computes the credit-weighted GPA, weighted average score and total credits
// @Tags gpa
// @Accept json
// @Produce json
// @Param request body dto.CalculateRequest true "Courses"
// @Success 200 {object} dto.CalculateResponse "Calculation result"
// @Failure 400 {object} dto.ErrorResponse "No courses, invalid values or zero total credits"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/calculate [post]
func (c *GPAController) Calculate(ctx *gin.Context) {
	req, ok := middleware.ValidatedBody[dto.CalculateRequest](ctx)
	if !ok {
		req = &dto.CalculateRequest{}
		if err := ctx.ShouldBindJSON(req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
			return
		}
	}

	result, err := c.gpaService.Calculate(ctx.Request.Context(), req.ToModels())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCalculateResponse(result))
}

// Health reports that the server is up
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.APIResponse "Server is up"
// @Router /health [get]
func (c *GPAController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"status": "ok"}))
}
