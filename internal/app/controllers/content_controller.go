package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/coursepass/internal/app/models"
	"github.com/yigit/coursepass/internal/app/models/dto"
	"github.com/yigit/coursepass/internal/app/models/dto/enums"
	"github.com/yigit/coursepass/internal/app/services"
	"github.com/yigit/coursepass/internal/middleware"
	"github.com/yigit/coursepass/internal/pkg/apperrors"
)

// ContentController serves course content for the session's course
type ContentController struct {
	contentService services.ContentService
	logger         zerolog.Logger
}

// NewContentController creates a new ContentController
func NewContentController(contentService services.ContentService, logger zerolog.Logger) *ContentController {
	return &ContentController{
		contentService: contentService,
		logger:         logger,
	}
}

// source returns the content source set by the session middleware
func (c *ContentController) source(ctx *gin.Context) (*models.CourseContentSource, bool) {
	src, ok := middleware.ContentSource(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
	}
	return src, ok
}

// GetLessons lists the course lessons
// @Summary List lessons
// @Tags content
// @Produce json
// @Security SessionCookie
// @Success 200 {object} dto.APIResponse{data=[]models.Lesson} "Lessons ordered by position"
// @Failure 401 {object} dto.APIResponse "Not authenticated"
// @Failure 500 {object} dto.APIResponse "Failed to fetch lessons"
// @Router /content/lessons [get]
func (c *ContentController) GetLessons(ctx *gin.Context) {
	src, ok := c.source(ctx)
	if !ok {
		return
	}

	lessons, err := c.contentService.ListLessons(ctx.Request.Context(), src)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(lessons))
}

// GetFlashcards lists the course flashcards
// @Summary List flashcards
// @Tags content
// @Produce json
// @Security SessionCookie
// @Success 200 {object} dto.APIResponse{data=[]models.Flashcard} "Flashcards ordered by position"
// @Failure 401 {object} dto.APIResponse "Not authenticated"
// @Failure 500 {object} dto.APIResponse "Failed to fetch flashcards"
// @Router /content/flashcards [get]
func (c *ContentController) GetFlashcards(ctx *gin.Context) {
	src, ok := c.source(ctx)
	if !ok {
		return
	}

	cards, err := c.contentService.ListFlashcards(ctx.Request.Context(), src)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(cards))
}

// GetTests lists practice tests without their questions
// @Summary List practice tests
// @Tags content
// @Produce json
// @Security SessionCookie
// @Success 200 {object} dto.APIResponse{data=[]models.Test} "Tests ordered by position"
// @Failure 401 {object} dto.APIResponse "Not authenticated"
// @Failure 500 {object} dto.APIResponse "Failed to fetch tests"
// @Router /content/tests [get]
func (c *ContentController) GetTests(ctx *gin.Context) {
	src, ok := c.source(ctx)
	if !ok {
		return
	}

	tests, err := c.contentService.ListTests(ctx.Request.Context(), src)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(tests))
}

// GetQuestions lists questions, optionally filtered
// @Summary List questions
// @Tags content
// @Produce json
// @Security SessionCookie
// @Param testId query string false "Only questions of this test"
// @Param category query string false "Only questions of this category"
// @Success 200 {object} dto.APIResponse{data=[]models.Question,meta=dto.QuestionsMeta} "Questions with their categories"
// @Failure 400 {object} dto.APIResponse "Invalid filter"
// @Failure 401 {object} dto.APIResponse "Not authenticated"
// @Failure 500 {object} dto.APIResponse "Failed to fetch questions"
// @Router /content/questions [get]
func (c *ContentController) GetQuestions(ctx *gin.Context) {
	src, ok := c.source(ctx)
	if !ok {
		return
	}

	var query dto.QuestionsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.RespondError(ctx, http.StatusBadRequest, enums.ErrorCodeValidationFailed, dto.HandleValidationError(err))
		return
	}

	questions, categories, err := c.contentService.ListQuestions(ctx.Request.Context(), src, services.QuestionFilter{
		TestID:   query.TestID,
		Category: query.Category,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Data:    questions,
		Meta:    dto.QuestionsMeta{Total: len(questions), Categories: categories},
	})
}

// GenerateTest samples a fresh randomized test
// @Summary Generate a randomized test
// @Description Draws up to questionsPerCategory questions from every category and shuffles them. Each call returns a new sample.
// @Tags content
// @Produce json
// @Security SessionCookie
// @Param id path int true "Test ID" minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.GeneratedTest} "Generated test"
// @Failure 400 {object} dto.APIResponse "Invalid test ID"
// @Failure 401 {object} dto.APIResponse "Not authenticated"
// @Failure 404 {object} dto.APIResponse "Test not found"
// @Failure 500 {object} dto.APIResponse "Failed to generate test"
// @Router /content/tests/{id}/generate [get]
func (c *ContentController) GenerateTest(ctx *gin.Context) {
	src, ok := c.source(ctx)
	if !ok {
		return
	}

	var uri dto.GenerateTestURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		middleware.RespondError(ctx, http.StatusBadRequest, enums.ErrorCodeBadRequest, "Invalid test ID")
		return
	}

	test, err := c.contentService.GenerateTest(ctx.Request.Context(), src, uri.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(test))
}
