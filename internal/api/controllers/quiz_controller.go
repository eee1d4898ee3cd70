package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	req "mentoria/internal/models/request_models"
	resp "mentoria/internal/models/response_models"
	"mentoria/internal/services"
	"mentoria/pkg/utils"
)

type QuizController struct {
	quizService  services.QuizServiceInterface
	slideService services.SlideServiceInterface
}

func NewQuizController(
	quizService services.QuizServiceInterface,
	slideService services.SlideServiceInterface,
) *QuizController {
	return &QuizController{
		quizService:  quizService,
		slideService: slideService,
	}
}

// GetSlides godoc
// @Summary Get the slide catalog
// @Description Returns the ordered slide definitions the funnel renders
// @Tags Quiz
// @Produce json
// @Success 200 {object} response_models.SlideCatalogResponse
// @Router /quiz/slides [get]
func (q *QuizController) GetSlides(c *gin.Context) {
	utils.RespondSuccess(c, resp.SlideCatalogResponse{
		Slides:         q.slideService.Catalog(),
		TotalQuestions: q.slideService.TotalQuestions(),
	}, "Slide catalog fetched successfully")
}

// StartSession godoc
// @Summary Start a quiz session
// @Description Creates a fresh session at slide 1 with an empty answer set
// @Tags Quiz
// @Produce json
// @Success 200 {object} response_models.ProgressResponse
// @Router /quiz/sessions [post]
func (q *QuizController) StartSession(c *gin.Context) {
	progress, err := q.quizService.StartSession(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, progress, "Quiz session started")
}

// GetProgress godoc
// @Summary Get session progress
// @Tags Quiz
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.ProgressResponse
// @Router /quiz/sessions/{sessionId} [get]
func (q *QuizController) GetProgress(c *gin.Context) {
	sessionId := c.Param("sessionId")
	if sessionId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	progress, err := q.quizService.GetProgress(c.Request.Context(), sessionId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, progress, "Progress fetched successfully")
}

// Answer godoc
// @Summary Record an answer
// @Description Writes one answer key for the current slide
// @Tags Quiz
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.AnswerRequest true "Answer"
// @Success 200 {object} response_models.ProgressResponse
// @Failure 400 {object} utils.APIResponse
// @Router /quiz/sessions/{sessionId}/answer [post]
func (q *QuizController) Answer(c *gin.Context) {
	sessionId := c.Param("sessionId")
	if sessionId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	var body req.AnswerRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	progress, err := q.quizService.Answer(c.Request.Context(), sessionId, body.Key, body.Value)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, progress, "Answer recorded")
}

// Advance godoc
// @Summary Advance to the next slide
// @Description Moves forward when the current slide's completion predicate holds
// @Tags Quiz
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.ProgressResponse
// @Failure 400 {object} utils.APIResponse
// @Router /quiz/sessions/{sessionId}/advance [post]
func (q *QuizController) Advance(c *gin.Context) {
	sessionId := c.Param("sessionId")
	if sessionId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	progress, err := q.quizService.Advance(c.Request.Context(), sessionId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, progress, "Advanced")
}

// Retreat godoc
// @Summary Go back one slide
// @Tags Quiz
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.ProgressResponse
// @Failure 400 {object} utils.APIResponse
// @Router /quiz/sessions/{sessionId}/retreat [post]
func (q *QuizController) Retreat(c *gin.Context) {
	sessionId := c.Param("sessionId")
	if sessionId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	progress, err := q.quizService.Retreat(c.Request.Context(), sessionId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, progress, "Went back")
}

// Reset godoc
// @Summary Reset the session
// @Description Clears the answer set and returns to slide 1
// @Tags Quiz
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.ProgressResponse
// @Router /quiz/sessions/{sessionId}/reset [post]
func (q *QuizController) Reset(c *gin.Context) {
	sessionId := c.Param("sessionId")
	if sessionId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	progress, err := q.quizService.Reset(c.Request.Context(), sessionId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, progress, "Quiz reset")
}
