package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	req "mentoria/internal/models/request_models"
	resp "mentoria/internal/models/response_models"
	"mentoria/internal/services"
	"mentoria/pkg/utils"
)

type ResultController struct {
	resultService services.ResultServiceInterface
}

func NewResultController(resultService services.ResultServiceInterface) *ResultController {
	return &ResultController{resultService: resultService}
}

// GenerateResult godoc
// @Summary Generate the report for a submission
// @Description Idempotent: returns the cached report when one already exists.
// @Description The response shape matches what the funnel frontend expects,
// @Description not the standard API envelope.
// @Tags Result
// @Accept json
// @Produce json
// @Param request body request_models.GenerateResultRequest true "Submission reference"
// @Success 200 {object} response_models.GenerateResultResponse
// @Failure 404 {object} response_models.GenerateResultResponse
// @Failure 502 {object} response_models.GenerateResultResponse
// @Router /results/generate [post]
func (r *ResultController) GenerateResult(c *gin.Context) {
	var body req.GenerateResultRequest
	if err := c.ShouldBindJSON(&body); err != nil || body.SubmissionID == "" {
		c.JSON(http.StatusBadRequest, resp.GenerateResultResponse{
			Status:  "error",
			Message: "submission_id is required",
		})
		return
	}

	result, err := r.resultService.GenerateResult(c.Request.Context(), body.SubmissionID)
	if err != nil {
		c.JSON(generateErrorStatus(err), resp.GenerateResultResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp.GenerateResultResponse{
		Status:         "ok",
		ResultMarkdown: result.ResultMarkdown,
		SubmissionID:   result.SubmissionID.String(),
		ResultID:       result.ID.String(),
	})
}

func generateErrorStatus(err error) int {
	switch {
	case errors.Is(err, utils.ErrSubmissionNotFound):
		return http.StatusNotFound
	case errors.Is(err, utils.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, utils.ErrUnexpectedBehaviorOfAI):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// GetResult godoc
// @Summary Fetch the report for a submission
// @Description Returns the stored report, generating it first when absent
// @Tags Result
// @Produce json
// @Param submissionId path string true "Submission ID"
// @Success 200 {object} response_models.ResultResponse
// @Failure 404 {object} utils.APIResponse
// @Router /results/{submissionId} [get]
func (r *ResultController) GetResult(c *gin.Context) {
	submissionId := c.Param("submissionId")
	if submissionId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Submission ID is required")
		return
	}

	result, err := r.resultService.GetResult(c.Request.Context(), submissionId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Result fetched successfully")
}
