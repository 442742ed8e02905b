package schedule

import (
	"net/http"

	"github.com/DhavalSuthar-24/courtplan/pkg/responses"
	"github.com/DhavalSuthar-24/courtplan/pkg/utils"
	"github.com/DhavalSuthar-24/courtplan/pkg/validator"
	"github.com/gin-gonic/gin"
)

// OptimizerController exposes an Optimizer over HTTP.
type OptimizerController struct {
	optimizer Optimizer
}

func NewOptimizerController(optimizer Optimizer) *OptimizerController {
	return &OptimizerController{optimizer: optimizer}
}

type OptimizeScheduleRequest struct {
	OptimizeFor string         `json:"optimize_for"`
	Constraints map[string]any `json:"constraints"`
}

// OptimizeSchedule godoc
// @Summary Propose slots for unscheduled matches
// @Description optimize_for is one of minimal_conflicts (default), referee_availability, court_usage.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param request body OptimizeScheduleRequest false "Optimization objective"
// @Success 200 {object} responses.SuccessResponse{data=Result}
// @Failure 400 {object} responses.ErrorResponse "Unknown objective"
// @Router /tournaments/{tournament_id}/optimize-schedule [post]
func (oc *OptimizerController) OptimizeSchedule(c *gin.Context) {
	tournamentID, err := utils.ParseIDParam(c, "tournament_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}

	var req OptimizeScheduleRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.BadRequest(c, "Validation failed", validator.ParseError(err))
			return
		}
	}

	result, err := oc.optimizer.Optimize(c.Request.Context(), tournamentID, Objective(req.OptimizeFor))
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", result)
}

// RegisterScheduleRoutes mounts the optimizer endpoint on router.
func RegisterScheduleRoutes(router *gin.RouterGroup, controller *OptimizerController) {
	router.POST("/tournaments/:tournament_id/optimize-schedule", controller.OptimizeSchedule)
}
