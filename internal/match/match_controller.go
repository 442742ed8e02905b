package match

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/DhavalSuthar-24/courtplan/pkg/responses"
	"github.com/DhavalSuthar-24/courtplan/pkg/utils"
	"github.com/DhavalSuthar-24/courtplan/pkg/validator"
	"github.com/gin-gonic/gin"
)

// ScheduleInvalidator drops cached schedule views of a tournament. Deleting a match
// releases its slot, so cached summaries must go.
type ScheduleInvalidator interface {
	InvalidateTournament(ctx context.Context, tournamentID uint) error
}

// MatchController handles match-related HTTP requests
type MatchController struct {
	repo        MatchRepository
	invalidator ScheduleInvalidator
}

// NewMatchController creates a new match controller. invalidator may be nil.
func NewMatchController(repo MatchRepository, invalidator ScheduleInvalidator) *MatchController {
	return &MatchController{
		repo:        repo,
		invalidator: invalidator,
	}
}

// --- DTOs for requests ---

// CreateMatchRequest registers a match so it can be placed in a slot and refereed.
type CreateMatchRequest struct {
	TournamentID    uint       `json:"tournament_id" binding:"required,gt=0"`
	CourtID         *uint      `json:"court_id" binding:"omitempty,gt=0"`
	StartTime       *time.Time `json:"start_time"`
	DurationMinutes int        `json:"duration_minutes" binding:"required,gt=0"`
	MarginMinutes   int        `json:"margin_minutes" binding:"gte=0"`
}

// CreateMatch godoc
// @Summary Register a match
// @Tags Matches
// @Accept json
// @Produce json
// @Param match body CreateMatchRequest true "Match information"
// @Success 201 {object} responses.SuccessResponse{data=Match}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Router /matches [post]
func (mc *MatchController) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}

	m := &Match{
		TournamentID:    req.TournamentID,
		CourtID:         req.CourtID,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		MarginMinutes:   req.MarginMinutes,
		Status:          StatusMatchPending,
	}
	if m.StartTime != nil {
		m.Status = StatusMatchScheduled
	}

	if err := mc.repo.CreateMatch(c.Request.Context(), m); err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Match created successfully", m)
}

// GetMatchByID godoc
// @Summary Get a match
// @Tags Matches
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Match}
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Router /matches/{match_id} [get]
func (mc *MatchController) GetMatchByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "match_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}

	m, err := mc.repo.GetMatchByID(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", m)
}

// GetTournamentMatches godoc
// @Summary List a tournament's matches
// @Tags Matches
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param unscheduled query boolean false "Only matches not yet placed in a slot"
// @Success 200 {object} responses.SuccessResponse{data=[]Match}
// @Router /tournaments/{tournament_id}/matches [get]
func (mc *MatchController) GetTournamentMatches(c *gin.Context) {
	tournamentID, err := utils.ParseIDParam(c, "tournament_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}
	unscheduled, err := utils.ParseOptionalBoolQuery(c, "unscheduled")
	if err != nil {
		responses.FromError(c, err)
		return
	}

	matches, err := mc.repo.GetTournamentMatches(c.Request.Context(), tournamentID, unscheduled != nil && *unscheduled)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", matches)
}

// DeleteMatch godoc
// @Summary Delete a match
// @Description Releases the slot holding the match and removes its referee assignments.
// @Tags Matches
// @Param match_id path int true "Match ID"
// @Success 204 "No Content"
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Router /matches/{match_id} [delete]
func (mc *MatchController) DeleteMatch(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "match_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}

	ctx := c.Request.Context()
	m, err := mc.repo.GetMatchByID(ctx, id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if err := mc.repo.DeleteMatch(ctx, id); err != nil {
		responses.FromError(c, err)
		return
	}

	if mc.invalidator != nil {
		if err := mc.invalidator.InvalidateTournament(ctx, m.TournamentID); err != nil {
			slog.WarnContext(ctx, "schedule summary cache invalidation failed",
				slog.Uint64("tournament_id", uint64(m.TournamentID)),
				slog.String("error", err.Error()),
			)
		}
	}

	c.Status(http.StatusNoContent)
}
