package referee

import (
	"net/http"
	"time"

	"github.com/DhavalSuthar-24/courtplan/internal/common"
	"github.com/DhavalSuthar-24/courtplan/pkg/responses"
	"github.com/DhavalSuthar-24/courtplan/pkg/utils"
	"github.com/DhavalSuthar-24/courtplan/pkg/validator"
	"github.com/gin-gonic/gin"
)

const defaultPageSize = 20

// RefereeController handles referee HTTP requests.
type RefereeController struct {
	service  *RefereeService
	pageSize int
}

// NewRefereeController creates a new RefereeController. A non-positive pageSize
// falls back to 20.
func NewRefereeController(service *RefereeService, pageSize int) *RefereeController {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &RefereeController{service: service, pageSize: pageSize}
}

// --- DTOs ---

type CreateRefereeRequest struct {
	Name               string  `json:"name" binding:"required,min=1,max=150"`
	Email              *string `json:"email" binding:"omitempty,email"`
	Phone              *string `json:"phone" binding:"omitempty,max=50"`
	CertificationLevel *string `json:"certification_level" binding:"omitempty,max=100"`
	Active             *bool   `json:"active"`
	Notes              *string `json:"notes"`
}

type UpdateRefereeRequest struct {
	Name               *string `json:"name" binding:"omitempty,min=1,max=150"`
	Email              *string `json:"email" binding:"omitempty,email"`
	Phone              *string `json:"phone" binding:"omitempty,max=50"`
	CertificationLevel *string `json:"certification_level" binding:"omitempty,max=100"`
	Active             *bool   `json:"active"`
	Notes              *string `json:"notes"`
}

type DeclareAvailabilityRequest struct {
	AvailableFrom    time.Time `json:"available_from" binding:"required"`
	AvailableTo      time.Time `json:"available_to" binding:"required"`
	MaxMatchesPerDay int       `json:"max_matches_per_day" binding:"omitempty,gt=0"`
	PreferredCourts  []uint    `json:"preferred_courts" binding:"omitempty,dive,gt=0"`
	Notes            *string   `json:"notes"`
}

type AssignRefereeRequest struct {
	Role      string  `json:"role"`
	Confirmed bool    `json:"confirmed"`
	Notes     *string `json:"notes"`
}

type UpdateAssignmentRequest struct {
	Confirmed *bool   `json:"confirmed"`
	Notes     *string `json:"notes"`
}

// CreateReferee godoc
// @Summary Create a referee
// @Tags Referees
// @Accept json
// @Produce json
// @Param referee body CreateRefereeRequest true "Referee information"
// @Success 201 {object} responses.SuccessResponse{data=Referee}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /referees [post]
func (rc *RefereeController) CreateReferee(c *gin.Context) {
	var req CreateRefereeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}

	ref := &Referee{
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		CertificationLevel: req.CertificationLevel,
		Active:             true,
		Notes:              req.Notes,
	}
	if req.Active != nil {
		ref.Active = *req.Active
	}

	created, err := rc.service.CreateReferee(c.Request.Context(), ref)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Referee created successfully", created)
}

// ListReferees godoc
// @Summary List referees
// @Tags Referees
// @Produce json
// @Param active query boolean false "Filter by active flag"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} responses.PaginatedResponse{data=[]Referee}
// @Failure 400 {object} responses.ErrorResponse "Invalid query parameters"
// @Router /referees [get]
func (rc *RefereeController) ListReferees(c *gin.Context) {
	active, err := utils.ParseOptionalBoolQuery(c, "active")
	if err != nil {
		responses.FromError(c, err)
		return
	}
	page, pageSize := utils.ParsePagination(c, rc.pageSize)

	refs, total, err := rc.service.ListReferees(c.Request.Context(), active, page, pageSize)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Referees retrieved successfully", refs, total, page, pageSize)
}

// GetReferee godoc
// @Summary Get a referee
// @Tags Referees
// @Produce json
// @Param referee_id path int true "Referee ID"
// @Success 200 {object} responses.SuccessResponse{data=Referee}
// @Failure 404 {object} responses.ErrorResponse "Referee not found"
// @Router /referees/{referee_id} [get]
func (rc *RefereeController) GetReferee(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "referee_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}

	ref, err := rc.service.GetReferee(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", ref)
}

// UpdateReferee godoc
// @Summary Update a referee
// @Description Only the supplied fields change.
// @Tags Referees
// @Accept json
// @Produce json
// @Param referee_id path int true "Referee ID"
// @Param referee body UpdateRefereeRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=Referee}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Referee not found"
// @Router /referees/{referee_id} [put]
func (rc *RefereeController) UpdateReferee(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "referee_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}

	var req UpdateRefereeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}

	ref, err := rc.service.UpdateReferee(c.Request.Context(), id, RefereeUpdate{
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		CertificationLevel: req.CertificationLevel,
		Active:             req.Active,
		Notes:              req.Notes,
	})
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Referee updated successfully", ref)
}

// DeleteReferee godoc
// @Summary Delete a referee
// @Description Also removes the referee's availability and assignments. Prefer setting active=false.
// @Tags Referees
// @Param referee_id path int true "Referee ID"
// @Success 204 "No Content"
// @Failure 404 {object} responses.ErrorResponse "Referee not found"
// @Router /referees/{referee_id} [delete]
func (rc *RefereeController) DeleteReferee(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "referee_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}

	if err := rc.service.DeleteReferee(c.Request.Context(), id); err != nil {
		responses.FromError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RefereeConflicts godoc
// @Summary Inspect a referee's schedule
// @Tags Referees
// @Produce json
// @Param referee_id path int true "Referee ID"
// @Param tournament_id query int true "Tournament ID"
// @Param date query string false "Limit to one day (YYYY-MM-DD or RFC 3339)"
// @Success 200 {object} responses.SuccessResponse{data=[]ScheduleConflict}
// @Failure 400 {object} responses.ErrorResponse "Invalid query parameters"
// @Failure 404 {object} responses.ErrorResponse "Referee not found"
// @Router /referees/{referee_id}/conflicts [get]
func (rc *RefereeController) RefereeConflicts(c *gin.Context) {
	refereeID, err := utils.ParseIDParam(c, "referee_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}
	tournamentID, err := utils.ParseOptionalUintQuery(c, "tournament_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if tournamentID == nil {
		responses.FromError(c, common.InvalidArgumentf("tournament_id is required"))
		return
	}
	day, err := utils.ParseOptionalTimeQuery(c, "date")
	if err != nil {
		responses.FromError(c, err)
		return
	}

	conflicts, err := rc.service.RefereeConflicts(c.Request.Context(), refereeID, *tournamentID, day)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", conflicts)
}

// DeclareAvailability godoc
// @Summary Declare a referee's availability for a tournament
// @Tags Referees
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param referee_id path int true "Referee ID"
// @Param availability body DeclareAvailabilityRequest true "Availability window"
// @Success 201 {object} responses.SuccessResponse{data=RefereeAvailability}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Referee not found"
// @Failure 409 {object} responses.ErrorResponse "Availability already declared"
// @Router /tournaments/{tournament_id}/referees/{referee_id} [post]
func (rc *RefereeController) DeclareAvailability(c *gin.Context) {
	tournamentID, err := utils.ParseIDParam(c, "tournament_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}
	refereeID, err := utils.ParseIDParam(c, "referee_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}

	var req DeclareAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}

	avail, err := rc.service.DeclareAvailability(c.Request.Context(), &RefereeAvailability{
		RefereeID:        refereeID,
		TournamentID:     tournamentID,
		AvailableFrom:    req.AvailableFrom,
		AvailableTo:      req.AvailableTo,
		MaxMatchesPerDay: req.MaxMatchesPerDay,
		PreferredCourts:  req.PreferredCourts,
		Notes:            req.Notes,
	})
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Referee availability declared", avail)
}

// ListTournamentReferees godoc
// @Summary List a tournament's referees
// @Description Active referees with availability for the tournament, with their assignments.
// @Tags Referees
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Success 200 {object} responses.SuccessResponse{data=[]RefereeWithAssignments}
// @Router /tournaments/{tournament_id}/referees [get]
func (rc *RefereeController) ListTournamentReferees(c *gin.Context) {
	tournamentID, err := utils.ParseIDParam(c, "tournament_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}

	refs, err := rc.service.ListTournamentReferees(c.Request.Context(), tournamentID)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", refs)
}

// AvailableReferees godoc
// @Summary Referees free for a match window
// @Description Referees whose declared availability covers the window and whose assigned matches, margin included, do not overlap it.
// @Tags Referees
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param start_time query string true "Window start (RFC 3339)"
// @Param end_time query string true "Window end (RFC 3339)"
// @Success 200 {object} responses.SuccessResponse{data=[]Referee}
// @Failure 400 {object} responses.ErrorResponse "Invalid window"
// @Router /tournaments/{tournament_id}/referees/available [get]
func (rc *RefereeController) AvailableReferees(c *gin.Context) {
	tournamentID, err := utils.ParseIDParam(c, "tournament_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}
	start, err := utils.ParseRequiredTimeQuery(c, "start_time")
	if err != nil {
		responses.FromError(c, err)
		return
	}
	end, err := utils.ParseRequiredTimeQuery(c, "end_time")
	if err != nil {
		responses.FromError(c, err)
		return
	}

	refs, err := rc.service.AvailableReferees(c.Request.Context(), tournamentID, start, end)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", refs)
}

// AssignReferee godoc
// @Summary Assign a referee to a match
// @Tags Referees
// @Accept json
// @Produce json
// @Param match_id path int true "Match ID"
// @Param referee_id path int true "Referee ID"
// @Param assignment body AssignRefereeRequest false "Role (main, assistant, line_judge, video_referee; default main)"
// @Success 201 {object} responses.SuccessResponse{data=RefereeAssignment}
// @Failure 400 {object} responses.ErrorResponse "Invalid role"
// @Failure 404 {object} responses.ErrorResponse "Referee or match not found"
// @Failure 409 {object} responses.ErrorResponse "Role already held"
// @Router /matches/{match_id}/referees/{referee_id} [post]
func (rc *RefereeController) AssignReferee(c *gin.Context) {
	matchID, err := utils.ParseIDParam(c, "match_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}
	refereeID, err := utils.ParseIDParam(c, "referee_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}

	var req AssignRefereeRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.BadRequest(c, "Validation failed", validator.ParseError(err))
			return
		}
	}

	assignment, err := rc.service.AssignRefereeToMatch(c.Request.Context(), &RefereeAssignment{
		RefereeID: refereeID,
		MatchID:   matchID,
		Role:      Role(req.Role),
		Confirmed: req.Confirmed,
		Notes:     req.Notes,
	})
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Referee assigned to match", assignment)
}

// ListMatchReferees godoc
// @Summary List a match's referees
// @Tags Referees
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=[]MatchReferee}
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Router /matches/{match_id}/referees [get]
func (rc *RefereeController) ListMatchReferees(c *gin.Context) {
	matchID, err := utils.ParseIDParam(c, "match_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}

	refs, err := rc.service.ListMatchReferees(c.Request.Context(), matchID)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", refs)
}

// UpdateAssignment godoc
// @Summary Update a referee's assignment
// @Description Changes confirmed and notes on every role the referee holds on the match.
// @Tags Referees
// @Accept json
// @Produce json
// @Param match_id path int true "Match ID"
// @Param referee_id path int true "Referee ID"
// @Param assignment body UpdateAssignmentRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=[]RefereeAssignment}
// @Failure 404 {object} responses.ErrorResponse "Assignment not found"
// @Router /matches/{match_id}/referees/{referee_id} [put]
func (rc *RefereeController) UpdateAssignment(c *gin.Context) {
	matchID, err := utils.ParseIDParam(c, "match_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}
	refereeID, err := utils.ParseIDParam(c, "referee_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}

	var req UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}

	rows, err := rc.service.UpdateAssignment(c.Request.Context(), refereeID, matchID, req.Confirmed, req.Notes)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Referee assignment updated", rows)
}

// RemoveAssignment godoc
// @Summary Remove a referee from a match
// @Tags Referees
// @Param match_id path int true "Match ID"
// @Param referee_id path int true "Referee ID"
// @Success 204 "No Content"
// @Failure 404 {object} responses.ErrorResponse "Assignment not found"
// @Router /matches/{match_id}/referees/{referee_id} [delete]
func (rc *RefereeController) RemoveAssignment(c *gin.Context) {
	matchID, err := utils.ParseIDParam(c, "match_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}
	refereeID, err := utils.ParseIDParam(c, "referee_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}

	removed, err := rc.service.RemoveAssignment(c.Request.Context(), refereeID, matchID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if !removed {
		responses.NotFound(c, "Referee assignment")
		return
	}

	c.Status(http.StatusNoContent)
}
