package timeslot

import (
	"net/http"
	"time"

	"github.com/DhavalSuthar-24/courtplan/pkg/responses"
	"github.com/DhavalSuthar-24/courtplan/pkg/utils"
	"github.com/DhavalSuthar-24/courtplan/pkg/validator"
	"github.com/gin-gonic/gin"
)

// TimeSlotController handles time slot HTTP requests.
type TimeSlotController struct {
	service *TimeSlotService
}

// NewTimeSlotController creates a new TimeSlotController.
func NewTimeSlotController(service *TimeSlotService) *TimeSlotController {
	return &TimeSlotController{service: service}
}

// --- DTOs ---

type CreateTimeSlotRequest struct {
	CourtID     uint      `json:"court_id" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	IsAvailable *bool     `json:"is_available"`
}

type BulkCreateTimeSlotsRequest struct {
	CourtIDs             []uint    `json:"court_ids" binding:"required,min=1,dive,gt=0"`
	StartDate            time.Time `json:"start_date" binding:"required"`
	EndDate              time.Time `json:"end_date" binding:"required"`
	SlotDurationMinutes  int       `json:"slot_duration_minutes" binding:"omitempty,gt=0"`
	BreakDurationMinutes *int      `json:"break_duration_minutes" binding:"omitempty,gte=0"`
	DailyStartTime       string    `json:"daily_start_time"`
	DailyEndTime         string    `json:"daily_end_time"`
	ExcludeDays          []int     `json:"exclude_days" binding:"omitempty,dive,min=0,max=6"`
}

type UpdateTimeSlotRequest struct {
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	IsAvailable *bool      `json:"is_available"`
	MatchID     *uint      `json:"match_id" binding:"omitempty,gt=0"`
}

type AssignMatchRequest struct {
	MatchID uint `json:"match_id" binding:"required,gt=0"`
}

// Grid defaults when the bulk request leaves them out.
const (
	defaultSlotMinutes  = 30
	defaultBreakMinutes = 5
	defaultDailyStart   = "09:00"
	defaultDailyEnd     = "21:00"
)

func (r BulkCreateTimeSlotsRequest) gridSpec(tournamentID uint) (GridSpec, error) {
	slotMinutes := r.SlotDurationMinutes
	if slotMinutes == 0 {
		slotMinutes = defaultSlotMinutes
	}
	breakMinutes := defaultBreakMinutes
	if r.BreakDurationMinutes != nil {
		breakMinutes = *r.BreakDurationMinutes
	}
	startRaw, endRaw := r.DailyStartTime, r.DailyEndTime
	if startRaw == "" {
		startRaw = defaultDailyStart
	}
	if endRaw == "" {
		endRaw = defaultDailyEnd
	}

	open, err := ParseClock(startRaw)
	if err != nil {
		return GridSpec{}, err
	}
	closeAt, err := ParseClock(endRaw)
	if err != nil {
		return GridSpec{}, err
	}

	return GridSpec{
		TournamentID:     tournamentID,
		CourtIDs:         r.CourtIDs,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		SlotDuration:     time.Duration(slotMinutes) * time.Minute,
		BreakDuration:    time.Duration(breakMinutes) * time.Minute,
		DailyOpen:        open,
		DailyClose:       closeAt,
		ExcludedWeekdays: r.ExcludeDays,
	}, nil
}

// CreateTimeSlot godoc
// @Summary Create a time slot
// @Description Create a time slot on a court. Rejected with 409 when it overlaps an existing slot on the same court.
// @Tags TimeSlots
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param slot body CreateTimeSlotRequest true "Slot information"
// @Success 201 {object} responses.SuccessResponse{data=TimeSlot}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 409 {object} responses.ErrorResponse{details=responses.ConflictDetails} "Overlaps existing slots"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /tournaments/{tournament_id}/time-slots [post]
func (tc *TimeSlotController) CreateTimeSlot(c *gin.Context) {
	tournamentID, err := utils.ParseIDParam(c, "tournament_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}

	var req CreateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}

	slot := &TimeSlot{
		TournamentID: tournamentID,
		CourtID:      req.CourtID,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		IsAvailable:  true,
	}
	if req.IsAvailable != nil {
		slot.IsAvailable = *req.IsAvailable
	}

	created, err := tc.service.CreateTimeSlot(c.Request.Context(), slot)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Time slot created successfully", created)
}

// BulkCreateTimeSlots godoc
// @Summary Generate a slot grid
// @Description Partition a date range into fixed-duration slots per court. Slots overlapping existing ones are skipped.
// @Tags TimeSlots
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param grid body BulkCreateTimeSlotsRequest true "Grid parameters (exclude_days: 0=Monday ... 6=Sunday)"
// @Success 201 {object} responses.SuccessResponse{data=BulkResult}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /tournaments/{tournament_id}/time-slots/bulk [post]
func (tc *TimeSlotController) BulkCreateTimeSlots(c *gin.Context) {
	tournamentID, err := utils.ParseIDParam(c, "tournament_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}

	var req BulkCreateTimeSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}

	spec, err := req.gridSpec(tournamentID)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	result, err := tc.service.BulkCreateTimeSlots(c.Request.Context(), spec)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Time slots generated successfully", result)
}

// ListTimeSlots godoc
// @Summary List a tournament's time slots
// @Tags TimeSlots
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param court_id query int false "Filter by court"
// @Param date query string false "Filter by day (YYYY-MM-DD or RFC 3339)"
// @Param only_available query boolean false "Only available slots"
// @Success 200 {object} responses.SuccessResponse{data=[]TimeSlot}
// @Failure 400 {object} responses.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /tournaments/{tournament_id}/time-slots [get]
func (tc *TimeSlotController) ListTimeSlots(c *gin.Context) {
	tournamentID, err := utils.ParseIDParam(c, "tournament_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}

	var filter ListFilter
	if filter.CourtID, err = utils.ParseOptionalUintQuery(c, "court_id"); err != nil {
		responses.FromError(c, err)
		return
	}
	if filter.Day, err = utils.ParseOptionalTimeQuery(c, "date"); err != nil {
		responses.FromError(c, err)
		return
	}
	onlyAvailable, err := utils.ParseOptionalBoolQuery(c, "only_available")
	if err != nil {
		responses.FromError(c, err)
		return
	}
	filter.OnlyAvailable = onlyAvailable != nil && *onlyAvailable

	slots, err := tc.service.ListTimeSlots(c.Request.Context(), tournamentID, filter)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Time slots retrieved successfully", slots)
}

// ListTimeSlotsWithMatches godoc
// @Summary List time slots with their assigned matches
// @Tags TimeSlots
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param date query string false "Filter by day (YYYY-MM-DD or RFC 3339)"
// @Success 200 {object} responses.SuccessResponse{data=[]TimeSlot}
// @Failure 400 {object} responses.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /tournaments/{tournament_id}/time-slots/with-matches [get]
func (tc *TimeSlotController) ListTimeSlotsWithMatches(c *gin.Context) {
	tournamentID, err := utils.ParseIDParam(c, "tournament_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}
	day, err := utils.ParseOptionalTimeQuery(c, "date")
	if err != nil {
		responses.FromError(c, err)
		return
	}

	slots, err := tc.service.ListTimeSlotsWithMatches(c.Request.Context(), tournamentID, day)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Time slots retrieved successfully", slots)
}

// NextAvailableTimeSlot godoc
// @Summary Next available time slot
// @Description Earliest available slot starting strictly after after_time.
// @Tags TimeSlots
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param court_id query int false "Filter by court"
// @Param after_time query string false "Lower bound (RFC 3339)"
// @Success 200 {object} responses.SuccessResponse{data=TimeSlot}
// @Failure 404 {object} responses.ErrorResponse "No available slot"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /tournaments/{tournament_id}/time-slots/next-available [get]
func (tc *TimeSlotController) NextAvailableTimeSlot(c *gin.Context) {
	tournamentID, err := utils.ParseIDParam(c, "tournament_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}
	courtID, err := utils.ParseOptionalUintQuery(c, "court_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}
	after, err := utils.ParseOptionalTimeQuery(c, "after_time")
	if err != nil {
		responses.FromError(c, err)
		return
	}

	slot, err := tc.service.NextAvailableTimeSlot(c.Request.Context(), tournamentID, courtID, after)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", slot)
}

// GetTimeSlot godoc
// @Summary Get a time slot
// @Tags TimeSlots
// @Produce json
// @Param slot_id path int true "Time slot ID"
// @Success 200 {object} responses.SuccessResponse{data=TimeSlot}
// @Failure 404 {object} responses.ErrorResponse "Time slot not found"
// @Router /time-slots/{slot_id} [get]
func (tc *TimeSlotController) GetTimeSlot(c *gin.Context) {
	slotID, err := utils.ParseIDParam(c, "slot_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}

	slot, err := tc.service.GetTimeSlot(c.Request.Context(), slotID)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", slot)
}

// UpdateTimeSlot godoc
// @Summary Update a time slot
// @Description Partial update. New bounds are re-checked for overlaps excluding the slot itself.
// @Tags TimeSlots
// @Accept json
// @Produce json
// @Param slot_id path int true "Time slot ID"
// @Param slot body UpdateTimeSlotRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=TimeSlot}
// @Failure 400 {object} responses.ErrorResponse "Validation error or invalid state"
// @Failure 404 {object} responses.ErrorResponse "Time slot not found"
// @Failure 409 {object} responses.ErrorResponse{details=responses.ConflictDetails} "Overlaps existing slots"
// @Router /time-slots/{slot_id} [put]
func (tc *TimeSlotController) UpdateTimeSlot(c *gin.Context) {
	slotID, err := utils.ParseIDParam(c, "slot_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}

	var req UpdateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}

	slot, err := tc.service.UpdateTimeSlot(c.Request.Context(), slotID, SlotUpdate{
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: req.IsAvailable,
		MatchID:     req.MatchID,
	})
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Time slot updated successfully", slot)
}

// DeleteTimeSlot godoc
// @Summary Delete a time slot
// @Description Only slots without an assigned match can be deleted.
// @Tags TimeSlots
// @Produce json
// @Param slot_id path int true "Time slot ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse "Slot has an assigned match"
// @Failure 404 {object} responses.ErrorResponse "Time slot not found"
// @Router /time-slots/{slot_id} [delete]
func (tc *TimeSlotController) DeleteTimeSlot(c *gin.Context) {
	slotID, err := utils.ParseIDParam(c, "slot_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}

	if err := tc.service.DeleteTimeSlot(c.Request.Context(), slotID); err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Time slot deleted successfully", nil)
}

// AssignMatch godoc
// @Summary Assign a match to a time slot
// @Description match_id may be given as a query parameter or in the body.
// @Tags TimeSlots
// @Accept json
// @Produce json
// @Param slot_id path int true "Time slot ID"
// @Param match_id query int false "Match ID"
// @Param body body AssignMatchRequest false "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=TimeSlot}
// @Failure 400 {object} responses.ErrorResponse "Slot not available"
// @Failure 404 {object} responses.ErrorResponse "Time slot or match not found"
// @Router /time-slots/{slot_id}/assign-match [post]
func (tc *TimeSlotController) AssignMatch(c *gin.Context) {
	slotID, err := utils.ParseIDParam(c, "slot_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}

	matchID, err := utils.ParseOptionalUintQuery(c, "match_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if matchID == nil {
		var req AssignMatchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.BadRequest(c, "match_id is required", validator.ParseError(err))
			return
		}
		matchID = &req.MatchID
	}

	slot, err := tc.service.AssignMatch(c.Request.Context(), slotID, *matchID)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Match assigned to time slot", slot)
}

// ReleaseTimeSlot godoc
// @Summary Release a time slot
// @Tags TimeSlots
// @Produce json
// @Param slot_id path int true "Time slot ID"
// @Success 200 {object} responses.SuccessResponse{data=TimeSlot}
// @Failure 400 {object} responses.ErrorResponse "Slot has no assigned match"
// @Failure 404 {object} responses.ErrorResponse "Time slot not found"
// @Router /time-slots/{slot_id}/release [post]
func (tc *TimeSlotController) ReleaseTimeSlot(c *gin.Context) {
	slotID, err := utils.ParseIDParam(c, "slot_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}

	slot, err := tc.service.ReleaseTimeSlot(c.Request.Context(), slotID)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Time slot released", slot)
}

// ScheduleAvailability godoc
// @Summary Daily schedule availability
// @Description Slot totals and per-court breakdown for one day.
// @Tags TimeSlots
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param date query string true "Day (YYYY-MM-DD or RFC 3339)"
// @Success 200 {object} responses.SuccessResponse{data=AvailabilitySummary}
// @Failure 400 {object} responses.ErrorResponse "Missing or invalid date"
// @Router /tournaments/{tournament_id}/schedule-availability [get]
func (tc *TimeSlotController) ScheduleAvailability(c *gin.Context) {
	tournamentID, err := utils.ParseIDParam(c, "tournament_id")
	if err != nil {
		responses.FromError(c, err)
		return
	}
	day, err := utils.ParseRequiredTimeQuery(c, "date")
	if err != nil {
		responses.FromError(c, err)
		return
	}

	summary, err := tc.service.AvailabilitySummary(c.Request.Context(), tournamentID, day)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", summary)
}
