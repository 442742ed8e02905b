package referee

import (
	"context"

	"github.com/DhavalSuthar-24/courtplan/internal/common"
	"gorm.io/gorm"
)

//go:generate mockgen -source=referee_repo.go -destination=referee_repo_mock.go -package=referee

// RefereeRepository defines methods to interact with referees, their tournament
// availability and their match assignments.
type RefereeRepository interface {
	// Referee operations
	CreateReferee(ctx context.Context, ref *Referee) error
	GetRefereeByID(ctx context.Context, id uint) (*Referee, error)
	ListReferees(ctx context.Context, active *bool, limit, offset int) ([]Referee, int64, error)
	UpdateReferee(ctx context.Context, ref *Referee) error
	DeleteReferee(ctx context.Context, id uint) error

	// Availability operations
	CreateAvailability(ctx context.Context, avail *RefereeAvailability) error
	GetAvailability(ctx context.Context, refereeID, tournamentID uint) (*RefereeAvailability, error)
	ListCandidates(ctx context.Context, tournamentID uint) ([]Candidate, error)
	ListTournamentReferees(ctx context.Context, tournamentID uint) ([]RefereeWithAssignments, error)

	// Assignment operations
	CreateAssignment(ctx context.Context, assignment *RefereeAssignment) error
	ListAssignedMatches(ctx context.Context, refereeIDs []uint) ([]AssignedMatch, error)
	ListMatchReferees(ctx context.Context, matchID uint) ([]MatchReferee, error)
	UpdateAssignments(ctx context.Context, refereeID, matchID uint, confirmed *bool, notes *string) ([]RefereeAssignment, error)
	RemoveAssignments(ctx context.Context, refereeID, matchID uint) (bool, error)
}

// GormRefereeRepository implements RefereeRepository using GORM
type GormRefereeRepository struct {
	db *gorm.DB
}

// NewGormRefereeRepository creates a new GormRefereeRepository
func NewGormRefereeRepository(db *gorm.DB) *GormRefereeRepository {
	return &GormRefereeRepository{db: db}
}

func (r *GormRefereeRepository) CreateReferee(ctx context.Context, ref *Referee) error {
	return common.TranslateDBError(r.db.WithContext(ctx).Create(ref).Error, "referee")
}

func (r *GormRefereeRepository) GetRefereeByID(ctx context.Context, id uint) (*Referee, error) {
	var ref Referee
	if err := r.db.WithContext(ctx).First(&ref, id).Error; err != nil {
		return nil, common.TranslateDBError(err, "referee")
	}
	return &ref, nil
}

// ListReferees returns one page of referees ordered by name, and the total matching count.
func (r *GormRefereeRepository) ListReferees(ctx context.Context, active *bool, limit, offset int) ([]Referee, int64, error) {
	var (
		refs  []Referee
		total int64
	)
	query := r.db.WithContext(ctx).Model(&Referee{})
	if active != nil {
		query = query.Where("active = ?", *active)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, common.TranslateDBError(err, "referees")
	}
	if err := query.Order("name asc, id asc").Limit(limit).Offset(offset).Find(&refs).Error; err != nil {
		return nil, 0, common.TranslateDBError(err, "referees")
	}
	return refs, total, nil
}

// UpdateReferee writes every mutable column of ref, zero values included.
func (r *GormRefereeRepository) UpdateReferee(ctx context.Context, ref *Referee) error {
	result := r.db.WithContext(ctx).Model(ref).
		Select("name", "email", "phone", "certification_level", "active", "notes").
		Updates(ref)
	if result.Error != nil {
		return common.TranslateDBError(result.Error, "referee")
	}
	if result.RowsAffected == 0 {
		return common.NotFoundf("referee %d", ref.ID)
	}
	return nil
}

// DeleteReferee hard-deletes the referee; availability and assignments cascade.
func (r *GormRefereeRepository) DeleteReferee(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&Referee{}, id)
	if result.Error != nil {
		return common.TranslateDBError(result.Error, "referee")
	}
	if result.RowsAffected == 0 {
		return common.NotFoundf("referee %d", id)
	}
	return nil
}

func (r *GormRefereeRepository) CreateAvailability(ctx context.Context, avail *RefereeAvailability) error {
	avail.PreferredCourts = avail.PreferredCourts.Normalize()
	return common.TranslateDBError(r.db.WithContext(ctx).Create(avail).Error, "referee availability")
}

func (r *GormRefereeRepository) GetAvailability(ctx context.Context, refereeID, tournamentID uint) (*RefereeAvailability, error) {
	var avail RefereeAvailability
	err := r.db.WithContext(ctx).
		Where("referee_id = ? AND tournament_id = ?", refereeID, tournamentID).
		First(&avail).Error
	if err != nil {
		return nil, common.TranslateDBError(err, "referee availability")
	}
	return &avail, nil
}

// ListCandidates returns the active referees that declared availability for the
// tournament, ordered by referee id.
func (r *GormRefereeRepository) ListCandidates(ctx context.Context, tournamentID uint) ([]Candidate, error) {
	var avails []RefereeAvailability
	err := r.db.WithContext(ctx).
		Joins("Referee").
		Where("referee_availabilities.tournament_id = ? AND \"Referee\".active = ?", tournamentID, true).
		Order("referee_availabilities.referee_id asc").
		Find(&avails).Error
	if err != nil {
		return nil, common.TranslateDBError(err, "referee availability")
	}

	candidates := make([]Candidate, 0, len(avails))
	for _, a := range avails {
		if a.Referee == nil {
			continue
		}
		ref := *a.Referee
		a.Referee = nil
		candidates = append(candidates, Candidate{Referee: ref, Availability: a})
	}
	return candidates, nil
}

// ListTournamentReferees returns the tournament's candidates with every assignment
// they hold, across all matches.
func (r *GormRefereeRepository) ListTournamentReferees(ctx context.Context, tournamentID uint) ([]RefereeWithAssignments, error) {
	candidates, err := r.ListCandidates(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []RefereeWithAssignments{}, nil
	}

	ids := make([]uint, len(candidates))
	for i, c := range candidates {
		ids[i] = c.Referee.ID
	}
	var assignments []RefereeAssignment
	err = r.db.WithContext(ctx).
		Where("referee_id IN ?", ids).
		Order("match_id asc, role asc").
		Find(&assignments).Error
	if err != nil {
		return nil, common.TranslateDBError(err, "referee assignments")
	}

	byReferee := make(map[uint][]RefereeAssignment, len(ids))
	for _, a := range assignments {
		byReferee[a.RefereeID] = append(byReferee[a.RefereeID], a)
	}

	out := make([]RefereeWithAssignments, len(candidates))
	for i, c := range candidates {
		held := byReferee[c.Referee.ID]
		if held == nil {
			held = []RefereeAssignment{}
		}
		out[i] = RefereeWithAssignments{
			Referee:      c.Referee,
			Availability: []RefereeAvailability{c.Availability},
			Assignments:  held,
		}
	}
	return out, nil
}

// CreateAssignment maps a duplicate (referee, match, role) to ErrConflict and a
// missing referee or match to ErrNotFound.
func (r *GormRefereeRepository) CreateAssignment(ctx context.Context, assignment *RefereeAssignment) error {
	return common.TranslateDBError(r.db.WithContext(ctx).Create(assignment).Error, "referee assignment")
}

// ListAssignedMatches returns the scheduled matches held by the given referees.
// Matches without a start time are left out.
func (r *GormRefereeRepository) ListAssignedMatches(ctx context.Context, refereeIDs []uint) ([]AssignedMatch, error) {
	if len(refereeIDs) == 0 {
		return nil, nil
	}
	var rows []AssignedMatch
	err := r.db.WithContext(ctx).
		Table("referee_assignments ra").
		Select("ra.referee_id, ra.match_id, ra.role, m.tournament_id, m.start_time, m.duration_minutes, m.margin_minutes").
		Joins("JOIN matches m ON m.id = ra.match_id").
		Where("ra.referee_id IN ? AND m.start_time IS NOT NULL", refereeIDs).
		Order("ra.referee_id asc, m.start_time asc, ra.match_id asc").
		Scan(&rows).Error
	if err != nil {
		return nil, common.TranslateDBError(err, "assigned matches")
	}
	return rows, nil
}

func (r *GormRefereeRepository) ListMatchReferees(ctx context.Context, matchID uint) ([]MatchReferee, error) {
	var assignments []RefereeAssignment
	err := r.db.WithContext(ctx).
		Preload("Referee").
		Where("match_id = ?", matchID).
		Order("referee_id asc, role asc").
		Find(&assignments).Error
	if err != nil {
		return nil, common.TranslateDBError(err, "referee assignments")
	}

	out := make([]MatchReferee, 0, len(assignments))
	for _, a := range assignments {
		if a.Referee == nil {
			continue
		}
		ref := *a.Referee
		a.Referee = nil
		out = append(out, MatchReferee{Referee: ref, Assignment: a})
	}
	return out, nil
}

func (r *GormRefereeRepository) pairAssignments(ctx context.Context, refereeID, matchID uint) ([]RefereeAssignment, error) {
	var rows []RefereeAssignment
	err := r.db.WithContext(ctx).
		Where("referee_id = ? AND match_id = ?", refereeID, matchID).
		Order("role asc").
		Find(&rows).Error
	if err != nil {
		return nil, common.TranslateDBError(err, "referee assignment")
	}
	if len(rows) == 0 {
		return nil, common.NotFoundf("referee %d is not assigned to match %d", refereeID, matchID)
	}
	return rows, nil
}

// UpdateAssignments changes confirmed and notes on every role row of the
// (referee, match) pair. Nil fields are left alone.
func (r *GormRefereeRepository) UpdateAssignments(ctx context.Context, refereeID, matchID uint, confirmed *bool, notes *string) ([]RefereeAssignment, error) {
	updates := map[string]interface{}{}
	if confirmed != nil {
		updates["confirmed"] = *confirmed
	}
	if notes != nil {
		updates["notes"] = *notes
	}

	if len(updates) > 0 {
		result := r.db.WithContext(ctx).Model(&RefereeAssignment{}).
			Where("referee_id = ? AND match_id = ?", refereeID, matchID).
			Updates(updates)
		if result.Error != nil {
			return nil, common.TranslateDBError(result.Error, "referee assignment")
		}
		if result.RowsAffected == 0 {
			return nil, common.NotFoundf("referee %d is not assigned to match %d", refereeID, matchID)
		}
	}
	return r.pairAssignments(ctx, refereeID, matchID)
}

// RemoveAssignments deletes every role row of the pair and reports whether any existed.
func (r *GormRefereeRepository) RemoveAssignments(ctx context.Context, refereeID, matchID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("referee_id = ? AND match_id = ?", refereeID, matchID).
		Delete(&RefereeAssignment{})
	if result.Error != nil {
		return false, common.TranslateDBError(result.Error, "referee assignment")
	}
	return result.RowsAffected > 0, nil
}

// Migrate creates the referee tables. Matches must already exist.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Referee{}, &RefereeAvailability{}, &RefereeAssignment{})
}
