package match

import (
	"context"

	"github.com/DhavalSuthar-24/courtplan/internal/common"
	"gorm.io/gorm"
)

//go:generate mockgen -source=match_repo.go -destination=match_repo_mock.go -package=match

// MatchRepository defines methods to interact with match records.
type MatchRepository interface {
	CreateMatch(ctx context.Context, match *Match) error
	GetMatchByID(ctx context.Context, id uint) (*Match, error)
	GetTournamentMatches(ctx context.Context, tournamentID uint, unscheduledOnly bool) ([]Match, error)
	DeleteMatch(ctx context.Context, id uint) error
}

// GormMatchRepository implements MatchRepository using GORM
type GormMatchRepository struct {
	db *gorm.DB
}

// NewGormMatchRepository creates a new GormMatchRepository
func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db}
}

func (r *GormMatchRepository) CreateMatch(ctx context.Context, match *Match) error {
	if match.Status == "" {
		match.Status = StatusMatchPending
	}
	return common.TranslateDBError(r.db.WithContext(ctx).Create(match).Error, "match")
}

// GetMatchByID returns ErrNotFound when no match has the id.
func (r *GormMatchRepository) GetMatchByID(ctx context.Context, id uint) (*Match, error) {
	var m Match
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, common.TranslateDBError(err, "match")
	}
	return &m, nil
}

// GetTournamentMatches lists a tournament's matches ordered by id. With unscheduledOnly
// set, matches already held by a time slot are left out.
func (r *GormMatchRepository) GetTournamentMatches(ctx context.Context, tournamentID uint, unscheduledOnly bool) ([]Match, error) {
	var matches []Match
	query := r.db.WithContext(ctx).Where("tournament_id = ?", tournamentID)
	if unscheduledOnly {
		query = query.Where("NOT EXISTS (SELECT 1 FROM time_slots ts WHERE ts.match_id = matches.id)")
	}
	if err := query.Order("id asc").Find(&matches).Error; err != nil {
		return nil, common.TranslateDBError(err, "matches")
	}
	return matches, nil
}

// DeleteMatch hard-deletes the match. Slots holding it are released in the same
// transaction so match_id and is_available keep moving together; referee
// assignments cascade.
func (r *GormMatchRepository) DeleteMatch(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Table("time_slots").
			Where("match_id = ?", id).
			Updates(map[string]interface{}{"match_id": nil, "is_available": true}).Error
		if err != nil {
			return common.TranslateDBError(err, "release match slots")
		}

		result := tx.Delete(&Match{}, id)
		if result.Error != nil {
			return common.TranslateDBError(result.Error, "match")
		}
		if result.RowsAffected == 0 {
			return common.NotFoundf("match %d", id)
		}
		return nil
	})
}
