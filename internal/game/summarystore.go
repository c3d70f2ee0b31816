package game

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSummaryStore keeps champion summary entries in the database, one row
// per champion. Default backend when Redis is not configured.
type GormSummaryStore struct {
	db *gorm.DB
}

func NewGormSummaryStore(db *gorm.DB) *GormSummaryStore {
	return &GormSummaryStore{db: db}
}

func (s *GormSummaryStore) Get(ctx context.Context, champion string) (*ChampionSummary, error) {
	var entry ChampionSummary
	err := s.db.WithContext(ctx).
		Where("champion = ?", champion).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeErr(err)
	}
	return &entry, nil
}

func (s *GormSummaryStore) Put(ctx context.Context, entry *ChampionSummary) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "champion"}},
			DoUpdates: clause.AssignmentColumns([]string{"summary", "fingerprint", "updated_at"}),
		}).
		Create(entry).Error
	if err != nil {
		return storeErr(err)
	}
	return nil
}
