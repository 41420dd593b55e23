package profile

import (
	"context"
	"errors"

	profiledomain "clubhub/internal/domain/profile"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByClubUser(ctx context.Context, clubID, userID string) (*profiledomain.ClubProfile, error) {
	var p profiledomain.ClubProfile
	err := r.db.WithContext(ctx).
		Where("club_id = ? AND user_id = ?", clubID, userID).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profiledomain.ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *profiledomain.ClubProfile) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return profiledomain.ErrProfileExists
		}
		return err
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *profiledomain.ClubProfile) error {
	return r.db.WithContext(ctx).Save(p).Error
}
