package club

import (
	"context"
	"errors"

	clubdomain "clubhub/internal/domain/club"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(clubdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) GetClub(ctx context.Context, id string) (*clubdomain.Club, error) {
	var c clubdomain.Club
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, clubdomain.ErrClubNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) GetClubByCode(ctx context.Context, code string) (*clubdomain.Club, error) {
	var c clubdomain.Club
	err := r.db.WithContext(ctx).
		Where("join_enabled = ? AND join_code = ?", true, code).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, clubdomain.ErrInvalidJoinCode
		}
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) GetMember(ctx context.Context, clubID, userID string) (*clubdomain.Member, error) {
	var member clubdomain.Member
	err := r.db.WithContext(ctx).
		Where("club_id = ? AND user_id = ?", clubID, userID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, clubdomain.ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *PostgresRepository) ListOwned(ctx context.Context, userID string) ([]clubdomain.Club, error) {
	var clubs []clubdomain.Club
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", userID).
		Order("created_at asc").
		Find(&clubs).Error; err != nil {
		return nil, err
	}
	return clubs, nil
}

// ListMemberOf unions membership rows with ownership: the owner holds no
// row but is conceptually a member of every club they own.
func (r *PostgresRepository) ListMemberOf(ctx context.Context, userID string) ([]clubdomain.Club, error) {
	var clubs []clubdomain.Club
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? OR id IN (?)", userID,
			r.db.Model(&clubdomain.Member{}).Select("club_id").Where("user_id = ?", userID)).
		Order("created_at asc").
		Find(&clubs).Error; err != nil {
		return nil, err
	}
	return clubs, nil
}

func (r *PostgresRepository) ListMemberProfiles(ctx context.Context, clubID string) ([]clubdomain.MemberProfile, error) {
	var rows []clubdomain.MemberProfile
	if err := r.db.WithContext(ctx).
		Table("club_members").
		Select("club_members.user_id, club_members.role, club_members.joined_at, user_profiles.email, user_profiles.name").
		Joins("left join user_profiles on user_profiles.user_id = club_members.user_id").
		Where("club_members.club_id = ?", clubID).
		Order("club_members.joined_at asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PostgresRepository) CreateClub(ctx context.Context, c *clubdomain.Club) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return clubdomain.ErrCodeTaken
		}
		return err
	}
	return nil
}

func (r *PostgresRepository) AddMember(ctx context.Context, member *clubdomain.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *PostgresRepository) UpdateMemberRole(ctx context.Context, clubID, userID, role string) error {
	return r.db.WithContext(ctx).Model(&clubdomain.Member{}).
		Where("club_id = ? AND user_id = ?", clubID, userID).
		Update("role", role).Error
}

func (r *PostgresRepository) UpdateOwner(ctx context.Context, clubID, ownerID string) error {
	return r.db.WithContext(ctx).Model(&clubdomain.Club{}).
		Where("id = ?", clubID).
		Update("owner_id", ownerID).Error
}

func (r *PostgresRepository) UpdateJoinStatus(ctx context.Context, clubID string, enabled bool, code string) error {
	err := r.db.WithContext(ctx).Model(&clubdomain.Club{}).
		Where("id = ?", clubID).
		Updates(map[string]interface{}{
			"join_enabled": enabled,
			"join_code":    code,
		}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return clubdomain.ErrCodeTaken
	}
	return err
}

func (r *PostgresRepository) DeleteMember(ctx context.Context, clubID, userID string) error {
	return r.db.WithContext(ctx).
		Delete(&clubdomain.Member{}, "club_id = ? AND user_id = ?", clubID, userID).Error
}

// DeleteClub drops the club row; activities, the final plan, club profiles
// and membership rows follow through the ON DELETE CASCADE constraints, all
// inside the caller's transaction.
func (r *PostgresRepository) DeleteClub(ctx context.Context, clubID string) error {
	return r.db.WithContext(ctx).Delete(&clubdomain.Club{}, "id = ?", clubID).Error
}

// IsCodeTaken checks codes across all clubs, active or not: a code stays
// reserved as long as any club row holds it.
func (r *PostgresRepository) IsCodeTaken(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&clubdomain.Club{}).
		Where("join_code = ?", code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
