package repositories

import (
	"context"

	"mentorhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// mentorRepository implements MentorRepository interface
type mentorRepository struct {
	db *gorm.DB
}

// NewMentorRepository creates a new mentor repository
func NewMentorRepository(db *gorm.DB) MentorRepository {
	return &mentorRepository{db: db}
}

// Create creates a new mentor
func (r *mentorRepository) Create(ctx context.Context, mentor *models.Mentor) error {
	return r.db.WithContext(ctx).Create(mentor).Error
}

// GetByID gets a mentor by ID
func (r *mentorRepository) GetByID(ctx context.Context, id uint) (*models.Mentor, error) {
	var mentor models.Mentor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&mentor).Error
	if err != nil {
		return nil, err
	}
	return &mentor, nil
}

// GetByEmail gets a mentor by email
func (r *mentorRepository) GetByEmail(ctx context.Context, email string) (*models.Mentor, error) {
	var mentor models.Mentor
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&mentor).Error
	if err != nil {
		return nil, err
	}
	return &mentor, nil
}

// Update updates a mentor
func (r *mentorRepository) Update(ctx context.Context, mentor *models.Mentor) error {
	return r.db.WithContext(ctx).Save(mentor).Error
}

// ExistsByEmail checks if email exists
func (r *mentorRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Mentor{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// List lists mentors with pagination
func (r *mentorRepository) List(ctx context.Context, offset, limit int) ([]*models.Mentor, int64, error) {
	var mentors []*models.Mentor
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Mentor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&mentors).Error; err != nil {
		return nil, 0, err
	}

	return mentors, total, nil
}
