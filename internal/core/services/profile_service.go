package services

import (
	"context"
	"errors"

	"mentorhub/internal/adapters/persistence/models"
	"mentorhub/internal/adapters/persistence/repositories"
	"mentorhub/internal/pkg/password"

	"gorm.io/gorm"
)

// Profile errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrNoFields     = errors.New("no data provided for update")
	ErrSamePassword = errors.New("new password must be different from the old password")
)

// ProfileService handles self-fetch and sparse profile updates
type ProfileService struct {
	studentRepo repositories.StudentRepository
	mentorRepo  repositories.MentorRepository
}

// NewProfileService creates a new profile service
func NewProfileService(
	studentRepo repositories.StudentRepository,
	mentorRepo repositories.MentorRepository,
) *ProfileService {
	return &ProfileService{
		studentRepo: studentRepo,
		mentorRepo:  mentorRepo,
	}
}

// UpdateStudentInput represents a sparse student update.
// Nil fields are left untouched.
type UpdateStudentInput struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Email        *string `json:"email"`
	TargetSchool *string `json:"target_school"`
	Track        *string `json:"track"`
	Password     *string `json:"password"`
}

func (in *UpdateStudentInput) empty() bool {
	return in.FirstName == nil && in.LastName == nil && in.Email == nil &&
		in.TargetSchool == nil && in.Track == nil && in.Password == nil
}

// UpdateMentorInput represents a sparse mentor update
type UpdateMentorInput struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Email          *string `json:"email"`
	Specialization *string `json:"specialization"`
	Availability   *string `json:"availability"`
	Password       *string `json:"password"`
}

func (in *UpdateMentorInput) empty() bool {
	return in.FirstName == nil && in.LastName == nil && in.Email == nil &&
		in.Specialization == nil && in.Availability == nil && in.Password == nil
}

// GetStudent returns the authenticated student's record.
// The subject may have been deleted after token issuance.
func (s *ProfileService) GetStudent(ctx context.Context, id uint) (*models.StudentResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return student.ToResponse(), nil
}

// GetMentor returns the authenticated mentor's record
func (s *ProfileService) GetMentor(ctx context.Context, id uint) (*models.MentorResponse, error) {
	mentor, err := s.mentorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return mentor.ToResponse(), nil
}

// UpdateStudent applies a sparse update to a student profile
func (s *ProfileService) UpdateStudent(ctx context.Context, id uint, input *UpdateStudentInput) (*models.StudentResponse, error) {
	if input.empty() {
		return nil, ErrNoFields
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if input.FirstName != nil {
		student.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		student.LastName = *input.LastName
	}
	if input.TargetSchool != nil {
		student.TargetSchool = *input.TargetSchool
	}
	if input.Track != nil {
		student.Track = *input.Track
	}
	if input.Email != nil && *input.Email != student.Email {
		exists, err := s.studentRepo.ExistsByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailTaken
		}
		student.Email = *input.Email
	}
	if input.Password != nil {
		hashed, err := s.rotatePassword(*input.Password, student.Password)
		if err != nil {
			return nil, err
		}
		student.Password = hashed
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return student.ToResponse(), nil
}

// UpdateMentor applies a sparse update to a mentor profile
func (s *ProfileService) UpdateMentor(ctx context.Context, id uint, input *UpdateMentorInput) (*models.MentorResponse, error) {
	if input.empty() {
		return nil, ErrNoFields
	}

	mentor, err := s.mentorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if input.FirstName != nil {
		mentor.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		mentor.LastName = *input.LastName
	}
	if input.Specialization != nil {
		mentor.Specialization = *input.Specialization
	}
	if input.Availability != nil {
		mentor.Availability = *input.Availability
	}
	if input.Email != nil && *input.Email != mentor.Email {
		exists, err := s.mentorRepo.ExistsByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailTaken
		}
		mentor.Email = *input.Email
	}
	if input.Password != nil {
		hashed, err := s.rotatePassword(*input.Password, mentor.Password)
		if err != nil {
			return nil, err
		}
		mentor.Password = hashed
	}

	if err := s.mentorRepo.Update(ctx, mentor); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return mentor.ToResponse(), nil
}

// rotatePassword rejects a new password matching the stored hash,
// then hashes the replacement
func (s *ProfileService) rotatePassword(newPassword, storedHash string) (string, error) {
	if password.Verify(newPassword, storedHash) {
		return "", ErrSamePassword
	}
	return password.Hash(newPassword)
}
