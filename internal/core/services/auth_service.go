package services

import (
	"context"
	"errors"
	"log"

	"mentorhub/internal/adapters/persistence/models"
	"mentorhub/internal/adapters/persistence/repositories"
	"mentorhub/internal/config"
	"mentorhub/internal/pkg/jwt"
	"mentorhub/internal/pkg/password"

	"gorm.io/gorm"
)

// Auth errors
var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService handles registration and login for both user variants
type AuthService struct {
	studentRepo repositories.StudentRepository
	mentorRepo  repositories.MentorRepository
	cfg         *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	studentRepo repositories.StudentRepository,
	mentorRepo repositories.MentorRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		studentRepo: studentRepo,
		mentorRepo:  mentorRepo,
		cfg:         cfg,
	}
}

// RegisterStudentInput represents student registration input
type RegisterStudentInput struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	TargetSchool string `json:"target_school"`
	Track        string `json:"track"`
}

// RegisterMentorInput represents mentor registration input
type RegisterMentorInput struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Specialization string `json:"specialization"`
	Availability   string `json:"availability"`
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User  interface{} `json:"user"`
	Token string      `json:"token"`
	Role  string      `json:"role"`
}

// RegisterStudent registers a new student
func (s *AuthService) RegisterStudent(ctx context.Context, input *RegisterStudentInput) (*models.StudentResponse, error) {
	// Email is unique within the student namespace only; a mentor may
	// register the same address.
	exists, err := s.studentRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Password:     hashedPassword,
		TargetSchool: input.TargetSchool,
		Track:        input.Track,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	log.Printf("Student registered: %s", student.Email)
	return student.ToResponse(), nil
}

// RegisterMentor registers a new mentor
func (s *AuthService) RegisterMentor(ctx context.Context, input *RegisterMentorInput) (*models.MentorResponse, error) {
	exists, err := s.mentorRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	mentor := &models.Mentor{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		Password:       hashedPassword,
		Specialization: input.Specialization,
		Availability:   input.Availability,
	}

	if err := s.mentorRepo.Create(ctx, mentor); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	log.Printf("Mentor registered: %s", mentor.Email)
	return mentor.ToResponse(), nil
}

// LoginStudent authenticates a student and issues a session token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) LoginStudent(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	student, err := s.studentRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, student.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateSessionToken(
		student.ID,
		student.Email,
		models.RoleStudent,
		s.cfg.JWT.Secret,
		s.cfg.JWT.SessionHours,
	)
	if err != nil {
		return nil, err
	}

	log.Printf("Student logged in: %s", student.Email)

	return &AuthResponse{
		User:  student.ToResponse(),
		Token: token,
		Role:  models.RoleStudent,
	}, nil
}

// LoginMentor authenticates a mentor and issues a session token
func (s *AuthService) LoginMentor(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	mentor, err := s.mentorRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, mentor.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateSessionToken(
		mentor.ID,
		mentor.Email,
		models.RoleMentor,
		s.cfg.JWT.Secret,
		s.cfg.JWT.SessionHours,
	)
	if err != nil {
		return nil, err
	}

	log.Printf("Mentor logged in: %s", mentor.Email)

	return &AuthResponse{
		User:  mentor.ToResponse(),
		Token: token,
		Role:  models.RoleMentor,
	}, nil
}
