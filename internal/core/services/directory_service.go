package services

import (
	"context"

	"mentorhub/internal/adapters/persistence/models"
	"mentorhub/internal/adapters/persistence/repositories"
	"mentorhub/internal/pkg/pagination"
)

// DirectoryService exposes the public mentor directory used by the booking UI
type DirectoryService struct {
	mentorRepo repositories.MentorRepository
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(mentorRepo repositories.MentorRepository) *DirectoryService {
	return &DirectoryService{mentorRepo: mentorRepo}
}

// ListMentorsOutput represents the paginated mentor directory
type ListMentorsOutput struct {
	Mentors []*models.MentorResponse `json:"mentors"`
	Meta    *pagination.Meta         `json:"meta"`
}

// ListMentors lists mentors with pagination, password fields stripped
func (s *DirectoryService) ListMentors(ctx context.Context, params *pagination.Params) (*ListMentorsOutput, error) {
	mentors, total, err := s.mentorRepo.List(ctx, params.Offset, params.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.MentorResponse, len(mentors))
	for i, mentor := range mentors {
		responses[i] = mentor.ToResponse()
	}

	return &ListMentorsOutput{
		Mentors: responses,
		Meta:    pagination.GetMeta(params, total),
	}, nil
}
