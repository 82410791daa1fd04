package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/nmcleod/rollcall/internal/app/models"
	"github.com/nmcleod/rollcall/internal/app/models/dto"
	"github.com/nmcleod/rollcall/internal/app/repositories"
	"github.com/nmcleod/rollcall/internal/generator"
	"github.com/nmcleod/rollcall/internal/pkg/apperrors"
	"github.com/nmcleod/rollcall/internal/pkg/validation"
	"github.com/rs/zerolog"
)

// Generation batch size bounds, shared with the flat student endpoints.
const (
	MinGenerateCount = 1
	MaxGenerateCount = 10000
)

// GroupService defines the interface for group and membership operations
type GroupService interface {
	GetBySchool(ctx context.Context, userID, schoolID string) (*dto.GroupListResponse, error)
	GetAllByUser(ctx context.Context, userID string) (*dto.UserGroupsResponse, error)
	Create(ctx context.Context, userID string, req *dto.CreateGroupRequest) (*dto.GroupResponse, error)
	Rename(ctx context.Context, userID, groupID, groupName string) error
	Delete(ctx context.Context, userID, groupID string) error
	GetStudents(ctx context.Context, userID, groupID string) (*dto.StudentListResponse, error)
	GenerateStudents(ctx context.Context, userID, groupID string, req *dto.GenerateStudentsRequest) (*dto.StudentListResponse, error)
	RemoveStudent(ctx context.Context, userID, groupID, studentID string) error
}

// groupServiceImpl implements GroupService
type groupServiceImpl struct {
	groupRepo   GroupStore
	userRepo    UserStore
	studentRepo StudentStore
	logger      zerolog.Logger
}

// NewGroupService creates a new GroupService
func NewGroupService(groupRepo GroupStore, userRepo UserStore, studentRepo StudentStore, logger zerolog.Logger) GroupService {
	return &groupServiceImpl{
		groupRepo:   groupRepo,
		userRepo:    userRepo,
		studentRepo: studentRepo,
		logger:      logger,
	}
}

func validateGroupName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < validation.GroupNameMinLength {
		return "", apperrors.NewValidationError("group_name cannot be empty")
	}
	if len(trimmed) > validation.GroupNameMaxLength {
		return "", apperrors.NewValidationError(fmt.Sprintf(
			"group_name must be %d characters or less", validation.GroupNameMaxLength))
	}
	return trimmed, nil
}

// ownedGroup resolves a group and enforces that the caller owns it. An unknown
// group is a 404; someone else's group is a 403.
func (s *groupServiceImpl) ownedGroup(ctx context.Context, userID, groupID string) (*models.Group, error) {
	group, err := s.groupRepo.GetByGroupID(ctx, groupID)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, apperrors.NewNotFoundError("Group not found")
		}
		return nil, err
	}

	if group.UserID != userID {
		return nil, apperrors.NewForbiddenError("Access denied")
	}

	return group, nil
}

// GetBySchool lists the caller's groups for one school
func (s *groupServiceImpl) GetBySchool(ctx context.Context, userID, schoolID string) (*dto.GroupListResponse, error) {
	groups, err := s.groupRepo.GetBySchool(ctx, userID, schoolID)
	if err != nil {
		return nil, err
	}

	list := make([]models.Group, 0, len(groups))
	for _, g := range groups {
		list = append(list, *g)
	}

	return &dto.GroupListResponse{
		Success: true,
		Count:   len(list),
		Groups:  list,
	}, nil
}

// GetAllByUser lists every group the caller owns, keyed by school
func (s *groupServiceImpl) GetAllByUser(ctx context.Context, userID string) (*dto.UserGroupsResponse, error) {
	groups, err := s.groupRepo.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	grouped := map[string][]models.Group{}
	for _, g := range groups {
		grouped[g.SchoolID] = append(grouped[g.SchoolID], *g)
	}

	return &dto.UserGroupsResponse{
		Success: true,
		Total:   len(groups),
		Groups:  grouped,
	}, nil
}

// Create makes a group under a school on the caller's list
func (s *groupServiceImpl) Create(ctx context.Context, userID string, req *dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	if req.SchoolID == "" {
		return nil, apperrors.NewValidationError("school_id is required")
	}

	name, err := validateGroupName(req.GroupName)
	if err != nil {
		return nil, err
	}

	onList, err := s.userRepo.HasFavorite(ctx, userID, req.SchoolID)
	if err != nil {
		return nil, err
	}
	if !onList {
		return nil, apperrors.NewForbiddenError("School not found in your list")
	}

	group := &models.Group{
		GroupID:   uuid.NewString(),
		UserID:    userID,
		SchoolID:  req.SchoolID,
		GroupName: name,
	}

	if err := s.groupRepo.Create(ctx, group); err != nil {
		if errors.Is(err, repositories.ErrGroupExists) {
			return nil, apperrors.NewConflictError("A group with this name already exists for this school")
		}
		return nil, err
	}

	s.logger.Info().Str("groupID", group.GroupID).Str("schoolID", group.SchoolID).Msg("Group created")

	return &dto.GroupResponse{
		Success: true,
		Group:   group,
	}, nil
}

// Rename changes a group's name, ownership checked
func (s *groupServiceImpl) Rename(ctx context.Context, userID, groupID, groupName string) error {
	name, err := validateGroupName(groupName)
	if err != nil {
		return err
	}

	if _, err := s.ownedGroup(ctx, userID, groupID); err != nil {
		return err
	}

	if err := s.groupRepo.UpdateName(ctx, groupID, name); err != nil {
		if errors.Is(err, repositories.ErrGroupExists) {
			return apperrors.NewConflictError("A group with this name already exists for this school")
		}
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return apperrors.NewNotFoundError("Group not found")
		}
		return err
	}

	return nil
}

// Delete removes a group. Member students left without any other group go
// with it.
func (s *groupServiceImpl) Delete(ctx context.Context, userID, groupID string) error {
	if _, err := s.ownedGroup(ctx, userID, groupID); err != nil {
		return err
	}

	if err := s.groupRepo.Delete(ctx, groupID); err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return apperrors.NewNotFoundError("Group not found")
		}
		return err
	}

	s.logger.Info().Str("groupID", groupID).Msg("Group deleted")
	return nil
}

// GetStudents lists a group's members, ownership checked
func (s *groupServiceImpl) GetStudents(ctx context.Context, userID, groupID string) (*dto.StudentListResponse, error) {
	if _, err := s.ownedGroup(ctx, userID, groupID); err != nil {
		return nil, err
	}

	students, err := s.groupRepo.GetStudents(ctx, groupID)
	if err != nil {
		return nil, err
	}

	return &dto.StudentListResponse{
		Success:  true,
		Count:    len(students),
		Students: students,
	}, nil
}

// GenerateStudents creates a batch of synthetic students inside a group. NSNs
// already in use anywhere are excluded; the returned count is authoritative.
func (s *groupServiceImpl) GenerateStudents(ctx context.Context, userID, groupID string, req *dto.GenerateStudentsRequest) (*dto.StudentListResponse, error) {
	if req.Count < MinGenerateCount || req.Count > MaxGenerateCount {
		return nil, apperrors.NewValidationError(fmt.Sprintf(
			"Count must be a number between %d and %d", MinGenerateCount, MaxGenerateCount))
	}

	if _, err := s.ownedGroup(ctx, userID, groupID); err != nil {
		return nil, err
	}

	inUse, err := s.studentRepo.GetAllNSNs(ctx)
	if err != nil {
		return nil, err
	}

	exclude := make(map[string]struct{}, len(inUse))
	for _, nsn := range inUse {
		exclude[nsn] = struct{}{}
	}

	opts := generator.Options{}
	if req.Options != nil {
		opts.LastNameSuffix = req.Options.LastNameSuffix
		opts.Level = req.Options.Level
		opts.InvalidNSNs = req.Options.InvalidNSNs
	}

	students := generator.New().Generate(req.Count, exclude, opts)

	if err := s.groupRepo.AddGeneratedStudents(ctx, groupID, students); err != nil {
		return nil, err
	}

	s.logger.Info().Str("groupID", groupID).Int("requested", req.Count).
		Int("generated", len(students)).Msg("Generated students into group")

	return &dto.StudentListResponse{
		Success:  true,
		Count:    len(students),
		Students: students,
	}, nil
}

// RemoveStudent takes a student out of a group, purging it if orphaned
func (s *groupServiceImpl) RemoveStudent(ctx context.Context, userID, groupID, studentID string) error {
	if _, err := s.ownedGroup(ctx, userID, groupID); err != nil {
		return err
	}

	if err := s.groupRepo.RemoveStudent(ctx, groupID, studentID); err != nil {
		if errors.Is(err, repositories.ErrMemberAbsent) {
			return apperrors.NewNotFoundError("Student not found in group")
		}
		return err
	}

	return nil
}
