package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nmcleod/rollcall/internal/app/models"
	"github.com/nmcleod/rollcall/internal/app/models/dto"
	"github.com/nmcleod/rollcall/internal/app/repositories"
	"github.com/nmcleod/rollcall/internal/ast"
	"github.com/nmcleod/rollcall/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// ASTExport is a rendered export plus its download filename.
type ASTExport struct {
	Content      string
	Filename     string
	StudentCount int
}

// ASTService defines the interface for AST CSV exports
type ASTService interface {
	Export(ctx context.Context, userID string, req *dto.ASTRequest) (*ASTExport, error)
}

// astServiceImpl implements ASTService
type astServiceImpl struct {
	groupRepo GroupStore
	now       func() time.Time
	logger    zerolog.Logger
}

// NewASTService creates a new ASTService
func NewASTService(groupRepo GroupStore, logger zerolog.Logger) ASTService {
	return &astServiceImpl{
		groupRepo: groupRepo,
		now:       time.Now,
		logger:    logger,
	}
}

// Export collects the caller's groups for a school, renders the AST CSV, and
// names the download file. Exports with nothing to say fail before rendering.
func (s *astServiceImpl) Export(ctx context.Context, userID string, req *dto.ASTRequest) (*ASTExport, error) {
	if req.SchoolID == "" || req.SchoolName == "" {
		return nil, apperrors.NewValidationError("schoolId and schoolName are required")
	}

	var groups []*models.Group
	if req.GroupID != "" {
		group, err := s.groupRepo.GetByGroupID(ctx, req.GroupID)
		if err != nil {
			if errors.Is(err, repositories.ErrGroupNotFound) {
				return nil, apperrors.NewNotFoundError("No groups found for this school")
			}
			return nil, err
		}
		if group.UserID != userID {
			return nil, apperrors.NewForbiddenError("Access denied to this group")
		}
		groups = []*models.Group{group}
	} else {
		var err error
		groups, err = s.groupRepo.GetBySchool(ctx, userID, req.SchoolID)
		if err != nil {
			return nil, err
		}
		if len(groups) == 0 {
			return nil, apperrors.NewNotFoundError("No groups found for this school")
		}
	}

	withStudents := make([]models.GroupStudents, 0, len(groups))
	total := 0
	for _, group := range groups {
		students, err := s.groupRepo.GetStudents(ctx, group.GroupID)
		if err != nil {
			return nil, err
		}
		total += len(students)
		withStudents = append(withStudents, models.GroupStudents{
			GroupID:   group.GroupID,
			GroupName: group.GroupName,
			Students:  students,
		})
	}

	if total == 0 {
		return nil, apperrors.NewNotFoundError("No students found in groups")
	}

	now := s.now().UTC()
	content := ast.Generate(withStudents, req.SchoolID, now)

	s.logger.Info().Str("schoolID", req.SchoolID).Int("students", total).
		Int("groups", len(withStudents)).Msg("Generated AST export")

	return &ASTExport{
		Content:      content,
		Filename:     fmt.Sprintf("AST_%s_%s.csv", req.SchoolID, now.Format("2006-01-02")),
		StudentCount: total,
	}, nil
}
