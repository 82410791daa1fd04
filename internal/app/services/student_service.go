package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nmcleod/rollcall/internal/app/models/dto"
	"github.com/nmcleod/rollcall/internal/app/repositories"
	"github.com/nmcleod/rollcall/internal/generator"
	"github.com/nmcleod/rollcall/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// mutableStudentFields maps JSON field names to their database columns.
var mutableStudentFields = map[string]string{
	"first_name": "first_name",
	"last_name":  "last_name",
	"level":      "level",
	"ethnicity":  "ethnicity",
	"gender":     "gender",
	"nsn":        "nsn",
	"language":   "language",
}

// StudentService defines the interface for flat roster operations
type StudentService interface {
	GetAll(ctx context.Context) (*dto.StudentListResponse, error)
	Generate(ctx context.Context, req *dto.GenerateStudentsRequest) (*dto.StudentListResponse, error)
	Update(ctx context.Context, studentID string, req dto.UpdateStudentRequest) error
	DeleteAll(ctx context.Context) error
	EthnicityCodes() *dto.CodeListResponse
	LanguageCodes() *dto.CodeListResponse
}

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	studentRepo StudentStore
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo StudentStore, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// GetAll lists every student
func (s *studentServiceImpl) GetAll(ctx context.Context) (*dto.StudentListResponse, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.StudentListResponse{
		Success:  true,
		Count:    len(students),
		Students: students,
	}, nil
}

// Generate creates a batch of synthetic students outside any group
func (s *studentServiceImpl) Generate(ctx context.Context, req *dto.GenerateStudentsRequest) (*dto.StudentListResponse, error) {
	if req.Count < MinGenerateCount || req.Count > MaxGenerateCount {
		return nil, apperrors.NewValidationError(fmt.Sprintf(
			"Count must be a number between %d and %d", MinGenerateCount, MaxGenerateCount))
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

	if err := s.studentRepo.InsertMany(ctx, students); err != nil {
		return nil, err
	}

	s.logger.Info().Int("requested", req.Count).Int("generated", len(students)).
		Msg("Generated students")

	return &dto.StudentListResponse{
		Success:  true,
		Count:    len(students),
		Students: students,
	}, nil
}

// Update applies a partial edit. Only the known mutable fields are accepted;
// anything else fails the whole request.
func (s *studentServiceImpl) Update(ctx context.Context, studentID string, req dto.UpdateStudentRequest) error {
	if len(req) == 0 {
		return apperrors.NewValidationError("no fields to update")
	}

	fields := make(map[string]interface{}, len(req))
	for name, raw := range req {
		column, ok := mutableStudentFields[name]
		if !ok {
			return apperrors.NewValidationError(fmt.Sprintf("unknown field: %s", name))
		}

		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return apperrors.NewValidationError(fmt.Sprintf("%s must be a string", name))
		}
		fields[column] = value
	}

	if err := s.studentRepo.Update(ctx, studentID, fields); err != nil {
		switch {
		case errors.Is(err, repositories.ErrStudentNotFound):
			return apperrors.NewNotFoundError("Student not found")
		case errors.Is(err, repositories.ErrNSNTaken):
			return apperrors.NewConflictError("A student with this NSN already exists")
		}
		return err
	}

	return nil
}

// DeleteAll empties the roster
func (s *studentServiceImpl) DeleteAll(ctx context.Context) error {
	return s.studentRepo.DeleteAll(ctx)
}

// EthnicityCodes returns the static ethnicity reference table
func (s *studentServiceImpl) EthnicityCodes() *dto.CodeListResponse {
	return codeList(generator.EthnicityCodes)
}

// LanguageCodes returns the static language reference table
func (s *studentServiceImpl) LanguageCodes() *dto.CodeListResponse {
	return codeList(generator.LanguageCodes)
}

func codeList(codes []generator.Code) *dto.CodeListResponse {
	list := make([]dto.Code, 0, len(codes))
	for _, c := range codes {
		list = append(list, dto.Code{Code: c.Code, Description: c.Description})
	}
	return &dto.CodeListResponse{
		Success: true,
		Codes:   list,
	}
}
