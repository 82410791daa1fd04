package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nmcleod/rollcall/internal/app/models"
	"github.com/nmcleod/rollcall/internal/app/models/dto"
	"github.com/nmcleod/rollcall/internal/pkg/apperrors"
	"github.com/nmcleod/rollcall/internal/schoolcsv"
	"github.com/rs/zerolog"
)

// SchoolService defines the interface for school directory operations
type SchoolService interface {
	GetAll(ctx context.Context) (*dto.SchoolListResponse, error)
	Refresh(ctx context.Context) (*dto.SchoolImportResponse, error)
	ImportCSV(ctx context.Context, r io.Reader) (*dto.SchoolImportResponse, error)
	DeleteAll(ctx context.Context) error
	MaxUploadSize() int64
}

// schoolServiceImpl implements SchoolService
type schoolServiceImpl struct {
	schoolRepo    SchoolStore
	directoryURL  string
	maxUploadSize int64
	httpClient    *http.Client
	logger        zerolog.Logger
}

// NewSchoolService creates a new SchoolService
func NewSchoolService(schoolRepo SchoolStore, directoryURL string, maxUploadSize int64, logger zerolog.Logger) SchoolService {
	return &schoolServiceImpl{
		schoolRepo:    schoolRepo,
		directoryURL:  directoryURL,
		maxUploadSize: maxUploadSize,
		httpClient:    &http.Client{Timeout: 2 * time.Minute},
		logger:        logger,
	}
}

// GetAll lists the whole directory
func (s *schoolServiceImpl) GetAll(ctx context.Context) (*dto.SchoolListResponse, error) {
	schools, err := s.schoolRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]models.School, 0, len(schools))
	for _, school := range schools {
		list = append(list, *school)
	}

	return &dto.SchoolListResponse{
		Schools: list,
		Count:   len(list),
	}, nil
}

// Refresh downloads the national directory CSV and replaces the stored
// directory with its contents.
func (s *schoolServiceImpl) Refresh(ctx context.Context) (*dto.SchoolImportResponse, error) {
	s.logger.Info().Str("url", s.directoryURL).Msg("Fetching school directory CSV")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.directoryURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build directory request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to fetch school directory")
		return nil, fmt.Errorf("failed to fetch school directory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("school directory fetch returned status %d", resp.StatusCode)
	}

	count, err := s.replaceFromCSV(ctx, resp.Body)
	if err != nil {
		return nil, err
	}

	return &dto.SchoolImportResponse{
		Success: true,
		Message: fmt.Sprintf("Successfully loaded %d schools", count),
		Count:   count,
	}, nil
}

// ImportCSV replaces the directory with the contents of an uploaded CSV
func (s *schoolServiceImpl) ImportCSV(ctx context.Context, r io.Reader) (*dto.SchoolImportResponse, error) {
	count, err := s.replaceFromCSV(ctx, r)
	if err != nil {
		return nil, err
	}

	return &dto.SchoolImportResponse{
		Success: true,
		Message: fmt.Sprintf("Successfully loaded %d schools from uploaded file", count),
		Count:   count,
	}, nil
}

func (s *schoolServiceImpl) replaceFromCSV(ctx context.Context, r io.Reader) (int, error) {
	schools, err := schoolcsv.Parse(r)
	if err != nil {
		if errors.Is(err, schoolcsv.ErrUnknownFormat) {
			return 0, apperrors.NewValidationError(err.Error())
		}
		s.logger.Error().Err(err).Msg("Failed to parse school CSV")
		return 0, apperrors.NewValidationError("failed to parse CSV file")
	}

	count, err := s.schoolRepo.ReplaceAll(ctx, schools)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int("count", count).Msg("School directory replaced")
	return count, nil
}

// DeleteAll empties the directory
func (s *schoolServiceImpl) DeleteAll(ctx context.Context) error {
	return s.schoolRepo.DeleteAll(ctx)
}

// MaxUploadSize is the upload cap the controller enforces
func (s *schoolServiceImpl) MaxUploadSize() int64 {
	return s.maxUploadSize
}
