package services

import (
	"context"
	"errors"

	"github.com/nmcleod/rollcall/internal/app/models"
	"github.com/nmcleod/rollcall/internal/app/models/dto"
	"github.com/nmcleod/rollcall/internal/app/repositories"
	"github.com/nmcleod/rollcall/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// FavoriteService defines the interface for a user's school list
type FavoriteService interface {
	List(ctx context.Context, userID string) (*dto.FavoriteListResponse, error)
	Add(ctx context.Context, userID, schoolID string) error
	Remove(ctx context.Context, userID, schoolID string) error
	Check(ctx context.Context, userID, schoolID string) (*dto.FavoriteCheckResponse, error)
	SchoolIDs(ctx context.Context, userID string) (*dto.SchoolIDsResponse, error)
}

// favoriteServiceImpl implements FavoriteService
type favoriteServiceImpl struct {
	userRepo   UserStore
	schoolRepo SchoolStore
	logger     zerolog.Logger
}

// NewFavoriteService creates a new FavoriteService
func NewFavoriteService(userRepo UserStore, schoolRepo SchoolStore, logger zerolog.Logger) FavoriteService {
	return &favoriteServiceImpl{
		userRepo:   userRepo,
		schoolRepo: schoolRepo,
		logger:     logger,
	}
}

// List returns the user's schools joined with directory data, newest first
func (s *favoriteServiceImpl) List(ctx context.Context, userID string) (*dto.FavoriteListResponse, error) {
	favorites, err := s.userRepo.GetFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}

	schools := make([]models.FavoriteSchool, 0, len(favorites))
	for _, fav := range favorites {
		schools = append(schools, *fav)
	}

	return &dto.FavoriteListResponse{
		Success: true,
		Count:   len(schools),
		Schools: schools,
	}, nil
}

// Add puts a directory school on the user's list
func (s *favoriteServiceImpl) Add(ctx context.Context, userID, schoolID string) error {
	if _, err := s.schoolRepo.GetBySchoolID(ctx, schoolID); err != nil {
		if errors.Is(err, repositories.ErrSchoolNotFound) {
			return apperrors.NewNotFoundError("School not found")
		}
		return err
	}

	if err := s.userRepo.AddFavorite(ctx, userID, schoolID, ""); err != nil {
		switch {
		case errors.Is(err, repositories.ErrFavoriteExists):
			return apperrors.NewConflictError("School already in your list")
		case errors.Is(err, repositories.ErrFavoriteSchoolUnreg):
			return apperrors.NewNotFoundError("School not found")
		}
		return err
	}

	return nil
}

// Remove takes a school off the user's list
func (s *favoriteServiceImpl) Remove(ctx context.Context, userID, schoolID string) error {
	if err := s.userRepo.RemoveFavorite(ctx, userID, schoolID); err != nil {
		if errors.Is(err, repositories.ErrFavoriteNotFound) {
			return apperrors.NewNotFoundError("School not in your list")
		}
		return err
	}
	return nil
}

// Check reports whether one school is on the user's list
func (s *favoriteServiceImpl) Check(ctx context.Context, userID, schoolID string) (*dto.FavoriteCheckResponse, error) {
	isInList, err := s.userRepo.HasFavorite(ctx, userID, schoolID)
	if err != nil {
		return nil, err
	}

	return &dto.FavoriteCheckResponse{
		Success:  true,
		IsInList: isInList,
	}, nil
}

// SchoolIDs returns just the ids on the user's list, for batch checks
func (s *favoriteServiceImpl) SchoolIDs(ctx context.Context, userID string) (*dto.SchoolIDsResponse, error) {
	ids, err := s.userRepo.GetFavoriteSchoolIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.SchoolIDsResponse{
		Success:   true,
		SchoolIDs: ids,
	}, nil
}
