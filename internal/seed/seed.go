package seed

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/nmcleod/rollcall/internal/app/models"
	appRepos "github.com/nmcleod/rollcall/internal/app/repositories"
)

const (
	demoSchoolID   = "999"
	demoCredential = "demo"
)

// CreateDemoData seeds a demo school and user for development environments.
// The school is only inserted into an empty directory so a real import is
// never clobbered. Safe to call repeatedly.
func CreateDemoData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	schoolRepo := appRepos.NewSchoolRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating demo data...")
	var finalErr error

	schools, err := schoolRepo.GetAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing schools for demo seed")
		finalErr = errors.Join(finalErr, err)
	} else if len(schools) == 0 {
		demoSchool := appModels.School{
			SchoolID:   demoSchoolID,
			SchoolName: "Demo Area School",
			Town:       "Wellington",
			SchoolType: "Composite",
			Authority:  "State",
			Decile:     5,
			RollNumber: 120,
			Gender:     "Co-Educational",
			OrgCode:    demoSchoolID,
		}
		if _, err := schoolRepo.ReplaceAll(ctx, []appModels.School{demoSchool}); err != nil {
			lgr.Error().Err(err).Msg("Error creating demo school")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Str("schoolId", demoSchoolID).Msg("Demo school created")
		}
	}

	user, err := userRepo.GetByCredential(ctx, demoCredential)
	if errors.Is(err, appRepos.ErrUserNotFound) {
		now := time.Now()
		user = &appModels.User{
			UserID:    uuid.NewString(),
			Username:  demoCredential,
			LastLogin: &now,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			lgr.Error().Err(err).Msg("Error creating demo user")
			finalErr = errors.Join(finalErr, err)
			user = nil
		} else {
			lgr.Info().Str("userId", user.UserID).Msg("Demo user created")
		}
	} else if err != nil {
		lgr.Error().Err(err).Msg("Error looking up demo user")
		finalErr = errors.Join(finalErr, err)
		user = nil
	}

	if user != nil {
		err := userRepo.AddFavorite(ctx, user.UserID, demoSchoolID, "")
		if err != nil && !errors.Is(err, appRepos.ErrFavoriteExists) &&
			!errors.Is(err, appRepos.ErrFavoriteSchoolUnreg) {
			lgr.Error().Err(err).Msg("Error adding demo favorite")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
