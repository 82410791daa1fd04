package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nmcleod/rollcall/internal/app/models"
	"github.com/nmcleod/rollcall/internal/pkg/dberrors"
	"github.com/nmcleod/rollcall/internal/pkg/helpers"
	"github.com/nmcleod/rollcall/internal/pkg/logger"
)

// User error types
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrFavoriteExists      = errors.New("school already in list")
	ErrFavoriteNotFound    = errors.New("school not in list")
	ErrFavoriteSchoolUnreg = errors.New("school not in directory")
)

// UserRepository handles users and their school favorites
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	var username, email sql.NullString
	err := row.Scan(&user.ID, &user.UserID, &username, &email, &user.CreatedAt, &user.LastLogin)
	if err != nil {
		return nil, err
	}
	user.Username = helpers.StringOrEmpty(username)
	user.Email = helpers.StringOrEmpty(email)
	return user, nil
}

// GetByCredential looks a user up by username or email
func (r *UserRepository) GetByCredential(ctx context.Context, credential string) (*models.User, error) {
	query := `
		SELECT id, user_id, username, email, created_at, last_login
		FROM users
		WHERE username = $1 OR email = $1
		LIMIT 1
	`

	user, err := scanUser(r.db.QueryRow(ctx, query, credential))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	return user, nil
}

// GetByUserID looks a user up by its public UUID
func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*models.User, error) {
	query := `
		SELECT id, user_id, username, email, created_at, last_login
		FROM users
		WHERE user_id = $1
		LIMIT 1
	`

	user, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Error().Err(err).Str("userID", userID).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	return user, nil
}

// Create inserts a new user and fills in its database id
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	sql, args, err := r.sb.Insert("users").
		Columns("user_id", "username", "email", "last_login").
		Values(user.UserID, helpers.NullString(user.Username), helpers.NullString(user.Email), user.LastLogin).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create user query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error creating user")
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// TouchLastLogin stamps the user's last login time
func (r *UserRepository) TouchLastLogin(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login = NOW() WHERE user_id = $1`, userID)
	if err != nil {
		logger.Error().Err(err).Str("userID", userID).Msg("Error updating last login")
		return fmt.Errorf("error updating last login: %w", err)
	}
	return nil
}

// AddFavorite adds a school to the user's list
func (r *UserRepository) AddFavorite(ctx context.Context, userID, schoolID, notes string) error {
	sql, args, err := r.sb.Insert("user_schools").
		Columns("user_id", "school_id", "notes").
		Values(userID, schoolID, helpers.NullString(notes)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build add favorite query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrFavoriteExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return ErrFavoriteSchoolUnreg
		}
		logger.Error().Err(err).Str("schoolID", schoolID).Msg("Error adding favorite")
		return fmt.Errorf("error adding favorite: %w", err)
	}

	return nil
}

// RemoveFavorite drops a school from the user's list
func (r *UserRepository) RemoveFavorite(ctx context.Context, userID, schoolID string) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM user_schools WHERE user_id = $1 AND school_id = $2`, userID, schoolID)
	if err != nil {
		logger.Error().Err(err).Str("schoolID", schoolID).Msg("Error removing favorite")
		return fmt.Errorf("error removing favorite: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

// GetFavorites lists the user's schools joined with directory data, newest first
func (r *UserRepository) GetFavorites(ctx context.Context, userID string) ([]*models.FavoriteSchool, error) {
	query := fmt.Sprintf(`
		SELECT %s, us.added_at, us.notes
		FROM user_schools us
		INNER JOIN schools s ON us.school_id = s.school_id
		WHERE us.user_id = $1
		ORDER BY us.added_at DESC
	`, prefixColumns("s", schoolColumns))

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		logger.Error().Err(err).Str("userID", userID).Msg("Error querying favorites")
		return nil, fmt.Errorf("error querying favorites: %w", err)
	}
	defer rows.Close()

	favorites := []*models.FavoriteSchool{}
	for rows.Next() {
		fav := &models.FavoriteSchool{}
		var notes sql.NullString
		if err := rows.Scan(
			&fav.SchoolID, &fav.SchoolName, &fav.Address, &fav.Suburb, &fav.Town,
			&fav.Postcode, &fav.Phone, &fav.Email, &fav.Website, &fav.Principal,
			&fav.SchoolType, &fav.Authority, &fav.Decile, &fav.RollNumber, &fav.Gender,
			&fav.IsPrimary, &fav.IsSecondary, &fav.IsComposite, &fav.OrgCode,
			&fav.Takiwa, &fav.LocalBody,
			&fav.AddedAt, &notes,
		); err != nil {
			return nil, fmt.Errorf("error scanning favorite row: %w", err)
		}
		fav.Notes = helpers.StringOrEmpty(notes)
		favorites = append(favorites, fav)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return favorites, nil
}

// HasFavorite reports whether the school is in the user's list
func (r *UserRepository) HasFavorite(ctx context.Context, userID, schoolID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_schools WHERE user_id = $1 AND school_id = $2)`,
		userID, schoolID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking favorite: %w", err)
	}
	return exists, nil
}

// GetFavoriteSchoolIDs returns just the school ids in the user's list
func (r *UserRepository) GetFavoriteSchoolIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT school_id FROM user_schools WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying favorite ids: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
