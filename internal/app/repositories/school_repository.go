package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nmcleod/rollcall/internal/app/models"
	"github.com/nmcleod/rollcall/internal/db"
	"github.com/nmcleod/rollcall/internal/pkg/logger"
)

// ErrSchoolNotFound is returned when a school is not in the directory.
var ErrSchoolNotFound = errors.New("school not found")

const schoolColumns = `school_id, school_name, address, suburb, town, postcode, phone,
	email, website, principal, school_type, authority, decile, roll_number, gender,
	is_primary, is_secondary, is_composite, org_code, takiwa, local_body`

// prefixColumns qualifies a comma separated column list with a table alias.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

// SchoolRepository handles school directory database operations
type SchoolRepository struct {
	db *pgxpool.Pool
}

// NewSchoolRepository creates a new SchoolRepository
func NewSchoolRepository(db *pgxpool.Pool) *SchoolRepository {
	return &SchoolRepository{db: db}
}

func scanSchool(row pgx.Row) (*models.School, error) {
	school := &models.School{}
	err := row.Scan(
		&school.SchoolID,
		&school.SchoolName,
		&school.Address,
		&school.Suburb,
		&school.Town,
		&school.Postcode,
		&school.Phone,
		&school.Email,
		&school.Website,
		&school.Principal,
		&school.SchoolType,
		&school.Authority,
		&school.Decile,
		&school.RollNumber,
		&school.Gender,
		&school.IsPrimary,
		&school.IsSecondary,
		&school.IsComposite,
		&school.OrgCode,
		&school.Takiwa,
		&school.LocalBody,
	)
	if err != nil {
		return nil, err
	}
	return school, nil
}

// GetAll retrieves the whole school directory ordered by name
func (r *SchoolRepository) GetAll(ctx context.Context) ([]*models.School, error) {
	query := fmt.Sprintf(`SELECT %s FROM schools ORDER BY school_name ASC`, schoolColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying schools")
		return nil, fmt.Errorf("error querying schools: %w", err)
	}
	defer rows.Close()

	schools := []*models.School{}
	for rows.Next() {
		school, err := scanSchool(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning school row: %w", err)
		}
		schools = append(schools, school)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schools, nil
}

// GetBySchoolID retrieves one school by its registry code
func (r *SchoolRepository) GetBySchoolID(ctx context.Context, schoolID string) (*models.School, error) {
	query := fmt.Sprintf(`SELECT %s FROM schools WHERE school_id = $1 LIMIT 1`, schoolColumns)

	school, err := scanSchool(r.db.QueryRow(ctx, query, schoolID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSchoolNotFound
		}
		logger.Error().Err(err).Str("schoolID", schoolID).Msg("Error scanning school row")
		return nil, fmt.Errorf("error getting school: %w", err)
	}

	return school, nil
}

// ReplaceAll swaps the entire directory for a fresh import in one transaction.
// Duplicate registry codes in the input keep the last occurrence. Returns the
// number of schools inserted.
func (r *SchoolRepository) ReplaceAll(ctx context.Context, schools []models.School) (int, error) {
	schools = dedupeBySchoolID(schools)

	var inserted int
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM schools`); err != nil {
			return fmt.Errorf("error clearing schools: %w", err)
		}

		if len(schools) == 0 {
			return nil
		}

		rows := make([][]interface{}, 0, len(schools))
		for _, s := range schools {
			rows = append(rows, []interface{}{
				s.SchoolID, s.SchoolName, s.Address, s.Suburb, s.Town, s.Postcode,
				s.Phone, s.Email, s.Website, s.Principal, s.SchoolType, s.Authority,
				s.Decile, s.RollNumber, s.Gender, s.IsPrimary, s.IsSecondary,
				s.IsComposite, s.OrgCode, s.Takiwa, s.LocalBody,
			})
		}

		n, err := tx.CopyFrom(ctx,
			pgx.Identifier{"schools"},
			[]string{
				"school_id", "school_name", "address", "suburb", "town", "postcode",
				"phone", "email", "website", "principal", "school_type", "authority",
				"decile", "roll_number", "gender", "is_primary", "is_secondary",
				"is_composite", "org_code", "takiwa", "local_body",
			},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return fmt.Errorf("error inserting schools: %w", err)
		}

		inserted = int(n)
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error replacing school directory")
		return 0, err
	}

	return inserted, nil
}

func dedupeBySchoolID(schools []models.School) []models.School {
	seen := make(map[string]int, len(schools))
	out := make([]models.School, 0, len(schools))
	for _, s := range schools {
		if i, ok := seen[s.SchoolID]; ok {
			out[i] = s
			continue
		}
		seen[s.SchoolID] = len(out)
		out = append(out, s)
	}
	return out
}

// DeleteAll removes every school from the directory
func (r *SchoolRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM schools`); err != nil {
		logger.Error().Err(err).Msg("Error deleting schools")
		return fmt.Errorf("error deleting schools: %w", err)
	}
	return nil
}
