package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nmcleod/rollcall/internal/app/models"
	"github.com/nmcleod/rollcall/internal/db"
	"github.com/nmcleod/rollcall/internal/pkg/dberrors"
	"github.com/nmcleod/rollcall/internal/pkg/logger"
)

// Student error types
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrNSNTaken        = errors.New("a student with this NSN already exists")
)

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func collectStudents(rows pgx.Rows) ([]models.Student, error) {
	students := []models.Student{}
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(
			&s.StudentID,
			&s.FirstName,
			&s.LastName,
			&s.Level,
			&s.Ethnicity,
			&s.Gender,
			&s.NSN,
			&s.Language,
		); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

func insertStudents(ctx context.Context, tx pgx.Tx, students []models.Student) error {
	for _, s := range students {
		_, err := tx.Exec(ctx, `
			INSERT INTO students (student_id, first_name, last_name, level, ethnicity, gender, nsn, language)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, s.StudentID, s.FirstName, s.LastName, s.Level, s.Ethnicity, s.Gender, s.NSN, s.Language)
		if err != nil {
			if dberrors.IsUniqueConstraintViolation(err, "students_nsn_key") {
				return ErrNSNTaken
			}
			return fmt.Errorf("error inserting student: %w", err)
		}
	}
	return nil
}

// GetAll lists every student in id order
func (r *StudentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT student_id, first_name, last_name, level, ethnicity, gender, nsn, language
		FROM students
		ORDER BY student_id
	`)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying students")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	return collectStudents(rows)
}

// GetByStudentID retrieves one student
func (r *StudentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	var s models.Student
	err := r.db.QueryRow(ctx, `
		SELECT student_id, first_name, last_name, level, ethnicity, gender, nsn, language
		FROM students
		WHERE student_id = $1
	`, studentID).Scan(
		&s.StudentID, &s.FirstName, &s.LastName, &s.Level,
		&s.Ethnicity, &s.Gender, &s.NSN, &s.Language,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student: %w", err)
	}

	return &s, nil
}

// InsertMany inserts a batch of students in one transaction
func (r *StudentRepository) InsertMany(ctx context.Context, students []models.Student) error {
	if len(students) == 0 {
		return nil
	}

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		return insertStudents(ctx, tx, students)
	})
	if err != nil {
		logger.Error().Err(err).Int("count", len(students)).Msg("Error inserting students")
		return err
	}

	return nil
}

// Update applies a partial update. Columns are whitelisted by the service.
func (r *StudentRepository) Update(ctx context.Context, studentID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	sql, args, err := r.sb.Update("students").
		SetMap(fields).
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrNSNTaken
		}
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error updating student")
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// DeleteAll removes every student and, via cascade, all membership rows
func (r *StudentRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM students`); err != nil {
		logger.Error().Err(err).Msg("Error deleting students")
		return fmt.Errorf("error deleting students: %w", err)
	}
	return nil
}

// GetAllNSNs returns every NSN currently in use
func (r *StudentRepository) GetAllNSNs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT nsn FROM students`)
	if err != nil {
		return nil, fmt.Errorf("error querying NSNs: %w", err)
	}
	defer rows.Close()

	nsns := []string{}
	for rows.Next() {
		var nsn string
		if err := rows.Scan(&nsn); err != nil {
			return nil, err
		}
		nsns = append(nsns, nsn)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return nsns, nil
}
