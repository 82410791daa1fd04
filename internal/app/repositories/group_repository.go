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

// Group error types
var (
	ErrGroupNotFound = errors.New("group not found")
	ErrGroupExists   = errors.New("group with this name already exists for this school")
	ErrMemberExists  = errors.New("student already in group")
	ErrMemberAbsent  = errors.New("student not in group")
)

const groupColumns = `id, group_id, user_id, school_id, group_name, created_at, updated_at`

// GroupRepository handles groups and group membership
type GroupRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository(db *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanGroup(row pgx.Row) (*models.Group, error) {
	group := &models.Group{}
	err := row.Scan(
		&group.ID,
		&group.GroupID,
		&group.UserID,
		&group.SchoolID,
		&group.GroupName,
		&group.CreatedAt,
		&group.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return group, nil
}

// Create inserts a new group. The (user, school, name) triple is unique.
func (r *GroupRepository) Create(ctx context.Context, group *models.Group) error {
	sql, args, err := r.sb.Insert("groups").
		Columns("group_id", "user_id", "school_id", "group_name").
		Values(group.GroupID, group.UserID, group.SchoolID, group.GroupName).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create group query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&group.ID, &group.CreatedAt, &group.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrGroupExists
		}
		logger.Error().Err(err).Str("groupName", group.GroupName).Msg("Error creating group")
		return fmt.Errorf("error creating group: %w", err)
	}

	return nil
}

// GetByGroupID retrieves a group by its public UUID
func (r *GroupRepository) GetByGroupID(ctx context.Context, groupID string) (*models.Group, error) {
	query := fmt.Sprintf(`SELECT %s FROM groups WHERE group_id = $1 LIMIT 1`, groupColumns)

	group, err := scanGroup(r.db.QueryRow(ctx, query, groupID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		logger.Error().Err(err).Str("groupID", groupID).Msg("Error scanning group row")
		return nil, fmt.Errorf("error getting group: %w", err)
	}

	return group, nil
}

// GetBySchool lists a user's groups for one school, name order
func (r *GroupRepository) GetBySchool(ctx context.Context, userID, schoolID string) ([]*models.Group, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM groups
		WHERE user_id = $1 AND school_id = $2
		ORDER BY group_name ASC
	`, groupColumns)

	return r.queryGroups(ctx, query, userID, schoolID)
}

// GetAllByUser lists every group a user owns, school then name order
func (r *GroupRepository) GetAllByUser(ctx context.Context, userID string) ([]*models.Group, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM groups
		WHERE user_id = $1
		ORDER BY school_id, group_name ASC
	`, groupColumns)

	return r.queryGroups(ctx, query, userID)
}

func (r *GroupRepository) queryGroups(ctx context.Context, query string, args ...interface{}) ([]*models.Group, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying groups")
		return nil, fmt.Errorf("error querying groups: %w", err)
	}
	defer rows.Close()

	groups := []*models.Group{}
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning group row: %w", err)
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}

// UpdateName renames a group and bumps updated_at
func (r *GroupRepository) UpdateName(ctx context.Context, groupID, groupName string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE groups
		SET group_name = $1, updated_at = NOW()
		WHERE group_id = $2
	`, groupName, groupID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrGroupExists
		}
		logger.Error().Err(err).Str("groupID", groupID).Msg("Error updating group")
		return fmt.Errorf("error updating group: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrGroupNotFound
	}

	return nil
}

// Delete removes a group, its membership rows, and any member students left
// without a group, all in one transaction.
func (r *GroupRepository) Delete(ctx context.Context, groupID string) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		memberIDs, err := memberStudentIDs(ctx, tx, groupID)
		if err != nil {
			return err
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM groups WHERE group_id = $1`, groupID)
		if err != nil {
			return fmt.Errorf("error deleting group: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrGroupNotFound
		}

		return purgeOrphanStudents(ctx, tx, memberIDs)
	})
	if err != nil {
		if !errors.Is(err, ErrGroupNotFound) {
			logger.Error().Err(err).Str("groupID", groupID).Msg("Error deleting group")
		}
		return err
	}

	return nil
}

// GetStudents lists the members of a group in student id order
func (r *GroupRepository) GetStudents(ctx context.Context, groupID string) ([]models.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.student_id, s.first_name, s.last_name, s.level, s.ethnicity, s.gender, s.nsn, s.language
		FROM group_students gs
		INNER JOIN students s ON gs.student_id = s.student_id
		WHERE gs.group_id = $1
		ORDER BY s.student_id
	`, groupID)
	if err != nil {
		logger.Error().Err(err).Str("groupID", groupID).Msg("Error querying group students")
		return nil, fmt.Errorf("error querying group students: %w", err)
	}
	defer rows.Close()

	return collectStudents(rows)
}

// AddGeneratedStudents inserts freshly generated students and their membership
// rows in one transaction.
func (r *GroupRepository) AddGeneratedStudents(ctx context.Context, groupID string, students []models.Student) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := insertStudents(ctx, tx, students); err != nil {
			return err
		}

		for _, s := range students {
			_, err := tx.Exec(ctx, `
				INSERT INTO group_students (group_id, student_id) VALUES ($1, $2)
			`, groupID, s.StudentID)
			if err != nil {
				if dberrors.IsUniqueViolation(err) {
					return ErrMemberExists
				}
				return fmt.Errorf("error adding group member: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		logger.Error().Err(err).Str("groupID", groupID).Int("count", len(students)).
			Msg("Error adding generated students")
		return err
	}

	return nil
}

// RemoveStudent drops a membership row and purges the student if no other
// group still holds it.
func (r *GroupRepository) RemoveStudent(ctx context.Context, groupID, studentID string) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `
			DELETE FROM group_students WHERE group_id = $1 AND student_id = $2
		`, groupID, studentID)
		if err != nil {
			return fmt.Errorf("error removing group member: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrMemberAbsent
		}

		return purgeOrphanStudents(ctx, tx, []string{studentID})
	})
	if err != nil {
		if !errors.Is(err, ErrMemberAbsent) {
			logger.Error().Err(err).Str("groupID", groupID).Str("studentID", studentID).
				Msg("Error removing group member")
		}
		return err
	}

	return nil
}

func memberStudentIDs(ctx context.Context, tx pgx.Tx, groupID string) ([]string, error) {
	rows, err := tx.Query(ctx, `SELECT student_id FROM group_students WHERE group_id = $1`, groupID)
	if err != nil {
		return nil, fmt.Errorf("error querying group members: %w", err)
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

	return ids, rows.Err()
}

// purgeOrphanStudents deletes the given students when no membership row
// references them anymore.
func purgeOrphanStudents(ctx context.Context, tx pgx.Tx, studentIDs []string) error {
	if len(studentIDs) == 0 {
		return nil
	}

	_, err := tx.Exec(ctx, `
		DELETE FROM students
		WHERE student_id = ANY($1)
		  AND NOT EXISTS (
			SELECT 1 FROM group_students gs WHERE gs.student_id = students.student_id
		  )
	`, studentIDs)
	if err != nil {
		return fmt.Errorf("error purging orphaned students: %w", err)
	}

	return nil
}
