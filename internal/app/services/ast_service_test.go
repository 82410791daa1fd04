package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nmcleod/rollcall/internal/app/models/dto"
	"github.com/nmcleod/rollcall/internal/pkg/apperrors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newASTFixture(t *testing.T) (*groupFixture, ASTService) {
	t.Helper()
	f := newGroupFixture(t)
	svc := NewASTService(f.groups, zerolog.Nop()).(*astServiceImpl)
	svc.now = func() time.Time {
		return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	}
	return f, svc
}

func TestExportRequiresSchoolFields(t *testing.T) {
	_, svc := newASTFixture(t)

	for _, req := range []*dto.ASTRequest{
		{},
		{SchoolID: "123"},
		{SchoolName: "Te Aro School"},
	} {
		_, err := svc.Export(context.Background(), "user-1", req)
		assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	}
}

func TestExportForeignGroupForbidden(t *testing.T) {
	f, svc := newASTFixture(t)
	f.favorite(t, "owner", "123")

	resp, err := f.svc.Create(context.Background(), "owner", &dto.CreateGroupRequest{
		SchoolID: "123", GroupName: "Room 5",
	})
	require.NoError(t, err)

	_, err = svc.Export(context.Background(), "intruder", &dto.ASTRequest{
		SchoolID:   "123",
		SchoolName: "Te Aro School",
		GroupID:    resp.Group.GroupID,
	})
	assert.True(t, errors.Is(err, apperrors.ErrAccessDenied))
}

func TestExportWithNothingToSayIs404(t *testing.T) {
	f, svc := newASTFixture(t)
	f.favorite(t, "user-1", "123")

	// No groups at all.
	_, err := svc.Export(context.Background(), "user-1", &dto.ASTRequest{
		SchoolID: "123", SchoolName: "Te Aro School",
	})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	// Groups exist but hold no students.
	_, err = f.svc.Create(context.Background(), "user-1", &dto.CreateGroupRequest{
		SchoolID: "123", GroupName: "Room 5",
	})
	require.NoError(t, err)

	_, err = svc.Export(context.Background(), "user-1", &dto.ASTRequest{
		SchoolID: "123", SchoolName: "Te Aro School",
	})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestExportRendersAllGroupsForSchool(t *testing.T) {
	f, svc := newASTFixture(t)
	f.favorite(t, "user-1", "123")

	for _, name := range []string{"Room 5", "Room 6"} {
		resp, err := f.svc.Create(context.Background(), "user-1", &dto.CreateGroupRequest{
			SchoolID: "123", GroupName: name,
		})
		require.NoError(t, err)

		_, err = f.svc.GenerateStudents(context.Background(), "user-1", resp.Group.GroupID,
			&dto.GenerateStudentsRequest{Count: 3})
		require.NoError(t, err)
	}

	export, err := svc.Export(context.Background(), "user-1", &dto.ASTRequest{
		SchoolID: "123", SchoolName: "Te Aro School",
	})
	require.NoError(t, err)

	assert.Equal(t, 6, export.StudentCount)
	assert.Equal(t, "AST_123_2024-03-15.csv", export.Filename)
	assert.True(t, strings.HasPrefix(export.Content, "SECTION,Header\n"))
	assert.True(t, strings.HasSuffix(export.Content, "SECTION,Footer\nast.csv\n"))
	assert.Contains(t, export.Content, "2024-03-15 10:30:00.000")
	assert.Contains(t, export.Content, "SECTION,School,ROWS,1\n123\n")
	assert.Contains(t, export.Content, "1,Room 5,Y")
	assert.Contains(t, export.Content, "2,Room 6,Y")
}
