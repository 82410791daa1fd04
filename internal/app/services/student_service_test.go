package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/nmcleod/rollcall/internal/app/models/dto"
	"github.com/nmcleod/rollcall/internal/pkg/apperrors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStudentFixture(t *testing.T) (StudentService, *fakeStudentStore) {
	t.Helper()
	students := newFakeStudentStore()
	return NewStudentService(students, zerolog.Nop()), students
}

func raw(s string) json.RawMessage {
	b, _ := json.Marshal(s)
	return b
}

func TestGenerateAndListStudents(t *testing.T) {
	svc, _ := newStudentFixture(t)

	resp, err := svc.Generate(context.Background(), &dto.GenerateStudentsRequest{Count: 10})
	require.NoError(t, err)
	assert.Equal(t, 10, resp.Count)

	list, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, list.Count)

	require.NoError(t, svc.DeleteAll(context.Background()))

	list, err = svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, list.Count)
}

func TestUpdateStudentWhitelist(t *testing.T) {
	svc, students := newStudentFixture(t)

	resp, err := svc.Generate(context.Background(), &dto.GenerateStudentsRequest{Count: 2})
	require.NoError(t, err)
	target := resp.Students[0]
	other := resp.Students[1]

	// Known fields apply.
	err = svc.Update(context.Background(), target.StudentID, dto.UpdateStudentRequest{
		"first_name": raw("Aroha"),
		"level":      raw("Year 7"),
	})
	require.NoError(t, err)

	updated, err := students.GetByStudentID(context.Background(), target.StudentID)
	require.NoError(t, err)
	assert.Equal(t, "Aroha", updated.FirstName)
	assert.Equal(t, "Year 7", updated.Level)

	// Unknown fields fail the whole request.
	err = svc.Update(context.Background(), target.StudentID, dto.UpdateStudentRequest{
		"first_name": raw("Mere"),
		"student_id": raw("STU-HACKED01"),
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	unchanged, err := students.GetByStudentID(context.Background(), target.StudentID)
	require.NoError(t, err)
	assert.Equal(t, "Aroha", unchanged.FirstName)

	// Empty update set.
	err = svc.Update(context.Background(), target.StudentID, dto.UpdateStudentRequest{})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	// Unknown student.
	err = svc.Update(context.Background(), "STU-MISSING1", dto.UpdateStudentRequest{
		"first_name": raw("Mere"),
	})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	// NSN collision with another student.
	err = svc.Update(context.Background(), target.StudentID, dto.UpdateStudentRequest{
		"nsn": raw(other.NSN),
	})
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestReferenceCodeTables(t *testing.T) {
	svc, _ := newStudentFixture(t)

	ethnicities := svc.EthnicityCodes()
	assert.True(t, ethnicities.Success)
	assert.Len(t, ethnicities.Codes, 32)

	languages := svc.LanguageCodes()
	assert.Len(t, languages.Codes, 3)
	assert.Equal(t, "1", languages.Codes[0].Code)
}
