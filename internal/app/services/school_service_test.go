package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nmcleod/rollcall/internal/pkg/apperrors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSchoolCSV = `School Id,School Name,Town,Decile
123,Te Aro School,Wellington,8
456,Aurora College,Invercargill,4
`

func newSchoolFixture(t *testing.T) (SchoolService, *fakeSchoolStore) {
	t.Helper()
	schools := newFakeSchoolStore()
	return NewSchoolService(schools, "http://unused.test/directory.csv", 10<<20, zerolog.Nop()), schools
}

func TestImportCSVReplacesDirectory(t *testing.T) {
	svc, schools := newSchoolFixture(t)

	resp, err := svc.ImportCSV(context.Background(), strings.NewReader(sampleSchoolCSV))
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Count)
	assert.Contains(t, resp.Message, "2 schools")

	list, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, list.Count)

	// A second import replaces, never appends.
	resp, err = svc.ImportCSV(context.Background(), strings.NewReader(
		"School Id,School Name\n789,Kauri Park School\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Count)

	_, err = schools.GetBySchoolID(context.Background(), "123")
	assert.Error(t, err)
}

func TestImportCSVRejectsUnknownHeader(t *testing.T) {
	svc, _ := newSchoolFixture(t)

	_, err := svc.ImportCSV(context.Background(), strings.NewReader("foo,bar\n1,2\n"))
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestDeleteAllEmptiesDirectory(t *testing.T) {
	svc, _ := newSchoolFixture(t)

	_, err := svc.ImportCSV(context.Background(), strings.NewReader(sampleSchoolCSV))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAll(context.Background()))

	list, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, list.Count)
}
