package ast

import (
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmcleod/rollcall/internal/app/models"
)

var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func sampleGroups() []models.GroupStudents {
	maia := models.Student{
		StudentID: "STU-AAAA0001", FirstName: "Maia", LastName: `O"Brien`,
		Level: "Year 4", Ethnicity: "211", Gender: "Female", NSN: "123456782", Language: "1",
	}
	jack := models.Student{
		StudentID: "STU-AAAA0002", FirstName: "Jack", LastName: "Smith",
		Level: "Year 9", Ethnicity: "111", Gender: "Male", NSN: "876543219", Language: "999",
	}
	ariki := models.Student{
		StudentID: "STU-AAAA0003", FirstName: "Ariki", LastName: "Chen",
		Level: "Senior", Ethnicity: "421", Gender: "Non-binary", NSN: "111111111", Language: "2",
	}

	return []models.GroupStudents{
		{GroupID: "g-1", GroupName: "Room 5", Students: []models.Student{maia, jack}},
		{GroupID: "g-2", GroupName: `Kapa "Haka"`, Students: []models.Student{jack, ariki}},
	}
}

func TestGenerateGolden(t *testing.T) {
	out := Generate(sampleGroups(), "1234", fixedNow)

	g := goldie.New(t)
	g.Assert(t, "export_two_groups", []byte(out))
}

func TestGenerateDeterministic(t *testing.T) {
	first := Generate(sampleGroups(), "1234", fixedNow)
	second := Generate(sampleGroups(), "1234", fixedNow)
	assert.Equal(t, first, second)
}

func TestGenerateSectionCounts(t *testing.T) {
	out := Generate(sampleGroups(), "1234", fixedNow)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	// Class rows equal the number of input groups.
	assert.Contains(t, lines, "SECTION,Class,ROWS,2")
	// Student rows equal the number of distinct student_ids (jack is shared).
	assert.Contains(t, lines, "SECTION,Student,ROWS,3")
	// Student_Class rows equal the sum of per-group membership sizes.
	assert.Contains(t, lines, "SECTION,Student_Class,ROWS,4")

	// Shared student keeps one local id across both memberships.
	assert.Contains(t, lines, "2,876543219,1")
	assert.Contains(t, lines, "2,876543219,2")
}

func TestGenerateFieldMapping(t *testing.T) {
	out := Generate(sampleGroups(), "1234", fixedNow)

	// Quote characters doubled, commas untouched.
	assert.Contains(t, out, `1,Room 5,Y`)
	assert.Contains(t, out, `2,Kapa ""Haka"",Y`)
	assert.Contains(t, out, `O""Brien`)

	// Year parsed from the label, default 3 for the unparseable "Senior";
	// gender mapped to M/F/N; language 999 rendered blank.
	assert.Contains(t, out, "1,123456782,O\"\"Brien,Maia,4,F,1,211")
	assert.Contains(t, out, "2,876543219,Smith,Jack,9,M,,111")
	assert.Contains(t, out, "3,111111111,Chen,Ariki,3,N,2,421")
}

func TestGenerateHeaderAndFooter(t *testing.T) {
	out := Generate(sampleGroups(), "1234", fixedNow)
	lines := strings.Split(out, "\n")

	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "SECTION,Header", lines[0])
	assert.Equal(t, "ast.csv,2024-03-15 10:30:00.000,1", lines[1])
	assert.Equal(t, "SECTION,Import_Type", lines[2])
	assert.Equal(t, "Class", lines[3])

	require.True(t, strings.HasSuffix(out, "SECTION,Footer\nast.csv\n"))
}

func TestYearLevelParsing(t *testing.T) {
	assert.Equal(t, 7, yearLevel("Year 7"))
	assert.Equal(t, 10, yearLevel("year 10"))
	assert.Equal(t, 3, yearLevel("Sophomore"))
	assert.Equal(t, 3, yearLevel(""))
}
