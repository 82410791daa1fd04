package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmcleod/rollcall/internal/nsn"
)

func setOf(codes []Code) map[string]bool {
	m := make(map[string]bool, len(codes))
	for _, c := range codes {
		m[c.Code] = true
	}
	return m
}

func TestGenerateUniqueness(t *testing.T) {
	g := NewSeeded(1, 1)
	students := g.Generate(1000, nil, Options{})
	require.Len(t, students, 1000)

	ids := make(map[string]bool)
	nsns := make(map[string]bool)
	for _, s := range students {
		assert.False(t, ids[s.StudentID], "duplicate student_id %s", s.StudentID)
		assert.False(t, nsns[s.NSN], "duplicate nsn %s", s.NSN)
		ids[s.StudentID] = true
		nsns[s.NSN] = true
	}
}

func TestGenerateFieldMembership(t *testing.T) {
	g := NewSeeded(2, 7)
	students := g.Generate(500, nil, Options{})
	require.Len(t, students, 500)

	genders := map[string]bool{"Male": true, "Female": true, "Non-binary": true, "Other": true}
	ethnicities := setOf(EthnicityCodes)
	languages := setOf(LanguageCodes)
	levels := make(map[string]bool)
	for _, l := range Levels {
		levels[l] = true
	}

	for _, s := range students {
		assert.True(t, genders[s.Gender], "gender %q", s.Gender)
		assert.True(t, ethnicities[s.Ethnicity], "ethnicity %q", s.Ethnicity)
		assert.True(t, languages[s.Language], "language %q", s.Language)
		assert.True(t, levels[s.Level], "level %q", s.Level)
		assert.True(t, strings.HasPrefix(s.StudentID, "STU-"))
		assert.Len(t, s.StudentID, len("STU-")+8)
		assert.NotEmpty(t, s.FirstName)
		assert.NotEmpty(t, s.LastName)
	}
}

func TestGenerateChecksumValidity(t *testing.T) {
	g := NewSeeded(3, 9)
	students := g.Generate(200, nil, Options{InvalidNSNs: 50})
	require.Len(t, students, 200)

	for i, s := range students {
		if i < 50 {
			assert.False(t, nsn.Valid(s.NSN), "record %d should carry an invalid NSN", i)
		} else {
			assert.True(t, nsn.Valid(s.NSN), "record %d should carry a valid NSN", i)
		}
	}
}

func TestGenerateFixedLevelAndSuffix(t *testing.T) {
	g := NewSeeded(4, 4)
	students := g.Generate(50, nil, Options{Level: "Year 7", LastNameSuffix: " (demo)"})
	require.Len(t, students, 50)

	for _, s := range students {
		assert.Equal(t, "Year 7", s.Level)
		assert.True(t, strings.HasSuffix(s.LastName, " (demo)"), "last name %q", s.LastName)
	}
}

func TestGenerateRespectsExclusions(t *testing.T) {
	g := NewSeeded(5, 5)
	first := g.Generate(100, nil, Options{})
	require.Len(t, first, 100)

	exclude := make(map[string]struct{}, len(first))
	for _, s := range first {
		exclude[s.NSN] = struct{}{}
	}

	second := g.Generate(100, exclude, Options{})
	for _, s := range second {
		_, clash := exclude[s.NSN]
		assert.False(t, clash, "nsn %s collides with exclusion set", s.NSN)
	}
}

func TestEthnicityCodeTableShape(t *testing.T) {
	assert.Len(t, EthnicityCodes, 32)
	assert.Len(t, LanguageCodes, 3)
	assert.Len(t, Levels, 8)
	assert.Len(t, Genders, 4)
}
