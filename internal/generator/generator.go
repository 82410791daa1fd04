// Package generator produces batches of plausible synthetic student records
// for test and demo rosters.
package generator

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/nmcleod/rollcall/internal/app/models"
	"github.com/nmcleod/rollcall/internal/nsn"
)

const (
	studentIDPrefix = "STU-"
	studentIDLength = 8
	// maxAttempts bounds the per-record uniqueness retry loop. Records that
	// still collide are skipped; callers must treat the returned count as
	// authoritative.
	maxAttempts = 100
)

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Options are the optional generation knobs.
type Options struct {
	// LastNameSuffix is appended to every generated last name, e.g. to
	// visually group a batch in the UI.
	LastNameSuffix string
	// Level fixes the year label for the whole batch when non-empty.
	Level string
	// InvalidNSNs is how many records receive a deliberately invalid check
	// digit. Not persisted as a flag anywhere.
	InvalidNSNs int
}

// Generator creates synthetic students. Not safe for concurrent use; create
// one per generation request.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator with its own random source.
func New() *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded creates a deterministic generator for tests.
func NewSeeded(seed1, seed2 uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// Generate produces up to count students whose NSNs avoid the exclusion set
// and whose student IDs and NSNs are unique within the batch. Records that
// exhaust the retry bound are silently skipped.
func (g *Generator) Generate(count int, excludeNSNs map[string]struct{}, opts Options) []models.Student {
	students := make([]models.Student, 0, count)
	usedNSNs := make(map[string]struct{}, count)
	usedIDs := make(map[string]struct{}, count)

	for i := 0; i < count; i++ {
		wantInvalid := i < opts.InvalidNSNs

		var student models.Student
		ok := false
		for attempt := 0; attempt < maxAttempts; attempt++ {
			student = g.randomStudent(opts, wantInvalid)

			if _, dup := usedIDs[student.StudentID]; dup {
				continue
			}
			if _, dup := usedNSNs[student.NSN]; dup {
				continue
			}
			if _, dup := excludeNSNs[student.NSN]; dup {
				continue
			}
			ok = true
			break
		}
		if !ok {
			continue
		}

		usedIDs[student.StudentID] = struct{}{}
		usedNSNs[student.NSN] = struct{}{}
		students = append(students, student)
	}

	return students
}

func (g *Generator) randomStudent(opts Options, invalidNSN bool) models.Student {
	lastName := lastNames[g.rng.IntN(len(lastNames))]
	if opts.LastNameSuffix != "" {
		lastName += opts.LastNameSuffix
	}

	level := opts.Level
	if level == "" {
		level = Levels[g.rng.IntN(len(Levels))]
	}

	return models.Student{
		StudentID: g.randomStudentID(),
		FirstName: firstNames[g.rng.IntN(len(firstNames))],
		LastName:  lastName,
		Level:     level,
		Ethnicity: EthnicityCodes[g.rng.IntN(len(EthnicityCodes))].Code,
		Gender:    Genders[g.rng.IntN(len(Genders))],
		NSN:       g.randomNSN(invalidNSN),
		Language:  LanguageCodes[g.rng.IntN(len(LanguageCodes))].Code,
	}
}

func (g *Generator) randomStudentID() string {
	var sb strings.Builder
	sb.WriteString(studentIDPrefix)
	for i := 0; i < studentIDLength; i++ {
		sb.WriteByte(idAlphabet[g.rng.IntN(len(idAlphabet))])
	}
	return sb.String()
}

func (g *Generator) randomNSN(invalid bool) string {
	prefix := fmt.Sprintf("%08d", g.rng.IntN(100000000))

	var s string
	var err error
	if invalid {
		s, err = nsn.InvalidFromPrefix(prefix)
	} else {
		s, err = nsn.FromPrefix(prefix)
	}
	if err != nil {
		// Unreachable: the prefix is always 8 digits.
		panic(err)
	}
	return s
}
