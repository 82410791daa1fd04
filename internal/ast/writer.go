// Package ast serializes a school's groups and students into the fixed
// multi-section AST CSV consumed by the downstream student management system.
package ast

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/nmcleod/rollcall/internal/app/models"
)

// Filename is the literal filename emitted in the Header and Footer sections.
const Filename = "ast.csv"

// formatVersion is the AST layout version emitted in the Header section.
const formatVersion = 1

// defaultYearLevel is used when a student's level does not parse as "Year N".
const defaultYearLevel = 3

var yearPattern = regexp.MustCompile(`(?i)Year (\d+)`)

// Generate renders the AST document for the given groups in input order.
// Students appearing in multiple groups are emitted once, with local ids
// assigned in first-seen order. The caller is responsible for rejecting empty
// input; the serializer does not validate emptiness.
func Generate(groups []models.GroupStudents, schoolID string, now time.Time) string {
	var lines []string

	lines = append(lines, "SECTION,Header")
	timestamp := now.UTC().Format("2006-01-02 15:04:05.000")
	lines = append(lines, fmt.Sprintf("%s,%s,%d", Filename, timestamp, formatVersion))
	lines = append(lines, "SECTION,Import_Type")
	lines = append(lines, "Class")

	lines = append(lines, "SECTION,School,ROWS,1")
	lines = append(lines, schoolID)

	// Deduplicate students across groups, preserving first-seen order, and
	// assign sequential 1-based local ids.
	var uniqueStudents []models.Student
	localIDs := make(map[string]int)
	for _, group := range groups {
		for _, student := range group.Students {
			if _, seen := localIDs[student.StudentID]; seen {
				continue
			}
			uniqueStudents = append(uniqueStudents, student)
			localIDs[student.StudentID] = len(uniqueStudents)
		}
	}

	lines = append(lines, fmt.Sprintf("SECTION,Class,ROWS,%d", len(groups)))
	for i, group := range groups {
		classID := i + 1
		lines = append(lines, fmt.Sprintf("%d,%s,Y", classID, escape(group.GroupName)))
	}

	lines = append(lines, fmt.Sprintf("SECTION,Student,ROWS,%d", len(uniqueStudents)))
	for _, student := range uniqueStudents {
		lines = append(lines, fmt.Sprintf("%d,%s,%s,%s,%d,%s,%s,%s",
			localIDs[student.StudentID],
			student.NSN,
			escape(student.LastName),
			escape(student.FirstName),
			yearLevel(student.Level),
			genderCode(student.Gender),
			languageField(student.Language),
			student.Ethnicity,
		))
	}

	var links []string
	for i, group := range groups {
		classID := i + 1
		for _, student := range group.Students {
			links = append(links, fmt.Sprintf("%d,%s,%d", localIDs[student.StudentID], student.NSN, classID))
		}
	}
	lines = append(lines, fmt.Sprintf("SECTION,Student_Class,ROWS,%d", len(links)))
	lines = append(lines, links...)

	lines = append(lines, "SECTION,Footer")
	lines = append(lines, Filename)

	return strings.Join(lines, "\n") + "\n"
}

// escape doubles quote characters only. Fields containing commas are NOT
// quote-wrapped; the downstream consumer's layout depends on this exact
// behavior, so do not "fix" it here.
func escape(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}

// genderCode maps the roster gender value to the single-letter AST code.
func genderCode(gender string) string {
	switch strings.ToLower(gender) {
	case "male":
		return "M"
	case "female":
		return "F"
	default:
		return "N"
	}
}

// languageField renders the language code column; 999 (Unknown) is blank.
func languageField(language string) string {
	if language == "999" {
		return ""
	}
	return language
}

// yearLevel extracts N from a "Year N" label, defaulting when unparseable.
func yearLevel(level string) int {
	m := yearPattern.FindStringSubmatch(level)
	if m == nil {
		return defaultYearLevel
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return defaultYearLevel
	}
	return n
}
