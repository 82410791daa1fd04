// Package schoolcsv parses school directory CSV files into roster schools.
// Two header shapes are supported: the application's own export layout
// ("School Id", "School Name", ...) and the tidy national-directory layout
// ("School_Id", "Org_Name", ...), whose first header cell may carry a BOM.
package schoolcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nmcleod/rollcall/internal/app/models"
)

// ErrUnknownFormat is returned when the header matches neither layout.
var ErrUnknownFormat = errors.New("unrecognised school CSV header")

// Parse reads a school directory CSV and maps its rows to schools. Rows
// without a school id or name are skipped.
func Parse(r io.Reader) ([]models.School, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrUnknownFormat)
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\uFEFF")
		}
		cols[strings.TrimSpace(name)] = i
	}

	mapper, err := detectFormat(cols)
	if err != nil {
		return nil, err
	}

	var schools []models.School
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		school := mapper(row{cols: cols, record: record})
		if school.SchoolID == "" || school.SchoolName == "" {
			continue
		}
		schools = append(schools, school)
	}

	return schools, nil
}

type row struct {
	cols   map[string]int
	record []string
}

func (r row) get(name string) string {
	i, ok := r.cols[name]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

func (r row) getInt(name string) int {
	n, err := strconv.Atoi(r.get(name))
	if err != nil {
		return 0
	}
	return n
}

func (r row) getYes(name string) bool {
	return strings.EqualFold(r.get(name), "yes")
}

type rowMapper func(row) models.School

func detectFormat(cols map[string]int) (rowMapper, error) {
	if _, ok := cols["Org_Name"]; ok {
		if _, ok := cols["School_Id"]; ok {
			return mapDirectoryRow, nil
		}
	}
	if _, ok := cols["School Name"]; ok {
		return mapLegacyRow, nil
	}
	return nil, ErrUnknownFormat
}

// mapLegacyRow handles the application's own export layout.
func mapLegacyRow(r row) models.School {
	schoolID := r.get("School Id")
	if schoolID == "" {
		schoolID = r.get("Org_Code")
	}

	roll := r.getInt("Roll Number")
	if roll == 0 {
		roll = r.getInt("Total")
	}

	takiwa := r.get("Takiwā")
	if takiwa == "" {
		takiwa = r.get("Takiwa")
	}

	return models.School{
		SchoolID:    schoolID,
		SchoolName:  r.get("School Name"),
		Address:     r.get("Address"),
		Suburb:      r.get("Suburb"),
		Town:        r.get("Town"),
		Postcode:    r.get("Postcode"),
		Phone:       r.get("Phone"),
		Email:       r.get("Email"),
		Website:     r.get("Website"),
		Principal:   r.get("Principal"),
		SchoolType:  r.get("School Type"),
		Authority:   r.get("Authority"),
		Decile:      r.getInt("Decile"),
		RollNumber:  roll,
		Gender:      r.get("Gender"),
		IsPrimary:   r.getYes("IsPrimary"),
		IsSecondary: r.getYes("IsSecondary"),
		IsComposite: r.getYes("IsComposite"),
		OrgCode:     r.get("Org_Code"),
		Takiwa:      takiwa,
		LocalBody:   r.get("Local Body"),
	}
}

// mapDirectoryRow handles the tidy national-directory layout.
func mapDirectoryRow(r row) models.School {
	return models.School{
		SchoolID:   r.get("School_Id"),
		SchoolName: r.get("Org_Name"),
		Address:    r.get("Add1_Line1"),
		Suburb:     r.get("Add1_Suburb"),
		Town:       r.get("Add1_City"),
		Postcode:   r.get("Add2_Postal_Code"),
		Phone:      r.get("Telephone"),
		Email:      r.get("Email"),
		Website:    r.get("URL"),
		Principal:  r.get("Contact1_Name"),
		SchoolType: r.get("Org_Type"),
		Authority:  r.get("Authority"),
		Decile:     r.getInt("EQi_Index"),
		RollNumber: r.getInt("Total"),
		Gender:     r.get("CoEd_Status"),
		OrgCode:    r.get("School_Id"),
		Takiwa:     r.get("Takiwā"),
		LocalBody:  r.get("Territorial_Authority"),
	}
}
