package schoolcsv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLegacyLayout(t *testing.T) {
	input := strings.Join([]string{
		`School Id,School Name,Address,Suburb,Town,Postcode,Phone,Email,Website,Principal,School Type,Authority,Decile,Roll Number,Gender,IsPrimary,IsSecondary,IsComposite,Org_Code,Takiwā,Local Body`,
		`123,Te Aro School,25 Willis St,Te Aro,Wellington,6011,04 123 4567,office@tearo.school.nz,https://tearo.school.nz,J Ngata,Full Primary,State,8,245,Co-Ed,yes,no,no,123,Te Whanganui-a-Tara,Wellington City`,
		`456,Aurora College,1 Main Rd,,Invercargill,9812,,,,,"Secondary (Year 9-15)",State,4,612,Co-Ed,no,yes,no,456,Murihiku,Invercargill City`,
	}, "\n")

	schools, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, schools, 2)

	first := schools[0]
	assert.Equal(t, "123", first.SchoolID)
	assert.Equal(t, "Te Aro School", first.SchoolName)
	assert.Equal(t, "25 Willis St", first.Address)
	assert.Equal(t, "Wellington", first.Town)
	assert.Equal(t, "Full Primary", first.SchoolType)
	assert.Equal(t, 8, first.Decile)
	assert.Equal(t, 245, first.RollNumber)
	assert.True(t, first.IsPrimary)
	assert.False(t, first.IsSecondary)
	assert.Equal(t, "Te Whanganui-a-Tara", first.Takiwa)
	assert.Equal(t, "Wellington City", first.LocalBody)

	second := schools[1]
	assert.Equal(t, "Secondary (Year 9-15)", second.SchoolType)
	assert.True(t, second.IsSecondary)
	assert.False(t, second.IsPrimary)
}

func TestParseLegacyFallbackColumns(t *testing.T) {
	input := strings.Join([]string{
		`School Name,Org_Code,Total`,
		`Kauri Park School,789,310`,
	}, "\n")

	schools, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, schools, 1)

	assert.Equal(t, "789", schools[0].SchoolID)
	assert.Equal(t, "789", schools[0].OrgCode)
	assert.Equal(t, 310, schools[0].RollNumber)
}

func TestParseDirectoryLayout(t *testing.T) {
	input := strings.Join([]string{
		"\uFEFF" + `School_Id,Org_Name,Add1_Line1,Add1_Suburb,Add1_City,Add2_Postal_Code,Telephone,Email,URL,Contact1_Name,Org_Type,Authority,EQi_Index,Total,CoEd_Status,Takiwā,Territorial_Authority`,
		`1001,Rātā Valley School,10 Rātā Rd,Karori,Wellington,6012,04 555 1234,admin@ratavalley.school.nz,https://ratavalley.school.nz,M Parata,Contributing,State,7,180,Co-Educational,Te Whanganui-a-Tara,Wellington City`,
		`,Missing Id School,,,,,,,,,Contributing,State,,,Co-Educational,,`,
		`1003,,,,,,,,,,Contributing,State,,,Co-Educational,,`,
	}, "\n")

	schools, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, schools, 1, "rows without an id or name are dropped")

	s := schools[0]
	assert.Equal(t, "1001", s.SchoolID)
	assert.Equal(t, "Rātā Valley School", s.SchoolName)
	assert.Equal(t, "10 Rātā Rd", s.Address)
	assert.Equal(t, "Karori", s.Suburb)
	assert.Equal(t, "Wellington", s.Town)
	assert.Equal(t, "6012", s.Postcode)
	assert.Equal(t, "04 555 1234", s.Phone)
	assert.Equal(t, "https://ratavalley.school.nz", s.Website)
	assert.Equal(t, "M Parata", s.Principal)
	assert.Equal(t, "Contributing", s.SchoolType)
	assert.Equal(t, 7, s.Decile)
	assert.Equal(t, 180, s.RollNumber)
	assert.Equal(t, "Co-Educational", s.Gender)
	assert.Equal(t, "1001", s.OrgCode)
	assert.Equal(t, "Wellington City", s.LocalBody)
	assert.False(t, s.IsPrimary)
	assert.False(t, s.IsSecondary)
	assert.False(t, s.IsComposite)
}

func TestParseRaggedRows(t *testing.T) {
	input := strings.Join([]string{
		`School Id,School Name,Address,Decile`,
		`200,Short Row School`,
		`201,Long Row School,12 High St,5,extra,columns`,
	}, "\n")

	schools, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, schools, 2)

	assert.Equal(t, "", schools[0].Address)
	assert.Equal(t, 0, schools[0].Decile)
	assert.Equal(t, "12 High St", schools[1].Address)
	assert.Equal(t, 5, schools[1].Decile)
}

func TestParseUnknownHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("foo,bar\n1,2\n"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestParseEmptyFile(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
