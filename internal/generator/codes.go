package generator

// Code is one static reference-data entry.
type Code struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// EthnicityCodes mirrors the national ethnic-group classification used by the
// downstream consumer. Reference data, not derived.
var EthnicityCodes = []Code{
	{"111", "NZ European/Pākehā"},
	{"121", "British/Irish"},
	{"122", "Dutch"},
	{"123", "Greek"},
	{"124", "Polish"},
	{"125", "South Slav"},
	{"126", "Italian"},
	{"127", "German"},
	{"128", "Australian"},
	{"129", "Other European"},
	{"211", "NZ Māori"},
	{"311", "Samoan"},
	{"321", "Cook Islands Māori"},
	{"331", "Tongan"},
	{"341", "Niuean"},
	{"351", "Tokelauan"},
	{"361", "Fijian"},
	{"371", "Other Pacific Peoples"},
	{"411", "Filipino"},
	{"412", "Cambodian"},
	{"413", "Vietnamese"},
	{"414", "Other Southeast Asian"},
	{"421", "Chinese"},
	{"431", "Indian"},
	{"441", "Sri Lankan"},
	{"442", "Japanese"},
	{"443", "Korean"},
	{"444", "Other Asian"},
	{"511", "Middle Eastern"},
	{"521", "Latin American"},
	{"531", "African"},
	{"611", "Other Ethnicity"},
}

// LanguageCodes is the first-language classification. Code 999 renders as a
// blank field in AST output.
var LanguageCodes = []Code{
	{"1", "English"},
	{"2", "Other"},
	{"999", "Unknown"},
}

// Levels is the ordered year-label set used when no fixed level is requested.
var Levels = []string{
	"Year 3", "Year 4", "Year 5", "Year 6",
	"Year 7", "Year 8", "Year 9", "Year 10",
}

// Genders is the allowed gender value set.
var Genders = []string{"Male", "Female", "Non-binary", "Other"}
