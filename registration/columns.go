package registration

import (
	"fmt"
	"regexp"
	"strings"
)

// Field names a source column can map to.
const (
	FieldTimestamp      = "Timestamp"
	FieldFullName       = "FullName"
	FieldEmail          = "Email"
	FieldAffiliation    = "Affiliation"
	FieldAttending      = "Attending"
	FieldRole           = "Role"
	FieldSubmittedPaper = "SubmittedPaper"
	FieldDriving        = "Driving"
	FieldComments       = "Comments"
)

// defaultColumns maps normalized header names to record fields. The long
// keys are the literal questions on the registration form.
var defaultColumns = map[string]string{
	"timestamp":                            FieldTimestamp,
	"full name":                            FieldFullName,
	"name":                                 FieldFullName,
	"email address":                        FieldEmail,
	"email":                                FieldEmail,
	"affiliation (university/company)":     FieldAffiliation,
	"affiliation":                          FieldAffiliation,
	"are you attending iscol 2025?":        FieldAttending,
	"attending":                            FieldAttending,
	"i identify as a:":                     FieldRole,
	"role":                                 FieldRole,
	"did you submit a paper to iscol?":     FieldSubmittedPaper,
	"submitted paper":                      FieldSubmittedPaper,
	"will you be driving a car?":           FieldDriving,
	"driving":                              FieldDriving,
	"any additional comments or requests?": FieldComments,
	"comments":                             FieldComments,
}

// columnFragments is scanned in order when no exact header matches, so more
// specific fragments must come before generic ones.
var columnFragments = []struct {
	fragment string
	field    string
}{
	{"timestamp", FieldTimestamp},
	{"email", FieldEmail},
	{"affiliation", FieldAffiliation},
	{"university/company", FieldAffiliation},
	{"attending", FieldAttending},
	{"identify as", FieldRole},
	{"role", FieldRole},
	{"submit a paper", FieldSubmittedPaper},
	{"paper", FieldSubmittedPaper},
	{"driving", FieldDriving},
	{"comments", FieldComments},
	{"requests", FieldComments},
	{"name", FieldFullName},
}

// SuggestColumn returns the record field a header most likely maps to, or ""
// when nothing matches. Matching is exact first, then by fragment.
func SuggestColumn(column string) string {
	col := normalizeHeader(column)
	if field, ok := defaultColumns[col]; ok {
		return field
	}
	for _, m := range columnFragments {
		if strings.Contains(col, m.fragment) {
			return m.field
		}
	}
	return ""
}

func normalizeHeader(column string) string {
	col := strings.ToLower(strings.TrimSpace(column))
	col = strings.ReplaceAll(col, "_", " ")
	col = strings.ReplaceAll(col, "-", " ")
	return col
}

func buildColumnMap(header []string) map[int]string {
	colMap := make(map[int]string)
	for i, col := range header {
		if field := SuggestColumn(col); field != "" {
			colMap[i] = field
		}
	}
	return colMap
}

var nonKeyChars = regexp.MustCompile(`[^a-z0-9_]+`)

// extraKey turns a free-form header into a snake_case extras key.
func extraKey(header string) string {
	key := strings.ToLower(strings.TrimSpace(header))
	key = strings.ReplaceAll(key, " ", "_")
	return nonKeyChars.ReplaceAllString(key, "")
}

func extraKeyAt(header []string, i int) string {
	key := extraKey(header[i])
	if key == "" {
		key = fmt.Sprintf("column_%d", i+1)
	}
	return key
}
