package registration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = `Timestamp,Full Name,Email Address,Affiliation (University/Company),Are you attending ISCOL 2025?,I identify as a:,Did you submit a paper to ISCOL?,Will you be driving a car?,Any additional comments or requests?,Dietary restrictions
2025/04/21 8:15:33 PM GMT+3,Dana Cohen,Dana.Cohen@gmail.com,Bar-Ilan University,Yes,Graduate student,No,No,Looking forward!,Vegetarian
2025/04/22 9:01:12 AM GMT+3,Yoav Levi,yoav@cs.technion.ac.il,Technion,"Maybe, not sure yet",PhD student,Yes,"Maybe, not sure yet",,
2025/04/23 11:30:00 AM GMT+3,Noa Mor,noa@gmail.com,Google
`

func TestParse(t *testing.T) {
	records, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, 2, first.SourceRow)
	assert.Equal(t, "Dana Cohen", first.FullName)
	assert.Equal(t, "Dana.Cohen@gmail.com", first.Email)
	assert.Equal(t, "Bar-Ilan University", first.Affiliation)
	assert.Equal(t, "Yes", first.Attending)
	assert.Equal(t, "Graduate student", first.Role)
	assert.Equal(t, "No", first.SubmittedPaper)
	assert.Equal(t, "No", first.Driving)
	assert.Equal(t, "Looking forward!", first.Comments)
	assert.Equal(t, "Vegetarian", first.GetExtraString("dietary_restrictions"))

	second := records[1]
	assert.Equal(t, AnswerMaybe, second.Attending)
	assert.Equal(t, AnswerMaybe, second.Driving)
	assert.Empty(t, second.Comments)

	// Ragged row: missing cells read as empty strings
	third := records[2]
	assert.Equal(t, 4, third.SourceRow)
	assert.Equal(t, "Noa Mor", third.FullName)
	assert.Equal(t, "Google", third.Affiliation)
	assert.Empty(t, third.Attending)
	assert.Empty(t, third.Role)
}

func TestParseEmpty(t *testing.T) {
	records, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseHeaderOnly(t *testing.T) {
	records, err := Parse(strings.NewReader("Timestamp,Full Name,Email Address\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadFileCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registrations.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0644))

	records, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestReadFileXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registrations.xlsx")

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{
		"Timestamp", "Full Name", "Email Address", "Affiliation (University/Company)", "Are you attending ISCOL 2025?",
	}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{
		"2025/04/21 8:15:33 PM GMT+3", "Dana Cohen", "dana@gmail.com", "Technion", "Yes",
	}))
	// Short row: excelize returns it without trailing cells
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{
		"2025/04/22 9:00:00 AM GMT+3", "Yoav Levi",
	}))
	require.NoError(t, f.SaveAs(path))

	records, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Dana Cohen", records[0].FullName)
	assert.Equal(t, "Technion", records[0].Affiliation)
	assert.Equal(t, "Yes", records[0].Attending)

	assert.Equal(t, "Yoav Levi", records[1].FullName)
	assert.Empty(t, records[1].Email)
	assert.Empty(t, records[1].Affiliation)
}

func TestReadFileUnsupported(t *testing.T) {
	_, err := ReadFile("registrations.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestSuggestColumn(t *testing.T) {
	tests := []struct {
		column string
		want   string
	}{
		{"Timestamp", FieldTimestamp},
		{"Full Name", FieldFullName},
		{"Email Address", FieldEmail},
		{"EMAIL", FieldEmail},
		{"Affiliation (University/Company)", FieldAffiliation},
		{"Are you attending ISCOL 2025?", FieldAttending},
		{"Are you attending ISCOL 2026?", FieldAttending},
		{"I identify as a:", FieldRole},
		{"Did you submit a paper to ISCOL?", FieldSubmittedPaper},
		{"Will you be driving a car?", FieldDriving},
		{"Any additional comments or requests?", FieldComments},
		{"submitted_paper", FieldSubmittedPaper},
		{"your name", FieldFullName},
		{"Dietary restrictions", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			assert.Equal(t, tt.want, SuggestColumn(tt.column))
		})
	}
}

func TestExtraKey(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Dietary restrictions", "dietary_restrictions"},
		{"T-shirt size?", "tshirt_size"},
		{"  Visa letter needed  ", "visa_letter_needed"},
		{"הערות", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extraKey(tt.header), "extraKey(%q)", tt.header)
	}
}
