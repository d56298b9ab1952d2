package normalizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawMemberFile(title string, data ...[]string) [][]string {
	raw := [][]string{
		{"", "Original Header"},
		{"", title},
	}
	for i := 0; i < spacerRows; i++ {
		raw = append(raw, []string{""})
	}
	return append(raw, data...)
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(nil))
	assert.True(t, IsBlank(rawMemberFile("Jane Doe Attendance")))
	assert.False(t, IsBlank(rawMemberFile("Jane Doe Attendance", []string{"", "5/3/24 9:30 AM"})))
}

func TestNormalizeMemberFile(t *testing.T) {
	raw := rawMemberFile("Jane Doe Attendance Report",
		[]string{"", "5/3/24 9:30 AM", "Yoga", "05/03/2024", "09:30", "10 Pack", "10", "1", "9", "booking", "admin"},
		[]string{"", "not a date", "Pilates"},
	)

	file, err := NormalizeMemberFile(raw)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", file.AccountOwner)
	assert.Equal(t, "modified Jane Doe Attendance Report.csv", file.OutputName())
	assert.Equal(t, []int{1}, file.Unparsed)

	require.Len(t, file.Sheet.Header, len(RawColumns)+1)
	assert.Equal(t, "date", file.Sheet.Header[0])
	assert.Equal(t, ColumnCleanedDate, file.Sheet.Header[len(file.Sheet.Header)-1])

	require.Len(t, file.Sheet.Rows, 2)
	first := file.Sheet.Rows[0]
	assert.Equal(t, "Yoga", first[1])
	assert.Equal(t, "admin", first[9])
	assert.Equal(t, "Jane Doe", first[10])
	assert.Equal(t, "2024-03-05", first[11])

	second := file.Sheet.Rows[1]
	assert.Len(t, second, len(file.Sheet.Header))
	assert.Equal(t, "", second[11])
}

func TestNormalizeMemberFile_Errors(t *testing.T) {
	_, err := NormalizeMemberFile(rawMemberFile("Jane"))
	assert.ErrorIs(t, err, ErrBlankFile)

	_, err = NormalizeMemberFile(rawMemberFile("Jane", []string{"", "5/3/24 9:30 AM"}))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrBlankFile)
}

func TestCombine(t *testing.T) {
	a := &Sheet{Header: []string{"date", "account_owner"}, Rows: [][]string{{"d1", "Jane Doe"}}}
	b := &Sheet{Header: []string{"account_owner", "balance"}, Rows: [][]string{{"John Roe", "4"}, {"Ann Poe"}}}

	combined := Combine([]*Sheet{a, b})

	assert.Equal(t, []string{"date", "account_owner", "balance"}, combined.Header)
	assert.Equal(t, [][]string{
		{"d1", "Jane Doe", ""},
		{"", "John Roe", "4"},
		{"", "Ann Poe", ""},
	}, combined.Rows)
}

func TestCombine_Empty(t *testing.T) {
	combined := Combine(nil)
	assert.Empty(t, combined.Header)
	assert.NotNil(t, combined.Rows)
}
