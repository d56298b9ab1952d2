package normalizing

import (
	"errors"
	"fmt"
	"strings"
)

// RawColumns são as colunas dos relatórios de presença exportados do portal
var RawColumns = []string{
	"blank_rows", "date", "class_booked", "class_date", "class_time", "package_name",
	"balance", "balance_used", "remaining_balance", "transaction_type", "modified_by",
}

const (
	ColumnAccountOwner = "account_owner"
	ColumnCleanedDate  = "cleaned_date"

	// cabeçalho, título e cinco linhas de espaçamento
	minRowsWithData = 8
	spacerRows      = 5
)

var ErrBlankFile = errors.New("member file has no attendance rows")

// Sheet é uma tabela de texto com cabeçalho
type Sheet struct {
	Header []string
	Rows   [][]string
}

// Records devolve cabeçalho e linhas como um único bloco
func (s *Sheet) Records() [][]string {
	records := make([][]string, 0, len(s.Rows)+1)
	records = append(records, s.Header)
	return append(records, s.Rows...)
}

type MemberFile struct {
	Title        string
	AccountOwner string
	Sheet        *Sheet
	// Unparsed guarda os índices das linhas cuja data não foi reconhecida
	Unparsed []int
}

// IsBlank indica arquivos que contêm apenas o nome do membro
func IsBlank(raw [][]string) bool {
	return len(raw) < minRowsWithData
}

// NormalizeMemberFile remove a coluna vazia, o título e as linhas de espaçamento,
// e acrescenta o dono da conta e a data limpa
func NormalizeMemberFile(raw [][]string) (*MemberFile, error) {
	if IsBlank(raw) {
		return nil, ErrBlankFile
	}

	// raw[0] é o cabeçalho original, substituído por RawColumns
	title := cell(raw[1], 1)
	owner, err := accountOwner(title)
	if err != nil {
		return nil, err
	}

	header := append(append([]string{}, RawColumns[1:]...), ColumnAccountOwner, ColumnCleanedDate)
	file := &MemberFile{
		Title:        title,
		AccountOwner: owner,
		Sheet:        &Sheet{Header: header, Rows: make([][]string, 0, len(raw)-minRowsWithData+1)},
	}

	for i, row := range raw[2+spacerRows:] {
		values := make([]string, 0, len(header))
		for c := 1; c < len(RawColumns); c++ {
			values = append(values, cell(row, c))
		}

		cleaned, err := CleanupDate(strings.TrimSpace(cell(row, 1)))
		if err != nil {
			file.Unparsed = append(file.Unparsed, i)
		}

		values = append(values, owner, cleaned)
		file.Sheet.Rows = append(file.Sheet.Rows, values)
	}

	return file, nil
}

// OutputName segue o padrão "modified <título>.csv"
func (m *MemberFile) OutputName() string {
	return "modified " + m.Title + ".csv"
}

// accountOwner extrai as duas primeiras palavras do título, que formam o nome do membro
func accountOwner(title string) (string, error) {
	words := strings.Fields(title)
	if len(words) < 2 {
		return "", fmt.Errorf("título %q não contém nome do membro", title)
	}
	return words[0] + " " + words[1], nil
}

// Combine concatena as planilhas alinhando as colunas pelo nome, na ordem em que aparecem
func Combine(sheets []*Sheet) *Sheet {
	combined := &Sheet{Rows: [][]string{}}
	position := map[string]int{}

	for _, s := range sheets {
		for _, name := range s.Header {
			if _, ok := position[name]; !ok {
				position[name] = len(combined.Header)
				combined.Header = append(combined.Header, name)
			}
		}
	}

	for _, s := range sheets {
		for _, row := range s.Rows {
			values := make([]string, len(combined.Header))
			for i, name := range s.Header {
				values[position[name]] = cell(row, i)
			}
			combined.Rows = append(combined.Rows, values)
		}
	}

	return combined
}

// SheetFromRecords interpreta a primeira linha como cabeçalho
func SheetFromRecords(records [][]string) *Sheet {
	if len(records) == 0 {
		return &Sheet{Rows: [][]string{}}
	}
	return &Sheet{Header: records[0], Rows: records[1:]}
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
