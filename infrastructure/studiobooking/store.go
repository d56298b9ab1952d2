package studiobooking

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

var supportedExtensions = map[string]bool{
	".csv":  true,
	".xlsx": true,
}

// Store lê e grava planilhas de membros no sistema de arquivos
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

// List devolve os arquivos suportados do diretório em ordem alfabética
func (s *Store) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao listar diretório %s", dir)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if supportedExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}

func (s *Store) Read(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	case ".xlsx":
		return readXLSX(path)
	default:
		return nil, fmt.Errorf("extensão não suportada: %s", path)
	}
}

// Write grava sempre em CSV, criando o diretório se necessário
func (s *Store) Write(path string, records [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "erro ao criar diretório de saída")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "erro ao criar %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return errors.Wrapf(err, "erro ao gravar %s", path)
	}

	return nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler %s", path)
	}

	return records, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir %s", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return [][]string{}, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler planilha %s", sheets[0])
	}

	return rows, nil
}
