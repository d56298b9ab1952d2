package normalizing

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/bmfischer3/stripe-studiobooking-analysis/pkg/log"
)

const (
	BlankFilesListName = "blank_files_list.csv"
	CombinedFileName   = "combined_modified_files.csv"
)

// FileStore abstrai a leitura e gravação das planilhas de membros
type FileStore interface {
	List(dir string) ([]string, error)
	Read(path string) ([][]string, error)
	Write(path string, records [][]string) error
}

type TransformSummary struct {
	Transformed []string `json:"transformed"`
	Blank       []string `json:"blank"`
	Failed      []string `json:"failed"`
	Unparsed    int      `json:"unparsed_dates"`
}

type Service struct {
	store FileStore
}

func NewService(store FileStore) *Service {
	return &Service{store: store}
}

// TransformDirectory normaliza cada arquivo de membro e grava a lista de arquivos vazios em outputDir
func (s *Service) TransformDirectory(ctx context.Context, inputDir, outputDir string) (*TransformSummary, error) {
	names, err := s.store.List(inputDir)
	if err != nil {
		return nil, err
	}

	summary := &TransformSummary{Transformed: []string{}, Blank: []string{}, Failed: []string{}}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		path := filepath.Join(inputDir, name)
		raw, err := s.store.Read(path)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				log.FileErrorField: true,
				"path":             path,
				"error":            err.Error(),
			}).Warn("Erro ao abrir arquivo de membro")
			summary.Failed = append(summary.Failed, name)
			continue
		}

		file, err := NormalizeMemberFile(raw)
		if errors.Is(err, ErrBlankFile) {
			summary.Blank = append(summary.Blank, name)
			continue
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{
				log.FileErrorField: true,
				"path":             path,
				"error":            err.Error(),
			}).Warn("Erro ao normalizar arquivo de membro")
			summary.Failed = append(summary.Failed, name)
			continue
		}

		for _, row := range file.Unparsed {
			logrus.WithFields(logrus.Fields{
				log.FileErrorField: true,
				"path":             path,
				"row":              row,
			}).Info("Data em formato não reconhecido")
		}
		summary.Unparsed += len(file.Unparsed)

		if err := s.store.Write(filepath.Join(outputDir, file.OutputName()), file.Sheet.Records()); err != nil {
			return summary, err
		}
		summary.Transformed = append(summary.Transformed, name)
	}

	blank := make([][]string, 0, len(summary.Blank))
	for _, name := range summary.Blank {
		blank = append(blank, []string{name})
	}
	if err := s.store.Write(filepath.Join(outputDir, BlankFilesListName), blank); err != nil {
		return summary, err
	}

	logrus.WithFields(logrus.Fields{
		"transformed": len(summary.Transformed),
		"blank":       len(summary.Blank),
		"failed":      len(summary.Failed),
	}).Info("Normalização de arquivos concluída")

	return summary, nil
}

// CombineDirectory junta todos os arquivos do diretório em combined_modified_files.csv
func (s *Service) CombineDirectory(ctx context.Context, inputDir, saveDir string) (string, error) {
	names, err := s.store.List(inputDir)
	if err != nil {
		return "", err
	}

	sheets := make([]*Sheet, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		if name == BlankFilesListName || name == CombinedFileName {
			continue
		}

		records, err := s.store.Read(filepath.Join(inputDir, name))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				log.FileErrorField: true,
				"file":             name,
				"error":            err.Error(),
			}).Warn("Arquivo ignorado na combinação")
			continue
		}
		sheets = append(sheets, SheetFromRecords(records))
	}

	combined := Combine(sheets)
	path := filepath.Join(saveDir, CombinedFileName)
	if err := s.store.Write(path, combined.Records()); err != nil {
		return "", err
	}

	return path, nil
}
