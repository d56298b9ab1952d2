package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// ArchiveIDPrefix identifica os relatórios arquivados no banco
	ArchiveIDPrefix = "rpt_"
	archiveIDLength = 12
)

// GenerateID gera o identificador de um relatório arquivado, por exemplo rpt_4fG9kQ2mZx1a
func GenerateID() (string, error) {
	id, err := gonanoid.Generate(characters, archiveIDLength)
	if err != nil {
		return "", err
	}
	return ArchiveIDPrefix + id, nil
}
