package log

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureOutput(t *testing.T) {
	t.Run("desabilitado não abre arquivo", func(t *testing.T) {
		closer, err := ConfigureOutput(false, t.TempDir())
		require.NoError(t, err)
		assert.Nil(t, closer)
	})

	t.Run("habilitado grava em logging.log", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "logs")
		defer logrus.SetOutput(os.Stderr)

		closer, err := ConfigureOutput(true, dir)
		require.NoError(t, err)
		require.NotNil(t, closer)

		logrus.Info("relatório montado")
		require.NoError(t, closer.Close())

		content, err := os.ReadFile(filepath.Join(dir, "logging.log"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "relatório montado")
	})

	t.Run("erros de arquivo vão também para file_error_log_list.log", func(t *testing.T) {
		dir := t.TempDir()
		defer logrus.SetOutput(os.Stderr)

		closer, err := ConfigureOutput(true, dir)
		require.NoError(t, err)

		logrus.WithFields(logrus.Fields{
			FileErrorField: true,
			"path":         "raw_files/member_4.xlsx",
		}).Warn("Erro ao abrir arquivo de membro")
		logrus.Warn("aviso sem relação com arquivos")
		require.NoError(t, closer.Close())

		errorLog, err := os.ReadFile(filepath.Join(dir, ErrorLogFileName))
		require.NoError(t, err)
		assert.Contains(t, string(errorLog), "member_4.xlsx")
		assert.NotContains(t, string(errorLog), "aviso sem relação")

		mainLog, err := os.ReadFile(filepath.Join(dir, LogFileName))
		require.NoError(t, err)
		assert.Contains(t, string(mainLog), "member_4.xlsx")
		assert.Contains(t, string(mainLog), "aviso sem relação")

		for _, hooks := range logrus.StandardLogger().Hooks {
			assert.Empty(t, hooks)
		}
	})
}

func TestCorrelationID(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))

	ctx, id := WithCorrelationID(context.Background())
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	assert.Equal(t, logrus.WarnLevel, Setup("warn"))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	assert.Equal(t, logrus.InfoLevel, Setup("barulhento"))
}

func TestForContext(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	entry, ok := ForContext(ctx).(*logger)
	require.True(t, ok)
	assert.Equal(t, id, entry.entry.Data[correlationIDField])
}
