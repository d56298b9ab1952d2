package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger é o subconjunto do logrus usado pelos middlewares e serviços
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

type contextKey string

// CorrelationIDKey é a chave para armazenar o ID de correlação no contexto
const CorrelationIDKey contextKey = "correlation_id"
const correlationIDField = "correlation_id"

const (
	// LogFileName é o arquivo criado dentro de LOGGING_DIR
	LogFileName = "logging.log"
	// ErrorLogFileName recebe apenas as entradas marcadas com FileErrorField
	ErrorLogFileName = "file_error_log_list.log"
	// FileErrorField marca erros de abertura e leitura de arquivos
	FileErrorField = "file_error"
)

type logger struct {
	entry *logrus.Entry
}

// L é uma instância global de Logger para uso direto
var L Logger = newLogger()

func newLogger() Logger {
	return &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

// Setup aplica o formato padrão e o nível configurado; nível inválido cai para info
func Setup(level string) logrus.Level {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	L = newLogger()
	return parsed
}

// SetupTestLogger configura um logger simplificado para testes
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetReportCaller(false)

	L = newLogger()
}

// ConfigureOutput duplica a saída do logrus em <dir>/logging.log quando habilitado.
// Entradas com FileErrorField também vão para <dir>/file_error_log_list.log.
func ConfigureOutput(enabled bool, dir string) (io.Closer, error) {
	if !enabled {
		return nil, nil
	}

	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("log: erro ao criar diretório %s: %w", dir, err)
		}
	}

	file, err := openLogFile(dir, LogFileName)
	if err != nil {
		return nil, err
	}

	errorFile, err := openLogFile(dir, ErrorLogFileName)
	if err != nil {
		file.Close()
		return nil, err
	}

	hook := &fileErrorHook{
		writer: errorFile,
		formatter: &logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		},
	}

	logrus.SetOutput(io.MultiWriter(os.Stderr, file))
	logrus.AddHook(hook)
	L = newLogger()

	return &outputFiles{hook: hook, files: []*os.File{file, errorFile}}, nil
}

func openLogFile(dir, name string) (*os.File, error) {
	file, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("log: erro ao abrir arquivo de log %s: %w", name, err)
	}
	return file, nil
}

type fileErrorHook struct {
	writer    io.Writer
	formatter logrus.Formatter
}

func (h *fileErrorHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *fileErrorHook) Fire(entry *logrus.Entry) error {
	if marked, _ := entry.Data[FileErrorField].(bool); !marked {
		return nil
	}

	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	_, err = h.writer.Write(line)
	return err
}

// outputFiles remove o hook e fecha os arquivos abertos por ConfigureOutput
type outputFiles struct {
	hook  *fileErrorHook
	files []*os.File
}

func (o *outputFiles) Close() error {
	hooks := make(logrus.LevelHooks)
	for level, registered := range logrus.StandardLogger().Hooks {
		for _, h := range registered {
			if h != logrus.Hook(o.hook) {
				hooks[level] = append(hooks[level], h)
			}
		}
	}
	logrus.StandardLogger().ReplaceHooks(hooks)

	var firstErr error
	for _, f := range o.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (l *logger) WithField(key string, value interface{}) Logger {
	return &logger{entry: l.entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	return &logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

// WithContext extrai o ID de correlação do contexto, quando existir
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return l.WithField(correlationIDField, correlationID)
	}

	return l
}

func (l *logger) Debug(args ...interface{}) {
	l.entry.Debug(args...)
}

func (l *logger) Info(args ...interface{}) {
	l.entry.Info(args...)
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *logger) Warn(args ...interface{}) {
	l.entry.Warn(args...)
}

func (l *logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *logger) Error(args ...interface{}) {
	l.entry.Error(args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// WithCorrelationID adiciona um ID de correlação ao contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

// GetCorrelationID obtém o ID de correlação do contexto
func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// ForContext cria um logger com o ID de correlação do contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
