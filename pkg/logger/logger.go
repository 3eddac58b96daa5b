package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger printf-логгер с уровнями поверх logrus, пишет в stdout и, опционально, в файл
type Logger struct {
	mu   sync.Mutex
	log  *logrus.Logger
	file *os.File
}

// ParseLevel преобразует строку из конфига в уровень logrus
// Неизвестное значение трактуется как info
func ParseLevel(s string) logrus.Level {
	level, err := logrus.ParseLevel(strings.TrimSpace(s))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// New создает логгер. Если filePath пустой, пишет только в stdout
func New(filePath string, level string) (*Logger, error) {
	var (
		writer io.Writer = os.Stdout
		file   *os.File
	)

	if filePath != "" {
		if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
			return nil, fmt.Errorf("logger: failed to create log dir: %w", err)
		}

		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: failed to open log file: %w", err)
		}
		file = f
		writer = io.MultiWriter(os.Stdout, f)
	}

	l := newLogger(writer, level, &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000000",
		DisableColors:   file != nil,
	})
	l.file = file
	return l, nil
}

// NewWriter создает логгер поверх произвольного writer (используется в тестах)
func NewWriter(w io.Writer, level string) *Logger {
	return newLogger(w, level, &logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
}

func newLogger(w io.Writer, level string, formatter logrus.Formatter) *Logger {
	base := logrus.New()
	base.SetOutput(w)
	base.SetLevel(ParseLevel(level))
	base.SetFormatter(formatter)

	l := &Logger{log: base}
	// перед выходом по Fatal закрываем файл логов
	base.ExitFunc = func(code int) {
		l.Close()
		os.Exit(code)
	}
	return l
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.log.Debugf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.log.Infof(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.log.Warnf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.log.Errorf(format, v...)
}

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log.Fatalf(format, v...)
}

// Close закрывает файл логов, если он был открыт
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	l.log.SetOutput(os.Stdout)
	err := l.file.Close()
	l.file = nil
	return err
}
