package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
	logruswrapper "github.com/topfreegames/pitaya/v3/pkg/logger/logrus"
)

// LogConfig 日志配置
type LogConfig struct {
	Dir      string        `mapstructure:"dir"`
	Name     string        `mapstructure:"name"`
	Level    string        `mapstructure:"level"`
	MaxAge   time.Duration `mapstructure:"max_age"`
	Rotation time.Duration `mapstructure:"rotation"`
}

func DefaultLogConfig() LogConfig {
	return LogConfig{
		Dir:      "./logs",
		Name:     filepath.Base(os.Args[0]),
		Level:    "info",
		MaxAge:   7 * 24 * time.Hour,
		Rotation: 24 * time.Hour,
	}
}

type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(time.DateTime)
	level := strings.ToLower(entry.Level.String())

	if entry.Caller == nil {
		return []byte(fmt.Sprintf("%s [%s] %s\n", timestamp, level, entry.Message)), nil
	}
	fileName := filepath.Base(entry.Caller.File)
	funcName := entry.Caller.Function
	funcName = funcName[strings.LastIndex(funcName, ".")+1:]

	return []byte(fmt.Sprintf("%s [%s] %s:%d %s %s\n", timestamp, level, fileName, entry.Caller.Line, funcName, entry.Message)), nil
}

// Logger 创建按天轮转的文件日志
func Logger(conf LogConfig) (interfaces.Logger, error) {
	level, err := logrus.ParseLevel(conf.Level)
	if err != nil {
		return nil, err
	}
	writer, err := newSafeRotateLogs(conf)
	if err != nil {
		return nil, err
	}

	l := logrus.New()
	l.SetOutput(writer)
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(level)
	return logruswrapper.NewWithFieldLogger(l), nil
}

// InitLogger 替换 pitaya 全局日志
func InitLogger(conf LogConfig) error {
	l, err := Logger(conf)
	if err != nil {
		return err
	}
	logger.SetLogger(l)
	return nil
}

// SafeRotateLogs 是一个包装器，确保文件存在
type SafeRotateLogs struct {
	*rotatelogs.RotateLogs
	logPattern string
	maxAge     time.Duration
	rotation   time.Duration
}

func newSafeRotateLogs(conf LogConfig) (*SafeRotateLogs, error) {
	if err := os.MkdirAll(conf.Dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	s := &SafeRotateLogs{
		logPattern: filepath.Join(conf.Dir, fmt.Sprintf("%s-%%Y%%m%%d.log", conf.Name)),
		maxAge:     conf.MaxAge,
		rotation:   conf.Rotation,
	}
	if err := s.open(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SafeRotateLogs) open() error {
	writer, err := rotatelogs.New(
		s.logPattern,
		rotatelogs.WithMaxAge(s.maxAge),
		rotatelogs.WithRotationTime(s.rotation),
	)
	if err != nil {
		return fmt.Errorf("create log writer: %w", err)
	}
	s.RotateLogs = writer
	return nil
}

// Write 检查文件是否存在，如果不存在则重新创建
func (s *SafeRotateLogs) Write(p []byte) (n int, err error) {
	if current := s.RotateLogs.CurrentFileName(); current != "" {
		if _, err := os.Stat(current); os.IsNotExist(err) {
			if err := s.open(); err != nil {
				return 0, err
			}
		}
	}
	return s.RotateLogs.Write(p)
}
