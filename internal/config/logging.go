package config

import (
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

type LogFile struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
}

// NewLogFile returns nil when LOG_FILE is not set.
func NewLogFile() (*LogFile, error) {
	path, ok := os.LookupEnv("LOG_FILE")
	if !ok || path == "" {
		return nil, nil
	}

	maxSize, err := lookupInt("LOG_FILE_MAX_MB", 10)
	if err != nil {
		return nil, err
	}

	maxBackups, err := lookupInt("LOG_FILE_MAX_BACKUPS", 3)
	if err != nil {
		return nil, err
	}

	lf := &LogFile{
		Path:       path,
		MaxSizeMB:  maxSize,
		MaxBackups: maxBackups,
	}

	return lf, nil
}

func (lf *LogFile) Writer() io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   lf.Path,
		MaxSize:    lf.MaxSizeMB,
		MaxBackups: lf.MaxBackups,
	}
}
