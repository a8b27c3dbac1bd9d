// Package logging configures the logrus logger shared by the command line
// tool.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat/go-file-rotatelogs"
	"github.com/pkg/errors"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

const (
	DefaultLevel    = "warn"
	DefaultFilename = "sha256step"
	defaultMaxAge   = 7 * 24 * time.Hour
)

// Config selects the level and an optional directory for log files.
type Config struct {
	Level string
	Dir   string
	Out   io.Writer
}

// New returns a logger writing text lines to cfg.Out (stderr when nil). If
// cfg.Dir is set every entry is also written to a daily rotated file there.
func New(cfg Config) (*logrus.Logger, error) {
	if cfg.Level == "" {
		cfg.Level = DefaultLevel
	}
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}

	log := logrus.New()
	log.Out = cfg.Out
	if log.Out == nil {
		log.Out = os.Stderr
	}
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	log.Level = level

	if cfg.Dir != "" {
		hook, err := NewFileRotateHook(cfg.Dir, DefaultFilename, defaultMaxAge)
		if err != nil {
			return nil, err
		}
		log.Hooks.Add(hook)
	}

	log.WithFields(logrus.Fields{
		"dir":   cfg.Dir,
		"level": level.String(),
	}).Debug("logger configured")

	return log, nil
}

// NewFileRotateHook returns a hook writing every level to
// dir/filename-YYYYMMDD.log, rotated daily, with dir/filename.log linking to
// the current file.
func NewFileRotateHook(dir, filename string, maxAge time.Duration) (logrus.Hook, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "log dir %q", dir)
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.Wrapf(err, "create log dir %q", dir)
	}

	writer, err := rotatelogs.New(
		filepath.Join(dir, filename+"-%Y%m%d.log"),
		rotatelogs.WithLinkName(filepath.Join(dir, filename+".log")),
		rotatelogs.WithRotationTime(24*time.Hour),
		rotatelogs.WithMaxAge(maxAge),
	)
	if err != nil {
		return nil, errors.Wrap(err, "rotate logs")
	}

	return lfshook.NewHook(lfshook.WriterMap{
		logrus.TraceLevel: writer,
		logrus.DebugLevel: writer,
		logrus.InfoLevel:  writer,
		logrus.WarnLevel:  writer,
		logrus.ErrorLevel: writer,
		logrus.FatalLevel: writer,
		logrus.PanicLevel: writer,
	}, &logrus.JSONFormatter{}), nil
}
