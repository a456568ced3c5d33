package logging

import (
	"fmt"
	"sort"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
)

// Config captures the options exposed by the go-logger provider.
type Config struct {
	Level  string
	Format string
}

// Provider hands out named loggers backed by go-logger.
type Provider struct {
	root *glog.BaseLogger
}

// NewProvider constructs a provider from the logging settings
func NewProvider(cfg Config) (*Provider, error) {
	options := []glog.Option{}

	if level := normalizeLevel(cfg.Level); level != "" {
		options = append(options, glog.WithLevel(level))
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "json":
		options = append(options, glog.WithLoggerTypeJSON())
	default:
		return nil, fmt.Errorf("logging: unsupported format %q", cfg.Format)
	}

	return &Provider{root: glog.NewLogger(options...)}, nil
}

// GetLogger returns a child logger scoped to name
func (p *Provider) GetLogger(name string) Logger {
	if p == nil || p.root == nil {
		return NoOp()
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return wrap(p.root)
	}
	return wrap(p.root.GetLogger(name))
}

func wrap(inner glog.Logger) Logger {
	if inner == nil {
		return NoOp()
	}
	return &adapter{inner: inner}
}

type adapter struct {
	inner glog.Logger
}

func (l *adapter) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l *adapter) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l *adapter) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l *adapter) Error(msg string, args ...any) { l.inner.Error(msg, args...) }

func (l *adapter) WithFields(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	if with, ok := l.inner.(glog.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		for k, v := range fields {
			copied[k] = v
		}
		return wrap(with.WithFields(copied))
	}
	return &fieldsAdapter{Logger: l, args: sortedArgs(fields)}
}

// fieldsAdapter appends fixed key/value pairs when the underlying logger
// cannot carry fields itself.
type fieldsAdapter struct {
	Logger
	args []any
}

func (f *fieldsAdapter) Debug(msg string, args ...any) { f.Logger.Debug(msg, f.merge(args)...) }
func (f *fieldsAdapter) Info(msg string, args ...any)  { f.Logger.Info(msg, f.merge(args)...) }
func (f *fieldsAdapter) Warn(msg string, args ...any)  { f.Logger.Warn(msg, f.merge(args)...) }
func (f *fieldsAdapter) Error(msg string, args ...any) { f.Logger.Error(msg, f.merge(args)...) }

func (f *fieldsAdapter) merge(args []any) []any {
	out := make([]any, 0, len(f.args)+len(args))
	out = append(out, f.args...)
	return append(out, args...)
}

func sortedArgs(fields map[string]any) []any {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]any, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}

func normalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.Trace
	case "debug":
		return glog.Debug
	case "info":
		return glog.Info
	case "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	default:
		return ""
	}
}
