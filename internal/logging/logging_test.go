package logging

import (
	"context"
	"testing"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoOpLogger(t *testing.T) {
	logger := NoOp()
	logger.Debug("ignored", "key", "value")
	assert.NotNil(t, logger.WithFields(map[string]any{"a": 1}))
	assert.NotNil(t, OrNoOp(nil))
	assert.Equal(t, logger, OrNoOp(logger))
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(Config{Level: "debug", Format: "console"})
	require.NoError(t, err)

	logger := p.GetLogger("designer.test")
	require.NotNil(t, logger)
	logger.WithFields(map[string]any{"module": "test"}).Debug("provider.ready")

	_, err = NewProvider(Config{Format: "xml"})
	assert.Error(t, err)
}

func TestNilProviderReturnsNoOp(t *testing.T) {
	var p *Provider
	assert.Equal(t, NoOp(), p.GetLogger("x"))
}

func TestAdapterDelegates(t *testing.T) {
	stub := &stubLogger{}
	adapted := wrap(stub)

	adapted.Debug("debug")
	adapted.Info("info")
	adapted.Warn("warn")
	adapted.Error("error")

	fields := map[string]any{"target": "pyside"}
	adapted.WithFields(fields)
	fields["target"] = "tkinter"

	assert.Equal(t, []string{"debug", "info", "warn", "error"}, stub.calls)
	require.Len(t, stub.fields, 1)
	assert.Equal(t, "pyside", stub.fields[0]["target"])
}

func TestFieldsAdapterPrependsArgs(t *testing.T) {
	rec := &recordingLogger{}
	logger := &fieldsAdapter{Logger: rec, args: sortedArgs(map[string]any{"b": 2, "a": 1})}

	logger.Info("msg", "c", 3)

	assert.Equal(t, []any{"a", 1, "b", 2, "c", 3}, rec.args)
}

type stubLogger struct {
	calls  []string
	fields []map[string]any
}

var _ glog.Logger = (*stubLogger)(nil)
var _ glog.FieldsLogger = (*stubLogger)(nil)

func (s *stubLogger) Trace(string, ...any) { s.calls = append(s.calls, "trace") }
func (s *stubLogger) Debug(string, ...any) { s.calls = append(s.calls, "debug") }
func (s *stubLogger) Info(string, ...any)  { s.calls = append(s.calls, "info") }
func (s *stubLogger) Warn(string, ...any)  { s.calls = append(s.calls, "warn") }
func (s *stubLogger) Error(string, ...any) { s.calls = append(s.calls, "error") }
func (s *stubLogger) Fatal(string, ...any) { s.calls = append(s.calls, "fatal") }

func (s *stubLogger) WithContext(context.Context) glog.Logger { return s }

func (s *stubLogger) WithFields(fields map[string]any) glog.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	s.fields = append(s.fields, copied)
	return s
}

type recordingLogger struct {
	args []any
}

func (r *recordingLogger) Debug(_ string, args ...any) { r.args = args }
func (r *recordingLogger) Info(_ string, args ...any)  { r.args = args }
func (r *recordingLogger) Warn(_ string, args ...any)  { r.args = args }
func (r *recordingLogger) Error(_ string, args ...any) { r.args = args }

func (r *recordingLogger) WithFields(map[string]any) Logger { return r }
