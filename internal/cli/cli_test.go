package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-designer/pkg/codegen"
	"github.com/pluqqy/pluqqy-designer/pkg/files"
	"github.com/pluqqy/pluqqy-designer/pkg/models"
)

func chdirProject(t *testing.T) {
	t.Helper()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(oldWd) })
	require.NoError(t, files.InitProjectStructure())
}

func TestResolveTargets(t *testing.T) {
	all, err := ResolveTargets("all")
	require.NoError(t, err)
	assert.Equal(t, codegen.Targets, all)

	all, err = ResolveTargets("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	some, err := ResolveTargets("C, a,winforms")
	require.NoError(t, err)
	assert.Equal(t, []codegen.Target{codegen.TargetWinForms, codegen.TargetPySide}, some)

	_, err = ResolveTargets("A,Z")
	assert.Error(t, err)
	assert.Error(t, ValidateTarget("qml"))
}

func captureMessages(t *testing.T, q, nc bool) (out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	oldOut, oldErr := stdout, stderr
	stdout, stderr = out, errOut
	SetGlobalFlags(q, nc, false)
	t.Cleanup(func() {
		stdout, stderr = oldOut, oldErr
		SetGlobalFlags(false, false, false)
	})
	return out, errOut
}

func TestPrintMessages(t *testing.T) {
	out, errOut := captureMessages(t, false, false)

	PrintSuccess("Exported %s", "pyside")
	PrintInfo("Watching %s", "login.yaml")
	PrintWarning("Skipped %d", 2)
	PrintError("boom")

	assert.Equal(t, "✓ Exported pyside\n· Watching login.yaml\n", out.String())
	assert.Equal(t, "! Skipped 2\n✗ boom\n", errOut.String())
}

func TestPrintMessagesQuietAndPlain(t *testing.T) {
	out, errOut := captureMessages(t, true, true)

	PrintSuccess("Exported")
	PrintInfo("hint")
	PrintWarning("careful")

	assert.Empty(t, out.String())
	assert.Equal(t, "WARN: careful\n", errOut.String())
}

func TestConfirm(t *testing.T) {
	captureMessages(t, false, true)
	oldIn := stdin
	t.Cleanup(func() { stdin = oldIn })

	tests := []struct {
		reply      string
		defaultYes bool
		want       bool
	}{
		{"y\n", false, true},
		{"YES\n", false, true},
		{"no\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
		{"y", false, true},
	}
	for _, tt := range tests {
		stdin = bytes.NewBufferString(tt.reply)
		got, err := Confirm("Delete session 'login'?", tt.defaultYes)
		require.NoError(t, err, tt.reply)
		assert.Equal(t, tt.want, got, "%q", tt.reply)
	}

	stdin = bytes.NewBuffer(nil)
	_, err := Confirm("Delete?", false)
	assert.ErrorIs(t, err, io.EOF)

	SetGlobalFlags(false, true, true)
	got, err := Confirm("Delete?", false)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestParseGeometry(t *testing.T) {
	x, y, w, h, err := ParseGeometry("10, 20,120,30")
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 120, 30}, []int{x, y, w, h})

	_, _, _, _, err = ParseGeometry("10,20,120")
	assert.Error(t, err)

	_, _, _, _, err = ParseGeometry("10,20,wide,30")
	assert.Error(t, err)
}

func TestParseBinding(t *testing.T) {
	tests := []struct {
		in      string
		event   string
		handler string
		wantErr bool
	}{
		{in: "clicked=on_ok", event: "clicked", handler: "on_ok"},
		{in: "on_ok", event: models.EventClicked, handler: "on_ok"},
		{in: "clicked=", event: "clicked", handler: ""},
		{in: "=on_ok", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			event, handler, err := ParseBinding(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.event, event)
			assert.Equal(t, tt.handler, handler)
		})
	}
}

func TestValidateSessionName(t *testing.T) {
	assert.NoError(t, ValidateSessionName("login form"))
	assert.Error(t, ValidateSessionName(" "))
	assert.Error(t, ValidateSessionName("../escape"))
	assert.Error(t, ValidateSessionName("a/b"))
}

func TestValidateOutputFormat(t *testing.T) {
	for _, f := range []string{"text", "json", "yaml"} {
		assert.NoError(t, ValidateOutputFormat(f))
	}
	assert.Error(t, ValidateOutputFormat("xml"))
}

func TestFormatEvents(t *testing.T) {
	assert.Equal(t, "-", FormatEvents(nil))
	assert.Equal(t, "clicked=on_ok,focus=on_focus",
		FormatEvents(map[string]string{"focus": "on_focus", "clicked": "on_ok"}))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "a long ...", TruncateString("a long value here", 10))
	assert.Equal(t, "héé", TruncateString("héééé", 3))
}

func TestOutputResults(t *testing.T) {
	data := map[string]int{"grid": 10}

	var buf bytes.Buffer
	require.NoError(t, OutputResults(&buf, "json", data))
	assert.JSONEq(t, `{"grid": 10}`, buf.String())

	buf.Reset()
	require.NoError(t, OutputResults(&buf, "yaml", data))
	assert.Equal(t, "grid: 10\n", buf.String())

	assert.Error(t, OutputResults(&buf, "xml", data))
}

func TestCommandContextLoadDocument(t *testing.T) {
	chdirProject(t)

	settings := models.DefaultSettings()
	settings.Designer.GridSize = 20
	require.NoError(t, files.WriteSettings(settings))

	_, err := files.CreateSession("login", 0)
	require.NoError(t, err)
	_, err = files.AppendEvents("login",
		models.SessionEvent{Ref: "ok", Place: &models.PlaceAction{Type: "Button", X: 13, Y: 27}},
	)
	require.NoError(t, err)

	ctx, err := NewCommandContext()
	require.NoError(t, err)
	require.NoError(t, ctx.ValidateProject())

	session, doc, err := ctx.LoadDocument("login")
	require.NoError(t, err)
	assert.Equal(t, "login", session.Name)
	assert.Equal(t, 20, doc.GridSize())

	layout := doc.Export()
	require.Len(t, layout, 1)
	assert.Equal(t, 20, layout[0].X)
	assert.Equal(t, 20, layout[0].Y)
}

func TestCommandContextGeneratorOptions(t *testing.T) {
	chdirProject(t)

	settings := models.DefaultSettings()
	settings.Codegen.WindowWidth = 640
	settings.Codegen.Targets = map[string]models.TargetSettings{
		"tkinter": {WindowTitle: "Login"},
	}
	require.NoError(t, files.WriteSettings(settings))

	ctx, err := NewCommandContext()
	require.NoError(t, err)

	opts := ctx.GeneratorOptions(codegen.TargetTkinter)
	assert.Equal(t, "Login", opts.WindowTitle)
	assert.Equal(t, 640, opts.Width)
	assert.Equal(t, 600, opts.Height)

	assert.Empty(t, ctx.GeneratorOptions(codegen.TargetPySide).WindowTitle)
}

func TestValidateProjectMissing(t *testing.T) {
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(oldWd) })

	ctx, err := NewCommandContext()
	require.NoError(t, err)
	assert.Error(t, ctx.ValidateProject())
	assert.Equal(t, filepath.Clean(".designer"), ctx.ProjectPath)
}
