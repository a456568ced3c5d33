package examples

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-designer/pkg/files"
	"github.com/pluqqy/pluqqy-designer/pkg/layout"
	"github.com/pluqqy/pluqqy-designer/pkg/models"
)

func TestGetExamples(t *testing.T) {
	for _, category := range Categories {
		sets := GetExamples(category)
		require.NotEmpty(t, sets, category)
		for _, set := range sets {
			assert.Equal(t, category, set.Category)
			assert.NotEmpty(t, set.Sessions)
		}
	}

	all := GetExamples("all")
	assert.Len(t, all, len(GetExamples("forms"))+len(GetExamples("panels")))
	assert.Empty(t, GetExamples("unknown"))
}

func TestExamplesReplay(t *testing.T) {
	want := map[string]int{
		"example-login":    7,
		"example-contact":  6,
		"example-settings": 6,
		"example-download": 3,
	}

	seen := map[string]bool{}
	for _, set := range GetExamples("all") {
		for _, example := range set.Sessions {
			assert.False(t, seen[example.Name], "duplicate example %s", example.Name)
			seen[example.Name] = true

			doc, err := layout.Replay(example.Session())
			require.NoError(t, err, example.Name)
			assert.Equal(t, want[example.Name], doc.Len(), example.Name)
		}
	}
	assert.Len(t, seen, len(want))
}

func TestLoginExampleBindsSubmit(t *testing.T) {
	doc, err := layout.Replay(loginForm().Session())
	require.NoError(t, err)

	var submit *models.WidgetPlacement
	for _, w := range doc.Export() {
		if w.Type == models.WidgetButton {
			submit = &w
		}
	}
	require.NotNil(t, submit)
	assert.Equal(t, "Sign in", submit.Value)
	assert.Equal(t, "on_sign_in", submit.Events[models.EventClicked])
}

func TestSessionCopiesEvents(t *testing.T) {
	example := downloadPanel()
	session := example.Session()
	session.Events[0].Ref = "changed"

	assert.Equal(t, "status", example.Events[0].Ref)
}

func TestInstallSession(t *testing.T) {
	tempDir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { os.Chdir(oldWd) })
	require.NoError(t, files.InitProjectStructure())

	example := settingsPanel()

	installed, err := InstallSession(example, false)
	require.NoError(t, err)
	assert.True(t, installed)

	stored, err := files.ReadSession(example.Name)
	require.NoError(t, err)
	assert.Equal(t, example.Name, stored.Name)
	assert.Equal(t, example.GridSize, stored.GridSize)
	assert.Len(t, stored.Events, len(example.Events))

	installed, err = InstallSession(example, false)
	assert.False(t, installed)
	assert.True(t, errors.Is(err, files.ErrSessionExists))

	installed, err = InstallSession(example, true)
	require.NoError(t, err)
	assert.True(t, installed)
}
