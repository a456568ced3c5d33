package examples

import (
	"fmt"
	"os"

	"github.com/pluqqy/pluqqy-designer/pkg/files"
	"github.com/pluqqy/pluqqy-designer/pkg/models"
)

// Categories lists the example categories in display order
var Categories = []string{"forms", "panels"}

// ExampleSet groups example sessions that belong together
type ExampleSet struct {
	Category    string
	Name        string
	Description string
	Sessions    []ExampleSession
}

// ExampleSession is a ready-made session script
type ExampleSession struct {
	Name        string
	Description string
	GridSize    int
	Events      []models.SessionEvent
}

// GetExamples returns example sets for the given category
func GetExamples(category string) []ExampleSet {
	switch category {
	case "forms":
		return withCategory("forms", getFormExamples())
	case "panels":
		return withCategory("panels", getPanelExamples())
	case "all":
		var all []ExampleSet
		for _, c := range Categories {
			all = append(all, GetExamples(c)...)
		}
		return all
	default:
		return []ExampleSet{}
	}
}

func withCategory(category string, sets []ExampleSet) []ExampleSet {
	for i := range sets {
		sets[i].Category = category
	}
	return sets
}

// Session converts the example into a session model ready to be written
func (e ExampleSession) Session() *models.Session {
	events := make([]models.SessionEvent, len(e.Events))
	copy(events, e.Events)
	return &models.Session{
		Name:     e.Name,
		GridSize: e.GridSize,
		Events:   events,
	}
}

// InstallSession writes an example session to the project's sessions
// directory. Without force an existing session is left alone and reported
// as not installed.
func InstallSession(example ExampleSession, force bool) (bool, error) {
	path, err := files.SessionPath(example.Name)
	if err != nil {
		return false, err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return false, fmt.Errorf("%w: %s", files.ErrSessionExists, example.Name)
		}
	}

	session := example.Session()
	session.Path = path
	if err := files.WriteSession(session); err != nil {
		return false, err
	}
	return true, nil
}
