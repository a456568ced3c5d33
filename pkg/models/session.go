package models

// Session is a replayable script of designer interactions. It stands in for
// the drag-and-drop layer: each event is either a drop onto the canvas or an
// edit made through the property panel.
type Session struct {
	Name     string         `yaml:"name"`
	Path     string         `yaml:"-"`
	GridSize int            `yaml:"grid_size,omitempty"`
	Events   []SessionEvent `yaml:"events"`
}

// SessionEvent holds exactly one of its action fields
type SessionEvent struct {
	Ref      string          `yaml:"ref,omitempty"`
	Place    *PlaceAction    `yaml:"place,omitempty"`
	Geometry *GeometryAction `yaml:"geometry,omitempty"`
	Value    *ValueAction    `yaml:"value,omitempty"`
	Bind     *BindAction     `yaml:"bind,omitempty"`
}

// PlaceAction drops a toolbox entry at an unsnapped position
type PlaceAction struct {
	Type string `yaml:"type"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

// GeometryAction overwrites position and size
type GeometryAction struct {
	Ref string `yaml:"ref"`
	X   int    `yaml:"x"`
	Y   int    `yaml:"y"`
	W   int    `yaml:"w"`
	H   int    `yaml:"h"`
}

// ValueAction overwrites the widget payload
type ValueAction struct {
	Ref   string `yaml:"ref"`
	Value string `yaml:"value"`
}

// BindAction binds (or, with an empty handler, unbinds) an event
type BindAction struct {
	Ref     string `yaml:"ref"`
	Event   string `yaml:"event"`
	Handler string `yaml:"handler"`
}

// Kind names the action carried by the event
func (e SessionEvent) Kind() string {
	switch {
	case e.Place != nil:
		return "place"
	case e.Geometry != nil:
		return "geometry"
	case e.Value != nil:
		return "value"
	case e.Bind != nil:
		return "bind"
	default:
		return ""
	}
}
