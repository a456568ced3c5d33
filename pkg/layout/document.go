package layout

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pluqqy/pluqqy-designer/internal/logging"
	"github.com/pluqqy/pluqqy-designer/pkg/models"
)

// Document is the ordered set of widgets placed in one designer session.
// Insertion order is z-order and generation order. A Document has a single
// owner and must not be mutated concurrently; hand Export() snapshots to
// other goroutines instead.
type Document struct {
	grid       Grid
	placements []models.WidgetPlacement
	index      map[models.PlacementID]int
	newID      func() models.PlacementID
	logger     logging.Logger
}

// Option configures a Document
type Option func(*documentConfig)

type documentConfig struct {
	gridSize int
	newID    func() models.PlacementID
	logger   logging.Logger
}

// WithGridSize overrides the default 10px grid
func WithGridSize(size int) Option {
	return func(c *documentConfig) {
		c.gridSize = size
	}
}

// WithIDGenerator replaces the UUID generator, mainly for tests
func WithIDGenerator(fn func() models.PlacementID) Option {
	return func(c *documentConfig) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// WithLogger attaches a diagnostic logger
func WithLogger(logger logging.Logger) Option {
	return func(c *documentConfig) {
		c.logger = logging.OrNoOp(logger)
	}
}

// NewDocument creates an empty document
func NewDocument(opts ...Option) (*Document, error) {
	cfg := documentConfig{
		gridSize: DefaultGridSize,
		newID:    newUUID,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	grid, err := NewGrid(cfg.gridSize)
	if err != nil {
		return nil, err
	}

	return &Document{
		grid:   grid,
		index:  make(map[models.PlacementID]int),
		newID:  cfg.newID,
		logger: cfg.logger,
	}, nil
}

func newUUID() models.PlacementID {
	return models.PlacementID(uuid.NewString())
}

// GridSize returns the snapping grid in use
func (d *Document) GridSize() int {
	return d.grid.Size()
}

// Len returns the number of placements
func (d *Document) Len() int {
	return len(d.placements)
}

// Place drops a toolbox entry at pos. The position is snapped to the grid
// and clamped to the canvas origin. Unrecognized widget types are ignored
// and report ok=false so newer toolbox entries never break older builds.
func (d *Document) Place(widgetType string, pos models.Point) (models.PlacementID, bool) {
	wt, ok := models.ParseWidgetType(widgetType)
	if !ok {
		d.logger.Debug("layout.place.skipped", "type", widgetType)
		return "", false
	}

	snapped := d.grid.Snap(pos)
	if snapped.X < 0 {
		snapped.X = 0
	}
	if snapped.Y < 0 {
		snapped.Y = 0
	}

	w, h := wt.DefaultSize()
	placement := models.WidgetPlacement{
		ID:    d.newID(),
		Type:  wt,
		X:     snapped.X,
		Y:     snapped.Y,
		W:     w,
		H:     h,
		Value: wt.DefaultValue(),
	}

	d.index[placement.ID] = len(d.placements)
	d.placements = append(d.placements, placement)

	d.logger.Debug("layout.place", "id", placement.ID, "type", wt, "x", snapped.X, "y", snapped.Y)
	return placement.ID, true
}

// UpdateGeometry overwrites position and size. The canvas is unbounded, so
// only negative values are rejected.
func (d *Document) UpdateGeometry(id models.PlacementID, x, y, w, h int) error {
	p, err := d.lookup(id)
	if err != nil {
		return err
	}
	if x < 0 || y < 0 || w < 0 || h < 0 {
		return wrapValidationError(
			fmt.Errorf("%w: (%d, %d, %d, %d)", ErrInvalidGeometry, x, y, w, h),
			"invalid widget geometry",
			invalidGeometryCode,
		)
	}

	p.X, p.Y, p.W, p.H = x, y, w, h
	return nil
}

// UpdateValue overwrites the widget payload
func (d *Document) UpdateValue(id models.PlacementID, value string) error {
	p, err := d.lookup(id)
	if err != nil {
		return err
	}
	p.Value = value
	return nil
}

// BindEvent binds handler to event. An empty handler unbinds it.
func (d *Document) BindEvent(id models.PlacementID, event, handler string) error {
	p, err := d.lookup(id)
	if err != nil {
		return err
	}
	event = strings.TrimSpace(event)
	if event == "" {
		return ErrEmptyEventName
	}

	if handler == "" {
		delete(p.Events, event)
		if len(p.Events) == 0 {
			p.Events = nil
		}
		return nil
	}

	if p.Events == nil {
		p.Events = make(map[string]string)
	}
	p.Events[event] = handler
	return nil
}

// Get returns a copy of a single placement
func (d *Document) Get(id models.PlacementID) (models.WidgetPlacement, bool) {
	i, ok := d.index[id]
	if !ok {
		return models.WidgetPlacement{}, false
	}
	return d.placements[i].Clone(), true
}

// Export returns a deep copy of every placement in insertion order
func (d *Document) Export() []models.WidgetPlacement {
	out := make([]models.WidgetPlacement, len(d.placements))
	for i, p := range d.placements {
		out[i] = p.Clone()
	}
	return out
}

func (d *Document) lookup(id models.PlacementID) (*models.WidgetPlacement, error) {
	i, ok := d.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPlacementNotFound, id)
	}
	return &d.placements[i], nil
}
