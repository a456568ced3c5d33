package layout

import (
	"fmt"

	"github.com/pluqqy/pluqqy-designer/pkg/models"
)

// Replay builds a document by applying a session's events in order.
//
// Refs are script-local names for placements. A ref attached to a drop of an
// unrecognized type is remembered as skipped, and later edits through it are
// skipped as well. Edits through a ref that never appeared fail with
// ErrUnknownRef. Reusing a ref rebinds it to the newest placement.
func Replay(session *models.Session, opts ...Option) (*Document, error) {
	if session == nil {
		return nil, fmt.Errorf("layout: cannot replay nil session")
	}

	if session.GridSize != 0 {
		opts = append(opts, WithGridSize(session.GridSize))
	}
	doc, err := NewDocument(opts...)
	if err != nil {
		return nil, err
	}

	refs := make(map[string]models.PlacementID)
	skipped := make(map[string]bool)

	resolve := func(i int, ref string) (models.PlacementID, bool, error) {
		if id, ok := refs[ref]; ok {
			return id, true, nil
		}
		if skipped[ref] {
			doc.logger.Debug("layout.replay.edit_skipped", "event", i, "ref", ref)
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: event %d ref %q", ErrUnknownRef, i, ref)
	}

	for i, ev := range session.Events {
		switch {
		case ev.Place != nil:
			id, ok := doc.Place(ev.Place.Type, models.Point{X: ev.Place.X, Y: ev.Place.Y})
			if ev.Ref == "" {
				continue
			}
			if ok {
				refs[ev.Ref] = id
				delete(skipped, ev.Ref)
			} else {
				delete(refs, ev.Ref)
				skipped[ev.Ref] = true
			}

		case ev.Geometry != nil:
			g := ev.Geometry
			id, ok, err := resolve(i, firstNonEmpty(g.Ref, ev.Ref))
			if err != nil {
				return nil, err
			}
			if ok {
				if err := doc.UpdateGeometry(id, g.X, g.Y, g.W, g.H); err != nil {
					return nil, fmt.Errorf("event %d: %w", i, err)
				}
			}

		case ev.Value != nil:
			id, ok, err := resolve(i, firstNonEmpty(ev.Value.Ref, ev.Ref))
			if err != nil {
				return nil, err
			}
			if ok {
				if err := doc.UpdateValue(id, ev.Value.Value); err != nil {
					return nil, fmt.Errorf("event %d: %w", i, err)
				}
			}

		case ev.Bind != nil:
			b := ev.Bind
			id, ok, err := resolve(i, firstNonEmpty(b.Ref, ev.Ref))
			if err != nil {
				return nil, err
			}
			if ok {
				event := b.Event
				if event == "" {
					event = models.EventClicked
				}
				if err := doc.BindEvent(id, event, b.Handler); err != nil {
					return nil, fmt.Errorf("event %d: %w", i, err)
				}
			}

		default:
			return nil, fmt.Errorf("%w: event %d", ErrEmptySessionEvent, i)
		}
	}

	return doc, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
