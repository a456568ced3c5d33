package examples

import "github.com/pluqqy/pluqqy-designer/pkg/models"

// script builds session events in order; every method appends one event
type script struct {
	events []models.SessionEvent
}

func (s *script) place(ref string, wt models.WidgetType, x, y int) *script {
	s.events = append(s.events, models.SessionEvent{
		Ref:   ref,
		Place: &models.PlaceAction{Type: string(wt), X: x, Y: y},
	})
	return s
}

func (s *script) geometry(ref string, x, y, w, h int) *script {
	s.events = append(s.events, models.SessionEvent{
		Geometry: &models.GeometryAction{Ref: ref, X: x, Y: y, W: w, H: h},
	})
	return s
}

func (s *script) value(ref, value string) *script {
	s.events = append(s.events, models.SessionEvent{
		Value: &models.ValueAction{Ref: ref, Value: value},
	})
	return s
}

func (s *script) bind(ref, handler string) *script {
	s.events = append(s.events, models.SessionEvent{
		Bind: &models.BindAction{Ref: ref, Event: models.EventClicked, Handler: handler},
	})
	return s
}
