package fields

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/dom"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

const markerIDPrefix = "formkit-error-"

// createMarkerLocked inserts the error marker of name after the last member
// of group. Existing markers are kept.
func (s *Store) createMarkerLocked(name string, group []*dom.Element) {
	if _, ok := s.markers[name]; ok || len(group) == 0 {
		return
	}

	last := group[len(group)-1]
	attrs := []dom.Attr{
		dom.A("id", markerIDPrefix+uuid.NewString()),
		dom.A("data-error-for", name),
		dom.A("aria-live", "polite"),
	}
	if s.errorClass != "" {
		attrs = append(attrs, dom.A("class", s.errorClass))
	}
	marker := last.Document().CreateElement("span", attrs...)

	if err := last.InsertAfter(marker); err != nil {
		s.logger.Debug("error marker not attached", logger.Field(name), logger.Error(err))
	}
	s.markers[name] = marker

	for _, f := range group {
		describe(f, marker)
	}
}

func (s *Store) removeMarkerLocked(name string) {
	marker, ok := s.markers[name]
	if !ok {
		return
	}
	marker.Remove()
	delete(s.markers, name)
	s.logger.Debug("error marker removed", logger.Field(name))
}

// describe links f to marker through aria-describedby.
func describe(f, marker *dom.Element) {
	if marker == nil {
		return
	}
	f.SetAttr("aria-describedby", marker.GetAttr("id"))
}

func (s *Store) writeMarkerLocked(name, message string) {
	marker, ok := s.markers[name]
	if !ok {
		return
	}
	if message == "" {
		marker.SetInnerHTML("")
		return
	}
	marker.SetInnerHTML(s.inner(message))
}

func (s *Store) markerLogAttrs(name string) []any {
	return []any{logger.Field(name), slog.Bool("marker", s.markers[name] != nil)}
}
