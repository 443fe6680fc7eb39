package fields

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/formkit/pkg/dom"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Store groups form controls by name. It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	names   []string
	groups  map[string][]*dom.Element
	members map[*dom.Element]string
	initial map[string]any
	markers map[string]*dom.Element

	errorClass string
	stateClass string
	inner      func(string) string
	logger     *slog.Logger
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		groups:     make(map[string][]*dom.Element),
		members:    make(map[*dom.Element]string),
		initial:    make(map[string]any),
		markers:    make(map[string]*dom.Element),
		errorClass: DefaultErrorClass,
		stateClass: DefaultErrorStateClass,
		inner:      defaultInner,
		logger:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddField adds f to the group of its name and, when createMarker is set,
// creates the group's error marker if it has none. Controls without a name
// are ignored.
func (s *Store) AddField(f *dom.Element, createMarker bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := s.addLocked(f)
	if name != "" && createMarker {
		s.createMarkerLocked(name, s.groups[name])
	}
}

// AddFields adds every control of fs. Markers are created only for names
// that were not in the store before the call.
func (s *Store) AddFields(fs []*dom.Element, createMarkers bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var introduced []string
	for _, f := range fs {
		name := f.Name()
		if name == "" {
			continue
		}
		if _, known := s.groups[name]; !known && !slices.Contains(introduced, name) {
			introduced = append(introduced, name)
		}
		s.addLocked(f)
	}

	if createMarkers {
		for _, name := range introduced {
			s.createMarkerLocked(name, s.groups[name])
		}
	}
	if len(introduced) > 0 {
		s.logger.Debug("fields added", logger.Count("groups", len(introduced)), logger.Count("fields", len(fs)))
	}
}

func (s *Store) addLocked(f *dom.Element) string {
	if f == nil {
		return ""
	}
	name := f.Name()
	if name == "" {
		return ""
	}
	if _, ok := s.members[f]; ok {
		return name
	}

	group, known := s.groups[name]
	if !known {
		s.names = append(s.names, name)
	}
	group = append(group, f)
	s.groups[name] = group
	s.members[f] = name
	s.initial[name] = groupValue(group)

	if marker := s.markers[name]; marker != nil {
		describe(f, marker)
	}
	return name
}

// RemoveField removes f from its group. The group, its recorded initial value
// and its marker go away with the last member.
func (s *Store) RemoveField(f *dom.Element) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(f)
}

// RemoveFields removes every control of fs.
func (s *Store) RemoveFields(fs []*dom.Element) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range fs {
		s.removeLocked(f)
	}
}

func (s *Store) removeLocked(f *dom.Element) {
	name, ok := s.members[f]
	if !ok {
		return
	}
	delete(s.members, f)

	group := slices.DeleteFunc(s.groups[name], func(e *dom.Element) bool { return e == f })
	if len(group) > 0 {
		s.groups[name] = group
		return
	}
	s.dropGroupLocked(name)
}

// RemoveFieldsByName drops the whole group of name with its marker.
func (s *Store) RemoveFieldsByName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.groups[name] {
		delete(s.members, f)
	}
	s.dropGroupLocked(name)
}

func (s *Store) dropGroupLocked(name string) {
	if _, ok := s.groups[name]; !ok {
		return
	}
	delete(s.groups, name)
	delete(s.initial, name)
	s.names = slices.DeleteFunc(s.names, func(n string) bool { return n == name })
	s.removeMarkerLocked(name)
}

// FieldValue returns the current value of the group, nil when name is unknown.
func (s *Store) FieldValue(name string) any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	group := s.groups[name]
	if len(group) == 0 {
		return nil
	}
	return groupValue(group)
}

// SetFieldValue writes v into the group of name. Unknown names are ignored.
//
// v may be a string, a []string, a bool (checkable groups) or nil. Other
// types are formatted with fmt.
func (s *Store) SetFieldValue(name string, v any) {
	s.mu.RLock()
	group := slices.Clone(s.groups[name])
	s.mu.RUnlock()

	if len(group) > 0 {
		setGroupValue(group, v)
	}
}

// SetValues applies SetFieldValue for every key that names a known group.
func (s *Store) SetValues(values map[string]any) {
	for _, name := range s.Names() {
		if v, ok := values[name]; ok {
			s.SetFieldValue(name, v)
		}
	}
}

// Exists reports whether a group named name is registered.
func (s *Store) Exists(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.groups[name]
	return ok
}

// ExistsField reports whether the group of f's name is registered.
func (s *Store) ExistsField(f *dom.Element) bool {
	if f == nil {
		return false
	}
	return s.Exists(f.Name())
}

// SetFieldError shows message in the group's marker, marks every member with
// the error state class and notifies onError.
func (s *Store) SetFieldError(name, message string, onError func(Target, string)) {
	s.mu.Lock()
	group := slices.Clone(s.groups[name])
	if len(group) == 0 {
		s.mu.Unlock()
		return
	}
	s.writeMarkerLocked(name, message)
	s.logger.Debug("field error set", s.markerLogAttrs(name)...)
	s.mu.Unlock()

	for _, f := range group {
		f.AddClass(s.stateClass)
	}
	if onError != nil {
		onError(newTarget(group), message)
	}
}

// SetErrors applies SetFieldError for every known name, in store order.
func (s *Store) SetErrors(errs map[string]string) {
	for _, name := range s.Names() {
		if msg, ok := errs[name]; ok {
			s.SetFieldError(name, msg, nil)
		}
	}
}

// ResetFieldError clears the marker and the error state of name.
func (s *Store) ResetFieldError(name string) {
	s.mu.Lock()
	group := slices.Clone(s.groups[name])
	if len(group) == 0 {
		s.mu.Unlock()
		return
	}
	if marker := s.markers[name]; marker != nil && marker.InnerHTML() != "" {
		s.writeMarkerLocked(name, "")
	}
	s.mu.Unlock()

	for _, f := range group {
		f.RemoveClass(s.stateClass)
	}
}

// ResetErrors clears the error display of every group.
func (s *Store) ResetErrors() {
	for _, name := range s.Names() {
		s.ResetFieldError(name)
	}
}

// SetFieldSuccess clears the error display of name and notifies onSuccess.
func (s *Store) SetFieldSuccess(name string, onSuccess func(Target)) {
	s.ResetFieldError(name)

	group := s.Group(name)
	if len(group) == 0 {
		return
	}
	if onSuccess != nil {
		onSuccess(newTarget(group))
	}
}

// ResetAllFields restores every group to overrides[name] when present and
// non-nil, else to the value recorded when its members joined, else to an
// unchecked or empty state. Error display is cleared too.
func (s *Store) ResetAllFields(overrides map[string]any) {
	for _, name := range s.Names() {
		s.mu.RLock()
		group := slices.Clone(s.groups[name])
		initial := s.initial[name]
		s.mu.RUnlock()
		if len(group) == 0 {
			continue
		}

		v := overrides[name]
		if v == nil {
			v = initial
		}
		if v == nil {
			if group[0].Kind().IsCheckable() {
				v = false
			} else {
				v = ""
			}
		}
		setGroupValue(group, v)
		s.ResetFieldError(name)
	}
}

// Destroy forgets every group, initial value and marker reference. Markers
// already in the document stay where they are.
func (s *Store) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.names = nil
	clear(s.groups)
	clear(s.members)
	clear(s.initial)
	clear(s.markers)
}

// Group returns a copy of the members of name.
func (s *Store) Group(name string) []*dom.Element {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.groups[name])
}

// Target returns the notification target of name.
func (s *Store) Target(name string) (Target, bool) {
	group := s.Group(name)
	if len(group) == 0 {
		return Target{}, false
	}
	return newTarget(group), true
}

// Names returns the group names in insertion order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.names)
}

// All returns every control, grouped by name in insertion order.
func (s *Store) All() []*dom.Element {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*dom.Element, 0, len(s.members))
	for _, name := range s.names {
		out = append(out, s.groups[name]...)
	}
	return out
}

// Len returns the number of controls in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.members)
}

// Marker returns the error marker of name, or nil.
func (s *Store) Marker(name string) *dom.Element {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.markers[name]
}

func groupValue(group []*dom.Element) any {
	first := group[0]
	switch first.Kind() {
	case dom.KindSelect:
		if first.Multiple() {
			return first.SelectedValues()
		}
		return first.Value()
	case dom.KindCheckbox:
		values := []string{}
		for _, f := range group {
			if f.Checked() {
				values = append(values, f.Value())
			}
		}
		return values
	case dom.KindRadio:
		for _, f := range group {
			if f.Checked() {
				return f.Value()
			}
		}
		return nil
	default:
		return first.Value()
	}
}

func setGroupValue(group []*dom.Element, v any) {
	first := group[0]
	switch first.Kind() {
	case dom.KindSelect:
		if first.Multiple() {
			first.SelectValues(valueList(v))
			return
		}
		first.SetValue(valueString(v))
	case dom.KindCheckbox, dom.KindRadio:
		for _, f := range group {
			switch val := v.(type) {
			case []string:
				f.SetChecked(slices.Contains(val, f.Value()))
			case bool:
				f.SetChecked(val)
			case nil:
				f.SetChecked(false)
			default:
				f.SetChecked(f.Value() == valueString(val))
			}
		}
	default:
		first.SetValue(valueString(v))
	}
}

func valueString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []string:
		return strings.Join(val, ",")
	default:
		return fmt.Sprint(val)
	}
}

func valueList(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case []string:
		return val
	default:
		return []string{valueString(val)}
	}
}
