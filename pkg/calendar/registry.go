package calendar

import (
	"sort"
	"time"

	"github.com/daviddao/calcli/pkg/model"
)

// Registry is the name-keyed calendar collection. Names are unique at
// all times; a rename re-keys the map only after the target name has
// been validated as unused.
type Registry struct {
	calendars map[string]*Calendar
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{calendars: make(map[string]*Calendar)}
}

// Add registers an already-constructed calendar under its name. Used for
// the default calendar created at startup.
func (r *Registry) Add(c *Calendar) error {
	if _, exists := r.calendars[c.Name()]; exists {
		return model.Validationf("calendar name must be unique: %s", c.Name())
	}
	r.calendars[c.Name()] = c
	return nil
}

// Create constructs and registers a calendar with the given name and
// IANA timezone identifier. A duplicate name or a bad timezone is a
// ValidationError.
func (r *Registry) Create(name, tzID string) (*Calendar, error) {
	if _, exists := r.calendars[name]; exists {
		return nil, model.Validationf("calendar name must be unique: %s", name)
	}
	loc, err := time.LoadLocation(tzID)
	if err != nil {
		return nil, model.Validationf("unknown timezone: %s", tzID)
	}
	c := New(name, loc)
	r.calendars[name] = c
	return c, nil
}

// Edit edits a property of the named calendar. Renaming validates the
// new name against the registry before any mutation, then re-keys.
func (r *Registry) Edit(name string, p model.CalendarProperty, value string) error {
	c, ok := r.calendars[name]
	if !ok {
		return model.NotFoundf("calendar %s not found", name)
	}
	if p == model.CalendarName {
		if _, taken := r.calendars[value]; taken {
			return model.Validationf("new calendar name must be unique: %s", value)
		}
		delete(r.calendars, name)
		r.calendars[value] = c
	}
	return c.EditProperty(p, value)
}

// Get returns the calendar with the given name.
func (r *Registry) Get(name string) (*Calendar, bool) {
	c, ok := r.calendars[name]
	return c, ok
}

// Names returns the registered calendar names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.calendars))
	for name := range r.calendars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
