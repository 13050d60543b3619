package registry

import "sort"

// Entity declares how one resource type is stored and exposed.
//
// Stamps names the timestamp field an action sets besides the status
// (publish → published_at). Explained lists the actions that need an
// explanation from the caller.
type Entity struct {
	Name          string            `json:"name"`
	Label         string            `json:"label"`
	Path          string            `json:"path"`
	Collection    string            `json:"collection"`
	Statuses      []string          `json:"statuses,omitempty"`
	DefaultStatus string            `json:"default_status,omitempty"`
	ActiveStatus  string            `json:"active_status,omitempty"`
	Operations    []string          `json:"operations"`
	Transitions   map[string]string `json:"transitions,omitempty"`
	Stamps        map[string]string `json:"stamps,omitempty"`
	Explained     []string          `json:"explained,omitempty"`
	Placeholders  []Placeholder     `json:"placeholders,omitempty"`
	Indexes       []Index           `json:"indexes,omitempty"`
}

// Placeholder is an endpoint that is routed but not computed yet.
// Item placeholders live under /:id.
type Placeholder struct {
	Name   string `json:"name"`
	Method string `json:"method"`
	Item   bool   `json:"item"`
}

// Index is a secondary index on the entity's collection.
type Index struct {
	Keys   []string `json:"keys"`
	Unique bool     `json:"unique,omitempty"`
}

func (e *Entity) Supports(op string) bool {
	for _, o := range e.Operations {
		if o == op {
			return true
		}
	}
	return false
}

// HasStatus reports whether records of this entity carry a status field.
func (e *Entity) HasStatus() bool {
	return len(e.Statuses) > 0
}

func (e *Entity) ValidStatus(status string) bool {
	for _, s := range e.Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// Target returns the status an action sets.
func (e *Entity) Target(action string) (string, bool) {
	status, ok := e.Transitions[action]
	return status, ok
}

// StampField returns the timestamp field an action sets, if any.
func (e *Entity) StampField(action string) (string, bool) {
	field, ok := e.Stamps[action]
	return field, ok
}

func (e *Entity) NeedsExplanation(action string) bool {
	for _, a := range e.Explained {
		if a == action {
			return true
		}
	}
	return false
}

// Actions returns the transition names in a stable order.
func (e *Entity) Actions() []string {
	actions := make([]string, 0, len(e.Transitions))
	for a := range e.Transitions {
		actions = append(actions, a)
	}
	sort.Strings(actions)
	return actions
}
