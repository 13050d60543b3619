package registry

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"sort"
)

//go:embed entities/*.json
var entitiesFS embed.FS

var ErrUnknownEntity = errors.New("unknown entity")

// Registry holds the validated entity declarations.
type Registry struct {
	entities map[string]*Entity
}

// Load reads every embedded entity declaration.
func Load() (*Registry, error) {
	entries, err := entitiesFS.ReadDir("entities")
	if err != nil {
		return nil, fmt.Errorf("failed to read entities directory: %w", err)
	}

	var list []*Entity
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		data, err := entitiesFS.ReadFile("entities/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read entity file %s: %w", entry.Name(), err)
		}

		var entity Entity
		if err := json.Unmarshal(data, &entity); err != nil {
			return nil, fmt.Errorf("failed to parse entity file %s: %w", entry.Name(), err)
		}
		list = append(list, &entity)
	}

	return New(list...)
}

// New validates the declarations and indexes them by name.
func New(entities ...*Entity) (*Registry, error) {
	r := &Registry{entities: make(map[string]*Entity, len(entities))}
	paths := make(map[string]string)
	for _, e := range entities {
		if err := validate(e); err != nil {
			return nil, err
		}
		if _, dup := r.entities[e.Name]; dup {
			return nil, fmt.Errorf("entity %s declared twice", e.Name)
		}
		if other, dup := paths[e.Path]; dup {
			return nil, fmt.Errorf("entity %s reuses path %s of %s", e.Name, e.Path, other)
		}
		r.entities[e.Name] = e
		paths[e.Path] = e.Name
	}
	return r, nil
}

func validate(e *Entity) error {
	if e.Name == "" || e.Path == "" || e.Collection == "" {
		return fmt.Errorf("entity %q: name, path and collection are required", e.Name)
	}
	if e.Label == "" {
		e.Label = e.Name
	}
	for _, p := range e.Placeholders {
		switch p.Method {
		case http.MethodGet, http.MethodPost, http.MethodPut:
		default:
			return fmt.Errorf("entity %s: placeholder %s has unsupported method %q", e.Name, p.Name, p.Method)
		}
		if _, isAction := e.Transitions[p.Name]; isAction && p.Item {
			return fmt.Errorf("entity %s: placeholder %s shadows a transition", e.Name, p.Name)
		}
	}
	if !e.HasStatus() {
		if e.DefaultStatus != "" || len(e.Transitions) > 0 || e.Supports("dashboard") || e.Supports("status_dashboard") {
			return fmt.Errorf("entity %s: status settings without a status vocabulary", e.Name)
		}
		return nil
	}
	if !e.ValidStatus(e.DefaultStatus) {
		return fmt.Errorf("entity %s: default status %q not in vocabulary", e.Name, e.DefaultStatus)
	}
	if e.ActiveStatus != "" && !e.ValidStatus(e.ActiveStatus) {
		return fmt.Errorf("entity %s: active status %q not in vocabulary", e.Name, e.ActiveStatus)
	}
	if e.Supports("dashboard") && e.ActiveStatus == "" {
		return fmt.Errorf("entity %s: dashboard needs an active status", e.Name)
	}
	for action, status := range e.Transitions {
		if !e.ValidStatus(status) {
			return fmt.Errorf("entity %s: transition %s targets unknown status %q", e.Name, action, status)
		}
	}
	for action, field := range e.Stamps {
		if _, ok := e.Target(action); !ok || field == "" {
			return fmt.Errorf("entity %s: stamp for unknown action %s", e.Name, action)
		}
	}
	for _, action := range e.Explained {
		if _, ok := e.Target(action); !ok {
			return fmt.Errorf("entity %s: explanation for unknown action %s", e.Name, action)
		}
	}
	return nil
}

func (r *Registry) Get(name string) (*Entity, error) {
	e, ok := r.entities[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntity, name)
	}
	return e, nil
}

// MustGet panics when the entity is not declared. Route wiring calls it
// at start-up, where a missing declaration is a build defect.
func (r *Registry) MustGet(name string) *Entity {
	e, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return e
}

// All returns the entities sorted by name.
func (r *Registry) All() []*Entity {
	list := make([]*Entity, 0, len(r.entities))
	for _, e := range r.entities {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}
