package registry

import (
	"fmt"
	"sync"

	"github.com/nguyentantai21042004/articlegpt/internal/config"
	"github.com/nguyentantai21042004/articlegpt/internal/provider"
)

// Registry is the keyed collection of model adapter records plus the
// active selection. It is mutated only from the control flow, never from
// batch workers, but is locked anyway so misuse cannot corrupt it.
type Registry struct {
	mu     sync.Mutex
	models map[string]*config.Model
	active string
}

// NewFromConfig reconstructs the registry from the config document.
func NewFromConfig(cfg *config.Config) *Registry {
	models := make(map[string]*config.Model, len(cfg.Models))
	for name, m := range cfg.Models {
		models[name] = m
	}

	r := &Registry{models: models, active: cfg.ActiveModel}
	if _, ok := r.models[r.active]; !ok {
		r.active = ""
		if names := config.SortedModelNames(r.models); len(names) > 0 {
			r.active = names[0]
		}
	}
	return r
}

// Apply writes the registry state back into the config document.
func (r *Registry) Apply(cfg *config.Config) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cfg.Models = make(map[string]*config.Model, len(r.models))
	for name, m := range r.models {
		cfg.Models[name] = m
	}
	cfg.ActiveModel = r.active
}

// Add inserts a model by name. The first model added becomes active.
func (r *Registry) Add(m *config.Model) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.models[m.Name]; exists {
		return fmt.Errorf("model %q already exists", m.Name)
	}

	r.models[m.Name] = m
	if r.active == "" {
		r.active = m.Name
	}
	return nil
}

// SetActive switches the active model. Unknown names are a no-op.
func (r *Registry) SetActive(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.models[name]; !ok {
		return false
	}
	r.active = name
	return true
}

// Remove deletes a model. Removing the last entry is rejected; removing
// the active entry first moves the selection to the first remaining name.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.models[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if len(r.models) == 1 {
		return ErrLastModel
	}

	if r.active == name {
		for _, candidate := range config.SortedModelNames(r.models) {
			if candidate != name {
				r.active = candidate
				break
			}
		}
	}
	delete(r.models, name)
	return nil
}

// Active resolves the active model into a ready Summarizer.
func (r *Registry) Active() (provider.Summarizer, error) {
	r.mu.Lock()
	m, ok := r.models[r.active]
	r.mu.Unlock()

	if !ok {
		return nil, ErrNoActiveModel
	}
	return provider.New(m)
}

// ActiveName returns the active model's key, empty when none is set.
func (r *Registry) ActiveName() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// Get returns the model record for name.
func (r *Registry) Get(name string) (*config.Model, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.models[name]
	return m, ok
}

// Names lists the registered model names in stable order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return config.SortedModelNames(r.models)
}

// SelectModel changes which model id the named adapter uses. The id must
// be one of the adapter's known model ids when any are listed.
func (r *Registry) SelectModel(name, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.models[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if len(m.Models) > 0 {
		found := false
		for _, known := range m.Models {
			if known == id {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("model %q has no id %q", name, id)
		}
	}
	m.SelectedModel = id
	return nil
}

// Len reports how many models are registered.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.models)
}
