package bargain

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"sync"
)

// ProfileRegistry holds personality definitions by name. It starts with the
// stock presets; custom profiles can be layered on top from JSON.
type ProfileRegistry struct {
	mu       sync.RWMutex
	profiles map[string]PersonalityTraits
}

// NewRegistry creates a registry seeded with the stock presets.
func NewRegistry() *ProfileRegistry {
	r := &ProfileRegistry{
		profiles: make(map[string]PersonalityTraits),
	}
	for _, p := range Presets() {
		r.profiles[p.Name] = p
	}
	return r
}

// LoadFromFile loads personality profiles from a JSON file.
func (r *ProfileRegistry) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read profiles file: %w", err)
	}
	return r.LoadFromJSON(data)
}

// LoadFromJSON loads personality profiles from raw JSON bytes.
func (r *ProfileRegistry) LoadFromJSON(data []byte) error {
	var list []PersonalityTraits
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("parse profiles JSON: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range list {
		if p.Name == "" {
			continue
		}
		r.profiles[p.Name] = p
	}
	return nil
}

// Get returns a profile by name.
func (r *ProfileRegistry) Get(name string) (PersonalityTraits, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[name]
	return p, ok
}

// All returns all profiles sorted by name.
func (r *ProfileRegistry) All() []PersonalityTraits {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]PersonalityTraits, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Random picks any registered profile.
func (r *ProfileRegistry) Random(rng *rand.Rand) PersonalityTraits {
	all := r.All()
	return all[rng.Intn(len(all))]
}

// Count returns the number of registered profiles.
func (r *ProfileRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.profiles)
}
