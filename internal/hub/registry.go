package hub

import (
	"sync"
	"time"

	"agridesk/internal/types"
)

// registry is the in-memory module name → dataset map. It exclusively owns
// dataset contents; everything it hands out or takes in is deep-copied.
type registry struct {
	mu   sync.Mutex
	data map[string]types.Dataset
	now  func() time.Time
}

func newRegistry(now func() time.Time) *registry {
	return &registry{
		data: make(map[string]types.Dataset),
		now:  now,
	}
}

// get returns a copy of the named dataset. Unseen names yield an empty
// dataset rather than an error.
func (r *registry) get(name string) types.Dataset {
	r.mu.Lock()
	defer r.mu.Unlock()
	ds, ok := r.data[name]
	if !ok {
		return types.Dataset{Name: name, Items: []types.Record{}, LastModified: r.now()}
	}
	return ds.Clone()
}

// replace swaps the dataset's items and bumps its modification time.
func (r *registry) replace(name string, items []types.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[name] = types.Dataset{
		Name:         name,
		Items:        cloneItems(items),
		LastModified: r.now(),
	}
}

// merge appends records to the dataset's items and bumps its modification
// time. Used by imports, which add to a screen's data rather than reset it.
func (r *registry) merge(name string, items []types.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ds, ok := r.data[name]
	if !ok {
		ds = types.Dataset{Name: name}
	}
	ds.Items = append(ds.Items, cloneItems(items)...)
	ds.LastModified = r.now()
	r.data[name] = ds
}

// maxID returns the largest record id in the named dataset, or 0.
func (r *registry) maxID(name string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data[name].MaxID()
}

func cloneItems(items []types.Record) []types.Record {
	out := make([]types.Record, len(items))
	for i, rec := range items {
		out[i] = rec.Clone()
	}
	return out
}
