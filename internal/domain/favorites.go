package domain

// Favorites is an insertion-ordered set of activity ids.
type Favorites struct {
	ids   []string
	index map[string]struct{}
}

// NewFavorites builds a set from ids, dropping empty ids and duplicates
// while keeping first-seen order.
func NewFavorites(ids []string) Favorites {
	f := Favorites{index: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := f.index[id]; ok {
			continue
		}
		f.index[id] = struct{}{}
		f.ids = append(f.ids, id)
	}
	return f
}

func (f Favorites) Contains(id string) bool {
	_, ok := f.index[id]
	return ok
}

func (f Favorites) Len() int { return len(f.ids) }

// IDs returns a copy of the ids in insertion order.
func (f Favorites) IDs() []string {
	return append([]string{}, f.ids...)
}

// Toggle returns the set with id added (appended) if absent, or removed if present.
// The receiver is not modified.
func (f Favorites) Toggle(id string) (Favorites, bool) {
	if f.Contains(id) {
		out := make([]string, 0, len(f.ids))
		for _, v := range f.ids {
			if v != id {
				out = append(out, v)
			}
		}
		return NewFavorites(out), false
	}
	return NewFavorites(append(f.IDs(), id)), true
}
