package domain

// RecencyCapacity is the number of recently played activities remembered
// for recommendation.
const RecencyCapacity = 5

// RecencyQueue holds recently played activity ids, most recent first.
type RecencyQueue []string

// NewRecencyQueue normalizes ids: duplicates collapse to their first
// occurrence and the result is truncated to RecencyCapacity.
func NewRecencyQueue(ids []string) RecencyQueue {
	seen := make(map[string]bool, len(ids))
	q := make(RecencyQueue, 0, RecencyCapacity)
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		q = append(q, id)
		if len(q) == RecencyCapacity {
			break
		}
	}
	return q
}

// Push moves id to the front, collapsing any earlier occurrence.
func (q RecencyQueue) Push(id string) RecencyQueue {
	return NewRecencyQueue(append([]string{id}, q...))
}

func (q RecencyQueue) Contains(id string) bool {
	for _, v := range q {
		if v == id {
			return true
		}
	}
	return false
}
