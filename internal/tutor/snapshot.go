package tutor

import (
	"fmt"
	"strconv"
	"strings"
)

// Snapshot serializes the Q-table with human-readable state keys of the form
// "(m, f, e)". The returned map is a deep copy.
func (t *Tutor) Snapshot() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(t.q))
	for s, row := range t.q {
		key := fmt.Sprintf("(%d, %d, %d)", s[0], s[1], s[2])
		copied := make(map[string]float64, len(row))
		for a, v := range row {
			copied[a] = v
		}
		out[key] = copied
	}
	return out
}

// Restore replaces the Q-table with the given snapshot. Entries whose key
// does not parse as a three-part state are skipped rather than failing the
// whole load; old snapshots survive format drift that way.
func (t *Tutor) Restore(snapshot map[string]map[string]float64) {
	q := make(map[StateKey]map[string]float64, len(snapshot))
	for raw, row := range snapshot {
		key, ok := parseStateKey(raw)
		if !ok {
			continue
		}
		copied := make(map[string]float64, len(row))
		for a, v := range row {
			copied[a] = v
		}
		q[key] = copied
	}
	t.q = q
}

func parseStateKey(raw string) (StateKey, bool) {
	trimmed := strings.Trim(raw, "() ")
	parts := strings.Split(trimmed, ",")
	if len(parts) != 3 {
		return StateKey{}, false
	}

	var key StateKey
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return StateKey{}, false
		}
		key[i] = n
	}
	return key, true
}
