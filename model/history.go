package model

// historySize is how many recent grid hashes are kept for cycle detection
const historySize = 5

// History remembers recent grid hashes to spot still lifes and short cycles
type History struct {
	hashes []string
}

// Observe records hash and reports whether it matches one of the last three
// recorded states, i.e. the grid is static or oscillating with period <= 3.
func (h *History) Observe(hash string) bool {
	stagnant := false
	for i := len(h.hashes) - 1; i >= 0 && i >= len(h.hashes)-3; i-- {
		if h.hashes[i] == hash {
			stagnant = true
			break
		}
	}

	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
	return stagnant
}
