package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

	alive, 0-1 neighbors -> dies (underpopulation)
	alive, 2-3 neighbors -> survives
	alive, 4+  neighbors -> dies (overpopulation)
	dead,  3   neighbors -> arises
	dead,  any other     -> stays dead
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	switch {
	case alive && neighbors < 2:
		return false
	case alive && neighbors <= 3:
		return true
	case alive:
		return false
	default:
		return neighbors == 3
	}
}
