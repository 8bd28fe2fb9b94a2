package gridgraph

// Components groups pipe cells into maximal sets joined by mutual
// connections (see Linked). On a resolved grid the loop through Start is one
// component; any other component is junk pipe that no walk from Start
// reaches. Components are ordered by their first cell in row-major order and
// cells within a component are in discovery order.
//
// Time:   O(P log P) for the ordered scan, O(P) for the search.
// Memory: O(P) for the seen set and output.
func (g *Grid) Components() [][]Coordinate {
	seen := make(map[Coordinate]bool, len(g.pipes))
	var comps [][]Coordinate

	for _, c0 := range g.Cells() {
		if seen[c0] {
			continue
		}
		// BFS to collect component
		queue := []Coordinate{c0}
		seen[c0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.Linked(queue[qi]) {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
