package roadmap

import "sort"

type neighbor struct {
	id   int
	dist float64
}

// ClosestConfigs returns the ids of the configs nearest to target, sorted by increasing
// joint-space L2 distance. Configs farther than maxDist are never returned, and at most
// maxCount ids are returned.
func ClosestConfigs(target Config, configs []Config, maxCount int, maxDist float64) []int {
	if maxCount <= 0 {
		return nil
	}
	neighbors := make([]neighbor, 0)
	for id, config := range configs {
		dist := L2Distance(target, config)
		if dist <= maxDist {
			neighbors = append(neighbors, neighbor{id: id, dist: dist})
		}
	}
	sort.Slice(neighbors, func(i, j int) bool {
		return neighbors[i].dist < neighbors[j].dist
	})
	if len(neighbors) > maxCount {
		neighbors = neighbors[:maxCount]
	}
	ids := make([]int, len(neighbors))
	for i, n := range neighbors {
		ids[i] = n.id
	}
	return ids
}
