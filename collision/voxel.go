// Package collision converts scene geometry into the voxel occupancy grid consumed by roadmap search.
package collision

import (
	"github.com/golang/geo/r3"

	"github.com/pathbound/roadmapplan/roadmap"
	"github.com/pathbound/roadmapplan/spatial"
)

// DefaultResolution is the edge length of one voxel, in the units of the roadmap volume.
const DefaultResolution = 0.05

// Voxel is one occupied cell of the discretized collision space.
type Voxel struct {
	Center r3.Vector
}

// VoxelizeGeometries discretizes the given geometries onto the axis-aligned grid spanning the
// roadmap volume. Geometry outside the volume is not represented; the search engine makes no
// correctness claims about space the roadmap cannot reach anyway.
func VoxelizeGeometries(geometries []spatial.Geometry, volume roadmap.Volume, resolution float64) []Voxel {
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	min := volume.Center.Sub(volume.HalfExtents)
	max := volume.Center.Add(volume.HalfExtents)

	voxels := make([]Voxel, 0)
	for x := min.X + resolution/2; x < max.X; x += resolution {
		for y := min.Y + resolution/2; y < max.Y; y += resolution {
			for z := min.Z + resolution/2; z < max.Z; z += resolution {
				center := r3.Vector{X: x, Y: y, Z: z}
				for _, geometry := range geometries {
					if geometry.ContainsPoint(center) {
						voxels = append(voxels, Voxel{Center: center})
						break
					}
				}
			}
		}
	}
	return voxels
}
