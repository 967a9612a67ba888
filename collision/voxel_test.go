package collision

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/pathbound/roadmapplan/roadmap"
	"github.com/pathbound/roadmapplan/spatial"
)

func testVolume() roadmap.Volume {
	return roadmap.Volume{
		BaseFrame:   "base_link",
		Center:      r3.Vector{},
		HalfExtents: r3.Vector{X: 1, Y: 1, Z: 1},
	}
}

func TestVoxelizeGeometries(t *testing.T) {
	box, err := spatial.NewBox(r3.Vector{X: 0.5, Y: 0.5, Z: 0.5}, r3.Vector{X: 0.4, Y: 0.4, Z: 0.4})
	test.That(t, err, test.ShouldBeNil)

	voxels := VoxelizeGeometries([]spatial.Geometry{box}, testVolume(), 0.1)
	test.That(t, len(voxels), test.ShouldBeGreaterThan, 0)
	for _, voxel := range voxels {
		test.That(t, box.ContainsPoint(voxel.Center), test.ShouldBeTrue)
		test.That(t, testVolume().ContainsPoint(voxel.Center), test.ShouldBeTrue)
	}
}

func TestVoxelizeOutsideVolume(t *testing.T) {
	// geometry entirely outside the volume is not represented
	far, err := spatial.NewSphere(r3.Vector{X: 10, Y: 10, Z: 10}, 1)
	test.That(t, err, test.ShouldBeNil)

	voxels := VoxelizeGeometries([]spatial.Geometry{far}, testVolume(), 0.1)
	test.That(t, voxels, test.ShouldBeEmpty)
}

func TestVoxelizeEmptyScene(t *testing.T) {
	voxels := VoxelizeGeometries(nil, testVolume(), 0.25)
	test.That(t, voxels, test.ShouldBeEmpty)
}

func TestVoxelizeDefaultResolution(t *testing.T) {
	sphere, err := spatial.NewSphere(r3.Vector{}, 0.5)
	test.That(t, err, test.ShouldBeNil)

	// a non-positive resolution falls back to the default
	voxels := VoxelizeGeometries([]spatial.Geometry{sphere}, testVolume(), 0)
	test.That(t, len(voxels), test.ShouldBeGreaterThan, 0)
}
