package roadmap

import (
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"
)

const testRoadmapDocument = `{
	// two-joint demo roadmap
	configs: [
		[0.0, 0.0],
		[1.0, 1.0],
		[2.0, 2.0],
	],
	poses: [
		{point: [0.1, 0.1, 0.1], orientation: [1.0, 0.0, 0.0, 0.0]},
		{point: [0.2, 0.1, 0.1], orientation: [1.0, 0.0, 0.0, 0.0]},
		{point: [0.3, 0.1, 0.1], orientation: [1.0, 0.0, 0.0, 0.0]},
	],
}`

func writeRoadmapFile(t *testing.T, dir, id, contents string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, id+".json5"), []byte(contents), 0o644)
	test.That(t, err, test.ShouldBeNil)
}

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	writeRoadmapFile(t, dir, "demo", testRoadmapDocument)
	loader := NewFileLoader(dir)

	spec, err := NewSpecification("demo", testVolume())
	test.That(t, err, test.ShouldBeNil)

	configs, err := loader.Configs(spec)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, configs, test.ShouldHaveLength, 3)
	test.That(t, configs[1], test.ShouldResemble, Config{1, 1})

	poses, err := loader.Poses(spec)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, poses, test.ShouldHaveLength, 3)
	test.That(t, poses[2].Point.X, test.ShouldAlmostEqual, 0.3)
	test.That(t, poses[0].Orientation.Real, test.ShouldEqual, 1)
}

func TestFileLoaderMissingFile(t *testing.T) {
	loader := NewFileLoader(t.TempDir())
	spec, err := NewSpecification("absent", testVolume())
	test.That(t, err, test.ShouldBeNil)

	_, err = loader.Configs(spec)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = loader.Poses(spec)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestFileLoaderInvalidDocuments(t *testing.T) {
	dir := t.TempDir()
	loader := NewFileLoader(dir)
	spec, err := NewSpecification("bad", testVolume())
	test.That(t, err, test.ShouldBeNil)

	writeRoadmapFile(t, dir, "bad", `{configs: [], poses: []}`)
	_, err = loader.Configs(spec)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "no configurations")
	_, err = loader.Poses(spec)
	test.That(t, err, test.ShouldNotBeNil)

	// ragged configs are a hard error
	writeRoadmapFile(t, dir, "bad", `{configs: [[0.0, 0.0], [1.0]], poses: []}`)
	_, err = loader.Configs(spec)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "node 1")

	// pose count must match config count
	writeRoadmapFile(t, dir, "bad",
		`{configs: [[0.0, 0.0], [1.0, 1.0]], poses: [{point: [0, 0, 0], orientation: [1, 0, 0, 0]}]}`)
	_, err = loader.Poses(spec)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "1 poses for 2")
}
