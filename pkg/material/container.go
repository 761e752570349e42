package material

// MapContainer is the simplest Container: a name-to-Material lookup table,
// grounded on the teacher's scene-construction pattern of keying
// materials by id (pkg/scene/cornell.go builds its walls/lights this way).
type MapContainer struct {
	materials map[string]Material
}

// NewMapContainer builds a Container from a set of named materials.
func NewMapContainer(materials map[string]Material) *MapContainer {
	return &MapContainer{materials: materials}
}

// Find implements Container.
func (c *MapContainer) Find(materialID string) Material {
	return c.materials[materialID]
}
