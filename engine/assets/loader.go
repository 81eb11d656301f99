package assets

// ResourceType keys the loader registry.
type ResourceType int

const (
	ResourceTypeNone ResourceType = iota
	ResourceTypeMap
	ResourceTypeConfig
)

// Resource is a loaded asset. Data holds the loader-specific payload, e.g.
// a *scene.File for maps.
type Resource struct {
	Name         string
	FullPath     string
	ResourceType ResourceType
	Data         interface{}
}

type Loader interface {
	Load(path string, params interface{}) (*Resource, error)
	Unload(*Resource) error
}
