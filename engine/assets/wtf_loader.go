package assets

import (
	"path/filepath"
	"strings"

	"github.com/OMGOMGplays/Doom.NET/engine/scene"
)

// WTFLoader loads .wtf map documents into scene files.
type WTFLoader struct{}

func (l *WTFLoader) Load(path string, params interface{}) (*Resource, error) {
	f, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Resource{
		Name:         name,
		FullPath:     path,
		ResourceType: ResourceTypeMap,
		Data:         f,
	}, nil
}

func (l *WTFLoader) Unload(r *Resource) error {
	r.Data = nil
	return nil
}
