package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/OMGOMGplays/Doom.NET/engine/core"
	"github.com/OMGOMGplays/Doom.NET/engine/scene"
)

type AssetInfo struct {
	Path       string
	Type       ResourceType
	LastLoaded time.Time
}

// AssetManager indexes the assets tree and hot-reload-watches it through
// fsnotify. Map files that change on disk fire EVENT_CODE_MAP_CHANGED so
// the game can decide whether to reload.
type AssetManager struct {
	baseDir string
	assets  map[string]AssetInfo
	loaders map[ResourceType]Loader

	mutex sync.RWMutex

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
}

func NewAssetManager() (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &AssetManager{
		assets:   make(map[string]AssetInfo),
		loaders:  make(map[ResourceType]Loader),
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}, nil
}

func (am *AssetManager) Initialize(assetsDir string) error {
	am.baseDir = assetsDir

	go am.start()

	if err := am.addRecursive(assetsDir); err != nil {
		return err
	}

	// Register loaders
	am.registerLoader(ResourceTypeMap, &WTFLoader{})

	core.LogInfo("asset manager watching %s (%d assets indexed)", assetsDir, len(am.assets))
	return nil
}

func (am *AssetManager) Shutdown() error {
	if am.isClosed {
		return nil
	}
	am.isClosed = true
	close(am.done)
	return nil
}

// addRecursive starts watching the named directory and all sub-directories.
func (am *AssetManager) addRecursive(name string) error {
	if am.isClosed {
		return errors.New("asset manager already closed")
	}
	return am.watchRecursive(name, false)
}

func (am *AssetManager) registerLoader(assetType ResourceType, loader Loader) {
	am.loaders[assetType] = loader
}

// LoadMap loads the named map, e.g. "e1m1" resolves to
// <base>/maps/e1m1.wtf.
func (am *AssetManager) LoadMap(name string) (*scene.File, error) {
	path := filepath.Join(am.baseDir, "maps", fmt.Sprintf("%s.wtf", name))

	loader, ok := am.loaders[ResourceTypeMap]
	if !ok {
		return nil, fmt.Errorf("no loader registered for map assets")
	}

	res, err := loader.Load(path, nil)
	if err != nil {
		return nil, err
	}

	am.mutex.Lock()
	am.assets[path] = AssetInfo{
		Path:       path,
		Type:       ResourceTypeMap,
		LastLoaded: time.Now(),
	}
	am.mutex.Unlock()

	return res.Data.(*scene.File), nil
}

func (am *AssetManager) start() {
	for {
		select {

		case e := <-am.fsnotify.Events:
			s, err := os.Stat(e.Name)
			if err == nil && s != nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					am.watchRecursive(e.Name, false)
				}
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				am.handleFileEvent(e.Name, true)
			}
			// Can't stat a deleted entry, so just try to drop it from
			// both the index and the watch list.
			if e.Op&fsnotify.Remove != 0 {
				am.removeAsset(e.Name)
				am.fsnotify.Remove(e.Name)
			}

		case e := <-am.fsnotify.Errors:
			core.LogError(e.Error())

		case <-am.done:
			am.fsnotify.Close()
			return
		}
	}
}

// watchRecursive adds all directories under the given one to the watch
// list and indexes the files it passes.
func (am *AssetManager) watchRecursive(path string, unWatch bool) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			if unWatch {
				return am.fsnotify.Remove(walkPath)
			}
			return am.fsnotify.Add(walkPath)
		}
		am.handleFileEvent(walkPath, false)
		return nil
	})
}

// handleFileEvent indexes a created or modified file. Changes (as opposed
// to the initial index pass) are announced through the event system.
func (am *AssetManager) handleFileEvent(path string, announce bool) {
	assetType := determineAssetType(path)
	if assetType == ResourceTypeNone {
		return
	}

	am.mutex.Lock()
	am.assets[path] = AssetInfo{
		Path:       path,
		Type:       assetType,
		LastLoaded: time.Now(),
	}
	am.mutex.Unlock()

	if announce && assetType == ResourceTypeMap {
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_MAP_CHANGED,
			Data: path,
		})
	}
}

func (am *AssetManager) removeAsset(path string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	delete(am.assets, path)
}

func determineAssetType(path string) ResourceType {
	switch filepath.Ext(path) {
	case ".wtf":
		return ResourceTypeMap
	case ".toml":
		return ResourceTypeConfig
	default:
		return ResourceTypeNone
	}
}
