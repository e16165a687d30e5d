package fmpreset

import (
	"context"
	"path/filepath"
	"sort"
	"sync"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"github.com/sgostarter/libfeather/preset"
)

func NewFMPresetStorage(root string, storage stg.FileStorage) preset.Storage {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &fmPresetStorageImpl{
		d: mwf.NewMemWithFile[map[string]preset.Config, mwf.Serial, mwf.Lock](
			make(map[string]preset.Config), &mwf.JSONSerial{}, &sync.RWMutex{}, filepath.Join(root, "presets.json"), storage),
	}
}

type fmPresetStorageImpl struct {
	d *mwf.MemWithFile[map[string]preset.Config, mwf.Serial, mwf.Lock]
}

func (impl *fmPresetStorageImpl) Save(_ context.Context, name string, cfg preset.Config) error {
	if name == "" {
		return preset.ErrNoName
	}

	return impl.d.Change(func(oldM map[string]preset.Config) (newM map[string]preset.Config, err error) {
		newM = oldM
		if len(newM) == 0 {
			newM = make(map[string]preset.Config)
		}

		newM[name] = cfg.Clone()

		return
	})
}

func (impl *fmPresetStorageImpl) Load(_ context.Context, name string) (cfg preset.Config, err error) {
	impl.d.Read(func(m map[string]preset.Config) {
		if c, ok := m[name]; ok {
			cfg = c.Clone()
		} else {
			err = commerr.ErrNotFound
		}
	})

	return
}

func (impl *fmPresetStorageImpl) Delete(_ context.Context, name string) error {
	return impl.d.Change(func(oldM map[string]preset.Config) (newM map[string]preset.Config, err error) {
		newM = oldM

		if _, ok := newM[name]; !ok {
			err = commerr.ErrNotFound

			return
		}

		delete(newM, name)

		return
	})
}

func (impl *fmPresetStorageImpl) List(_ context.Context) (names []string, _ error) {
	impl.d.Read(func(m map[string]preset.Config) {
		for name := range m {
			names = append(names, name)
		}
	})

	sort.Strings(names)

	return
}
