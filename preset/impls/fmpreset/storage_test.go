// nolint
package fmpreset

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libfeather/preset"
	"github.com/stretchr/testify/assert"
)

const (
	utRoot = "ut-data"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(utRoot)
	_ = pathutils.MustDirExists(utRoot)

	code := m.Run()

	_ = os.RemoveAll(utRoot)

	os.Exit(code)
}

func TestPresetStorage(t *testing.T) {
	ctx := context.Background()

	s := NewFMPresetStorage("", rawfs.NewFSStorage(utRoot))

	names, err := s.List(ctx)
	assert.Nil(t, err)
	assert.Empty(t, names)

	_, err = s.Load(ctx, "owl")
	assert.True(t, errors.Is(err, commerr.ErrNotFound))

	cfg := preset.Default()
	cfg.Material = "owl_mat"

	assert.Nil(t, s.Save(ctx, "owl", cfg))
	assert.Nil(t, s.Save(ctx, "hawk", preset.Default()))
	assert.Equal(t, preset.ErrNoName, s.Save(ctx, "", cfg))

	loaded, err := s.Load(ctx, "owl")
	assert.Nil(t, err)
	assert.Equal(t, cfg, loaded)

	names, err = s.List(ctx)
	assert.Nil(t, err)
	assert.Equal(t, []string{"hawk", "owl"}, names)

	// a second storage on the same file sees the saved presets
	s2 := NewFMPresetStorage("", rawfs.NewFSStorage(utRoot))

	loaded, err = s2.Load(ctx, "owl")
	assert.Nil(t, err)
	assert.Equal(t, "owl_mat", loaded.Material)

	assert.Nil(t, s.Delete(ctx, "owl"))
	assert.True(t, errors.Is(s.Delete(ctx, "owl"), commerr.ErrNotFound))

	names, err = s.List(ctx)
	assert.Nil(t, err)
	assert.Equal(t, []string{"hawk"}, names)
}
