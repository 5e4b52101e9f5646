package gallery

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cristianadrielbraun/qrhub/internal/render"
)

func testImage() render.Image {
	return render.Image{Data: []byte("\x89PNG fake"), ContentType: "image/png", Ext: "png"}
}

func TestLibrary_Save(t *testing.T) {
	root := filepath.Join(t.TempDir(), "gallery")
	lib := New(root, zap.NewNop())
	lib.now = func() time.Time { return time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC) }

	asset, err := lib.Save(context.Background(), "QR Codes", testImage())
	require.NoError(t, err)

	require.Equal(t, "QR Codes", asset.Album)
	require.True(t, strings.HasPrefix(asset.Filename, "QR Hub_2025-03-04T05-06-07_"), asset.Filename)
	require.True(t, strings.HasSuffix(asset.Filename, ".png"))
	require.Equal(t, filepath.Join(root, "QR Codes", asset.Filename), asset.Path)
	require.Equal(t, int64(len(testImage().Data)), asset.Size)
	require.Len(t, asset.ID, 36)

	data, err := os.ReadFile(asset.Path)
	require.NoError(t, err)
	require.Equal(t, testImage().Data, data)

	entries, err := os.ReadDir(filepath.Join(root, "QR Codes"))
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files are left behind")
}

func TestLibrary_List(t *testing.T) {
	lib := New(t.TempDir(), nil)

	assets, err := lib.List("QR Codes")
	require.NoError(t, err)
	require.Empty(t, assets)

	first, err := lib.Save(context.Background(), "QR Codes", testImage())
	require.NoError(t, err)
	second, err := lib.Save(context.Background(), "QR Codes", render.Image{Data: []byte("<svg/>"), Ext: "svg"})
	require.NoError(t, err)
	_, err = lib.Save(context.Background(), "Other", testImage())
	require.NoError(t, err)

	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(first.Path, old, old))

	assets, err = lib.List("QR Codes")
	require.NoError(t, err)
	require.Len(t, assets, 2)
	require.Equal(t, second.ID, assets[0].ID)
	require.Equal(t, first.ID, assets[1].ID)
	require.Equal(t, int64(6), assets[0].Size)
}

func TestLibrary_PermissionDenied(t *testing.T) {
	lib := New("", nil)
	require.ErrorIs(t, lib.RequestPermission(), ErrPermissionDenied)

	_, err := lib.Save(context.Background(), "QR Codes", testImage())
	require.ErrorIs(t, err, ErrPermissionDenied)

	_, err = lib.List("QR Codes")
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestLibrary_Enabled(t *testing.T) {
	var nilLib *Library
	require.False(t, nilLib.Enabled())
	require.False(t, New("", nil).Enabled())
	require.True(t, New(t.TempDir(), nil).Enabled())
}

func TestLibrary_RequestPermissionCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, New(root, nil).RequestPermission())

	info, err := os.Stat(root)
	require.NoError(t, err)
	require.True(t, info.IsDir())

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestLibrary_SaveRejects(t *testing.T) {
	lib := New(t.TempDir(), nil)

	for _, album := range []string{"", "..", "a/b", `a\b`} {
		_, err := lib.Save(context.Background(), album, testImage())
		require.Error(t, err, album)
	}

	_, err := lib.Save(context.Background(), "QR Codes", render.Image{})
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = lib.Save(ctx, "QR Codes", testImage())
	require.ErrorIs(t, err, context.Canceled)
}
