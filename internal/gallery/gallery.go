// Package gallery saves generated QR images into album directories on disk,
// standing in for a device media library.
package gallery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cristianadrielbraun/qrhub/internal/render"
)

// ErrPermissionDenied means the library may not be written to.
var ErrPermissionDenied = errors.New("permission to save images was not granted")

const filePrefix = "QR Hub_"

// Asset is one saved image.
type Asset struct {
	ID        string    `json:"id"`
	Album     string    `json:"album"`
	Filename  string    `json:"filename"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// Library is a directory of albums.
type Library struct {
	root string
	log  *zap.Logger
	now  func() time.Time
	mu   sync.Mutex
}

// New returns a Library rooted at root. An empty root denies every save.
func New(root string, log *zap.Logger) *Library {
	if log == nil {
		log = zap.NewNop()
	}
	return &Library{root: root, log: log, now: time.Now}
}

// Enabled reports whether saving is configured at all. A nil Library is disabled.
func (l *Library) Enabled() bool {
	return l != nil && l.root != ""
}

// RequestPermission checks that the library root exists and is writable, creating it if needed.
func (l *Library) RequestPermission() error {
	if l.root == "" {
		return ErrPermissionDenied
	}
	if err := os.MkdirAll(l.root, 0o755); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
		}
		return fmt.Errorf("create library: %w", err)
	}
	tmp, err := os.CreateTemp(l.root, ".check-*")
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
		}
		return fmt.Errorf("check library: %w", err)
	}
	tmp.Close()
	return os.Remove(tmp.Name())
}

// Save writes img into album and returns the new asset.
func (l *Library) Save(ctx context.Context, album string, img render.Image) (Asset, error) {
	if len(img.Data) == 0 {
		return Asset{}, errors.New("image is empty")
	}
	if err := ctx.Err(); err != nil {
		return Asset{}, err
	}
	dir, err := l.albumDir(album)
	if err != nil {
		return Asset{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.RequestPermission(); err != nil {
		return Asset{}, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Asset{}, fmt.Errorf("create album: %w", err)
	}

	id := uuid.New()
	created := l.now()
	name := fmt.Sprintf("%s%s_%s.%s", filePrefix, created.Format("2006-01-02T15-04-05"), id, img.Ext)
	path := filepath.Join(dir, name)

	if err := writeFileAtomic(path, img.Data); err != nil {
		return Asset{}, fmt.Errorf("save image: %w", err)
	}

	asset := Asset{
		ID:        id.String(),
		Album:     album,
		Filename:  name,
		Path:      path,
		Size:      int64(len(img.Data)),
		CreatedAt: created,
	}
	l.log.Info("saved qr image",
		zap.String("album", album),
		zap.String("file", name),
		zap.Int64("bytes", asset.Size),
	)
	return asset, nil
}

// List returns the images in album, newest first. A missing album is empty.
func (l *Library) List(album string) ([]Asset, error) {
	dir, err := l.albumDir(album)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []Asset{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read album: %w", err)
	}

	assets := make([]Asset, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), filePrefix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		assets = append(assets, Asset{
			ID:        assetID(e.Name()),
			Album:     album,
			Filename:  e.Name(),
			Path:      filepath.Join(dir, e.Name()),
			Size:      info.Size(),
			CreatedAt: info.ModTime(),
		})
	}
	sort.Slice(assets, func(i, j int) bool {
		if assets[i].CreatedAt.Equal(assets[j].CreatedAt) {
			return assets[i].Filename > assets[j].Filename
		}
		return assets[i].CreatedAt.After(assets[j].CreatedAt)
	})
	return assets, nil
}

func (l *Library) albumDir(album string) (string, error) {
	if l.root == "" {
		return "", ErrPermissionDenied
	}
	clean := strings.TrimSpace(album)
	if clean == "" || clean == "." || clean == ".." || strings.ContainsAny(clean, `/\`) {
		return "", fmt.Errorf("invalid album name %q", album)
	}
	return filepath.Join(l.root, clean), nil
}

// assetID recovers the id embedded in a saved filename.
func assetID(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if i := strings.LastIndexByte(base, '_'); i >= 0 {
		return base[i+1:]
	}
	return base
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
