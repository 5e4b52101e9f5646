package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cristianadrielbraun/qrhub/internal/config"
	"github.com/cristianadrielbraun/qrhub/internal/gallery"
	"github.com/cristianadrielbraun/qrhub/internal/handlers"
	"github.com/cristianadrielbraun/qrhub/internal/links"
	"github.com/cristianadrielbraun/qrhub/internal/logger"
	"github.com/cristianadrielbraun/qrhub/internal/render"
	"github.com/cristianadrielbraun/qrhub/web/assets"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	zaplog, err := logger.NewZapLog(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer zaplog.Sync()

	r, err := newRouter(cfg, zaplog)
	if err != nil {
		return err
	}

	zaplog.Info("qrhub listening",
		zap.String("addr", cfg.ServerAddr),
		zap.String("gallery", cfg.GalleryDir),
		zap.String("album", cfg.GalleryAlbum),
	)
	return r.Run(cfg.ServerAddr)
}

func newRouter(cfg config.Config, zaplog *zap.Logger) (*gin.Engine, error) {
	switch cfg.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Mode)
	default:
		return nil, fmt.Errorf("unknown gin mode %q", cfg.Mode)
	}

	library := gallery.New(cfg.GalleryDir, zaplog)
	if err := library.RequestPermission(); err != nil {
		zaplog.Warn("saving to the gallery is not permitted", zap.String("dir", cfg.GalleryDir), zap.Error(err))
	}

	r := gin.New()
	r.Use(logger.RequestLogger(zaplog))
	r.Use(gin.Recovery())

	h := handlers.New(render.NewEncoder(assets.Logo(), zaplog), library, links.Default(), cfg.GalleryAlbum, zaplog)
	h.Routes(r)
	return r, nil
}
