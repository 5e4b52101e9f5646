package config

import (
	"flag"
	"os"
	"strings"
)

type Config struct {
	ServerAddr   string
	LogLevel     string
	GalleryDir   string
	GalleryAlbum string
	Mode         string
}

// GetConfig reads the process flags and environment.
func GetConfig() (Config, error) {
	return Load(os.Args[1:], os.Getenv)
}

// Load parses args, then lets non-empty environment variables override them.
func Load(args []string, getenv func(string) string) (Config, error) {
	cfg := Config{}

	fs := flag.NewFlagSet("qrhub", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerAddr, "a", ":8080", "address of HTTP server")
	fs.StringVar(&cfg.LogLevel, "l", "info", "log level")
	fs.StringVar(&cfg.GalleryDir, "g", "gallery", "gallery directory, empty disables saving")
	fs.StringVar(&cfg.GalleryAlbum, "album", "QR Codes", "album saved images go into")
	fs.StringVar(&cfg.Mode, "mode", "release", "gin mode: debug, release or test")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if envsrv := getenv("SERVER_ADDRESS"); envsrv != "" {
		cfg.ServerAddr = envsrv
	} else if port := getenv("PORT"); port != "" {
		cfg.ServerAddr = ":" + port
	}
	if envlvl := getenv("LOG_LEVEL"); envlvl != "" {
		cfg.LogLevel = envlvl
	}
	if dir, ok := lookup(getenv, "GALLERY_DIR"); ok {
		cfg.GalleryDir = dir
	}
	if album := getenv("GALLERY_ALBUM"); album != "" {
		cfg.GalleryAlbum = album
	}
	if mode := getenv("GIN_MODE"); mode != "" {
		cfg.Mode = mode
	}

	cfg.ServerAddr = strings.TrimPrefix(cfg.ServerAddr, "http://")

	return cfg, nil
}

// lookup treats the value "-" as an explicit empty setting.
func lookup(getenv func(string) string, key string) (string, bool) {
	v := getenv(key)
	switch v {
	case "":
		return "", false
	case "-":
		return "", true
	}
	return v, true
}
