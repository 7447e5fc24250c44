// Command iconbake bakes the icon assets into kernel/icons_data.c.
//
// It takes no flags. Settings come from iconbake.yaml in the working
// directory when present; see internal/config for the keys.
package main

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/iconbake"
	"github.com/gogpu/iconbake/backend"
	_ "github.com/gogpu/iconbake/backend/gift"
	"github.com/gogpu/iconbake/internal/config"
)

func main() {
	os.Exit(run(config.DefaultPath))
}

func run(configPath string) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("load config", "err", err)
		return 1
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	iconbake.SetLogger(logger)

	var imaging iconbake.Imaging
	if cfg.Backend != "" {
		imaging, err = backend.Get(cfg.Backend)
		if err != nil {
			logger.Error("select backend", "err", err)
			return 1
		}
	}

	opts, err := cfg.Options(imaging)
	if err != nil {
		logger.Error("configure", "err", err)
		return 1
	}
	b, err := iconbake.New(opts...)
	if err != nil {
		logger.Error("configure", "err", err)
		return 1
	}

	if err := b.Resolver().Check(); err != nil {
		if errors.Is(err, iconbake.ErrAssetsDirMissing) {
			return setupRequired(logger, cfg.IconDir)
		}
		logger.Error("check assets", "err", err)
		return 1
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Output), 0o755); err != nil {
		logger.Error("create output directory", "err", err)
		return 1
	}
	if err := b.BakeFile(cfg.Output); err != nil {
		logger.Error("bake failed", "err", err)
		return 1
	}

	if cfg.Header != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Header), 0o755); err != nil {
			logger.Error("create header directory", "err", err)
			return 1
		}
		if err := b.WriteHeaderFile(cfg.Header); err != nil {
			logger.Error("write header", "err", err)
			return 1
		}
	}
	return 0
}

// setupRequired creates the empty asset directory and tells the user to
// fill it. It is not a failure: there is simply nothing to bake yet.
func setupRequired(logger *slog.Logger, dir string) int {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error("create asset directory", "dir", dir, "err", err)
		return 1
	}
	logger.Warn("no assets available yet: asset directory created, add .png files and rerun", "dir", dir)
	return 0
}
