package app

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vk/gluebind/internal/adaptor"
	"github.com/vk/gluebind/internal/callable"
	"github.com/vk/gluebind/internal/glue"
	"github.com/vk/gluebind/internal/lookup"
	"github.com/vk/gluebind/internal/manifest"
)

// Name identifies this binary in message streams.
const Name = "gluebind"

// Version is overridden at link time.
var Version = "dev"

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	catalog *callable.Catalog
	lookup  *lookup.InMemory
	glue    *glue.Registry
	adaptor *adaptor.Adaptor
	loader  *manifest.Loader

	now   func() time.Time
	newID func() string
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger, catalog and glue
// registry. With no modules the core modules are registered. Registering
// the same owner twice panics.
func NewApp(outW io.Writer, cfg *Config, modules ...callable.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	catalog := callable.NewCatalog()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(catalog)
	}
	logger.Debug("All glue modules registered.", "count", len(modules), "owners", catalog.Names())

	instances := lookup.NewInMemory()
	registry := glue.NewRegistry(logger)

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		catalog: catalog,
		lookup:  instances,
		glue:    registry,
		adaptor: adaptor.New(instances, registry),
		loader:  manifest.NewLoader(catalog),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Registry returns the collected glue.
func (a *App) Registry() *glue.Registry {
	return a.glue
}

// Lookup returns the instance lookup shared by every bound definition.
func (a *App) Lookup() *lookup.InMemory {
	return a.lookup
}
