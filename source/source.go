package source

import (
	"github.com/acadtools/ttexport/config"
	"github.com/acadtools/ttexport/model"
)

// Source supplies one week's schedule plus its metadata.
type Source interface {
	Name() string
	Load() (*model.Schedule, *model.Metadata, error)
}

// New resolves a source by name, nil when unknown.
func New(name string, cfg config.ExportConfig) Source {
	switch name {
	case "demo":
		return NewDemo(cfg)
	case "json":
		return NewJSONFile(cfg)
	default:
		return nil
	}
}
