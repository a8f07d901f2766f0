package repository

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"sourdough-calculator/domain"
)

//go:embed content/*.yaml
var embeddedContent embed.FS

const (
	siteFile            = "site.yaml"
	guideFile           = "guide.yaml"
	troubleshootingFile = "troubleshooting.yaml"
)

var _ ContentRepository = (*ContentRepositoryYAML)(nil)

// ContentRepositoryYAML reads content documents from YAML files.
type ContentRepositoryYAML struct {
	fsys fs.FS
}

// NewContentRepositoryYAML reads from dir, or from the built-in documents when dir is empty.
func NewContentRepositoryYAML(dir string) (*ContentRepositoryYAML, error) {
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("content dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("content dir %s is not a directory", dir)
		}
		return NewContentRepositoryFS(os.DirFS(dir)), nil
	}

	sub, err := fs.Sub(embeddedContent, "content")
	if err != nil {
		return nil, err
	}
	return NewContentRepositoryFS(sub), nil
}

func NewContentRepositoryFS(fsys fs.FS) *ContentRepositoryYAML {
	return &ContentRepositoryYAML{fsys: fsys}
}

func (r *ContentRepositoryYAML) LoadSite() (domain.Site, error) {
	var site domain.Site
	err := r.decode(siteFile, &site)
	return site, err
}

func (r *ContentRepositoryYAML) LoadGuide() (domain.Guide, error) {
	var guide domain.Guide
	err := r.decode(guideFile, &guide)
	return guide, err
}

func (r *ContentRepositoryYAML) LoadTroubleshooting() (domain.Troubleshooting, error) {
	var t domain.Troubleshooting
	err := r.decode(troubleshootingFile, &t)
	return t, err
}

func (r *ContentRepositoryYAML) decode(name string, out any) error {
	data, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
