package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/devfolio/dashboard/model"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Source supplies catalog data. The dashboard makes no assumption about
// where it comes from or how often it changes.
type Source interface {
	Load(ctx context.Context) (Snapshot, error)
	Name() string
}

// StaticSource serves the built-in sample data
type StaticSource struct{}

func (StaticSource) Name() string { return "static" }

func (StaticSource) Load(_ context.Context) (Snapshot, error) {
	return SampleSnapshot(), nil
}

// FileSource reads a catalog from a YAML or JSON file. The format is picked
// from the extension; anything other than .json is parsed as YAML.
type FileSource struct {
	Path string
}

func (f FileSource) Name() string { return "file:" + f.Path }

func (f FileSource) Load(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}

	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read catalog file: %w", err)
	}

	var snapshot Snapshot
	if strings.EqualFold(filepath.Ext(f.Path), ".json") {
		err = json.Unmarshal(raw, &snapshot)
	} else {
		err = yaml.Unmarshal(raw, &snapshot)
	}

	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: decode %s: %v", model.ErrInvalidCatalog, f.Path, err)
	}

	log.WithFields(log.Fields{
		"path":     f.Path,
		"projects": len(snapshot.Projects),
	}).Debug("catalog file loaded")

	return snapshot, snapshot.Validate()
}
