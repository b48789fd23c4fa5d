package seed

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/neuroadapt-backend/internal/data/repos"
	"github.com/yungbote/neuroadapt-backend/internal/platform/dbctx"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

//go:embed neuroprofiles.yaml
var neuroProfilesYAML []byte

type neuroProfileFile struct {
	NeuroProfiles []struct {
		Name string `yaml:"name"`
	} `yaml:"neuroprofiles"`
}

// NeuroProfileNames returns the embedded reference names in file order.
func NeuroProfileNames() ([]string, error) {
	return parseNeuroProfiles(neuroProfilesYAML)
}

func parseNeuroProfiles(raw []byte) ([]string, error) {
	var f neuroProfileFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse neuroprofile seed: %w", err)
	}
	seen := make(map[string]struct{}, len(f.NeuroProfiles))
	names := make([]string, 0, len(f.NeuroProfiles))
	for _, np := range f.NeuroProfiles {
		name := strings.ToLower(strings.TrimSpace(np.Name))
		if name == "" {
			return nil, fmt.Errorf("neuroprofile seed has an empty name")
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("neuroprofile seed repeats %q", name)
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names, nil
}

// NeuroProfiles inserts missing reference rows. Safe to run repeatedly.
func NeuroProfiles(ctx context.Context, log *logger.Logger, repo repos.NeuroProfileRepo) error {
	names, err := NeuroProfileNames()
	if err != nil {
		return err
	}
	added, err := repo.EnsureNames(dbctx.Context{Ctx: ctx}, names)
	if err != nil {
		return err
	}
	log.Info("Seeded neuroprofiles", "declared", len(names), "inserted", added)
	return nil
}
