package target

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/targetform/pkg/logger"
)

// ErrSeedFile wraps failures to read or decode a seed file.
var ErrSeedFile = errors.New("failed to load seed file")

type seedFile struct {
	Targets []Input `yaml:"targets"`
}

// LoadSeedFile reads a YAML document with a top-level "targets" list of
// target definitions keyed by their form field names.
func LoadSeedFile(path string) ([]Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrSeedFile, err)
	}

	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Join(ErrSeedFile, err)
	}
	return f.Targets, nil
}

// SeedResult reports what Seed did with each input.
type SeedResult struct {
	Created  int
	Skipped  int
	Rejected []Rejection
}

// Rejection pairs a seed input with its failed decision.
type Rejection struct {
	Input    Input
	Decision Decision
}

// Seed validates inputs and stores the accepted ones. Names that already
// exist are skipped. Storage errors other than duplicates abort seeding.
func Seed(ctx context.Context, storage Storage, log *slog.Logger, inputs []Input, opts ...Option) (SeedResult, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	var res SeedResult
	for i, in := range inputs {
		d := Validate(in, opts...)
		if !d.Accepted {
			res.Rejected = append(res.Rejected, Rejection{Input: in, Decision: d})
			log.WarnContext(ctx, "seed target rejected",
				logger.TargetName(in.Name),
				logger.Decision(d.Accepted, d.Message),
				slog.Int("index", i),
				logger.Component("seed"),
			)
			continue
		}

		t, err := New(in, opts...)
		if err != nil {
			return res, fmt.Errorf("seed %q: %w", in.Name, err)
		}

		switch err := storage.Create(ctx, t); {
		case errors.Is(err, ErrDuplicateName):
			res.Skipped++
		case err != nil:
			return res, fmt.Errorf("seed %q: %w", in.Name, err)
		default:
			res.Created++
			log.InfoContext(ctx, "seed target created",
				logger.TargetID(t.ID),
				logger.TargetName(t.Name),
				logger.Component("seed"),
			)
		}
	}
	return res, nil
}
