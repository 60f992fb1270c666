package services

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jakechorley/vaccination-hubs/pkg/metrics"
)

// RejectedLine is a people file line skipped during load
type RejectedLine struct {
	Line int
	Raw  string
}

// LoadResult summarises a bulk load
type LoadResult struct {
	Loaded   int
	Rejected []RejectedLine
}

// LoadPeople registers every well-formed person in the file at path
// Rejected lines are collected in the result rather than aborting the load;
// a bad header fails the whole load.
func LoadPeople(c *Campaign, logger *zap.Logger, path string) (*LoadResult, error) {
	logger.Debug("Loading people", zap.String("path", path))

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open people file: %w", err)
	}
	defer file.Close()

	result := &LoadResult{Rejected: []RejectedLine{}}
	c.Loader.SetListener(func(line int, raw string) {
		result.Rejected = append(result.Rejected, RejectedLine{Line: line, Raw: raw})
		metrics.PeopleRejectedTotal.Inc()
	})
	defer c.Loader.SetListener(nil)

	loaded, err := c.Loader.Load(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load people from %s: %w", path, err)
	}
	result.Loaded = loaded

	metrics.PeopleRegistered.Set(float64(c.People.Count()))

	logger.Info("People loaded",
		zap.String("path", path),
		zap.Int("loaded", loaded),
		zap.Int("rejected", len(result.Rejected)),
		zap.Int("registered", c.People.Count()))

	return result, nil
}
