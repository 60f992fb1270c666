package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/vaccination-hubs/internal/config"
	"github.com/jakechorley/vaccination-hubs/pkg/core/ageband"
	"github.com/jakechorley/vaccination-hubs/pkg/core/allocator"
	"github.com/jakechorley/vaccination-hubs/pkg/core/loader"
	"github.com/jakechorley/vaccination-hubs/pkg/core/registry"
	"github.com/jakechorley/vaccination-hubs/pkg/metrics"
)

// Campaign bundles the catalogs, age partition and allocator of one
// vaccination campaign. It is not safe for concurrent use.
type Campaign struct {
	People    *registry.People
	Hubs      *registry.Hubs
	Hours     *registry.WeeklyHours
	Partition *ageband.Partition
	Allocator *allocator.Allocator
	Loader    *loader.Loader

	// EpochID identifies the current allocation epoch
	EpochID string
}

// NewCampaign builds a campaign from configuration.
// now supplies the reference year when the configuration does not set one.
func NewCampaign(cfg *config.Config, now time.Time, logger *zap.Logger) (*Campaign, error) {
	year := cfg.Year(now)
	logger.Debug("Building campaign", zap.Int("current_year", year))

	c := &Campaign{
		People:    registry.NewPeople(year),
		Hubs:      registry.NewHubs(),
		Hours:     registry.NewWeeklyHours(),
		Partition: ageband.NewPartition(),
	}

	if err := c.Partition.DefineBreaks(cfg.AgeBreaks...); err != nil {
		return nil, fmt.Errorf("failed to define age intervals: %w", err)
	}
	logger.Debug("Age intervals defined", zap.Strings("intervals", c.Partition.Labels()))

	hours, err := cfg.WeeklyHours()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve weekly hours: %w", err)
	}
	if err := c.Hours.SetHours(hours...); err != nil {
		return nil, fmt.Errorf("failed to set weekly hours: %w", err)
	}
	logger.Debug("Weekly hours set", zap.Ints("hours", hours))

	for _, hub := range cfg.Hubs {
		if err := c.Hubs.Define(hub.Name); err != nil {
			return nil, fmt.Errorf("failed to define hub: %w", err)
		}
		if err := c.Hubs.SetStaff(hub.Name, hub.Doctors, hub.Nurses, hub.Other); err != nil {
			return nil, fmt.Errorf("failed to staff hub: %w", err)
		}
		logger.Debug("Hub defined",
			zap.String("hub", hub.Name),
			zap.Int("doctors", hub.Doctors),
			zap.Int("nurses", hub.Nurses),
			zap.Int("other", hub.Other))
	}

	c.Allocator = allocator.New(allocator.AllocationConfig{
		Partition: c.Partition,
		People:    c.People,
		Hubs:      c.Hubs,
		Hours:     c.Hours,
	}, logger)
	c.Loader = loader.NewLoader(c.People, logger)

	if err := recordCapacity(c); err != nil {
		return nil, err
	}

	c.startEpoch()
	logger.Info("Campaign ready",
		zap.Int("hubs", len(cfg.Hubs)),
		zap.Int("intervals", len(cfg.AgeBreaks)+1),
		zap.String("epoch_id", c.EpochID))

	return c, nil
}

// startEpoch assigns a fresh epoch ID and resets per-epoch metrics
func (c *Campaign) startEpoch() {
	c.EpochID = uuid.New().String()
	metrics.ResetAllocation()
	metrics.EpochsTotal.Inc()
}

// recordCapacity publishes the daily availability of every hub
func recordCapacity(c *Campaign) error {
	available, err := c.Allocator.Available()
	if err != nil {
		return fmt.Errorf("failed to compute availability: %w", err)
	}

	metrics.DailyCapacity.Reset()
	for hub, daily := range available {
		for day, slots := range daily {
			metrics.DailyCapacity.WithLabelValues(hub, metrics.DayLabel(day)).Set(float64(slots))
		}
	}
	return nil
}
