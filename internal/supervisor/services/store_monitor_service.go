// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package services

import (
	"context"
	"time"

	"github.com/tomtom215/balades/internal/logging"
	"github.com/tomtom215/balades/internal/metrics"
)

// Pinger is satisfied by every store.Store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreMonitorService pings the record store on an interval, exports the
// result as the store_up gauge and logs each change between reachable and
// unreachable.
type StoreMonitorService struct {
	store    Pinger
	interval time.Duration
	timeout  time.Duration

	up *bool // nil until the first ping
}

// NewStoreMonitorService checks st every interval. A non-positive interval
// defaults to 15s. Each ping is bounded by half the interval.
func NewStoreMonitorService(st Pinger, interval time.Duration) *StoreMonitorService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &StoreMonitorService{
		store:    st,
		interval: interval,
		timeout:  interval / 2,
	}
}

// Serve implements suture.Service. Ping failures are reported, never returned.
func (s *StoreMonitorService) Serve(ctx context.Context) error {
	s.check(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.check(ctx)
		}
	}
}

func (s *StoreMonitorService) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
	err := s.store.Ping(pingCtx)
	cancel()

	if ctx.Err() != nil {
		return
	}

	up := err == nil
	metrics.SetStoreUp(up)

	if s.up != nil && *s.up == up {
		return
	}
	first := s.up == nil
	s.up = &up

	switch {
	case !up:
		logging.Warn().Err(err).Msg("Record store unreachable")
	case !first:
		logging.Info().Msg("Record store reachable again")
	}
}

// String implements fmt.Stringer for suture's logs.
func (s *StoreMonitorService) String() string {
	return "store-monitor"
}
