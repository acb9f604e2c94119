package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/adaobialike/ikeji-outreach/pkg/cache"
	"github.com/adaobialike/ikeji-outreach/pkg/clients/apiclient"
)

// Source says where a dashboard's items came from
type Source string

const (
	// SourceLive means the items are a fresh or cache-fresh fetch
	SourceLive Source = "live"
	// SourceDegraded means the last fetch failed; any items shown are the
	// last successful page, visibly stale, never fabricated
	SourceDegraded Source = "degraded"
)

// Fetcher fetches one page of a resource
type Fetcher[T any] func(ctx context.Context, params apiclient.ListParams) (apiclient.Result[T], error)

// Matcher reports whether an item matches a local search term
type Matcher[T any] func(item T, term string) bool

// Dashboard is the list state every admin page keeps: the fetched page,
// its provenance, the active filters, and a local search term. Changing a
// filter refetches (through the shared cache); typing in the search box
// only filters the page already in hand, so search cannot discover items
// beyond the fetched page.
type Dashboard[T any] struct {
	resource string
	fetch    Fetcher[T]
	match    Matcher[T]
	cache    *cache.Cache
	logger   *zap.Logger

	Items      []T
	Total      int
	Source     Source
	LastError  error
	SearchTerm string
	Filters    apiclient.ListParams
}

// NewDashboard creates the list state for one admin page
func NewDashboard[T any](resource string, fetch Fetcher[T], match Matcher[T], c *cache.Cache, logger *zap.Logger) *Dashboard[T] {
	return &Dashboard[T]{
		resource: resource,
		fetch:    fetch,
		match:    match,
		cache:    c,
		logger:   logger,
		Source:   SourceLive,
	}
}

// SetFilters replaces the filter set and refetches
func (d *Dashboard[T]) SetFilters(ctx context.Context, params apiclient.ListParams) error {
	d.Filters = params
	return d.Refresh(ctx)
}

// SetSearch updates the local search term. No network request: the term
// only narrows Visible() over the already-fetched page.
func (d *Dashboard[T]) SetSearch(term string) {
	d.SearchTerm = term
}

// Refresh refetches the current filter set through the shared cache. On
// failure the dashboard enters the degraded state, keeping the last good
// page if the cache has one, and the error is returned so the caller can
// report it.
func (d *Dashboard[T]) Refresh(ctx context.Context) error {
	key := cache.Key(d.resource, d.Filters.Values().Encode())

	val, err := d.cache.GetOrFetch(ctx, key, func(ctx context.Context) (any, error) {
		return d.fetch(ctx, d.Filters)
	})
	if err != nil {
		d.Source = SourceDegraded
		d.LastError = err
		if stale, ok := d.cache.Peek(key); ok {
			if res, ok := stale.(apiclient.Result[T]); ok {
				d.Items = res.Items
				d.Total = res.Total
			}
		}
		d.logger.Warn("List fetch failed, dashboard degraded",
			zap.String("resource", d.resource),
			zap.Error(err))
		return fmt.Errorf("failed to fetch %s: %w", d.resource, err)
	}

	res, ok := val.(apiclient.Result[T])
	if !ok {
		return fmt.Errorf("unexpected cache value for %s", d.resource)
	}
	d.Items = res.Items
	d.Total = res.Total
	d.Source = SourceLive
	d.LastError = nil
	return nil
}

// Visible applies the local substring search to the fetched page
func (d *Dashboard[T]) Visible() []T {
	term := strings.TrimSpace(strings.ToLower(d.SearchTerm))
	if term == "" || d.match == nil {
		return d.Items
	}
	var out []T
	for _, item := range d.Items {
		if d.match(item, term) {
			out = append(out, item)
		}
	}
	return out
}

// ContainsFold is the substring match dashboards use in their Matchers
func ContainsFold(haystack, term string) bool {
	return strings.Contains(strings.ToLower(haystack), term)
}
