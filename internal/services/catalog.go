package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"eventboard/internal/domain"
)

// loadTag records the state a load was issued against. A completion is applied
// only while the catalog is still in that state.
type loadTag struct {
	epoch      uint64
	identity   string
	page       int
	appendPage bool
	basePage   int
}

type eventCatalog struct {
	dir      domain.EventDirectory
	pageSize int
	logger   *slog.Logger

	mu       sync.Mutex
	events   []*domain.Event
	identity string
	// loaded is the identity the held list was fetched for. It trails identity
	// while a replace load for a new identity is outstanding.
	loaded   string
	page     int // last applied page, -1 before the first load
	hasMore  bool
	epoch    uint64
	inFlight int
	err      error
}

// NewEventCatalog returns an EventCatalog reading pages of pageSize from dir.
func NewEventCatalog(dir domain.EventDirectory, pageSize int, logger *slog.Logger) domain.EventCatalog {
	return &eventCatalog{
		dir:      dir,
		pageSize: pageSize,
		logger:   logger,
		events:   []*domain.Event{},
		page:     -1,
	}
}

func (c *eventCatalog) Load(ctx context.Context, identity string, page int, appendPage bool) error {
	if page < 0 {
		return fmt.Errorf("page %d: %w", page, domain.ErrValidation)
	}
	tag, err := c.begin(identity, page, appendPage)
	if err != nil {
		return err
	}
	return c.fetch(ctx, tag)
}

func (c *eventCatalog) OnIdentityChange(ctx context.Context, identity string) error {
	return c.Load(ctx, identity, 0, false)
}

func (c *eventCatalog) LoadMore(ctx context.Context) error {
	c.mu.Lock()
	identity := c.identity
	next := c.page + 1
	done := c.page >= 0 && !c.hasMore
	c.mu.Unlock()
	if done {
		return nil
	}
	return c.Load(ctx, identity, next, true)
}

func (c *eventCatalog) Reload(ctx context.Context) error {
	c.mu.Lock()
	identity := c.identity
	c.mu.Unlock()
	return c.Load(ctx, identity, 0, false)
}

func (c *eventCatalog) Bind(ctx context.Context, store domain.IdentityStore) func() {
	return store.Subscribe(func(identity string) {
		// The tag is taken inside the notification so that any load still
		// running for the previous identity is already stale when Set returns.
		tag, _ := c.begin(identity, 0, false)
		go func() {
			if err := c.fetch(ctx, tag); err != nil && !errors.Is(err, domain.ErrSuperseded) {
				c.logger.Warn("catalog reload after identity change failed", "err", err)
			}
		}()
	})
}

func (c *eventCatalog) Snapshot() domain.CatalogSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	events := make([]*domain.Event, len(c.events))
	for i, ev := range c.events {
		events[i] = ev.Clone()
	}
	return domain.CatalogSnapshot{
		Identity: c.identity,
		Events:   events,
		Page:     c.page,
		HasMore:  c.hasMore,
		Loading:  c.inFlight > 0,
		Err:      c.err,
	}
}

func (c *eventCatalog) UpdateEvent(id string, fn func(*domain.Event)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	found := false
	for _, ev := range c.events {
		if ev.ID == id {
			fn(ev)
			found = true
		}
	}
	return found
}

func (c *eventCatalog) begin(identity string, page int, appendPage bool) (loadTag, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if appendPage && (identity != c.identity || identity != c.loaded) {
		return loadTag{}, fmt.Errorf("append page %d for a different identity: %w", page, domain.ErrSuperseded)
	}
	if !appendPage {
		c.epoch++
		c.identity = identity
	}
	c.inFlight++
	return loadTag{
		epoch:      c.epoch,
		identity:   identity,
		page:       page,
		appendPage: appendPage,
		basePage:   c.page,
	}, nil
}

func (c *eventCatalog) fetch(ctx context.Context, tag loadTag) error {
	result, err := c.dir.ListEvents(ctx, tag.identity, tag.page, c.pageSize)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight--

	if !c.current(tag) {
		c.logger.Debug("discarding stale catalog page", "page", tag.page, "append", tag.appendPage)
		return domain.ErrSuperseded
	}
	if err != nil {
		c.err = fmt.Errorf("load events page %d: %w", tag.page, err)
		return c.err
	}
	if result == nil {
		result = domain.NewCatalogPage(nil, tag.page, c.pageSize)
	}

	if tag.appendPage {
		c.events = append(c.events, result.Events...)
	} else {
		c.events = append([]*domain.Event{}, result.Events...)
	}
	c.loaded = tag.identity
	c.page = tag.page
	c.hasMore = result.HasMore
	c.err = nil
	c.logger.Debug("catalog page applied", "page", tag.page, "count", len(result.Events), "total", len(c.events), "has_more", c.hasMore)
	return nil
}

// current reports whether tag still matches the catalog state. Callers hold c.mu.
func (c *eventCatalog) current(tag loadTag) bool {
	if tag.epoch != c.epoch || tag.identity != c.identity {
		return false
	}
	if tag.appendPage && (c.page != tag.basePage || c.loaded != tag.identity) {
		return false
	}
	return true
}
