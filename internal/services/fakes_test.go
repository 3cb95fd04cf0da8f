package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"eventboard/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

type listCall struct {
	identity string
	page     int
	size     int
}

// fakeDirectory implements domain.EventDirectory with per-method hooks.
type fakeDirectory struct {
	listFn     func(ctx context.Context, identity string, page, size int) (*domain.CatalogPage, error)
	getFn      func(ctx context.Context, id, identity string) (*domain.Event, error)
	registerFn func(ctx context.Context, identity, eventID string) error

	mu            sync.Mutex
	listCalls     []listCall
	registerCalls []string
	getCalls      int
}

func (f *fakeDirectory) ListEvents(ctx context.Context, identity string, page, size int) (*domain.CatalogPage, error) {
	f.mu.Lock()
	f.listCalls = append(f.listCalls, listCall{identity: identity, page: page, size: size})
	f.mu.Unlock()
	if f.listFn == nil {
		return domain.NewCatalogPage(nil, page, size), nil
	}
	return f.listFn(ctx, identity, page, size)
}

func (f *fakeDirectory) GetEvent(ctx context.Context, id, identity string) (*domain.Event, error) {
	f.mu.Lock()
	f.getCalls++
	f.mu.Unlock()
	if f.getFn == nil {
		return nil, domain.ErrNotFound
	}
	return f.getFn(ctx, id, identity)
}

func (f *fakeDirectory) Register(ctx context.Context, identity, eventID string) error {
	f.mu.Lock()
	f.registerCalls = append(f.registerCalls, identity+"/"+eventID)
	f.mu.Unlock()
	if f.registerFn == nil {
		return nil
	}
	return f.registerFn(ctx, identity, eventID)
}

func (f *fakeDirectory) CreateEvent(_ context.Context, draft *domain.EventDraft) (*domain.Event, error) {
	return &domain.Event{ID: "new", Name: draft.Name}, nil
}

func (f *fakeDirectory) UploadImage(_ context.Context, filename string, _ io.Reader) (string, error) {
	return "/uploads/" + filename, nil
}

func (f *fakeDirectory) listCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listCalls)
}

func (f *fakeDirectory) registerCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.registerCalls)
}

// makeEvents returns n upcoming events with ids prefix-0..prefix-(n-1).
func makeEvents(prefix string, n int) []*domain.Event {
	start := time.Date(2099, 1, 1, 9, 0, 0, 0, time.UTC)
	events := make([]*domain.Event, n)
	for i := range events {
		events[i] = &domain.Event{
			ID:        fmt.Sprintf("%s-%d", prefix, i),
			Name:      fmt.Sprintf("Event %s %d", prefix, i),
			StartDate: start,
			EndDate:   start.Add(2 * time.Hour),
			Capacity:  10,
		}
	}
	return events
}

// pages serves fixed page sizes per page index for any identity.
func pages(prefix string, counts ...int) func(context.Context, string, int, int) (*domain.CatalogPage, error) {
	return func(_ context.Context, _ string, page, size int) (*domain.CatalogPage, error) {
		if page >= len(counts) {
			return domain.NewCatalogPage(nil, page, size), nil
		}
		return domain.NewCatalogPage(makeEvents(fmt.Sprintf("%s%d", prefix, page), counts[page]), page, size), nil
	}
}

// failingSessions is a SessionStore whose writes always fail.
type failingSessions struct{}

func (failingSessions) Get(context.Context, string, string) (string, error) {
	return "", domain.ErrNotFound
}

func (failingSessions) Put(context.Context, string, string, string) error {
	return errors.New("disk full")
}
