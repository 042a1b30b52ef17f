package app

import (
	"context"
	"log"
	"net/http"
	"strings"

	"vademecum/api/internal/catalog"
	"vademecum/api/internal/config"
	"vademecum/api/internal/corpus"
	"vademecum/api/internal/priority"
	"vademecum/api/internal/store"
)

type corpusStore interface {
	ListDocuments(context.Context) ([]store.DocumentSummary, error)
	GetDocument(context.Context, string) (corpus.Document, error)
	InsertDocument(context.Context, corpus.Document, int) error
	CountDocuments(context.Context) (int, error)
	Ping(ctx context.Context) error
}

type catalogSource interface {
	FetchEntries(context.Context) ([]catalog.Entry, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

type Service struct {
	cfg        config.Config
	corpus     corpusStore
	priorities priority.Repository
	catalog    catalogSource
	// panel is the service's own priority surface: the admin panel endpoints
	// mutate through it, and broadcasts keep it aligned with every other
	// consumer.
	panel *priority.Consumer
}

func New(cfg config.Config, corpusStore *store.PostgresStore, priorities priority.Repository, catalogSource *catalog.Client) *Service {
	return newService(cfg, corpusStore, priorities, catalogSource)
}

func newService(cfg config.Config, corpusStore corpusStore, priorities priority.Repository, catalogSource catalogSource) *Service {
	return &Service{
		cfg:        cfg,
		corpus:     corpusStore,
		priorities: priorities,
		catalog:    catalogSource,
		panel:      priority.NewConsumer(priorities, 0, func(message string) { log.Printf("priority: %s", message) }),
	}
}

// Bootstrap activates the priority panel and seeds the corpus when empty.
func (s *Service) Bootstrap(ctx context.Context) error {
	s.panel.Activate(ctx)

	count, err := s.corpus.CountDocuments(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for i, doc := range seedDocuments() {
		if err := s.corpus.InsertDocument(ctx, doc, i); err != nil {
			return err
		}
	}
	return nil
}

// Close cancels the panel's broadcast subscription.
func (s *Service) Close() {
	s.panel.Close()
}

func (s *Service) Ping(ctx context.Context) error {
	return s.corpus.Ping(ctx)
}

// PingPriorities checks the priority store's backend when it exposes one.
func (s *Service) PingPriorities(ctx context.Context) error {
	if p, ok := s.priorities.(pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// PriorityOrder reads the current reconciled ordering. Never fails: storage
// trouble degrades to the canonical default inside the repository.
func (s *Service) PriorityOrder(ctx context.Context) map[string]any {
	return map[string]any{
		"order": s.priorities.Load(ctx),
		"size":  priority.Size(),
	}
}

// SavePriorityOrder replaces the whole ordering. The input goes through
// reconciliation, so malformed or foreign entries degrade gracefully instead
// of failing.
func (s *Service) SavePriorityOrder(ctx context.Context, order []string) map[string]any {
	saved := s.priorities.Save(ctx, order)
	return map[string]any{
		"order": saved,
		"size":  priority.Size(),
	}
}

// MovePriority moves the entry at index one step up or down through the panel
// consumer. An out-of-bounds move is a no-op, not an error.
func (s *Service) MovePriority(ctx context.Context, index int, direction string) (map[string]any, error) {
	var dir priority.Direction
	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "up":
		dir = priority.MoveUp
	case "down":
		dir = priority.MoveDown
	default:
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "direction must be 'up' or 'down'", nil)
	}

	order := s.panel.Move(ctx, index, dir)
	return map[string]any{
		"order": order,
		"size":  priority.Size(),
	}, nil
}

// ResetPriority restores the canonical default ordering.
func (s *Service) ResetPriority(ctx context.Context) map[string]any {
	return map[string]any{
		"order": s.panel.Reset(ctx),
		"size":  priority.Size(),
	}
}

// SubscribePriority registers fn on the change broadcast; the SSE stream uses
// this so every connected surface re-reads after any consumer's save.
func (s *Service) SubscribePriority(fn func()) func() {
	return s.priorities.Subscribe(fn)
}

func (s *Service) ListCorpus(ctx context.Context) (map[string]any, error) {
	documents, err := s.corpus.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{"documents": documents}, nil
}

func (s *Service) GetCorpusDocument(ctx context.Context, key string) (map[string]any, error) {
	doc, err := s.corpus.GetDocument(ctx, key)
	if err != nil {
		return nil, err
	}
	return map[string]any{"document": doc}, nil
}

// ResolveArticle locates an article in a document by free-form numeric
// reference. A query that matches nothing is not an error; the payload simply
// reports found=false and the browsing surface shows nothing.
func (s *Service) ResolveArticle(ctx context.Context, key, query string) (map[string]any, error) {
	doc, err := s.corpus.GetDocument(ctx, key)
	if err != nil {
		return nil, err
	}

	article, found := corpus.Resolve(query, &doc)
	if !found {
		return map[string]any{
			"documentKey": key,
			"query":       query,
			"found":       false,
		}, nil
	}
	return map[string]any{
		"documentKey": key,
		"query":       query,
		"found":       true,
		"articleId":   article.ID,
		"number":      article.Number,
	}, nil
}

// Catalog fetches the collaborator's entries and applies the filter criteria.
func (s *Service) Catalog(ctx context.Context, book, status, search string) (map[string]any, error) {
	entries, err := s.fetchCatalog(ctx)
	if err != nil {
		return nil, err
	}
	filtered := catalog.Filter(entries, catalog.Criteria{Book: book, Status: status, Search: search})
	return map[string]any{
		"entries": filtered,
		"total":   len(filtered),
	}, nil
}

// CatalogBooks groups the collaborator's entries by book, sorted by label for
// display.
func (s *Service) CatalogBooks(ctx context.Context) (map[string]any, error) {
	entries, err := s.fetchCatalog(ctx)
	if err != nil {
		return nil, err
	}
	groups := catalog.GroupByBook(entries)
	catalog.SortGroupsByLabel(groups)
	return map[string]any{"books": groups}, nil
}

func (s *Service) fetchCatalog(ctx context.Context) ([]catalog.Entry, error) {
	entries, err := s.catalog.FetchEntries(ctx)
	if err != nil {
		log.Printf("catalog: fetch entries: %v", err)
		return nil, domainError(http.StatusBadGateway, "CATALOG_UNAVAILABLE", "Catalog source unavailable", nil)
	}
	return entries, nil
}
