package app

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"sync"
	"testing"

	"vademecum/api/internal/catalog"
	"vademecum/api/internal/config"
	"vademecum/api/internal/corpus"
	"vademecum/api/internal/priority"
	"vademecum/api/internal/store"
)

type fakeCorpusStore struct {
	listDocumentsFn  func(context.Context) ([]store.DocumentSummary, error)
	getDocumentFn    func(context.Context, string) (corpus.Document, error)
	insertDocumentFn func(context.Context, corpus.Document, int) error
	countDocumentsFn func(context.Context) (int, error)
	pingFn           func(context.Context) error
}

func (f *fakeCorpusStore) ListDocuments(ctx context.Context) ([]store.DocumentSummary, error) {
	if f.listDocumentsFn != nil {
		return f.listDocumentsFn(ctx)
	}
	return nil, nil
}
func (f *fakeCorpusStore) GetDocument(ctx context.Context, key string) (corpus.Document, error) {
	if f.getDocumentFn != nil {
		return f.getDocumentFn(ctx, key)
	}
	return corpus.Document{}, sql.ErrNoRows
}
func (f *fakeCorpusStore) InsertDocument(ctx context.Context, doc corpus.Document, sortOrder int) error {
	if f.insertDocumentFn != nil {
		return f.insertDocumentFn(ctx, doc, sortOrder)
	}
	return nil
}
func (f *fakeCorpusStore) CountDocuments(ctx context.Context) (int, error) {
	if f.countDocumentsFn != nil {
		return f.countDocumentsFn(ctx)
	}
	return 1, nil
}
func (f *fakeCorpusStore) Ping(ctx context.Context) error {
	if f.pingFn != nil {
		return f.pingFn(ctx)
	}
	return nil
}

type fakeCatalogSource struct {
	fetchEntriesFn func(context.Context) ([]catalog.Entry, error)
}

func (f *fakeCatalogSource) FetchEntries(ctx context.Context) ([]catalog.Entry, error) {
	if f.fetchEntriesFn != nil {
		return f.fetchEntriesFn(ctx)
	}
	return nil, nil
}

// fakePriorityRepo keeps the ordering in memory and broadcasts synchronously,
// so a test can observe the full save-then-broadcast cycle without Redis.
type fakePriorityRepo struct {
	mu        sync.Mutex
	order     []string
	listeners []func()
	pingErr   error
}

func (f *fakePriorityRepo) Load(context.Context) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.order == nil {
		return priority.CanonicalDefault()
	}
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

func (f *fakePriorityRepo) Save(_ context.Context, order []string) []string {
	reconciled := priority.Reconcile(order)
	f.mu.Lock()
	f.order = reconciled
	listeners := make([]func(), len(f.listeners))
	copy(listeners, f.listeners)
	f.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
	out := make([]string, len(reconciled))
	copy(out, reconciled)
	return out
}

func (f *fakePriorityRepo) Reset(ctx context.Context) []string {
	return f.Save(ctx, priority.CanonicalDefault())
}

func (f *fakePriorityRepo) Subscribe(fn func()) func() {
	f.mu.Lock()
	f.listeners = append(f.listeners, fn)
	f.mu.Unlock()
	return func() {}
}

func (f *fakePriorityRepo) Ping(context.Context) error {
	return f.pingErr
}

func newTestService(t *testing.T, fs *fakeCorpusStore, repo *fakePriorityRepo, fc *fakeCatalogSource) *Service {
	t.Helper()
	if fs == nil {
		fs = &fakeCorpusStore{}
	}
	if repo == nil {
		repo = &fakePriorityRepo{}
	}
	if fc == nil {
		fc = &fakeCatalogSource{}
	}
	svc := newService(config.Config{}, fs, repo, fc)
	if err := svc.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	t.Cleanup(svc.Close)
	return svc
}

func TestBootstrapSeedsEmptyCorpus(t *testing.T) {
	var inserted []string
	fs := &fakeCorpusStore{
		countDocumentsFn: func(context.Context) (int, error) { return 0, nil },
		insertDocumentFn: func(_ context.Context, doc corpus.Document, sortOrder int) error {
			if sortOrder != len(inserted) {
				t.Errorf("document %s inserted with sort order %d, want %d", doc.Key, sortOrder, len(inserted))
			}
			inserted = append(inserted, doc.Key)
			return nil
		},
	}
	newTestService(t, fs, nil, nil)

	want := []string{"cf88", "cc02", "cdc"}
	if !reflect.DeepEqual(inserted, want) {
		t.Errorf("seeded keys %v, want %v", inserted, want)
	}
}

func TestBootstrapSkipsPopulatedCorpus(t *testing.T) {
	fs := &fakeCorpusStore{
		countDocumentsFn: func(context.Context) (int, error) { return 3, nil },
		insertDocumentFn: func(_ context.Context, doc corpus.Document, _ int) error {
			t.Errorf("unexpected insert of %s into a populated corpus", doc.Key)
			return nil
		},
	}
	newTestService(t, fs, nil, nil)
}

func TestSeedDocumentsContainCanonicalArticles(t *testing.T) {
	docs := seedDocuments()
	byKey := map[string]corpus.Document{}
	for _, doc := range docs {
		byKey[doc.Key] = doc
	}

	cc, ok := byKey["cc02"]
	if !ok {
		t.Fatal("seed is missing the Código Civil")
	}
	if _, found := corpus.Resolve("1.230", &cc); !found {
		t.Error("article 1.230 not resolvable in the seeded Código Civil")
	}
	cf, ok := byKey["cf88"]
	if !ok {
		t.Fatal("seed is missing the Constituição Federal")
	}
	if article, found := corpus.Resolve("5", &cf); !found || article.Number != "5º" {
		t.Errorf("article 5º not resolvable in the seeded Constituição, got %+v found=%v", article, found)
	}
}

func TestMovePriorityRejectsUnknownDirection(t *testing.T) {
	svc := newTestService(t, nil, nil, nil)

	_, err := svc.MovePriority(context.Background(), 0, "sideways")
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected a DomainError, got %v", err)
	}
	if domainErr.Status != 422 || domainErr.Code != "VALIDATION_ERROR" {
		t.Errorf("unexpected error %d %s", domainErr.Status, domainErr.Code)
	}
}

func TestMovePrioritySwapsNeighbours(t *testing.T) {
	repo := &fakePriorityRepo{}
	svc := newTestService(t, nil, repo, nil)

	payload, err := svc.MovePriority(context.Background(), 1, "up")
	if err != nil {
		t.Fatalf("MovePriority failed: %v", err)
	}
	order := payload["order"].([]string)
	canonical := priority.CanonicalDefault()
	if order[0] != canonical[1] || order[1] != canonical[0] {
		t.Errorf("expected first two entries swapped, got %v", order[:2])
	}
	if payload["size"] != priority.Size() {
		t.Errorf("payload size = %v, want %d", payload["size"], priority.Size())
	}
}

func TestResetPriorityRestoresCanonical(t *testing.T) {
	repo := &fakePriorityRepo{}
	svc := newTestService(t, nil, repo, nil)

	if _, err := svc.MovePriority(context.Background(), 0, "down"); err != nil {
		t.Fatalf("MovePriority failed: %v", err)
	}
	payload := svc.ResetPriority(context.Background())
	if !reflect.DeepEqual(payload["order"], priority.CanonicalDefault()) {
		t.Errorf("reset order = %v, want canonical", payload["order"])
	}
}

func TestSavePriorityOrderReconciles(t *testing.T) {
	svc := newTestService(t, nil, nil, nil)

	payload := svc.SavePriorityOrder(context.Background(), []string{"Código Penal", "not a code", "Código Penal"})
	order := payload["order"].([]string)
	if len(order) != priority.Size() {
		t.Fatalf("saved order has %d entries, want %d", len(order), priority.Size())
	}
	if order[0] != "Código Penal" {
		t.Errorf("expected Código Penal first, got %q", order[0])
	}
}

func TestResolveArticle(t *testing.T) {
	doc := corpus.Document{
		Key:   "cc02",
		Title: "Código Civil",
		Titles: []corpus.Title{{
			ID: "t1",
			Articles: []corpus.Article{
				{ID: "art-3", Number: "3º", Text: "..."},
				{ID: "art-1230", Number: "1.230", Text: "..."},
			},
		}},
	}
	fs := &fakeCorpusStore{
		getDocumentFn: func(_ context.Context, key string) (corpus.Document, error) {
			if key != "cc02" {
				return corpus.Document{}, sql.ErrNoRows
			}
			return doc, nil
		},
	}
	svc := newTestService(t, fs, nil, nil)

	payload, err := svc.ResolveArticle(context.Background(), "cc02", "1230")
	if err != nil {
		t.Fatalf("ResolveArticle failed: %v", err)
	}
	if payload["found"] != true || payload["articleId"] != "art-1230" {
		t.Errorf("unexpected payload %v", payload)
	}

	payload, err = svc.ResolveArticle(context.Background(), "cc02", "9999")
	if err != nil {
		t.Fatalf("ResolveArticle failed: %v", err)
	}
	if payload["found"] != false {
		t.Errorf("expected found=false for a missing article, got %v", payload)
	}

	if _, err := svc.ResolveArticle(context.Background(), "missing", "1"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows for an unknown document, got %v", err)
	}
}

func TestCatalogUnavailable(t *testing.T) {
	fc := &fakeCatalogSource{
		fetchEntriesFn: func(context.Context) ([]catalog.Entry, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := newTestService(t, nil, nil, fc)

	_, err := svc.Catalog(context.Background(), "", "", "")
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected a DomainError, got %v", err)
	}
	if domainErr.Status != 502 || domainErr.Code != "CATALOG_UNAVAILABLE" {
		t.Errorf("unexpected error %d %s", domainErr.Status, domainErr.Code)
	}
}

func TestCatalogFiltersEntries(t *testing.T) {
	fc := &fakeCatalogSource{
		fetchEntriesFn: func(context.Context) ([]catalog.Entry, error) {
			return []catalog.Entry{
				{ID: "e1", Title: "Da Posse", Book: "Livro III", Active: true},
				{ID: "e2", Title: "Do Penhor", Book: "Livro III", Active: false},
				{ID: "e3", Title: "Das Pessoas", Book: "Livro I", Active: true},
			}, nil
		},
	}
	svc := newTestService(t, nil, nil, fc)

	payload, err := svc.Catalog(context.Background(), "Livro III", "active", "")
	if err != nil {
		t.Fatalf("Catalog failed: %v", err)
	}
	entries := payload["entries"].([]catalog.Entry)
	if len(entries) != 1 || entries[0].ID != "e1" {
		t.Errorf("unexpected entries %v", entries)
	}
	if payload["total"] != 1 {
		t.Errorf("total = %v, want 1", payload["total"])
	}
}

func TestCatalogBooksGroupsAndSorts(t *testing.T) {
	fc := &fakeCatalogSource{
		fetchEntriesFn: func(context.Context) ([]catalog.Entry, error) {
			return []catalog.Entry{
				{ID: "e1", Book: "Livro III"},
				{ID: "e2", Book: "Livro I"},
				{ID: "e3"},
			}, nil
		},
	}
	svc := newTestService(t, nil, nil, fc)

	payload, err := svc.CatalogBooks(context.Background())
	if err != nil {
		t.Fatalf("CatalogBooks failed: %v", err)
	}
	groups := payload["books"].([]catalog.Group)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	labels := []string{groups[0].Label, groups[1].Label, groups[2].Label}
	if !reflect.DeepEqual(labels, []string{"Geral", "Livro I", "Livro III"}) {
		t.Errorf("unexpected group order %v", labels)
	}
}

func TestPriorityBroadcastReachesPanel(t *testing.T) {
	repo := &fakePriorityRepo{}
	svc := newTestService(t, nil, repo, nil)

	// A different consumer saving through the shared repository must be
	// visible through this service's panel without a reload call.
	other := priority.NewConsumer(repo, 0, nil)
	other.Activate(context.Background())
	defer other.Close()

	reordered := priority.CanonicalDefault()
	reordered[0], reordered[1] = reordered[1], reordered[0]
	repo.Save(context.Background(), reordered)

	payload, err := svc.MovePriority(context.Background(), 0, "down")
	if err != nil {
		t.Fatalf("MovePriority failed: %v", err)
	}
	order := payload["order"].([]string)
	canonical := priority.CanonicalDefault()
	// The panel saw the external reorder, so moving index 0 down operates on
	// the swapped list.
	if order[0] != canonical[0] || order[1] != canonical[1] {
		t.Errorf("panel did not pick up the external reorder, got %v", order[:2])
	}
}
