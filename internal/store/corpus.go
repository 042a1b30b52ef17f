package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"vademecum/api/internal/corpus"
	"vademecum/api/internal/util"
)

// PostgresStore is the corpus source: keyed lookup of full document trees.
// Trees are stored whole as JSONB; a document is loaded wholesale when
// selected and never partially.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) DB() *sql.DB {
	return s.db
}

// GetDocument returns the full tree for a document key. An unknown key
// surfaces as sql.ErrNoRows.
func (s *PostgresStore) GetDocument(ctx context.Context, key string) (corpus.Document, error) {
	var (
		doc  corpus.Document
		kind string
		body []byte
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT key, title, kind, body FROM corpus_documents WHERE key = $1
	`, key).Scan(&doc.Key, &doc.Title, &kind, &body)
	if err != nil {
		return corpus.Document{}, err
	}
	doc.Kind = corpus.Kind(kind)
	if err := json.Unmarshal(body, &doc.Titles); err != nil {
		return corpus.Document{}, fmt.Errorf("decode document %s: %w", key, err)
	}
	return doc, nil
}

// ListDocuments returns every document with its structure counts, in seed
// order.
func (s *PostgresStore) ListDocuments(ctx context.Context) ([]DocumentSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key, title, kind, body FROM corpus_documents ORDER BY sort_order, key
	`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	summaries := make([]DocumentSummary, 0)
	for rows.Next() {
		var (
			summary DocumentSummary
			kind    string
			body    []byte
		)
		if err := rows.Scan(&summary.Key, &summary.Title, &kind, &body); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		summary.Kind = corpus.Kind(kind)

		doc := corpus.Document{Key: summary.Key}
		if err := json.Unmarshal(body, &doc.Titles); err != nil {
			return nil, fmt.Errorf("decode document %s: %w", summary.Key, err)
		}
		summary.TitleCount = len(doc.Titles)
		summary.ArticleCount = doc.ArticleCount()
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

// InsertDocument stores a full document tree. Nodes without an ID get one
// assigned before the tree is persisted, so anchors stay stable across loads.
func (s *PostgresStore) InsertDocument(ctx context.Context, doc corpus.Document, sortOrder int) error {
	ensureIDs(&doc)
	body, err := json.Marshal(doc.Titles)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", doc.Key, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO corpus_documents (key, title, kind, body, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (key) DO UPDATE SET title=EXCLUDED.title, kind=EXCLUDED.kind, body=EXCLUDED.body, sort_order=EXCLUDED.sort_order
	`, doc.Key, doc.Title, string(doc.Kind), body, sortOrder)
	if err != nil {
		return fmt.Errorf("insert document %s: %w", doc.Key, err)
	}
	return nil
}

// CountDocuments reports how many documents the corpus holds.
func (s *PostgresStore) CountDocuments(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM corpus_documents`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return count, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func ensureIDs(doc *corpus.Document) {
	for ti := range doc.Titles {
		title := &doc.Titles[ti]
		if title.ID == "" {
			title.ID = util.NewID("tit")
		}
		for ai := range title.Articles {
			if title.Articles[ai].ID == "" {
				title.Articles[ai].ID = util.NewID("art")
			}
		}
		for ci := range title.Chapters {
			chapter := &title.Chapters[ci]
			if chapter.ID == "" {
				chapter.ID = util.NewID("cap")
			}
			for ai := range chapter.Articles {
				if chapter.Articles[ai].ID == "" {
					chapter.Articles[ai].ID = util.NewID("art")
				}
			}
		}
	}
}
