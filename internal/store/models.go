package store

import "vademecum/api/internal/corpus"

// DocumentSummary is the browsing surface's view of a corpus document: enough
// to render the document picker without loading the full tree.
type DocumentSummary struct {
	Key          string      `json:"key"`
	Title        string      `json:"title"`
	Kind         corpus.Kind `json:"kind"`
	TitleCount   int         `json:"titleCount"`
	ArticleCount int         `json:"articleCount"`
}
