// Package corpus models the hierarchical structure of a legal document
// (titles, chapters, articles) and locates articles from free-form
// numeric references. Documents are read-only once constructed; editing legal
// text is not this system's business.
package corpus

// Kind classifies a legal document.
type Kind string

const (
	KindConstitution  Kind = "constitution"
	KindCode          Kind = "code"
	KindLaw           Kind = "law"
	KindJurisprudence Kind = "jurisprudence"
	KindBarRule       Kind = "bar-rule"
	KindStatute       Kind = "statute"
)

// Document is the full tree of one legal document. The document exclusively
// owns its title subtree.
type Document struct {
	Key    string  `json:"key"`
	Title  string  `json:"title"`
	Kind   Kind    `json:"kind"`
	Titles []Title `json:"titles"`
}

// Title holds either a direct list of articles or a list of chapters, never
// both. Number is the human-facing roman or ordinal numbering and is
// display-only; ordering comes from source order.
type Title struct {
	ID       string    `json:"id"`
	Number   string    `json:"number"`
	Name     string    `json:"name"`
	Articles []Article `json:"articles,omitempty"`
	Chapters []Chapter `json:"chapters,omitempty"`
}

type Chapter struct {
	ID       string    `json:"id"`
	Number   string    `json:"number"`
	Name     string    `json:"name"`
	Articles []Article `json:"articles"`
}

// Article is a leaf of the tree. Number is the source text's numbering and may
// carry ordinal decorations ("3º") or thousands separators ("1.230").
type Article struct {
	ID         string   `json:"id"`
	Number     string   `json:"number"`
	Text       string   `json:"text"`
	Paragraphs []string `json:"paragraphs,omitempty"`
	Items      []string `json:"items,omitempty"`
}

// Walk visits every article in display order: titles in listed order, a
// title's direct articles before anything else, then its chapters in listed
// order with each chapter's articles in listed order. Walking stops early when
// fn returns true. This order is also the resolution order.
func (d *Document) Walk(fn func(Article) bool) {
	for _, title := range d.Titles {
		for _, article := range title.Articles {
			if fn(article) {
				return
			}
		}
		for _, chapter := range title.Chapters {
			for _, article := range chapter.Articles {
				if fn(article) {
					return
				}
			}
		}
	}
}

// ArticleCount reports the number of articles across the whole tree.
func (d *Document) ArticleCount() int {
	count := 0
	d.Walk(func(Article) bool {
		count++
		return false
	})
	return count
}
