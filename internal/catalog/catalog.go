// Package catalog derives grouped and filtered views over the flat collection
// of catalog entries served by the portal's content collaborator. The views
// are pure: they are recomputed from the source collection on demand and never
// mutate it.
package catalog

import (
	"sort"
	"strings"
	"time"
)

// GeneralGroupKey collects entries that carry no book.
const GeneralGroupKey = "geral"

// Entry is one row of the external catalog. IDs are opaque.
type Entry struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Book            string    `json:"book"`
	BookDescription string    `json:"bookDescription"`
	Chapter         string    `json:"chapter"`
	Article         string    `json:"article"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Group is one book's worth of entries. Label and Description come from the
// first entry encountered for the key.
type Group struct {
	Key         string  `json:"key"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Entries     []Entry `json:"entries"`
}

// Criteria filters entries; the fields compose with logical AND. Status is
// "active", "inactive", or blank for both. A blank or whitespace-only Search
// matches everything.
type Criteria struct {
	Book   string
	Status string
	Search string
}

// GroupByBook buckets entries by book in a single pass. Group order is the
// order each key was first seen; entries keep source order within their group.
// Entries without a book fall into the sentinel general group. Display sorting
// is a separate step, see SortGroupsByLabel.
func GroupByBook(entries []Entry) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)

	for _, entry := range entries {
		key := strings.TrimSpace(entry.Book)
		label := key
		description := entry.BookDescription
		if key == "" {
			key = GeneralGroupKey
			label = "Geral"
			description = ""
		}

		at, ok := index[key]
		if !ok {
			index[key] = len(groups)
			groups = append(groups, Group{Key: key, Label: label, Description: description})
			at = index[key]
		}
		groups[at].Entries = append(groups[at].Entries, entry)
	}
	return groups
}

// SortGroupsByLabel orders groups alphabetically for display.
func SortGroupsByLabel(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Label < groups[j].Label
	})
}

// Filter returns the entries matching every set criterion.
func Filter(entries []Entry, criteria Criteria) []Entry {
	book := strings.TrimSpace(criteria.Book)
	status := strings.ToLower(strings.TrimSpace(criteria.Status))
	term := strings.ToLower(strings.TrimSpace(criteria.Search))

	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if book != "" && !matchesBook(entry, book) {
			continue
		}
		if status == "active" && !entry.Active {
			continue
		}
		if status == "inactive" && entry.Active {
			continue
		}
		if term != "" && !matchesTerm(entry, term) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// matchesBook compares an entry against a book criterion. The sentinel general
// key selects the bookless entries, so a key handed out by GroupByBook always
// filters to that group's members.
func matchesBook(entry Entry, book string) bool {
	entryBook := strings.TrimSpace(entry.Book)
	if strings.EqualFold(book, GeneralGroupKey) {
		return entryBook == ""
	}
	return strings.EqualFold(entryBook, book)
}

// matchesTerm reports whether any of the entry's text fields contains the
// lowercased term.
func matchesTerm(entry Entry, term string) bool {
	for _, field := range []string{entry.Title, entry.Description, entry.Book, entry.Chapter, entry.Article} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
