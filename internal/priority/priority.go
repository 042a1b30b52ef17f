// Package priority owns the ordered list of priority study documents: the
// canonical default ordering, the reconciliation pipeline that turns arbitrary
// persisted input into a valid ordering, and the repository contract shared by
// every surface that renders or mutates the list.
package priority

import "context"

// canonical is the fixed default ordering. It is the source of truth for which
// titles are valid entries and the fallback order for anything missing.
var canonical = []string{
	"Constituição Federal",
	"Código Civil",
	"Código de Processo Civil",
	"Código Penal",
	"Código de Processo Penal",
	"Consolidação das Leis do Trabalho",
	"Código Tributário Nacional",
	"Código de Defesa do Consumidor",
}

// Size is the fixed length of every reconciled ordering.
func Size() int {
	return len(canonical)
}

// CanonicalDefault returns a fresh copy of the default ordering.
func CanonicalDefault() []string {
	out := make([]string, len(canonical))
	copy(out, canonical)
	return out
}

// Reconcile turns an arbitrary input sequence into a valid ordering: entries
// outside the canonical set are discarded, duplicates keep their first
// occurrence, and any canonical entry still missing is appended in canonical
// relative order. An input that filters down to nothing yields the canonical
// default, never an empty list. The result always has exactly Size() entries.
func Reconcile(input []string) []string {
	member := make(map[string]struct{}, len(canonical))
	for _, title := range canonical {
		member[title] = struct{}{}
	}

	seen := make(map[string]struct{}, len(canonical))
	filtered := make([]string, 0, len(canonical))
	for _, title := range input {
		if _, ok := member[title]; !ok {
			continue
		}
		if _, ok := seen[title]; ok {
			continue
		}
		seen[title] = struct{}{}
		filtered = append(filtered, title)
	}

	if len(filtered) == 0 {
		return CanonicalDefault()
	}

	for _, title := range canonical {
		if _, ok := seen[title]; !ok {
			filtered = append(filtered, title)
		}
	}
	return filtered
}

// Repository is the persistence contract for the priority ordering. Load and
// Save never fail from the caller's point of view: storage problems are
// absorbed and logged by the implementation, which falls back to the canonical
// default so a surface is never left without an ordering. Save persists the
// reconciled list and broadcasts a change signal before returning; Load never
// broadcasts.
type Repository interface {
	Load(ctx context.Context) []string
	Save(ctx context.Context, order []string) []string
	Reset(ctx context.Context) []string
	// Subscribe registers fn to run on every change broadcast, including
	// broadcasts originated by the subscriber itself. The returned function
	// cancels the subscription.
	Subscribe(fn func()) (unsubscribe func())
}
