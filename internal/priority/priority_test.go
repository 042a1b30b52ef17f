package priority

import (
	"reflect"
	"testing"
)

func TestReconcileEmptyReturnsCanonical(t *testing.T) {
	got := Reconcile(nil)
	if !reflect.DeepEqual(got, CanonicalDefault()) {
		t.Errorf("expected canonical default, got %v", got)
	}

	got = Reconcile([]string{})
	if !reflect.DeepEqual(got, CanonicalDefault()) {
		t.Errorf("expected canonical default for empty input, got %v", got)
	}
}

func TestReconcileDiscardsUnknownEntries(t *testing.T) {
	got := Reconcile([]string{"Código Penal", "Lei Seca", "Manual do Candidato"})
	if got[0] != "Código Penal" {
		t.Errorf("expected Código Penal first, got %s", got[0])
	}
	for _, title := range got {
		if title == "Lei Seca" || title == "Manual do Candidato" {
			t.Errorf("unknown entry %q survived reconciliation", title)
		}
	}
	if len(got) != Size() {
		t.Errorf("expected %d entries, got %d", Size(), len(got))
	}
}

func TestReconcileOnlyUnknownEntriesReturnsCanonical(t *testing.T) {
	got := Reconcile([]string{"Lei Seca", "Manual do Candidato"})
	if !reflect.DeepEqual(got, CanonicalDefault()) {
		t.Errorf("expected canonical default, got %v", got)
	}
}

func TestReconcileDeduplicatesKeepingFirstSeen(t *testing.T) {
	got := Reconcile([]string{"Código Civil", "Código Penal", "Código Civil", "Código Penal"})
	if got[0] != "Código Civil" || got[1] != "Código Penal" {
		t.Errorf("expected first-seen order preserved, got %v", got[:2])
	}
	seen := map[string]int{}
	for _, title := range got {
		seen[title]++
	}
	for title, count := range seen {
		if count > 1 {
			t.Errorf("entry %q appears %d times", title, count)
		}
	}
}

func TestReconcileCompletesPartialInputInCanonicalOrder(t *testing.T) {
	got := Reconcile([]string{"Código Penal"})
	if len(got) != Size() {
		t.Fatalf("expected %d entries, got %d", Size(), len(got))
	}
	if got[0] != "Código Penal" {
		t.Errorf("expected Código Penal first, got %s", got[0])
	}

	// The remainder must be every other canonical entry in canonical order.
	rest := got[1:]
	want := make([]string, 0, Size()-1)
	for _, title := range CanonicalDefault() {
		if title != "Código Penal" {
			want = append(want, title)
		}
	}
	if !reflect.DeepEqual(rest, want) {
		t.Errorf("expected canonical completion %v, got %v", want, rest)
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	inputs := [][]string{
		nil,
		{},
		{"Código Civil"},
		{"Código Penal", "Constituição Federal"},
		{"Código Civil", "Código Civil", "Lei Seca"},
		CanonicalDefault(),
		{"Código de Defesa do Consumidor", "Código Tributário Nacional", "Constituição Federal"},
	}
	for _, input := range inputs {
		once := Reconcile(input)
		twice := Reconcile(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("reconcile not idempotent for %v: %v != %v", input, once, twice)
		}
	}
}

func TestReconcileAlwaysYieldsFullValidOrdering(t *testing.T) {
	member := map[string]struct{}{}
	for _, title := range CanonicalDefault() {
		member[title] = struct{}{}
	}

	inputs := [][]string{
		nil,
		{"???"},
		{"Código Civil", "Código Civil"},
		{"Código Penal", "Lei Seca", "Código Penal", "Código Civil"},
	}
	for _, input := range inputs {
		got := Reconcile(input)
		if len(got) != Size() {
			t.Errorf("Reconcile(%v): expected %d entries, got %d", input, Size(), len(got))
		}
		seen := map[string]struct{}{}
		for _, title := range got {
			if _, ok := member[title]; !ok {
				t.Errorf("Reconcile(%v): %q is not canonical", input, title)
			}
			if _, ok := seen[title]; ok {
				t.Errorf("Reconcile(%v): duplicate %q", input, title)
			}
			seen[title] = struct{}{}
		}
	}
}

func TestCanonicalDefaultReturnsCopy(t *testing.T) {
	first := CanonicalDefault()
	first[0] = "mutated"
	second := CanonicalDefault()
	if second[0] == "mutated" {
		t.Error("CanonicalDefault leaked its backing array")
	}
}
