package mock

import (
	"testing"

	"agridesk/internal/hub"
)

func TestRegisterSeedsAllModules(t *testing.T) {
	h := hub.New(hub.Options{})
	Register(h)

	want := []string{"cultures", "parcelles", "finances", "statistiques"}
	got := h.ActiveModules()
	if len(got) != len(want) {
		t.Fatalf("ActiveModules() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("module %d = %q, want %q", i, got[i], want[i])
		}
	}

	for _, name := range []string{"cultures", "parcelles", "finances"} {
		if len(h.GetModuleData(name).Items) == 0 {
			t.Errorf("module %s has no seed records", name)
		}
	}
}

func TestStatistiquesAggregatesParcelles(t *testing.T) {
	h := hub.New(hub.Options{})
	Register(h)

	stats := h.GetModuleData("statistiques").Items
	if len(stats) != len(Cultures()) {
		t.Fatalf("got %d stat rows, want one per culture (%d)", len(stats), len(Cultures()))
	}

	// Blé tendre spans two parcelles totalling 42.5 ha
	for _, r := range stats {
		name, _ := r.Get("name")
		if name != "Blé tendre" {
			continue
		}
		if s, _ := r.Get("surface_totale"); s != 42.5 {
			t.Errorf("surface_totale = %v, want 42.5", s)
		}
		if n, _ := r.Get("nb_parcelles"); n != int64(2) {
			t.Errorf("nb_parcelles = %v, want 2", n)
		}
		return
	}
	t.Error("no stat row for Blé tendre")
}
