// Package mock seeds the dashboard modules with the demonstration datasets
// the screens run on. There is no backing store; this is the data source.
package mock

import (
	"agridesk/internal/hub"
	"agridesk/internal/types"
)

// Register registers every dashboard module on the hub with its column
// projection and seed records.
func Register(h *hub.Hub) {
	h.RegisterModule(hub.Module{
		Name: "cultures",
		Columns: []types.Column{
			{Key: "id", Header: "ID"},
			{Key: "name", Header: "Culture"},
			{Key: "variete", Header: "Variété"},
			{Key: "surface", Header: "Surface (ha)"},
			{Key: "statut", Header: "Statut"},
		},
	}, Cultures())

	h.RegisterModule(hub.Module{
		Name: "parcelles",
		Columns: []types.Column{
			{Key: "id", Header: "ID"},
			{Key: "name", Header: "Parcelle"},
			{Key: "culture", Header: "Culture"},
			{Key: "surface", Header: "Surface (ha)"},
			{Key: "irrigation", Header: "Irrigation"},
		},
	}, Parcelles())

	h.RegisterModule(hub.Module{
		Name: "finances",
		Columns: []types.Column{
			{Key: "id", Header: "ID"},
			{Key: "name", Header: "Libellé"},
			{Key: "categorie", Header: "Catégorie"},
			{Key: "amount", Header: "Montant (€)"},
			{Key: "date", Header: "Date"},
		},
	}, Finances())

	h.RegisterModule(hub.Module{
		Name: "statistiques",
		Columns: []types.Column{
			{Key: "id", Header: "ID"},
			{Key: "name", Header: "Culture"},
			{Key: "surface_totale", Header: "Surface totale (ha)"},
			{Key: "nb_parcelles", Header: "Parcelles"},
		},
		Resolve: ResolveStatistiques,
	}, nil)

	// First pass fills statistiques from the seeds
	h.SyncAll()
}

// Cultures returns the seed records for the cultures screen.
func Cultures() []types.Record {
	rows := []struct {
		id      int64
		name    string
		variete string
		surface float64
		statut  string
	}{
		{1, "Blé tendre", "Rubisko", 42.5, "en croissance"},
		{2, "Maïs", "DKC4391", 35.0, "semé"},
		{3, "Colza", "ES Imperio", 18.2, "floraison"},
		{4, "Orge", "Etincel", 24.8, "récolté"},
	}
	out := make([]types.Record, len(rows))
	for i, r := range rows {
		out[i] = types.NewRecord(
			types.Field{Key: "id", Value: r.id},
			types.Field{Key: "name", Value: r.name},
			types.Field{Key: "variete", Value: r.variete},
			types.Field{Key: "surface", Value: r.surface},
			types.Field{Key: "statut", Value: r.statut},
		)
	}
	return out
}

// Parcelles returns the seed records for the parcelles screen.
func Parcelles() []types.Record {
	rows := []struct {
		id         int64
		name       string
		culture    string
		surface    float64
		irrigation string
	}{
		{1, "Les Grands Champs", "Blé tendre", 22.5, "non"},
		{2, "La Plaine", "Blé tendre", 20.0, "non"},
		{3, "Le Marais", "Maïs", 35.0, "oui"},
		{4, "Côte Sud", "Colza", 18.2, "non"},
		{5, "Le Clos", "Orge", 24.8, "non"},
	}
	out := make([]types.Record, len(rows))
	for i, r := range rows {
		out[i] = types.NewRecord(
			types.Field{Key: "id", Value: r.id},
			types.Field{Key: "name", Value: r.name},
			types.Field{Key: "culture", Value: r.culture},
			types.Field{Key: "surface", Value: r.surface},
			types.Field{Key: "irrigation", Value: r.irrigation},
		)
	}
	return out
}

// Finances returns the seed records for the finances screen.
func Finances() []types.Record {
	rows := []struct {
		id        int64
		name      string
		categorie string
		amount    float64
		date      string
	}{
		{1, "Semences blé", "intrants", 4200.0, "2025-10-12"},
		{2, "Engrais azoté", "intrants", 3150.5, "2025-11-03"},
		{3, "Vente orge récolte", "ventes", 18600.0, "2025-07-28"},
		{4, "Carburant", "matériel", 980.25, "2025-11-15"},
		{5, "Assurance récolte", "charges", 2400.0, "2025-01-10"},
	}
	out := make([]types.Record, len(rows))
	for i, r := range rows {
		out[i] = types.NewRecord(
			types.Field{Key: "id", Value: r.id},
			types.Field{Key: "name", Value: r.name},
			types.Field{Key: "categorie", Value: r.categorie},
			types.Field{Key: "amount", Value: r.amount},
			types.Field{Key: "date", Value: r.date},
		)
	}
	return out
}

// ResolveStatistiques recomputes the statistiques dataset from cultures and
// parcelles: one row per culture with its total parcel surface. Run by every
// sync pass, so edits on the other screens show up here.
func ResolveStatistiques(h *hub.Hub) ([]types.Record, error) {
	cultures := h.GetModuleData("cultures").Items
	parcelles := h.GetModuleData("parcelles").Items

	out := make([]types.Record, 0, len(cultures))
	for i, c := range cultures {
		name, _ := c.Get("name")
		var surface float64
		count := int64(0)
		for _, p := range parcelles {
			culture, _ := p.Get("culture")
			if culture != name {
				continue
			}
			if s, ok := p.Get("surface"); ok {
				if f, ok := s.(float64); ok {
					surface += f
				}
			}
			count++
		}
		out = append(out, types.NewRecord(
			types.Field{Key: "id", Value: int64(i + 1)},
			types.Field{Key: "name", Value: name},
			types.Field{Key: "surface_totale", Value: surface},
			types.Field{Key: "nb_parcelles", Value: count},
		))
	}
	return out, nil
}
