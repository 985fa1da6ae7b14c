package entities

import "sort"

// Roster es el snapshot indexado del parque automotor. Se arma completo en
// cada lectura de la planilla; las consultas no tocan el archivo.
type Roster struct {
	entries []VehicleEntry
	byUnit  map[string][]string
	known   map[string]map[string]struct{}
}

func NewRoster(entries []VehicleEntry) *Roster {
	r := &Roster{
		entries: entries,
		byUnit:  make(map[string][]string),
		known:   make(map[string]map[string]struct{}),
	}
	for _, e := range entries {
		if _, ok := r.known[e.Unit]; !ok {
			r.known[e.Unit] = make(map[string]struct{})
		}
		if _, dup := r.known[e.Unit][e.VehicleID]; dup {
			continue
		}
		r.known[e.Unit][e.VehicleID] = struct{}{}
		r.byUnit[e.Unit] = append(r.byUnit[e.Unit], e.VehicleID)
	}
	return r
}

func (r *Roster) Units() []string {
	units := make([]string, 0, len(r.byUnit))
	for u := range r.byUnit {
		units = append(units, u)
	}
	sort.Strings(units)
	return units
}

func (r *Roster) VehicleIDs(unit string) []string {
	ids := append([]string(nil), r.byUnit[unit]...)
	sort.Strings(ids)
	return ids
}

func (r *Roster) Has(unit, vehicleID string) bool {
	vehicles, ok := r.known[unit]
	if !ok {
		return false
	}
	_, ok = vehicles[vehicleID]
	return ok
}

func (r *Roster) Len() int {
	return len(r.entries)
}
