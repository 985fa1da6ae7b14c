package services

import (
	"sort"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/pkg/constants"
)

// Funciones puras sobre un snapshot de tickets. No mutan ni persisten nada.

// CountByStatus devuelve el conteo por estado, con los tres estados
// siempre presentes aunque estén en cero.
func CountByStatus(tickets []entities.MaintenanceTicket) map[string]int {
	counts := make(map[string]int, len(constants.AllStatuses))
	for _, status := range constants.AllStatuses {
		counts[status] = 0
	}
	for _, t := range tickets {
		counts[t.Status]++
	}
	return counts
}

// ReincidenceRanking agrupa por (unidad, móvil) y ordena por cantidad de
// ingresos históricos descendente. Los empates se desempatan por unidad y
// móvil ascendente para que el orden sea determinista.
func ReincidenceRanking(tickets []entities.MaintenanceTicket) []dto.RankingEntryDTO {
	type groupKey struct{ unit, vehicleID string }

	counts := make(map[groupKey]int)
	for _, t := range tickets {
		counts[groupKey{t.Unit, t.VehicleID}]++
	}

	ranking := make([]dto.RankingEntryDTO, 0, len(counts))
	for k, n := range counts {
		ranking = append(ranking, dto.RankingEntryDTO{
			Unit:      k.unit,
			VehicleID: k.vehicleID,
			Entries:   n,
		})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Entries != ranking[j].Entries {
			return ranking[i].Entries > ranking[j].Entries
		}
		if ranking[i].Unit != ranking[j].Unit {
			return ranking[i].Unit < ranking[j].Unit
		}
		return ranking[i].VehicleID < ranking[j].VehicleID
	})

	return ranking
}
