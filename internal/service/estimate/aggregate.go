package estimate

import (
	"math"

	"moving-quote/internal/catalog"
)

// Aggregate суммирует объём и вес отмеченных вещей по справочнику категории.
// Незнакомые позиции и количества <= 0 пропускаются; повторяющееся имя
// считается один раз. Итоги округляются до 2 знаков.
func (e *Engine) Aggregate(category catalog.MoveCategory, quantities map[string]float64) (float64, float64) {
	var volume, weight float64

	seen := make(map[string]bool)
	for _, item := range e.catalog.ItemsFor(category) {
		if seen[item.Name] {
			continue
		}
		seen[item.Name] = true

		qty := quantities[item.Name]
		if qty <= 0 {
			continue
		}

		volume += item.VolumeM3 * qty
		weight += item.WeightKg * qty
	}

	return round2(volume), round2(weight)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
