package estimate

import (
	"fmt"

	"moving-quote/internal/catalog"
)

type RecommendationKind int

const (
	// RecommendNone — нечего везти, машина не нужна.
	RecommendNone RecommendationKind = iota
	// RecommendOK — найдена минимальная подходящая машина.
	RecommendOK
	// RecommendOverflow — груз не влезает ни в одну машину, показываем самую большую.
	RecommendOverflow
)

type Recommendation struct {
	Kind      RecommendationKind `json:"kind"`
	Vehicle   catalog.Vehicle    `json:"vehicle"`
	BasePrice int                `json:"base_price"`
	BaseMen   int                `json:"base_men"`
	BaseWomen int                `json:"base_women"`
	Reason    string             `json:"reason"`
}

// RecommendVehicle подбирает минимальную машину, в которую груз помещается и по
// полезному объёму (кузов * коэффициент загрузки), и по грузоподъёмности.
// Кандидаты идут по возрастанию кузова, побеждает первая подошедшая.
func (e *Engine) RecommendVehicle(volume, weight float64, category catalog.MoveCategory) (Recommendation, error) {
	const op = "estimate.RecommendVehicle"

	if volume <= 0 && weight <= 0 {
		return Recommendation{Kind: RecommendNone}, nil
	}

	candidates := e.catalog.VehiclesFor(category)
	if len(candidates) == 0 {
		return Recommendation{}, fmt.Errorf("%s: нет тарифов машин для категории %q", op, category)
	}

	for _, v := range candidates {
		usable := v.CapacityM3 * e.catalog.LoadingEfficiency
		if volume <= usable && weight <= v.WeightCapacityKg {
			return e.recommendation(RecommendOK, v, category, ""), nil
		}
	}

	// Не влезло никуда: всегда показываем самую большую машину категории,
	// даже если у средних машин не хватило другого измерения.
	largest := candidates[len(candidates)-1]
	return e.recommendation(RecommendOverflow, largest, category, overflowReason(largest, volume, weight, e.catalog.LoadingEfficiency)), nil
}

func (e *Engine) recommendation(kind RecommendationKind, v catalog.Vehicle, category catalog.MoveCategory, reason string) Recommendation {
	price, _ := e.catalog.Price(category, v.Name)

	baseWomen := 0
	if category == catalog.CategoryHome {
		baseWomen = price.BaseWomen
	}

	return Recommendation{
		Kind:      kind,
		Vehicle:   v,
		BasePrice: price.BasePrice,
		BaseMen:   price.BaseMen,
		BaseWomen: baseWomen,
		Reason:    reason,
	}
}

func overflowReason(v catalog.Vehicle, volume, weight, efficiency float64) string {
	usable := v.CapacityM3 * efficiency

	reason := fmt.Sprintf("%s 기준 초과:", v.Name)
	if volume > usable {
		reason += fmt.Sprintf(" 부피 %.1f㎥ 초과(적재 한도 %.1f㎥)", volume-usable, usable)
	}
	if weight > v.WeightCapacityKg {
		reason += fmt.Sprintf(" 무게 %.0fkg 초과(한도 %.0fkg)", weight-v.WeightCapacityKg, v.WeightCapacityKg)
	}
	return reason
}
