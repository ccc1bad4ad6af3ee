package recommend_vehicle

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"moving-quote/internal/catalog"
	"moving-quote/internal/service/estimate"
)

type VehicleRecommender interface {
	Aggregate(category catalog.MoveCategory, quantities map[string]float64) (float64, float64)
	RecommendVehicle(volume, weight float64, category catalog.MoveCategory) (estimate.Recommendation, error)
}

type Resp struct {
	VolumeM3       float64                 `json:"volume_m3"`
	WeightKg       float64                 `json:"weight_kg"`
	Recommendation estimate.Recommendation `json:"recommendation"`
}

// RecommendVehicle пересчитывает объём/вес по отмеченным вещам и подбирает
// машину. Форма зовёт его на каждое изменение количества.
func RecommendVehicle(log *slog.Logger, rec VehicleRecommender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.recommend.RecommendVehicle"

		var req struct {
			Category string         `json:"category"`
			Items    map[string]any `json:"items"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "잘못된 JSON 형식입니다", http.StatusBadRequest)
			return
		}

		category := catalog.MoveCategory(req.Category)
		quantities := estimate.BuildRequest(map[string]any{"items": req.Items}).Quantities

		volume, weight := rec.Aggregate(category, quantities)

		recommendation, err := rec.RecommendVehicle(volume, weight, category)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("차량 추천 실패")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Resp{
			VolumeM3:       volume,
			WeightKg:       weight,
			Recommendation: recommendation,
		})
	}
}
