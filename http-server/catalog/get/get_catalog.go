package get

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"moving-quote/internal/catalog"
)

// GetItems отдаёт вещи категории для формы заявки.
func GetItems(log *slog.Logger, cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.GetItems"

		category := catalog.MoveCategory(r.URL.Query().Get("category"))

		items := cat.ItemsFor(category)
		if len(items) == 0 {
			log.With(slog.String("op", op)).Warn("unknown category", slog.String("category", string(category)))
			http.Error(w, "알 수 없는 이사 종류입니다", http.StatusNotFound)
			return
		}

		render.JSON(w, r, items)
	}
}

// GetVehicles отдаёт машины с тарифами категории по возрастанию кузова.
func GetVehicles(log *slog.Logger, cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.GetVehicles"

		category := catalog.MoveCategory(r.URL.Query().Get("category"))

		vehicles := cat.VehiclesFor(category)
		if len(vehicles) == 0 {
			log.With(slog.String("op", op)).Warn("unknown category", slog.String("category", string(category)))
			http.Error(w, "알 수 없는 이사 종류입니다", http.StatusNotFound)
			return
		}

		render.JSON(w, r, vehicles)
	}
}
