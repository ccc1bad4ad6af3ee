package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"moving-quote/internal/storage"
)

type TariffUpdater interface {
	UpdateSpecialDays(ctx context.Context, days []storage.SpecialDayRow) error
	UpdateLongDistanceTariffs(ctx context.Context, tariffs []storage.LongDistanceRow) error
}

func UpdateSpecialDaysAdmin(log *slog.Logger, update TariffUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.UpdateSpecialDaysAdmin"

		var days []storage.SpecialDayRow
		if err := json.NewDecoder(r.Body).Decode(&days); err != nil {
			http.Error(w, "잘못된 JSON 형식입니다", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := update.UpdateSpecialDays(ctx, days); err != nil {
			log.Error("ошибка обновления надбавок за дату", "op", op, "error", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func UpdateLongDistanceAdmin(log *slog.Logger, update TariffUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.UpdateLongDistanceAdmin"

		var tariffs []storage.LongDistanceRow
		if err := json.NewDecoder(r.Body).Decode(&tariffs); err != nil {
			http.Error(w, "잘못된 JSON 형식입니다", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := update.UpdateLongDistanceTariffs(ctx, tariffs); err != nil {
			log.Error("ошибка обновления тарифов дальних маршрутов", "op", op, "error", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
