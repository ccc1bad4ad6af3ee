package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"moving-quote/internal/storage"
)

type TariffProvider interface {
	GetSpecialDays(ctx context.Context) ([]storage.SpecialDayRow, error)
	GetLongDistanceTariffs(ctx context.Context) ([]storage.LongDistanceRow, error)
}

func GetSpecialDaysAdmin(log *slog.Logger, tariffs TariffProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.GetSpecialDaysAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		days, err := tariffs.GetSpecialDays(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("ошибка получения надбавок за дату")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, days)
	}
}

func GetLongDistanceAdmin(log *slog.Logger, tariffs TariffProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.GetLongDistanceAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		routes, err := tariffs.GetLongDistanceTariffs(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("ошибка получения тарифов дальних маршрутов")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, routes)
	}
}
