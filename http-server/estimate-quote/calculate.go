package estimate_quote

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"moving-quote/internal/service/estimate"
)

type QuoteCalculator interface {
	Estimate(req estimate.Request) estimate.Result
}

type Resp struct {
	Total     int                 `json:"total"`
	Lines     []estimate.CostLine `json:"lines"`
	Personnel estimate.Personnel  `json:"personnel"`
}

// CalculateQuote принимает плоскую запись формы и отдаёт полную смету.
// Расчёт чистый, ошибок сервера тут не бывает: фатальные случаи движок
// возвращает строкой ошибки внутри сметы.
func CalculateQuote(log *slog.Logger, calc QuoteCalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.estimate.CalculateQuote"

		var form map[string]any
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			http.Error(w, "잘못된 JSON 형식입니다", http.StatusBadRequest)
			return
		}

		req := estimate.BuildRequest(form)
		res := calc.Estimate(req)

		log.With(slog.String("op", op)).Debug("quote calculated",
			slog.String("category", string(req.Category)),
			slog.String("vehicle", req.VehicleName),
			slog.Int("total", res.Total),
		)

		render.JSON(w, r, Resp{
			Total:     res.Total,
			Lines:     res.Lines,
			Personnel: res.Personnel,
		})
	}
}
