package generate_excel

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

type QuoteExcelGenerator interface {
	GenerateQuoteExcel(form map[string]any) ([]byte, error)
}

// GenerateQuoteExcel принимает ту же плоскую запись формы, что и расчёт,
// и отдаёт готовую смету файлом xlsx.
func GenerateQuoteExcel(log *slog.Logger, gen QuoteExcelGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.report.GenerateQuoteExcel"

		var form map[string]any
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			http.Error(w, "잘못된 JSON 형식입니다", http.StatusBadRequest)
			return
		}

		excelBytes, err := gen.GenerateQuoteExcel(form)
		if err != nil {
			log.Error("failed to generate quote excel", "op", op, "err", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		fileName := fmt.Sprintf("quote_%s.xlsx", time.Now().Format("2006-01-02_150405"))

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(excelBytes)
	}
}
