package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	admget "moving-quote/http-server/admin/get"
	admupdate "moving-quote/http-server/admin/update"
	catalogget "moving-quote/http-server/catalog/get"
	estimate_quote "moving-quote/http-server/estimate-quote"
	report_excel "moving-quote/http-server/generate-report/generate-excel"
	recommend_vehicle "moving-quote/http-server/recommend-vehicle"
	"moving-quote/internal/catalog"
	"moving-quote/internal/config"
	"moving-quote/internal/middleware/auth"
	"moving-quote/internal/service/estimate"
	generate_excel "moving-quote/internal/service/generate-excel"
	"moving-quote/internal/storage/mysql"
)

func routes(
	cfg config.Config,
	log *slog.Logger,
	cat *catalog.Catalog,
	engine *estimate.Engine,
	excelService *generate_excel.QuoteExcelService,
	storage *mysql.Storage,
) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// справочники для формы заявки
	router.Get("/api/catalog/items", catalogget.GetItems(log, cat))
	router.Get("/api/catalog/vehicles", catalogget.GetVehicles(log, cat))

	// подбор машины пересчитывается на каждое изменение количества вещей
	router.Post("/api/estimate/vehicle", recommend_vehicle.RecommendVehicle(log, engine))

	// полная смета
	router.Post("/api/estimate", estimate_quote.CalculateQuote(log, engine))

	// смета файлом
	router.Post("/api/report/excel", report_excel.GenerateQuoteExcel(log, excelService))

	// админка тарифов
	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Get("/tariffs/special-days", admget.GetSpecialDaysAdmin(log, storage))
	adminRouter.Put("/tariffs/special-days", admupdate.UpdateSpecialDaysAdmin(log, storage))
	adminRouter.Get("/tariffs/long-distance", admget.GetLongDistanceAdmin(log, storage))
	adminRouter.Put("/tariffs/long-distance", admupdate.UpdateLongDistanceAdmin(log, storage))

	router.Mount("/api/admin", adminRouter)

	// статика формы (vue), если собрана рядом
	frontendDir := "./frontend-dist"
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Warn("папка фронтенда не найдена, отдаём только API", "path", frontendDir)
		return router
	}

	fileServer := http.StripPrefix("/", http.FileServer(http.Dir(frontendDir)))

	router.Handle("/assets/*", fileServer)
	router.Handle("/js/*", fileServer)
	router.Handle("/css/*", fileServer)
	router.Handle("/img/*", fileServer)

	// SPA fallback: любой другой путь → index.html
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, r.URL.Path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
