package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"Craneway/internal/calc/runway"
	"Craneway/internal/calc/runway/batch"
	"Craneway/internal/catalog"
	"Craneway/internal/importer"
	"Craneway/internal/middleware"
	"Craneway/internal/report"
	"Craneway/internal/repo"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	set := catalog.Load()

	var analysisRepo repo.Repository
	if db != nil {
		analysisRepo = repo.NewPostgresAnalysisDB(db)
	}

	limiter := middleware.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	runwayH := &runway.Handler{Set: set, Repo: analysisRepo}
	batchH := &batch.Handler{Set: set}
	importH := &importer.Handler{Set: set}
	reportH := &report.Handler{Set: set}

	api.HandleFunc("/tools/runway/calc", runwayH.Calc).Methods("POST")
	api.HandleFunc("/tools/runway/validate", runwayH.Validate).Methods("POST")
	api.HandleFunc("/tools/runway/factors", runwayH.Factors).Methods("GET")
	api.HandleFunc("/tools/runway/capacity", runwayH.Capacity).Methods("GET")
	api.HandleFunc("/tools/runway/beams", runwayH.Beams).Methods("GET")
	api.HandleFunc("/tools/runway/batch", batchH.Calc).Methods("POST")
	api.HandleFunc("/tools/runway/import", importH.Runway).Methods("POST")
	api.HandleFunc("/tools/runway/report/pdf", reportH.Generate).Methods("POST")
	api.HandleFunc("/tools/runway/history", runwayH.History).Methods("GET")
	api.HandleFunc("/tools/runway/history/{id:[0-9]+}", runwayH.HistoryByID).Methods("GET")

	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment")
	}

	var db *sql.DB
	if os.Getenv("DATABASE_URL") != "" {
		db = repo.InitDB()
		defer db.Close()
	} else {
		log.Println("DATABASE_URL not set, running without analysis history")
	}

	addr := ":" + os.Getenv("PORT")
	if addr == ":" {
		addr = ":8080"
	}

	mux := mux.NewRouter()
	log.Println("Starting server on", addr)
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
