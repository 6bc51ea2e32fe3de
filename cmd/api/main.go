package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/alexken/stockroom/internal/modules/auth"
	"github.com/alexken/stockroom/internal/modules/item"
	"github.com/alexken/stockroom/internal/modules/stock"
	"github.com/alexken/stockroom/internal/modules/store"
	"github.com/alexken/stockroom/internal/modules/user"
	"github.com/alexken/stockroom/internal/openapi"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; the platform may inject env vars directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatal(err)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	log.Println("connected to the database")

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Catalog: stores, items, stock ───────────────────────
	storeRepo := store.NewPostgresRepository(db)
	store.NewHandler(store.NewService(storeRepo)).RegisterRoutes(router)

	itemRepo := item.NewPostgresRepository(db)
	item.NewHandler(item.NewService(itemRepo)).RegisterRoutes(router)

	stockRepo := stock.NewPostgresRepository(db)
	stock.NewHandler(stock.NewService(stockRepo)).RegisterRoutes(router)

	// ── Accounts ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	user.NewHandler(user.NewService(userRepo)).RegisterRoutes(router)

	authService := auth.NewService(userRepo, []byte(os.Getenv("JWT_SECRET")))
	auth.NewHandler(authService, userRepo).RegisterRoutes(router)

	// ── Generated API documentation ─────────────────────────
	doc := openapi.New(
		"Stockroom API",
		"CRUD API for a database of item stock across multiple stores.",
		"0.1.0",
	)
	doc.AddSchemas(store.DocSchemas())
	doc.AddSchemas(item.DocSchemas())
	doc.AddSchemas(stock.DocSchemas())
	doc.AddPaths(store.DocPaths())
	doc.AddPaths(item.DocPaths())
	doc.AddPaths(stock.DocPaths())
	router.Get("/openapi.json", doc.Handler())

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{Addr: ":" + port, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("stockroom API listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
