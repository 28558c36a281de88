package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ovenworks/bakeplan/internal/handler"
	"github.com/ovenworks/bakeplan/internal/planner"
	"github.com/ovenworks/bakeplan/internal/store"
	"github.com/ovenworks/bakeplan/internal/utils"
	"github.com/ovenworks/bakeplan/pkg/auth"
)

func main() {
	log := logrus.New()

	if err := godotenv.Load(".env"); err != nil {
		log.Infof("no .env file found — relying on environment: %v", err)
	}

	addr := ":" + utils.GetEnv("PORT", "8080")
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL missing")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	authProvider := auth.NewJWT(os.Getenv("AUTH_SECRET"))
	pl := planner.New(store.NewOrders(pool), store.NewCatalog(pool), store.NewRecipes(pool))
	appRouter := handler.NewRouter(authProvider, pl, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Mount("/", appRouter)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.WithField("addr", addr).Info("starting server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server failed: %v", err)
	}
}
