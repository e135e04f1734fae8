// Command server exposes the run-submission HTTP API: POST a scenario,
// poll its status, fetch its CSV result once solved.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/j3soon/nurse-scheduling-go/internal/api"
	"github.com/j3soon/nurse-scheduling-go/internal/job"
	"github.com/j3soon/nurse-scheduling-go/internal/repository"
	runrepo "github.com/j3soon/nurse-scheduling-go/internal/repository/run"
)

func main() {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	scheduler, err := job.NewJobScheduler(redisAddr)
	if err != nil {
		log.Fatalf("failed to connect to job queue: %v", err)
	}
	defer scheduler.Close()

	var runs repository.RunRepository
	var db repository.Database
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		pg, err := runrepo.NewDB(dsn)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer pg.Close()
		runs = runrepo.NewRunRepository(pg.DB)
		db = pgDatabase{pg: pg, repo: runs}
	} else {
		log.Printf("DATABASE_URL not set, using in-memory run repository")
		runs = runrepo.NewMemoryRepository()
	}

	router := api.NewRouter(runs, scheduler, db)

	addr := os.Getenv("SERVER_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	go func() {
		log.Printf("starting server on %s...", addr)
		if err := router.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("shutting down server...")
	if err := router.Shutdown(); err != nil {
		log.Fatalf("server shutdown error: %v", err)
	}
}

// pgDatabase adapts runrepo's DB + RunRepository to repository.Database.
type pgDatabase struct {
	pg   *runrepo.DB
	repo repository.RunRepository
}

func (d pgDatabase) RunRepository() repository.RunRepository { return d.repo }
func (d pgDatabase) Close() error                             { return d.pg.Close() }
func (d pgDatabase) Health(ctx context.Context) error         { return d.pg.Health(ctx) }
