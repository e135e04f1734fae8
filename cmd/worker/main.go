// Command worker runs the Asynq server that executes queued solve jobs
// against the run repository, the consumer side of cmd/server's producer.
package main

import (
	"log"
	"os"

	"github.com/hibiken/asynq"

	"github.com/j3soon/nurse-scheduling-go/internal/job"
	"github.com/j3soon/nurse-scheduling-go/internal/repository"
	runrepo "github.com/j3soon/nurse-scheduling-go/internal/repository/run"
)

func main() {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	var runs repository.RunRepository
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		pg, err := runrepo.NewDB(dsn)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer pg.Close()
		runs = runrepo.NewRunRepository(pg.DB)
	} else {
		log.Fatalf("DATABASE_URL must be set: a worker sharing an in-memory repository with the API process would see nothing")
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{Concurrency: 4},
	)

	mux := asynq.NewServeMux()
	job.NewJobHandlers(runs).RegisterHandlers(mux)

	log.Printf("starting worker, redis=%s", redisAddr)
	if err := srv.Run(mux); err != nil {
		log.Fatalf("worker failed: %v", err)
	}
}
