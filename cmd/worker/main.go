package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"rankedlog/internal/ai"
	"rankedlog/internal/config"
	"rankedlog/internal/db"
	"rankedlog/internal/game"
	"rankedlog/internal/store/rabbitmq"
)

func workerConcurrency() int {
	v := os.Getenv("WORKER_CONCURRENCY")
	if v == "" {
		return 2
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 2
	}
	if n > 50 {
		return 50
	}
	return n
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.RabbitURL == "" {
		log.Fatal("RABBIT_URL is required for the worker")
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer db.Close(gdb)

	repo := game.NewRepo(gdb)
	coach := noteCoach(cfg)

	conn, err := amqp.Dial(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("rabbit dial: %v", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("rabbit channel: %v", err)
	}
	defer ch.Close()

	if err := rabbitmq.DeclareQueues(ch, cfg.RabbitQueue); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	concurrency := workerConcurrency()
	if err := ch.Qos(concurrency, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("worker started, queue=%s concurrency=%d", cfg.RabbitQueue, concurrency)

	jobs := make(chan amqp.Delivery, concurrency*2)

	var wg sync.WaitGroup
	wg.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go func(workerID int) {
			defer wg.Done()
			for d := range jobs {
				var m rabbitmq.JobMessage
				if err := json.Unmarshal(d.Body, &m); err != nil || m.JobID == "" {
					log.Printf("worker=%d bad message: %v", workerID, err)
					_ = d.Nack(false, false)
					continue
				}

				start := time.Now()
				if err := handleJob(ctx, repo, coach, m.JobID); err != nil {
					log.Printf("worker=%d job %s failed cost=%s err=%v", workerID, m.JobID, time.Since(start), err)
					_ = d.Nack(false, false)
					continue
				}

				if err := d.Ack(false); err != nil {
					log.Printf("worker=%d ack failed job=%s err=%v", workerID, m.JobID, err)
				}
			}
		}(i)
	}

	for {
		select {
		case <-ctx.Done():
			log.Printf("worker shutting down")
			close(jobs)
			wg.Wait()
			return

		case d, ok := <-msgs:
			if !ok {
				log.Printf("delivery channel closed")
				time.Sleep(1 * time.Second)
				continue
			}
			jobs <- d
		}
	}
}

func noteCoach(cfg config.Config) *ai.NoteCoach {
	if cfg.AIProvider == "none" {
		log.Print("AI: disabled; using heuristic note summaries")
		return &ai.NoteCoach{}
	}
	provider, err := ai.ProviderRegistry(cfg).Get(context.Background(), cfg.AIProvider, "")
	if err != nil {
		log.Printf("AI: %v; using heuristic note summaries", err)
		return &ai.NoteCoach{}
	}
	return &ai.NoteCoach{Provider: provider}
}

// handleJob generates a record's one-time note summary. Provider failure is
// not a job failure: the heuristic summary is stored instead so the record
// is never left without one.
func handleJob(ctx context.Context, repo *game.Repo, coach *ai.NoteCoach, jobID string) error {
	_ = repo.MarkJobRunning(ctx, jobID)

	j, err := repo.GetJob(ctx, jobID)
	if err != nil {
		return err
	}

	rec, err := repo.Get(ctx, j.RecordID)
	if err != nil {
		if errors.Is(err, game.ErrNotFound) {
			// record deleted before the job ran; nothing left to do
			return repo.MarkJobSucceeded(ctx, jobID)
		}
		return err
	}
	if rec.AISummary != nil || rec.Notes == nil || *rec.Notes == "" {
		return repo.MarkJobSucceeded(ctx, jobID)
	}

	summary, err := coach.SummarizeNotes(ctx, *rec.Notes)
	if err != nil {
		summary = game.SummarizeNotes(*rec.Notes)
	}

	if err := repo.SetAISummaryOnce(ctx, rec.ID, summary); err != nil {
		_ = repo.MarkJobFailed(ctx, jobID, err.Error())
		return err
	}
	return repo.MarkJobSucceeded(ctx, jobID)
}
