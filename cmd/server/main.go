package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"rankedlog/internal/ai"
	"rankedlog/internal/config"
	"rankedlog/internal/db"
	"rankedlog/internal/game"
	"rankedlog/internal/httpapi"
	"rankedlog/internal/httpapi/handlers"
	"rankedlog/internal/store/rabbitmq"
	"rankedlog/internal/store/redisstore"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Print("No .env file found; using environment variables")
	}
	cfg := config.Load()

	gdb, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer db.Close(gdb)

	if err := gdb.AutoMigrate(&game.GameRecord{}, &game.ChampionSummary{}, &game.SummaryJob{}); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	repo := game.NewRepo(gdb)

	// Summary cache store: Redis when configured, the database otherwise.
	var summaryStore game.SummaryStore = game.NewGormSummaryStore(gdb)
	if cfg.RedisAddr != "" {
		rds := redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := rds.Ping(pingCtx)
		cancel()
		if err != nil {
			log.Fatalf("redis ping: %v", err)
		}
		defer rds.Close()
		summaryStore = rds
		log.Printf("Summary cache: redis at %s", cfg.RedisAddr)
	}

	summarizer, notes := buildCollaborator(cfg)
	summaries := game.NewSummaryService(summaryStore, summarizer)

	// Optional broker for async note-summary jobs.
	var rabbit *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		rabbit, err = rabbitmq.NewPublisher(cfg.RabbitURL, cfg.RabbitQueue)
		if err != nil {
			log.Fatalf("rabbit: %v", err)
		}
		defer rabbit.Close()
		log.Printf("Note summaries: async via queue %s", cfg.RabbitQueue)
	} else {
		log.Print("Note summaries: RABBIT_URL not set, generating synchronously")
	}

	h := handlers.NewHandler(repo, summaries, notes, rabbit)
	router := httpapi.NewRouter(h)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("ranked-log server listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Print("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// buildCollaborator wires the summarization provider from config through
// the provider registry. A missing key or disabled provider is not an
// error: the cache and note summaries fall back to their deterministic
// output.
func buildCollaborator(cfg config.Config) (game.Summarizer, handlers.NoteSummarizer) {
	if cfg.AIProvider == "none" {
		log.Print("AI: disabled; summaries use the deterministic fallback")
		return nil, nil
	}

	reg := ai.ProviderRegistry(cfg)
	provider, err := reg.Get(context.Background(), cfg.AIProvider, "")
	if err != nil {
		log.Printf("AI: %v; summaries use the deterministic fallback", err)
		return nil, nil
	}
	log.Printf("AI: provider=%s", cfg.AIProvider)
	return &ai.ChampionCoach{Provider: provider}, &ai.NoteCoach{Provider: provider}
}
