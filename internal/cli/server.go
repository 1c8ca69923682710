package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizapi/internal/config"
	"quizapi/internal/db"
	"quizapi/internal/event"
	"quizapi/internal/handlers"
	"quizapi/internal/memory"
	"quizapi/internal/repository"
	"quizapi/internal/router"
	"quizapi/internal/service"

	"github.com/spf13/cobra"
)

// newServeCmd builds the CLI subcommand to start the HTTP API.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the quiz API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

func runServer(ctx context.Context) error {
	cfg := config.Load()

	var (
		questionRepo service.QuestionRepository
		quizRepo     service.QuizRepository
		resultRepo   service.ResultRepository
	)
	if cfg.MongoURI == "" {
		log.Println("MONGO_URI not set, using in-memory stores")
		questionRepo = memory.NewQuestionRepository()
		quizRepo = memory.NewQuizRepository()
		resultRepo = memory.NewResultRepository()
	} else {
		if err := db.InitMongo(cfg.MongoURI); err != nil {
			return err
		}
		database := db.Client.Database(cfg.MongoDB)
		questionRepo = repository.NewQuestionRepository(database)
		quizRepo = repository.NewQuizRepository(database)
		resultRepo = repository.NewResultRepository(database)
	}

	var publisher *event.Publisher
	if cfg.RabbitURI != "" && cfg.RabbitExchange != "" {
		var err error
		publisher, err = event.NewPublisher(cfg.RabbitURI, cfg.RabbitExchange)
		if err != nil {
			return err
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, lifecycle events will not be published")
	}

	questionService := service.NewQuestionService(questionRepo, quizRepo)
	quizService := service.NewQuizService(quizRepo, questionRepo)
	resultService := service.NewResultService(resultRepo)

	questionHandler := handlers.NewQuestionHandler(questionService)
	quizHandler := handlers.NewQuizHandler(quizService, resultService)

	r := router.New(questionHandler, quizHandler, publisher)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting quiz API on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
