package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/minseokang/walkmate/internal/bot"
	"github.com/minseokang/walkmate/internal/bot/handlers"
	"github.com/minseokang/walkmate/internal/breeds"
	"github.com/minseokang/walkmate/internal/config"
	"github.com/minseokang/walkmate/internal/database"
	"github.com/minseokang/walkmate/internal/logger"
	"github.com/minseokang/walkmate/internal/repository"
	"github.com/minseokang/walkmate/internal/services"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting WalkMate Bot...")

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	log.Println("Configuration loaded successfully")

	breedTable, err := breeds.Load()
	if err != nil {
		log.Fatalf("Failed to load breed table: %v", err)
	}
	log.Printf("Breed reference table loaded (%d breeds)", breedTable.Len())

	db, err := database.NewPostgresDB(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Database connection established and migrations completed")

	// Initialize services
	userService := services.NewUserService(repository.NewUserRepository(db))
	dogService := services.NewDogService(repository.NewDogRepository(db), breedTable)
	activityStore := repository.NewActivityRepository(db)
	activityService := services.NewActivityService(activityStore)
	leaderboardService := services.NewLeaderboardService(activityStore)
	log.Println("Services initialized successfully")

	deps := handlers.Dependencies{
		UserService:    userService,
		DogService:     dogService,
		ActivitySvc:    activityService,
		LeaderboardSvc: leaderboardService,
		Breeds:         breedTable,
		Sessions:       handlers.NewSessionRegistry(),
	}

	// Initialize bot
	telegramBot, err := bot.NewBot(cfg, deps)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}
	log.Println("Bot initialized successfully")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Start bot in a goroutine
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Println("Starting bot...")
		if err := telegramBot.Start(ctx); err != nil && ctx.Err() == nil {
			log.Printf("Bot stopped with error: %v", err)
			os.Exit(1)
		}
	}()

	log.Println("Bot is running. Press Ctrl+C to stop.")
	wg.Wait()
}
