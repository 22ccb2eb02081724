package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"gamedex/internal/adapter/api"
	"gamedex/internal/adapter/api/handler"
	apimiddleware "gamedex/internal/adapter/api/middleware"
	"gamedex/internal/adapter/api/router"
	"gamedex/internal/adapter/repository"
	domainrepo "gamedex/internal/domain/repository"
	"gamedex/internal/infrastructure/discord"
	"gamedex/internal/infrastructure/firebase"
	"gamedex/internal/infrastructure/igdb"
	"gamedex/internal/infrastructure/websocket"
	"gamedex/internal/usecase"
	"gamedex/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	// Service account from environment variable (for production), with a
	// file path fallback for local development.
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./serviceAccount.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	// Redis is optional. Without it, device preferences live in process
	// memory and vocabulary lists are fetched uncached.
	var redisClient *goredis.Client
	if cfg.RedisAddr != "" {
		redisClient = goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	}

	igdbClient := igdb.NewClient(igdb.ClientConfig{
		BaseURL:     cfg.IGDBBaseURL,
		ClientID:    cfg.IGDBClientID,
		AccessToken: cfg.IGDBAccessToken,
		Redis:       redisClient,
		VocabTTL:    time.Duration(cfg.VocabularyCacheTTL) * time.Second,
	})

	discordClient := discord.NewOAuthClient(discord.OAuthConfig{
		ClientID:     cfg.DiscordClientID,
		ClientSecret: cfg.DiscordClientSecret,
		RedirectURI:  cfg.DiscordRedirectURI,
	})
	stateSigner := discord.NewStateSigner(cfg.OAuthStateSecret)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	favoritesRepo := repository.NewFirestoreFavoritesRepository(firestoreClient)
	historyRepo := repository.NewFirestoreHistoryRepository(firestoreClient)

	var prefStore domainrepo.PreferenceStore
	if redisClient != nil {
		prefStore = repository.NewRedisPreferenceStore(redisClient)
	} else {
		prefStore = repository.NewMemoryPreferenceStore()
	}

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient, discordClient, stateSigner, prefStore)
	userUseCase := usecase.NewUserUseCase(userRepo, firebaseAuthClient, prefStore)
	catalogUseCase := usecase.NewCatalogUseCase(igdbClient)
	discoverUseCase := usecase.NewDiscoverUseCase(igdbClient, userRepo)
	favoritesUseCase := usecase.NewFavoritesUseCase(favoritesRepo)
	historyUseCase := usecase.NewHistoryUseCase(historyRepo)
	preferenceUseCase := usecase.NewPreferenceUseCase(prefStore)

	hub := websocket.NewHub()
	hub.Start(ctx)

	feedUseCase := usecase.NewFeedUseCase(igdbClient, discoverUseCase, hub)

	motion := make(chan usecase.MotionSample, 64)
	ticker := time.NewTicker(time.Duration(cfg.FeedRefreshMinutes) * time.Minute)
	defer ticker.Stop()
	go feedUseCase.Run(ctx, ticker.C, motion)

	handler.Setup(
		authUseCase,
		userUseCase,
		catalogUseCase,
		discoverUseCase,
		favoritesUseCase,
		historyUseCase,
		preferenceUseCase,
	)
	handler.SetupProxyHandler(igdbClient)
	handler.SetupFeedHandler(hub, motion)

	e := echo.New()
	e.Validator = api.NewValidator()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	router.Setup(e, authMiddleware)

	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
