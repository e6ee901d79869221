package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/yusufkecer/wellness-backend/internal/config"
	"github.com/yusufkecer/wellness-backend/internal/db"
	"github.com/yusufkecer/wellness-backend/internal/handler"
	"github.com/yusufkecer/wellness-backend/internal/logger"
	"github.com/yusufkecer/wellness-backend/internal/middleware"
	"github.com/yusufkecer/wellness-backend/internal/repository"
	"github.com/yusufkecer/wellness-backend/internal/service"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, "wellness-backend")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable must be set")
	}

	ctx := context.Background()

	database, err := db.Connect(ctx, cfg, log)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer database.Close()

	if err := db.RunMigrations(ctx, database, log); err != nil {
		log.Fatal("migrations failed", zap.Error(err))
	}

	var prefRepo service.PreferenceRepository
	switch cfg.PreferencesBackend {
	case "mongo":
		client, err := db.ConnectMongo(ctx, cfg, log)
		if err != nil {
			log.Fatal("mongodb connection failed", zap.Error(err))
		}
		defer db.DisconnectMongo(client)
		prefRepo = repository.NewMongoPreferenceRepository(
			client.Database(cfg.MongoDatabase).Collection("preferences"),
		)
	default:
		prefRepo = repository.NewPreferenceRepository(database)
	}

	loginRL, predictRL := newLimiters(ctx, cfg, log)

	encoder, err := service.NewSymptomEncoder(cfg.PredictionEncoding)
	if err != nil {
		log.Fatal("invalid prediction encoding", zap.Error(err))
	}

	accountRepo := repository.NewAccountRepository(database)
	checkInSvc := service.NewCheckInService(repository.NewCheckInRepository(database), log)
	metricSvc := service.NewMetricService(repository.NewMetricRepository(database), log)
	settingsSvc := service.NewSettingsService(prefRepo, service.LoggingCapabilities{Logger: log}, log)
	predictionSvc := service.NewPredictionService(cfg.PredictionBaseURL, cfg.PredictionTimeout, encoder, log)

	authHandler := handler.NewAuthHandler(cfg.JWTSecret, accountRepo, log)
	metricHandler := handler.NewMetricHandler(metricSvc)
	checkInHandler := handler.NewCheckInHandler(checkInSvc, log)
	settingsHandler := handler.NewSettingsHandler(settingsSvc)
	predictionHandler := handler.NewPredictionHandler(predictionSvc)

	r := mux.NewRouter()

	// Global middleware: request log → CORS → security headers → body limit
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.BodyLimit)

	r.HandleFunc("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet, http.MethodOptions)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.APIKeyMiddleware(cfg.APIKey))

	api.Handle("/auth/register", http.HandlerFunc(authHandler.Register)).Methods(http.MethodPost, http.MethodOptions)
	api.Handle("/auth/login", middleware.RateLimit(loginRL, log)(http.HandlerFunc(authHandler.Login))).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/metrics/compute", metricHandler.Compute).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/sentiment", handler.AnalyzeSentiment).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/vocabulary", handler.SymptomVocabulary).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/checkins/prompt", checkInHandler.Prompt).Methods(http.MethodGet, http.MethodOptions)

	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))

	protected.HandleFunc("/metrics", metricHandler.Record).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/metrics", metricHandler.History).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/checkins", checkInHandler.Create).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/checkins", checkInHandler.List).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/checkins/export", checkInHandler.Export).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/settings", settingsHandler.Get).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/settings", settingsHandler.Save).Methods(http.MethodPut, http.MethodOptions)
	protected.HandleFunc("/settings/{field}/toggle", settingsHandler.Toggle).Methods(http.MethodPatch, http.MethodOptions)

	predict := middleware.RateLimit(predictRL, log)
	protected.Handle("/predict", predict(http.HandlerFunc(predictionHandler.Predict))).Methods(http.MethodPost, http.MethodOptions)
	protected.Handle("/predict/depression", predict(http.HandlerFunc(predictionHandler.Depression))).Methods(http.MethodPost, http.MethodOptions)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}

// newLimiters shares rate limits through Redis when REDIS_ADDR is set and
// falls back to per-process windows otherwise.
func newLimiters(ctx context.Context, cfg *config.Config, log *zap.Logger) (login, predict middleware.Limiter) {
	if cfg.RedisAddr != "" {
		client, err := db.ConnectRedis(ctx, cfg)
		if err == nil {
			log.Info("rate limits backed by redis", zap.String("addr", cfg.RedisAddr))
			return middleware.NewRedisLimiter(client, "ratelimit:login:", 5, 15*time.Minute),
				middleware.NewRedisLimiter(client, "ratelimit:predict:", 30, time.Minute)
		}
		log.Warn("redis unavailable, using in-memory rate limits", zap.Error(err))
	}
	return middleware.NewMemoryLimiter(5, 15*time.Minute), middleware.NewMemoryLimiter(30, time.Minute)
}
