package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"aegiswhistle/backend/internal/api/handler"
	"aegiswhistle/backend/internal/casefile"
	"aegiswhistle/backend/internal/casehub"
	"aegiswhistle/backend/internal/localization"
	"aegiswhistle/backend/internal/lookup"
	"aegiswhistle/backend/internal/models"
	"aegiswhistle/backend/internal/notify"
	"aegiswhistle/backend/internal/session"
	"aegiswhistle/backend/internal/store"
)

// setupStore picks the case store: Postgres when DATABASE_DSN is set,
// otherwise the in-memory store (state is lost on restart, which is the
// default demo behavior).
func setupStore() store.CaseStore {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Println("DATABASE_DSN not set, using in-memory case store")
		return store.NewMemoryStore()
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	dbStore := store.NewDBStore(db)
	if err := dbStore.AutoMigrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database connection established, migrations complete.")
	return dbStore
}

// setupEventBus wires Redis pub/sub when REDIS_ADDR is set.
func setupEventBus() casehub.EventBus {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	log.Println("Redis connection established, case events will be shared between instances.")
	return store.NewRedisEventBus(rdb)
}

// setupNotifier always logs; a Telegram alert channel is added on top when
// configured.
func setupNotifier() notify.Notifier {
	notifiers := notify.MultiNotifier{notify.LogNotifier{}}

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatIDStr := os.Getenv("TELEGRAM_ALERT_CHAT_ID")
	if token != "" && chatIDStr != "" {
		chatID, err := strconv.ParseInt(chatIDStr, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_ALERT_CHAT_ID: %v", err)
		}
		tg, err := notify.NewTelegramNotifier(token, chatID)
		if err != nil {
			log.Fatalf("Failed to start Telegram notifier: %v", err)
		}
		notifiers = append(notifiers, tg)
	}

	return notifiers
}

func main() {
	log.Println("Starting Aegis Whistle Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	// 1. Dependencies
	caseStore := setupStore()
	bus := setupEventBus()
	notifier := setupNotifier()

	localizer, err := localization.NewLocalizer()
	if err != nil {
		log.Fatalf("Failed to load locales: %v", err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "YOUR_ULTRA_SECRET_KEY_HERE"
		log.Println("Warning: JWT_SECRET not set, using demo secret")
	}
	sessions := session.NewManager(secret)

	// 2. Case hub
	hub := casehub.NewManagerService(bus)
	go hub.Run()

	// 3. Services
	cases := casefile.NewService(caseStore, notifier, hub)
	lookupSvc := lookup.NewService(caseStore)

	// 4. Gin and routing
	r := gin.Default()
	h := handler.NewHandler(cases, caseStore, lookupSvc, sessions, hub, localizer)

	// Public intake and followup
	r.POST("/api/reports", h.SubmitReport)
	r.POST("/api/followup", h.Followup)
	r.POST("/api/login", h.Login)

	// Dashboards
	authed := r.Group("/api", h.RequireSession())
	authed.GET("/cases", h.ListCases)
	authed.GET("/cases/:id", h.GetCase)

	officer := r.Group("/api", h.RequireRole(models.RoleOfficer))
	officer.POST("/cases/:id/assign", h.AssignCase)
	officer.POST("/cases/:id/resolve", h.ResolveCase)
	officer.POST("/cases/:id/escalate", h.EscalateCase)
	officer.POST("/cases/:id/reward", h.RewardCase)

	investigator := r.Group("/api", h.RequireRole(models.RoleInvestigator))
	investigator.POST("/cases/:id/notes", h.UpdateNote)
	investigator.POST("/cases/:id/evidence", h.AttachEvidence)

	// Live case-event stream
	r.GET("/ws", h.RequireSession(), h.ServeWebSocket)

	server := &http.Server{
		Addr:           ":8080",
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
