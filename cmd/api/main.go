package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/ligue-outreach/internal/infra/database"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-outreach/internal/infra/integration/brevo"
	"github.com/xavierca1/ligue-outreach/internal/infra/mail"
	"github.com/xavierca1/ligue-outreach/internal/infra/queue"
	"github.com/xavierca1/ligue-outreach/internal/infra/worker"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("❌ Falha ao migrar schema: %v", err)
	}

	rabbitMQ, err := queue.NewRabbitMQ(
		getEnv("RABBITMQ_USER", "user"),
		getEnv("RABBITMQ_PASS", "password"),
		getEnv("RABBITMQ_HOST", "localhost"),
		getEnv("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		panic(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	templateRepo := database.NewTemplateRepository(db)
	blacklistRepo := database.NewBlacklistRepository(db)

	// 2. Gateways e Adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	// Provedor de email: Brevo (API) se tiver chave, senão SMTP puro
	var mailer usecase.MailSenderInterface
	var brevoClient *brevo.Client
	if apiKey := os.Getenv("BREVO_API_KEY"); apiKey != "" {
		brevoClient = brevo.NewClient(
			apiKey,
			getEnv("BREVO_URL", "https://api.brevo.com/v3"),
			getEnv("SENDER_NAME", "My Company"),
			os.Getenv("SENDER_EMAIL"),
		)
		mailer = brevoClient
		log.Println("📮 Provedor de email: Brevo API")
	} else {
		mailer = mail.NewSMTPSender(
			os.Getenv("MAIL_HOST"),
			getEnvInt("MAIL_PORT", 587),
			os.Getenv("MAIL_USER"),
			os.Getenv("MAIL_PASS"),
			getEnv("SENDER_NAME", "My Company"),
			os.Getenv("SENDER_EMAIL"),
		)
		log.Println("📮 Provedor de email: SMTP")
	}

	// 3. UseCases
	dispatchUC := usecase.NewDispatchUseCase(
		leadRepo, templateRepo, mailer, producer, loadDispatchConfig(),
	)
	addLeadsUC := usecase.NewAddLeadsUseCase(leadRepo, blacklistRepo)
	reconcileUC := usecase.NewReconcileReplyUseCase(leadRepo, producer)

	// 4. Workers
	// Consome a fila de replies (webhook + polling) e aplica no lead
	replyWorker := queue.NewWorker(rabbitMQ.Ch, reconcileUC)
	go replyWorker.Start(queue.ReplyQueueName)

	// Polling de inbox só faz sentido com a API do Brevo
	if brevoClient != nil {
		interval := time.Duration(getEnvInt("REPLY_POLL_MINUTES", 10)) * time.Minute
		pollWorker := worker.NewReplyPollWorker(brevoClient, producer, interval)
		go pollWorker.Start(context.Background())
	}

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(addLeadsUC, reconcileUC, leadRepo)
	templateHandler := handlers.NewTemplateHandler(templateRepo)
	blacklistHandler := handlers.NewBlacklistHandler(blacklistRepo)
	dispatchHandler := handlers.NewDispatchHandler(dispatchUC)
	statsHandler := handlers.NewStatsHandler(leadRepo)
	webhookHandler := handlers.NewWebhookHandler(producer)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Post("/leads", leadHandler.HandleAdd)
	r.Delete("/leads", leadHandler.HandleRemove)
	r.Get("/leads/export", leadHandler.HandleExport)
	r.Post("/leads/{email}/replied", leadHandler.HandleMarkReplied)

	r.Post("/templates", templateHandler.HandleUpsert)
	r.Get("/templates", templateHandler.HandleList)
	r.Delete("/templates/{tag}", templateHandler.HandleRemove)

	r.Post("/blacklist", blacklistHandler.HandleAdd)
	r.Get("/blacklist", blacklistHandler.HandleList)
	r.Delete("/blacklist/{email}", blacklistHandler.HandleRemove)

	r.Post("/dispatch/{tag}", dispatchHandler.HandleDispatch)
	r.Post("/retry/{tag}", dispatchHandler.HandleRetry)

	r.Get("/stats", statsHandler.HandleGetStats)
	r.Get("/health", healthHandler.Handle)
	r.Post("/webhook/reply", webhookHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + getEnv("PORT", "8080")
	log.Printf("🔥 Server Outreach rodando na porta %s", port)
	http.ListenAndServe(port, r)
}
