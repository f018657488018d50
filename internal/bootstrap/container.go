package bootstrap

import (
	"context"
	"log"
	"time"

	"legal-assist-be/internal/config"
	"legal-assist-be/internal/controller"
	"legal-assist-be/internal/handler"
	"legal-assist-be/internal/pkg/logger"
	"legal-assist-be/internal/pkg/mailer"
	"legal-assist-be/internal/repository/memory"
	"legal-assist-be/internal/repository/unitofwork"
	"legal-assist-be/internal/service"
	"legal-assist-be/internal/websocket"
	"legal-assist-be/pkg/assistant"
	"legal-assist-be/pkg/events"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	UserController         controller.IUserController
	ChatController         controller.IChatController
	ConsultationController controller.IConsultationController

	// Background services (main.go starts these)
	ConsumerService service.IConsumerService

	// WebSockets & notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	pubSub := events.NewBus()
	publisher := events.NewPublisher(pubSub)

	// 3. Model client and conversation contexts
	assistantClient := assistant.NewClient(
		cfg.Keys.GoogleGemini,
		cfg.Assistant.Model,
		time.Duration(cfg.Assistant.TimeoutSeconds)*time.Second,
		assistant.WithMaxHistory(cfg.Assistant.MaxContextEntries),
	)
	contextRepo := memory.NewContextRepository()

	// 4. Redis (optional; the hub degrades to single-instance delivery)
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 5. WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 6. Services
	chatService := service.NewChatService(uowFactory, assistantClient, contextRepo, publisher, sysLogger)
	authService := service.NewAuthService(uowFactory)
	userService := service.NewUserService(uowFactory)
	consultationService := service.NewConsultationService(uowFactory, publisher, sysLogger)
	consumerService := service.NewConsumerService(pubSub, uowFactory, emailService, wsHub, sysLogger)

	// 7. Handlers & controllers
	notifHandler := handler.NewNotificationHandler(wsHub, wsLogger)

	return &Container{
		AuthController:         controller.NewAuthController(authService),
		UserController:         controller.NewUserController(userService),
		ChatController:         controller.NewChatController(chatService),
		ConsultationController: controller.NewConsultationController(consultationService),

		ConsumerService: consumerService,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
	}
}
