package main

import (
	"log"
	"os"

	"github.com/PrathameshWCE/Offcentre/internal/catalog"
	"github.com/PrathameshWCE/Offcentre/internal/handler"
	"github.com/PrathameshWCE/Offcentre/internal/repository"
	"github.com/PrathameshWCE/Offcentre/internal/service"
	"github.com/PrathameshWCE/Offcentre/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	// Открываем локальное хранилище (аналог localStorage браузера)
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "offcentre.db"
	}
	kv, err := store.Open(dbPath)
	if err != nil {
		log.Fatalf("Не удалось открыть хранилище: %v", err)
	}
	defer kv.Close()

	// Каталог мест поставляется как конфигурация и не меняется
	cat := catalog.New()

	// Инициализируем репозитории
	userRepo := repository.NewUserRepository(kv)
	credsRepo := repository.NewCredentialsRepository(kv)
	bookmarkRepo := repository.NewBookmarkRepository(kv)
	postRepo := repository.NewPostRepository(kv)
	feedbackRepo := repository.NewFeedbackRepository(kv)

	// Инициализируем сервисы
	authService := service.NewAuthService(userRepo, credsRepo)
	discoveryService := service.NewDiscoveryService(cat)
	sessionService := service.NewSessionService()
	bookmarkService := service.NewBookmarkService(bookmarkRepo)
	placeService := service.NewPlaceService(cat)
	postService := service.NewPostService(postRepo)
	plannerService := service.NewPlannerService(cat)
	feedbackService := service.NewFeedbackService(feedbackRepo)
	profileService := service.NewProfileService(userRepo, credsRepo, bookmarkRepo)

	// Создаем Handler и регистрируем маршруты
	h := &handler.Handler{
		AuthService:      authService,
		DiscoveryService: discoveryService,
		SessionService:   sessionService,
		BookmarkService:  bookmarkService,
		PlaceService:     placeService,
		PostService:      postService,
		PlannerService:   plannerService,
		FeedbackService:  feedbackService,
		ProfileService:   profileService,
		UserRepo:         userRepo,
	}
	router := gin.Default()
	h.RegisterRoutes(router)

	// Запускаем HTTP-сервер
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
