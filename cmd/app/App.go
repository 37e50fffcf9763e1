package app

import (
	"context"
	"sync"

	"coachally/configs"
	"coachally/internal/handlers"
	"coachally/internal/repositories"
	"coachally/internal/servers/database"
	"coachally/internal/servers/http"
	"coachally/internal/services"

	"github.com/redis/go-redis/v9"
	"github.com/sashabaranov/go-openai"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	redis   *redis.Client
	ctx     context.Context
	configs *configs.Config
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

func (app *App) LetsGo() {
	app.ctx = context.Background()
	app.initializeConfigs()
	app.initializeRedis()

	db := database.GetDB(app.configs)
	coachID := database.GetCoachUserID()

	authRepo := repositories.NewAuthenticationRepository(db)
	authService := services.NewAuthenticationService(authRepo, app.configs)

	chatRepo := repositories.NewChatRepository(db)
	completer := openai.NewClient(app.configs.Viper.GetString("coach.api_key"))
	coachService := services.NewCoachService(chatRepo, completer, app.redis, app.ctx, app.configs, coachID)
	chatService := services.NewChatService(chatRepo, coachService)

	taskRepo := repositories.NewTaskRepository(db)
	taskService := services.NewTaskService(taskRepo)

	minioService := services.NewMinioService(app.configs)
	fileManagerService := services.NewFileManagerService(minioService)

	restHandler := handlers.NewRestHandler(
		app.ctx,
		app.redis,
		authService,
		chatService,
		taskService,
		fileManagerService,
	)

	socketChatHandler := handlers.NewSocketChatHandler(app.redis, app.ctx, chatService)
	socketObservingHandler := handlers.NewSocketUserObservingHandler(app.redis, app.ctx, authService)

	http.NewHttpServer(
		app.ctx,
		app.redis,
		app.configs,
		restHandler,
		socketChatHandler,
		socketObservingHandler,
	).Run()
}

func (app *App) initializeRedis() {
	app.redis = redis.NewClient(&redis.Options{
		Addr: app.configs.Viper.GetString("redis.addr"),
	})
}

func (app *App) initializeConfigs() {
	app.configs = configs.GetConfig()
}
