package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"

	"coachally/configs"
	"coachally/internal/handlers"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggoFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	httpServer *HttpServer
	once       sync.Once
)

type HttpServer struct {
	ctx                    context.Context
	redis                  *redis.Client
	config                 *configs.Config
	router                 *gin.Engine
	restHandler            *handlers.RestHandler
	socketChatHandler      *handlers.SocketChatHandler
	socketObservingHandler *handlers.SocketUserObservingHandler
}

func NewHttpServer(
	ctx context.Context,
	redis *redis.Client,
	config *configs.Config,
	restHandler *handlers.RestHandler,
	socketChatHandler *handlers.SocketChatHandler,
	socketObservingHandler *handlers.SocketUserObservingHandler,
) *HttpServer {
	once.Do(func() {
		httpServer = &HttpServer{
			ctx:                    ctx,
			redis:                  redis,
			config:                 config,
			restHandler:            restHandler,
			socketChatHandler:      socketChatHandler,
			socketObservingHandler: socketObservingHandler,
		}
	})
	return httpServer
}

func (hs *HttpServer) Run() {
	hs.initializeGin()
	hs.setupRestfulRoutes()
	hs.setupWebSocketRoutes()

	hs.socketChatHandler.StartSocket()

	server := hs.startServer()

	// Wait for interrupt signal to gracefully shut down the server
	hs.socketChatHandler.WaitForShutdown(server)
}

func (hs *HttpServer) initializeGin() {
	hs.router = gin.Default()
}

func (hs *HttpServer) setupRestfulRoutes() {
	hs.router.POST("/login", hs.restHandler.Login)
	hs.router.POST("/register", hs.restHandler.Register)
	hs.router.POST("/refresh", hs.restHandler.Refresh)
	hs.router.POST("/logout", hs.restHandler.Logout)

	hs.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggoFiles.Handler))

	authorized := hs.router.Group("/")
	authorized.Use(hs.restHandler.MustAuthenticateMiddleware())
	{
		authorized.GET("/profile", hs.restHandler.GetProfile)
		authorized.PUT("/profile", hs.restHandler.UpdateUser)
		authorized.POST("/profile/photo", hs.restHandler.UploadUserProfilePhoto)

		authorized.GET("/users", hs.restHandler.GetAllUsersWithPagination)
		authorized.GET("/users/:id", hs.restHandler.GetSingleUser)

		authorized.POST("/conversations", hs.restHandler.CreateConversation)
		authorized.GET("/conversations", hs.restHandler.GetUserConversationsByToken)
		authorized.GET("/conversations/:id", hs.restHandler.GetConversationById)
		authorized.GET("/conversations/:id/messages", hs.restHandler.GetMessagesByConversationID)
		authorized.POST("/messages", hs.restHandler.SaveMessage)

		authorized.POST("/tasks", hs.restHandler.CreateTask)
		authorized.GET("/tasks", hs.restHandler.GetTasks)
		authorized.GET("/tasks/:id", hs.restHandler.GetTask)
		authorized.PUT("/tasks/:id", hs.restHandler.UpdateTask)
		authorized.PUT("/tasks/:id/done", hs.restHandler.SetTaskDone)
		authorized.DELETE("/tasks/:id", hs.restHandler.DeleteTask)
	}
}

func (hs *HttpServer) setupWebSocketRoutes() {
	hs.router.GET("/ws/chat", hs.socketChatHandler.HandleSocketChatRoute)
	hs.router.GET("/ws/observe", hs.socketObservingHandler.HandleSocketUserObservingRoute)
}

func (hs *HttpServer) startServer() *http.Server {
	addr := fmt.Sprintf(":%v", hs.config.Viper.GetInt("server.port"))
	server := &http.Server{
		Addr:    addr,
		Handler: hs.router,
	}

	go func() {
		log.Printf("HTTP server started on %v", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	return server
}
