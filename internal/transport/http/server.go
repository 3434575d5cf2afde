package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	appsvc "boardhub/internal/app"
	"boardhub/internal/bootstrap"
	"boardhub/internal/platform/rabbitmq"
	"boardhub/internal/repository"
	"boardhub/internal/session"
	"boardhub/internal/transport/http/handler"
	"boardhub/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300 * time.Second,
	}))

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	boardRepo := repository.NewBoardRepository(app.MySQL)
	postRepo := repository.NewPostRepository(app.MySQL)
	activityRepo := repository.NewActivityRepository(app.MySQL)

	tokenStore := session.NewRedisStore(app.Redis)
	activityPublisher := rabbitmq.NewActivityPublisher(app.MQConn, app.Config.RabbitMQ.ActivityQueue)

	authService := appsvc.NewAuthService(
		userRepo,
		tokenStore,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)
	boardService := appsvc.NewBoardService(boardRepo, activityPublisher)
	postService := appsvc.NewPostService(postRepo, boardRepo, activityPublisher)
	activityService := appsvc.NewActivityService(activityRepo)

	userHandler := handler.NewUserHandler(authService)
	boardHandler := handler.NewBoardHandler(boardService)
	postHandler := handler.NewPostHandler(postService)
	activityHandler := handler.NewActivityHandler(activityService)

	authRequired := middleware.AuthRequired(authService)

	users := router.Group("/users")
	users.POST("/signup", userHandler.Signup)
	users.POST("/token", userHandler.Token)
	users.POST("/logout", authRequired, userHandler.Logout)
	users.GET("/activity", authRequired, activityHandler.List)

	boards := router.Group("/boards")
	boards.Use(authRequired)
	boards.POST("/create", boardHandler.Create)
	boards.PUT("/update", boardHandler.Update)
	boards.DELETE("/delete/:board_id", boardHandler.Delete)
	boards.GET("/get/:board_id", boardHandler.Get)
	boards.GET("/list", boardHandler.List)

	posts := router.Group("/posts")
	posts.Use(authRequired)
	posts.POST("/create", postHandler.Create)
	posts.PUT("/update", postHandler.Update)
	posts.DELETE("/delete/:post_id", postHandler.Delete)
	posts.GET("/get/:post_id", postHandler.Get)
	posts.GET("/list", postHandler.List)

	return router
}
