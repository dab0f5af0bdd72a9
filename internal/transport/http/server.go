package http

import (
	"github.com/gin-gonic/gin"

	appsvc "miniblog/internal/app"
	"miniblog/internal/bootstrap"
	"miniblog/internal/repository"
	"miniblog/internal/transport/http/handler"
	"miniblog/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.LoadHTMLGlob(app.Config.App.TemplateGlob)

	router.Use(middleware.Session(app.SessionSecret, app.Config.Auth.SessionCookie))

	userRepo := repository.NewUserRepository(app.DB)
	postRepo := repository.NewPostRepository(app.DB)

	authService := appsvc.NewAuthService(userRepo, app.SessionSecret, app.SessionTTL())
	postService := appsvc.NewPostService(postRepo, app.Location)

	healthHandler := handler.NewHealthHandler(app)
	authHandler := handler.NewAuthHandler(authService, app.Config.Auth)
	postHandler := handler.NewPostHandler(postService)
	pagesHandler := handler.NewPagesHandler()

	router.GET("/healthz", healthHandler.Check)

	router.GET("/", postHandler.Index)
	router.GET("/article1", pagesHandler.Article1)
	router.GET("/article2", pagesHandler.Article2)

	router.GET("/signup", authHandler.SignupPage)
	router.POST("/signup", authHandler.Signup)
	router.GET("/login", authHandler.LoginPage)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", middleware.RequireLogin(), authHandler.Logout)

	router.GET("/create", middleware.RequireLogin(), postHandler.CreatePage)
	router.POST("/create", middleware.RequireLogin(), postHandler.Create)

	posts := router.Group("/:id", middleware.RequireLogin())
	posts.GET("/update", postHandler.UpdatePage)
	posts.POST("/update", postHandler.Update)
	posts.GET("/delete", postHandler.Delete)

	return router
}
