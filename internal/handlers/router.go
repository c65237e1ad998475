package handlers

import (
	"time"

	_ "control-system/docs"
	"control-system/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Control System API
// @version 1.0
// @description Анализ передаточных функций: проверка, LaTeX, графики и показатели устойчивости от сервиса расчёта

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// Server собирает маршруты web-формы и JSON API
type Server struct {
	web         *WebHandler
	api         *APIHandler
	jwt         *middleware.JWTService
	corsOrigins []string
}

func NewServer(web *WebHandler, api *APIHandler, jwt *middleware.JWTService, corsOrigins []string) *Server {
	return &Server{
		web:         web,
		api:         api,
		jwt:         jwt,
		corsOrigins: corsOrigins,
	}
}

// SetupRoutes настраивает маршруты
func (s *Server) SetupRoutes() *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(s.corsConfig()))

	r.SetHTMLTemplate(loadTemplates())

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	// Форма
	r.GET("/", s.web.Index)
	r.POST("/", s.web.Submit)

	api := r.Group("/api/v1")
	{
		api.POST("/compute", s.api.Compute)
		api.POST("/formula/latex", s.api.Latex)
		api.GET("/monitoring/health", s.api.Health)
	}

	history := api.Group("/submissions", s.jwt.RequireAuth())
	{
		history.GET("", s.api.ListSubmissions)
		history.GET("/:id", s.api.GetSubmission)
	}

	return r
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowOrigins:     s.corsOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(s.corsOrigins) == 0 {
		cfg.AllowOrigins = nil
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	}
	return cfg
}
