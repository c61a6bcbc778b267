package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sefraniabdou1937/backend-az/internal/chat"
	"github.com/sefraniabdou1937/backend-az/internal/config"
	"github.com/sefraniabdou1937/backend-az/internal/database"
	"github.com/sefraniabdou1937/backend-az/internal/handlers"
	"github.com/sefraniabdou1937/backend-az/internal/middleware"
	"github.com/sefraniabdou1937/backend-az/internal/monitoring"
	"github.com/sefraniabdou1937/backend-az/internal/travel"
	"github.com/sefraniabdou1937/backend-az/internal/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.EnsureJWTReady(); err != nil {
		log.Fatal("JWT configuration error: ", err)
	}

	database.InitDB()
	defer database.CloseDB()
	database.CreateTables()

	travelClient := travel.NewClient(travel.Config{
		OpenWeatherKey:   cfg.OpenWeatherKey,
		UnsplashKey:      cfg.UnsplashKey,
		ExchangeRateKey:  cfg.ExchangeRateKey,
		AviationStackKey: cfg.AviationStackKey,
		CitiesURL:        cfg.CitiesURL,
		WeatherURL:       cfg.WeatherURL,
		PhotosURL:        cfg.PhotosURL,
		CurrencyURL:      cfg.CurrencyURL,
		FlightsURL:       cfg.FlightsURL,
	})
	chatRelay := chat.NewRelay(cfg.GeminiKey, cfg.GeminiModel, cfg.GeminiURL)
	monitoringService := monitoring.NewService(time.Now())

	router := setupRouter(cfg, travelClient, chatRelay, monitoringService)

	log.Println("AzTravel API starting on :" + cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}

func setupRouter(cfg config.Config, travelClient *travel.Client, chatRelay *chat.Relay, monitoringService *monitoring.Service) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(monitoring.RequestMetricsMiddleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	travelHandler := handlers.NewTravelHandler(travelClient)
	chatHandler := handlers.NewChatHandler(chatRelay)

	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/register", handlers.Register)
		api.POST("/login", handlers.Login)

		api.GET("/countries", travelHandler.GetCountries)
		api.GET("/cities/:country", travelHandler.GetCities)
		api.GET("/weather/forecast/:city", travelHandler.GetForecast)
		api.GET("/weather/:city", travelHandler.GetWeather)
		api.GET("/photos/:city", travelHandler.GetPhotos)
		api.GET("/visa/:country", travelHandler.GetVisaStatus)
		api.GET("/currency/rate/:base/:target", travelHandler.GetCurrencyRate)
		api.GET("/flights/:destination", travelHandler.GetFlights)

		api.GET("/status", handlers.Status(monitoringService))

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/chat", chatHandler.Chat)

			protected.GET("/tasks", handlers.GetTasks)
			protected.POST("/tasks", handlers.CreateTask)
			protected.GET("/tasks/stats", handlers.GetTaskStats)
			protected.PUT("/tasks/:id", handlers.ToggleTask)
			protected.DELETE("/tasks/:id", handlers.DeleteTask)

			protected.GET("/users/me", handlers.Me)
			protected.PUT("/users/me/password", handlers.ChangePassword)
		}
	}

	setupFrontend(router, cfg.StaticDir)

	return router
}

// setupFrontend serves the bundled single-page front-end. Unknown non-API
// paths get the entry document so client-side routing keeps working; unknown
// API paths get a JSON 404.
func setupFrontend(router *gin.Engine, staticDir string) {
	indexFile := filepath.Join(staticDir, "index.html")
	hasFrontend := false
	if _, err := os.Stat(indexFile); err == nil {
		hasFrontend = true
		router.Static("/static", filepath.Join(staticDir, "static"))
		router.GET("/", func(c *gin.Context) {
			c.File(indexFile)
		})
	} else {
		log.Printf("WARNING: %s not found, the front-end will not be served", indexFile)
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API Endpoint not found"})
			return
		}
		if hasFrontend {
			c.File(indexFile)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}
