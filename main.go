package main

import (
	"fmt"
	"log"
	"time"

	"quiz-backend/internal/config"
	"quiz-backend/internal/db"
	"quiz-backend/internal/event"
	"quiz-backend/internal/handlers"
	"quiz-backend/internal/repository"
	"quiz-backend/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(cfg.MongoURI)
	defer db.Disconnect()

	// RabbitMQ event publisher; a nil publisher drops events
	var publisher *event.Publisher
	if cfg.RabbitURI != "" && cfg.RabbitExchange != "" {
		var err error
		publisher, err = event.NewPublisher(cfg.RabbitURI, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, domain events will not be published")
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("[QUIZ] %v | %3d | %13v | %15s | %-7s %#v\n%s",
			param.TimeStamp.Format("2006/01/02 - 15:04:05"),
			param.StatusCode,
			param.Latency,
			param.ClientIP,
			param.Method,
			param.Path,
			param.ErrorMessage,
		)
	}))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(cfg.MongoDB)

	questionRepo := repository.NewQuestionRepository(database)
	resultRepo := repository.NewResultRepository(database)

	questionService := service.NewQuestionService(questionRepo, publisher)
	submissionService := service.NewSubmissionService(questionRepo, resultRepo, publisher)
	resultService := service.NewResultService(resultRepo)

	questionHandler := handlers.NewQuestionHandler(questionService)
	quizHandler := handlers.NewQuizHandler(questionService, submissionService, resultService)

	// Question administration
	adminQuestions := r.Group("/quiz-questions")
	{
		adminQuestions.POST("", questionHandler.Create)
		adminQuestions.GET("", questionHandler.List)
		adminQuestions.GET("/:id", questionHandler.Get)
		adminQuestions.PUT("/:id", questionHandler.Update)
		adminQuestions.DELETE("/:id", questionHandler.Delete)
	}

	// Public quiz surface
	quiz := r.Group("/quiz")
	{
		quiz.GET("/questions", quizHandler.GetQuestions)
		quiz.POST("/submit", quizHandler.Submit)
		quiz.GET("/results/:userId", quizHandler.ResultsByUser)
	}

	log.Printf("Server is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
