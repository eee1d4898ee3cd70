package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"mentoria/cmd/fx/controllers_fx"
	"mentoria/cmd/fx/db_fx"
	"mentoria/cmd/fx/quiz_fx"
	"mentoria/cmd/fx/redis_fx"
	"mentoria/cmd/fx/result_fx"
	"mentoria/cmd/fx/submission_fx"
	"mentoria/internal/api/controllers"
	"mentoria/pkg/config"
	"mentoria/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	app := fx.New(
		fx.Provide(config.Load),
		db_fx.Module,
		redis_fx.Module,
		quiz_fx.Module,
		submission_fx.Module,
		result_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server on port %s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	quizController *controllers.QuizController,
	resultController *controllers.ResultController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, quizController, resultController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	quizController *controllers.QuizController,
	resultController *controllers.ResultController) {

	quizGroup := r.Group("/quiz")
	quizGroup.GET("/slides", quizController.GetSlides)
	quizGroup.POST("/sessions", quizController.StartSession)
	quizGroup.GET("/sessions/:sessionId", quizController.GetProgress)
	quizGroup.POST("/sessions/:sessionId/answer", quizController.Answer)
	quizGroup.POST("/sessions/:sessionId/advance", quizController.Advance)
	quizGroup.POST("/sessions/:sessionId/retreat", quizController.Retreat)
	quizGroup.POST("/sessions/:sessionId/reset", quizController.Reset)

	resultsGroup := r.Group("/results")
	resultsGroup.POST("/generate", resultController.GenerateResult)
	resultsGroup.GET("/:submissionId", resultController.GetResult)
}
