package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"roamwarrior/cmd/fx/completion_fx"
	"roamwarrior/cmd/fx/itinerary_fx"
	"roamwarrior/cmd/fx/recommendation_fx"
	"roamwarrior/cmd/fx/session_fx"
	"roamwarrior/internal/api/controllers"
	"roamwarrior/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		completion_fx.Module,
		session_fx.Module,
		itinerary_fx.Module,
		recommendation_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
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
	itineraryController *controllers.ItineraryController,
	recommendationController *controllers.RecommendationController,
	sessionController *controllers.SessionController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, recommendationController, sessionController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	recommendationController *controllers.RecommendationController,
	sessionController *controllers.SessionController) {

	itineraryGroup := r.Group("/itinerary")
	itineraryGroup.POST("/generate", itineraryController.GeneratePlanHandler)
	itineraryGroup.POST("/refine", itineraryController.RefinePlanHandler)

	recommendationGroup := r.Group("/recommendations")
	recommendationGroup.POST("/places", recommendationController.RecommendPlacesHandler)
	recommendationGroup.POST("/places/merge", recommendationController.MergePlacesHandler)
	recommendationGroup.POST("/stay", recommendationController.RecommendStayHandler)

	sessionGroup := r.Group("/sessions")
	sessionGroup.GET("/:sessionId/plan", sessionController.GetPlanHandler)
	sessionGroup.PUT("/:sessionId/plan", sessionController.SavePlanHandler)
	sessionGroup.POST("/:sessionId/plan/reorder", sessionController.ReorderDaysHandler)
	sessionGroup.DELETE("/:sessionId", sessionController.ClearSessionHandler)
}
