package recommendation_fx

import (
	"go.uber.org/fx"

	"roamwarrior/cmd/fx/completion_fx"
	"roamwarrior/internal/api/controllers"
	"roamwarrior/internal/services"
	"roamwarrior/pkg/utils"
)

var Module = fx.Provide(
	provideRecommendationService,
	provideRecommendationController,
)

func provideRecommendationService(
	aiClient utils.CompletionClientInterface,
	config completion_fx.CompletionConfig,
) services.RecommendationServiceInterface {
	return services.NewRecommendationService(aiClient, config.Timeout)
}

func provideRecommendationController(recommendationService services.RecommendationServiceInterface) *controllers.RecommendationController {
	return controllers.NewRecommendationController(recommendationService)
}
