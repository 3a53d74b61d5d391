package itinerary_fx

import (
	"go.uber.org/fx"

	"roamwarrior/cmd/fx/completion_fx"
	"roamwarrior/internal/api/controllers"
	"roamwarrior/internal/services"
	"roamwarrior/pkg/utils"
)

var Module = fx.Provide(
	provideItineraryService,
	provideItineraryController,
)

func provideItineraryService(
	aiClient utils.CompletionClientInterface,
	sessions services.SessionServiceInterface,
	config completion_fx.CompletionConfig,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(aiClient, sessions, config.Timeout)
}

func provideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}
