package session_fx

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"

	"roamwarrior/internal/api/controllers"
	"roamwarrior/internal/services"
	mem "roamwarrior/pkg/memcache"
)

var Module = fx.Provide(
	provideSessionStore,
	provideSessionService,
	provideSessionController,
)

func provideSessionStore() mem.PlanSessionStore {
	return mem.NewPlanSessions()
}

func provideSessionService(store mem.PlanSessionStore) services.SessionServiceInterface {
	ttlMinutes := 60
	if raw := os.Getenv("SESSION_TTL_MINUTES"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			ttlMinutes = parsed
		}
	}
	return services.NewSessionService(store, time.Duration(ttlMinutes)*time.Minute)
}

func provideSessionController(sessionService services.SessionServiceInterface) *controllers.SessionController {
	return controllers.NewSessionController(sessionService)
}
