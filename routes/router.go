package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/DhavalSuthar-24/courtplan/internal/health"
	"github.com/DhavalSuthar-24/courtplan/internal/match"
	"github.com/DhavalSuthar-24/courtplan/internal/middleware"
	"github.com/DhavalSuthar-24/courtplan/internal/referee"
	"github.com/DhavalSuthar-24/courtplan/internal/schedule"
	"github.com/DhavalSuthar-24/courtplan/internal/timeslot"
	"github.com/DhavalSuthar-24/courtplan/pkg/rmiddleware"
)

// Dependencies are the controllers and probes the router mounts. A nil Health
// leaves the probe endpoints unregistered.
type Dependencies struct {
	TimeSlots *timeslot.TimeSlotController
	Referees  *referee.RefereeController
	Matches   *match.MatchController
	Optimizer *schedule.OptimizerController
	Health    *health.Checker
}

func SetupRoutes(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger("/health", "/health/live"),
		rmiddleware.Recovery(),
		cors.Default(),
	)

	if deps.Health != nil {
		r.GET("/health", deps.Health.Handler())
		r.GET("/health/live", deps.Health.LiveHandler())
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	timeslot.RegisterTimeSlotRoutes(api, deps.TimeSlots)
	referee.RegisterRefereeRoutes(api, deps.Referees)
	match.RegisterMatchRoutes(api, deps.Matches)
	schedule.RegisterScheduleRoutes(api, deps.Optimizer)

	return r
}
