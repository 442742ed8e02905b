package match

import (
	"github.com/gin-gonic/gin"
)

// RegisterMatchRoutes sets up the match endpoints the scheduler needs.
func RegisterMatchRoutes(router *gin.RouterGroup, controller *MatchController) {
	matches := router.Group("/matches")
	{
		matches.POST("", controller.CreateMatch)
		matches.GET("/:match_id", controller.GetMatchByID)
		matches.DELETE("/:match_id", controller.DeleteMatch)
	}

	router.GET("/tournaments/:tournament_id/matches", controller.GetTournamentMatches)
}
