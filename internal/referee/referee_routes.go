package referee

import (
	"github.com/gin-gonic/gin"
)

// RegisterRefereeRoutes mounts the referee, availability and assignment endpoints on router.
func RegisterRefereeRoutes(router *gin.RouterGroup, controller *RefereeController) {
	referees := router.Group("/referees")
	{
		referees.POST("", controller.CreateReferee)
		referees.GET("", controller.ListReferees)
		referees.GET("/:referee_id", controller.GetReferee)
		referees.PUT("/:referee_id", controller.UpdateReferee)
		referees.DELETE("/:referee_id", controller.DeleteReferee)
		referees.GET("/:referee_id/conflicts", controller.RefereeConflicts)
	}

	tournamentReferees := router.Group("/tournaments/:tournament_id/referees")
	{
		tournamentReferees.GET("", controller.ListTournamentReferees)
		tournamentReferees.GET("/available", controller.AvailableReferees)
		tournamentReferees.POST("/:referee_id", controller.DeclareAvailability)
	}

	matchReferees := router.Group("/matches/:match_id/referees")
	{
		matchReferees.GET("", controller.ListMatchReferees)
		matchReferees.POST("/:referee_id", controller.AssignReferee)
		matchReferees.PUT("/:referee_id", controller.UpdateAssignment)
		matchReferees.DELETE("/:referee_id", controller.RemoveAssignment)
	}
}
