package timeslot

import (
	"github.com/gin-gonic/gin"
)

// RegisterTimeSlotRoutes mounts the slot and schedule endpoints on router.
func RegisterTimeSlotRoutes(router *gin.RouterGroup, controller *TimeSlotController) {
	tournamentSlots := router.Group("/tournaments/:tournament_id")
	{
		tournamentSlots.POST("/time-slots", controller.CreateTimeSlot)
		tournamentSlots.POST("/time-slots/bulk", controller.BulkCreateTimeSlots)
		tournamentSlots.GET("/time-slots", controller.ListTimeSlots)
		tournamentSlots.GET("/time-slots/with-matches", controller.ListTimeSlotsWithMatches)
		tournamentSlots.GET("/time-slots/next-available", controller.NextAvailableTimeSlot)
		tournamentSlots.GET("/schedule-availability", controller.ScheduleAvailability)
	}

	slots := router.Group("/time-slots")
	{
		slots.GET("/:slot_id", controller.GetTimeSlot)
		slots.PUT("/:slot_id", controller.UpdateTimeSlot)
		slots.DELETE("/:slot_id", controller.DeleteTimeSlot)
		slots.POST("/:slot_id/assign-match", controller.AssignMatch)
		slots.POST("/:slot_id/release", controller.ReleaseTimeSlot)
	}
}
