package routes

import (
	"log"

	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds every service from the shared DB handle and mounts the
// full API surface. The hub and push service are created in main because the
// notification fan-out needs them before the router exists.
func SetupRouter(hub *services.RealtimeHub, push *services.PushService) *gin.Engine {
	db := config.DB

	foods := services.NewFoodService(db)
	recognition, err := services.NewRecognitionService(foods)
	if err != nil {
		log.Println("food recognition disabled:", err)
		recognition = nil
	}
	nutrition := services.NewNutritionService(db, foods)
	goals := services.NewGoalService(db)
	exercises := services.NewExerciseService(db)
	workouts := services.NewWorkoutService(db, exercises)
	templates := services.NewTemplateService(db)
	progress := services.NewProgressService(db)
	mealPlans := services.NewMealPlanService(db, foods)
	forum := services.NewForumService(db)
	support := services.NewSupportService(db)
	reminders := services.NewReminderService(db)
	notifications := services.NewNotificationService(db)
	reports := services.NewReportService(db, nutrition, workouts, progress)
	dashboard := services.NewDashboardService(db, nutrition, workouts, progress, notifications)
	activity := services.NewActivityLogService(db)

	foodCtl := controllers.NewFoodController(foods, recognition)
	nutritionCtl := controllers.NewNutritionController(nutrition)
	goalCtl := controllers.NewGoalController(goals)
	exerciseCtl := controllers.NewExerciseController(exercises)
	workoutCtl := controllers.NewWorkoutController(workouts)
	templateCtl := controllers.NewTemplateController(templates)
	progressCtl := controllers.NewProgressController(progress)
	mealPlanCtl := controllers.NewMealPlanController(mealPlans)
	forumCtl := controllers.NewForumController(forum)
	supportCtl := controllers.NewSupportController(support)
	reminderCtl := controllers.NewReminderController(reminders)
	notificationCtl := controllers.NewNotificationController(notifications)
	reportCtl := controllers.NewReportController(reports)
	dashboardCtl := controllers.NewDashboardController(dashboard)
	deviceCtl := controllers.NewDeviceController(push)
	realtimeCtl := controllers.NewRealtimeController(hub)
	activityCtl := controllers.NewActivityLogController(activity)

	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware(), middlewares.ActivityLogMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)
		api.PUT("/user/profile/picture", controllers.UpdateProfilePicture)

		api.GET("/foods", foodCtl.List)
		api.POST("/foods", foodCtl.Create)
		api.POST("/foods/recognize", foodCtl.Recognize)
		api.GET("/foods/:id", foodCtl.Get)
		api.PUT("/foods/:id", foodCtl.Update)
		api.DELETE("/foods/:id", foodCtl.Delete)

		api.POST("/nutrition", nutritionCtl.LogEntry)
		api.GET("/nutrition", nutritionCtl.GetByDate)
		api.GET("/nutrition/history", nutritionCtl.History)
		api.DELETE("/nutrition", nutritionCtl.Delete)

		api.POST("/goals", goalCtl.Create)
		api.GET("/goals", goalCtl.List)
		api.GET("/goals/:id", goalCtl.Get)
		api.PUT("/goals/:id", goalCtl.Update)
		api.DELETE("/goals/:id", goalCtl.Delete)
		api.POST("/goals/:id/progress", goalCtl.UpdateProgress)
		api.PATCH("/goals/:id/status", goalCtl.SetStatus)

		api.GET("/exercises", exerciseCtl.List)
		api.POST("/exercises", exerciseCtl.Create)
		api.GET("/exercises/:id", exerciseCtl.Get)
		api.PUT("/exercises/:id", exerciseCtl.Update)
		api.DELETE("/exercises/:id", exerciseCtl.Delete)

		api.POST("/workouts/routines", workoutCtl.CreateRoutine)
		api.GET("/workouts/routines", workoutCtl.ListRoutines)
		api.GET("/workouts/routines/:id", workoutCtl.GetRoutine)
		api.PUT("/workouts/routines/:id", workoutCtl.UpdateRoutine)
		api.DELETE("/workouts/routines/:id", workoutCtl.DeleteRoutine)
		api.POST("/workouts/sessions", workoutCtl.LogSession)
		api.GET("/workouts/sessions", workoutCtl.ListSessions)
		api.GET("/workouts/sessions/:id", workoutCtl.GetSession)
		api.DELETE("/workouts/sessions/:id", workoutCtl.DeleteSession)

		api.GET("/templates", templateCtl.List)
		api.GET("/templates/:id", templateCtl.Get)
		api.POST("/templates/:id/copy", templateCtl.Copy)

		api.POST("/progress", progressCtl.Upsert)
		api.GET("/progress", progressCtl.List)
		api.GET("/progress/latest", progressCtl.Latest)
		api.DELETE("/progress/:id", progressCtl.Delete)

		api.POST("/meal-plans", mealPlanCtl.Create)
		api.GET("/meal-plans", mealPlanCtl.List)
		api.GET("/meal-plans/:id", mealPlanCtl.Get)
		api.PUT("/meal-plans/:id", mealPlanCtl.Update)
		api.DELETE("/meal-plans/:id", mealPlanCtl.Delete)

		api.POST("/forum/posts", forumCtl.CreatePost)
		api.GET("/forum/posts", forumCtl.ListPosts)
		api.GET("/forum/posts/:id", forumCtl.GetPost)
		api.PUT("/forum/posts/:id", forumCtl.UpdatePost)
		api.DELETE("/forum/posts/:id", forumCtl.DeletePost)
		api.POST("/forum/posts/:id/like", forumCtl.LikePost)
		api.POST("/forum/posts/:id/comments", forumCtl.AddComment)
		api.GET("/forum/posts/:id/comments", forumCtl.ListComments)

		api.POST("/support/tickets", supportCtl.CreateTicket)
		api.GET("/support/tickets", supportCtl.ListTickets)
		api.POST("/support/tickets/:id/close", supportCtl.CloseTicket)

		api.POST("/reminders", reminderCtl.Create)
		api.GET("/reminders", reminderCtl.List)
		api.PUT("/reminders/:id", reminderCtl.Update)
		api.DELETE("/reminders/:id", reminderCtl.Delete)

		api.GET("/notifications", notificationCtl.List)
		api.GET("/notifications/unread-count", notificationCtl.UnreadCount)
		api.POST("/notifications/read-all", notificationCtl.MarkAllRead)
		api.POST("/notifications/:id/read", notificationCtl.MarkRead)

		api.POST("/reports", reportCtl.Generate)
		api.GET("/reports", reportCtl.List)
		api.GET("/reports/:id", reportCtl.Get)

		api.GET("/dashboard", dashboardCtl.Summary)
		api.GET("/activity", activityCtl.Recent)

		api.POST("/devices", deviceCtl.Register)
		api.GET("/ws/notifications", realtimeCtl.NotificationsWS)
	}

	return r
}
