package routes

import (
    "backend/config"
    "backend/controllers"
    "backend/middlewares"
    "backend/services"

    "github.com/gin-gonic/gin"
)

func SetupRouter(rt *services.RealtimeHub) *gin.Engine {
    r := gin.Default()

    engine := services.NewFinanceEngine(config.DB)
    txController := controllers.NewTransactionController(engine)
    rtController := controllers.NewRealtimeController(rt)

    // Public auth routes
    auth := r.Group("/auth")
    {
        auth.POST("/register", controllers.Register)
        auth.POST("/login", controllers.Login)
    }

    // Protected API routes
    api := r.Group("/api")
    api.Use(middlewares.AuthMiddleware())
    {
        api.POST("/transactions", txController.CreateTransaction)

        api.GET("/goals", controllers.GetGoals)
        api.POST("/goals", controllers.CreateGoal)
        api.GET("/categories", controllers.GetCategories)

        api.GET("/dashboard", controllers.GetDashboard)

        api.GET("/profile", controllers.GetProfile)
        api.PUT("/profile", controllers.UpdateProfile)

        api.GET("/advisories", controllers.GetAdvisories)
        api.GET("/ws/advisories", rtController.AdvisoriesWS)
    }

    return r
}
