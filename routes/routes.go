package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kthiza/protein-tracking-app/controllers"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	meals := r.Group("/meals")
	{
		meals.POST("/upload", controllers.UploadMeal)
		meals.POST("/estimate", controllers.EstimateMeal)
		meals.GET("", controllers.ListMeals)
	}

	r.GET("/dashboard", controllers.Dashboard)
	r.GET("/foods/suggestions", controllers.FoodSuggestions)

	return r
}
