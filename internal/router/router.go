// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/baherjr/OODB-Project/internal/handler"
	"github.com/baherjr/OODB-Project/internal/middleware"
	"github.com/baherjr/OODB-Project/internal/utils"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check for load balancers and
// monitoring systems.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/api/healthz", handler.Health)
}

// RegisterAuth registers registration, login and the customer profile
// endpoints. Register and login are public; profile reads and edits require
// a valid token, with the self-or-admin check living in the handler.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/api/user")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)

	auth := e.Group("/api/user")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/:id", a.GetUser)
	auth.PUT("/edit/:id", a.EditUser)
}

// RegisterInventory registers the vehicle, subtype and parts surfaces.
// Browse endpoints are public and pass through the response cache; every
// mutation is gated behind a valid admin token.
func RegisterInventory(e *echo.Echo,
	v *handler.VehicleHandler,
	car *handler.CarHandler,
	sedan *handler.SedanHandler,
	suv *handler.SUVHandler,
	truck *handler.TruckHandler,
	part *handler.PartHandler,
	jwtSecret string,
	cache echo.MiddlewareFunc,
) {
	pub := e.Group("/api")
	pub.Use(cache)
	pub.GET("/vehicles", v.ListVehicles)
	pub.GET("/vehicles/:id", v.GetVehicle)
	pub.GET("/vehicles/:id/parts", part.ListVehicleParts)
	pub.GET("/cars", car.ListCars)
	pub.GET("/cars/:id", car.GetCar)
	pub.GET("/sedans", sedan.ListSedans)
	pub.GET("/sedans/:id", sedan.GetSedan)
	pub.GET("/suvs", suv.ListSUVs)
	pub.GET("/suvs/:id", suv.GetSUV)
	pub.GET("/trucks", truck.ListTrucks)
	pub.GET("/trucks/:id", truck.GetTruck)
	pub.GET("/parts", part.ListParts)
	pub.GET("/parts/:id", part.GetPart)

	admin := e.Group("/api")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireRole(utils.RoleAdmin))

	admin.POST("/vehicles/add", v.AddVehicle)
	admin.PUT("/vehicles/edit/:id", v.EditVehicle)
	admin.DELETE("/vehicles/delete/:id", v.DeleteVehicle)

	admin.POST("/cars/add", car.AddCar)
	admin.PUT("/cars/edit/:id", car.EditCar)
	admin.DELETE("/cars/delete/:id", car.DeleteCar)

	admin.POST("/sedans/add", sedan.AddSedan)
	admin.PUT("/sedans/edit/:id", sedan.EditSedan)
	admin.DELETE("/sedans/delete/:id", sedan.DeleteSedan)

	admin.POST("/suvs/add", suv.AddSUV)
	admin.PUT("/suvs/edit/:id", suv.EditSUV)
	admin.DELETE("/suvs/delete/:id", suv.DeleteSUV)

	admin.POST("/trucks/add", truck.AddTruck)
	admin.PUT("/trucks/edit/:id", truck.EditTruck)
	admin.DELETE("/trucks/delete/:id", truck.DeleteTruck)

	admin.POST("/parts/add", part.AddPart)
	admin.PUT("/parts/edit/:id", part.EditPart)
	admin.DELETE("/parts/delete/:id", part.DeletePart)
	admin.POST("/vehicleParts/add", part.AddVehiclePart)
}

// RegisterSales registers the sale endpoints. Both require a token; the
// handler narrows what a customer may record or see.
func RegisterSales(e *echo.Echo, s *handler.SaleHandler, jwtSecret string) {
	g := e.Group("/api/sales")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.POST("/add", s.AddSale)
	g.GET("", s.ListSales)
}
