// server/internal/api/routes/routes.go
package routes

import (
	"alphaline-portal-api-server/config"
	"alphaline-portal-api-server/internal/api/handlers"
	"alphaline-portal-api-server/internal/api/middleware"
	"alphaline-portal-api-server/internal/metrics"
	"alphaline-portal-api-server/internal/s3"
	"alphaline-portal-api-server/internal/socket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRouter wires the handlers to their dependencies and declares the
// route groups.
func SetupRouter(
	cfg config.Config,
	db *mongo.Database,
	s3Uploader *s3.Uploader,
	wsHub *socket.Hub,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(metrics.Middleware())

	truckHandler := &handlers.TruckHandler{DB: db, Hub: wsHub}
	driverHandler := &handlers.DriverHandler{DB: db, Hub: wsHub}
	equipmentHandler := &handlers.EquipmentHandler{DB: db, Hub: wsHub}
	documentHandler := &handlers.DocumentHandler{DB: db, S3Uploader: s3Uploader, Hub: wsHub}
	customerHandler := &handlers.CustomerHandler{DB: db}
	agentHandler := &handlers.AgentHandler{DB: db}
	commodityHandler := &handlers.CommodityHandler{DB: db}
	partyHandler := &handlers.LogisticsPartyHandler{DB: db}
	masterHandler := &handlers.MasterHandler{DB: db}
	proposalHandler := &handlers.ProposalHandler{DB: db, Cfg: cfg, Hub: wsHub}
	dashboardHandler := &handlers.DashboardHandler{DB: db}
	userHandler := &handlers.UserHandler{DB: db, Cfg: cfg}
	webSocketHandler := &handlers.WebSocketHandler{Hub: wsHub}

	router.GET("/metrics", metrics.Handler())

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", userHandler.Login)
		}

		// === ADMIN ROUTES (superadmin only) ===
		admin := apiV1.Group("/admin")
		admin.Use(middleware.Authenticate())
		admin.Use(middleware.Authorize("superadmin"))
		{
			users := admin.Group("/users")
			{
				users.POST("/", userHandler.CreateUser)
				users.GET("/", userHandler.GetAllUsers)
				users.PUT("/:id/role", userHandler.UpdateUserRole)
			}
		}

		// === BUSINESS ROUTES ===
		// Every console role can read; writes go through the same group
		// since each screen both lists and edits.
		business := apiV1.Group("/")
		business.Use(middleware.Authenticate())
		business.Use(middleware.Authorize("superadmin", "admin", "sales", "operations"))
		{
			business.GET("/dashboard/stats", dashboardHandler.GetStats)

			fleet := business.Group("/fleet")
			{
				trucks := fleet.Group("/trucks")
				{
					trucks.POST("/", truckHandler.CreateTruck)
					trucks.GET("/", truckHandler.GetAllTrucks)
					trucks.PUT("/:id", truckHandler.UpdateTruck)
					trucks.DELETE("/:id", truckHandler.DeleteTruck)
				}

				drivers := fleet.Group("/drivers")
				{
					drivers.POST("/", driverHandler.CreateDriver)
					drivers.GET("/", driverHandler.GetAllDrivers)
					drivers.PUT("/:id", driverHandler.UpdateDriver)
					drivers.DELETE("/:id", driverHandler.DeleteDriver)
				}

				equipment := fleet.Group("/equipment")
				{
					equipment.POST("/", equipmentHandler.CreateEquipment)
					equipment.GET("/", equipmentHandler.GetAllEquipment)
					equipment.PUT("/:id", equipmentHandler.UpdateEquipment)
					equipment.DELETE("/:id", equipmentHandler.DeleteEquipment)
				}

				documents := fleet.Group("/documents")
				{
					documents.POST("/", documentHandler.UploadDocument)
					documents.GET("/", documentHandler.GetDocuments)
					documents.DELETE("/:id", documentHandler.DeleteDocument)
				}
			}

			masters := business.Group("/masters")
			{
				customers := masters.Group("/customers")
				{
					customers.POST("/", customerHandler.CreateCustomer)
					customers.GET("/", customerHandler.GetAllCustomers)
					customers.PUT("/:id", customerHandler.UpdateCustomer)
					customers.DELETE("/:id", customerHandler.DeleteCustomer)
					customers.POST("/:id/contacts", customerHandler.AddContact)
					customers.PUT("/:id/contacts/:contactId", customerHandler.UpdateContact)
				}

				agents := masters.Group("/agents")
				{
					agents.POST("/", agentHandler.CreateAgent)
					agents.GET("/", agentHandler.GetAllAgents)
					agents.PUT("/:id", agentHandler.UpdateAgent)
					agents.DELETE("/:id", agentHandler.DeleteAgent)
				}

				commodities := masters.Group("/commodities")
				{
					commodities.POST("/", commodityHandler.CreateCommodity)
					commodities.GET("/", commodityHandler.GetAllCommodities)
					commodities.PUT("/:id", commodityHandler.UpdateCommodity)
					commodities.DELETE("/:id", commodityHandler.DeleteCommodity)
				}

				parties := masters.Group("/logistics-parties")
				{
					parties.POST("/", partyHandler.CreateParty)
					parties.GET("/", partyHandler.GetAllParties)
					parties.GET("/:id", partyHandler.GetPartyByID)
					parties.PUT("/:id", partyHandler.UpdateParty)
					parties.DELETE("/:id", partyHandler.DeleteParty)
					parties.POST("/:id/locations", partyHandler.AddLocation)
					parties.POST("/:id/contacts", partyHandler.AddContact)
				}

				masters.GET("/countries", masterHandler.GetCountries)
				masters.POST("/countries", masterHandler.CreateCountry)
				masters.GET("/cities", masterHandler.GetCities)
				masters.POST("/cities", masterHandler.CreateCity)
				masters.GET("/designations", masterHandler.GetDesignations)
				masters.POST("/designations", masterHandler.CreateDesignation)
				masters.GET("/special-terms/default", masterHandler.GetDefaultTerms)
			}

			proposals := business.Group("/proposals")
			{
				proposals.POST("/", proposalHandler.CreateProposal)
				proposals.GET("/", proposalHandler.GetAllProposals)
				proposals.GET("/:id", proposalHandler.GetProposalByID)
				proposals.PUT("/:id", proposalHandler.UpdateProposal)
				proposals.DELETE("/:id", proposalHandler.DeleteProposal)
			}
		}
	}

	return router
}
