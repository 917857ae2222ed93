package server

import (
	"github.com/gin-gonic/gin"

	auction "auction-marketplace/internal/auctionService"
	catalog "auction-marketplace/internal/catalogService"
	intake "auction-marketplace/internal/intakeService"
	auctionhandler "auction-marketplace/services/auction/handler"
	cataloghandler "auction-marketplace/services/catalog/handler"
	intakehandler "auction-marketplace/services/intake/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(
	auctionService *auction.AuctionService,
	catalogService *catalog.CatalogService,
	intakeService *intake.IntakeService,
	jwtSecret []byte,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := auctionhandler.NewAuctionHandler(auctionService)
	catalogHandler := cataloghandler.NewCatalogHandler(catalogService)
	intakeHandler := intakehandler.NewIntakeHandler(intakeService)

	requireAuth := RequireAuth(jwtSecret)
	optionalAuth := OptionalAuth(jwtSecret)

	auctions := router.Group("/auctions")
	{
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.POST("", requireAuth, RequireAdmin, auctionHandler.CreateAuctionHandler)
		auctions.PUT("/:auction_id", requireAuth, RequireAdmin, auctionHandler.UpdateAuctionHandler)
		auctions.DELETE("/:auction_id", requireAuth, RequireAdmin, auctionHandler.DeleteAuctionHandler)
		auctions.POST("/:auction_id/bids", requireAuth, auctionHandler.PlaceBidHandler)
	}

	catalogGroup := router.Group("/catalog")
	{
		catalogGroup.GET("/categories", catalogHandler.ListCategoriesHandler)
		catalogGroup.GET("/support-programs", catalogHandler.ListSupportProgramsHandler)
	}

	transport := router.Group("/services/transport/quotes")
	{
		transport.POST("", optionalAuth, intakeHandler.CreateTransportQuoteHandler)
		transport.GET("", requireAuth, RequireAdmin, intakeHandler.ListTransportQuotesHandler)
	}

	financing := router.Group("/services/financing/applications")
	{
		financing.POST("", optionalAuth, intakeHandler.CreateFinancingApplicationHandler)
		financing.GET("", requireAuth, RequireAdmin, intakeHandler.ListFinancingApplicationsHandler)
	}

	contact := router.Group("/contact")
	{
		contact.POST("", intakeHandler.CreateContactRequestHandler)
		contact.GET("", requireAuth, RequireAdmin, intakeHandler.ListContactRequestsHandler)
	}

	router.POST("/subscriptions", intakeHandler.SubscribeHandler)

	return router
}
