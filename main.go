package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"

	auction "auction-marketplace/internal/auctionService"
	catalog "auction-marketplace/internal/catalogService"
	intake "auction-marketplace/internal/intakeService"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/server"
	"auction-marketplace/utils"
)

func main() {
	// local development convenience; absent .env is fine
	_ = godotenv.Load()

	args := ParseArgs()
	if !args.Validate() {
		fmt.Fprintln(os.Stderr, "missing required configuration: server addr, jwt secret, db host and db database must be set")
		os.Exit(1)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		args.DB.Host, args.DB.User, args.DB.Password, args.DB.Database, args.DB.Port, args.DB.SSLMode)
	repo, err := repository.Open(postgres.Open(dsn))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}

	if err := repo.SeedDefaultCategories(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to seed categories: %v\n", err)
		os.Exit(1)
	}
	if err := seedAdmin(repo, args); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to seed admin user: %v\n", err)
		os.Exit(1)
	}

	auctionSvc := auction.NewAuctionService(repo)
	catalogSvc := catalog.NewCatalogService(repo)
	intakeSvc := intake.NewIntakeService(repo)

	router := server.SetupRouter(auctionSvc, catalogSvc, intakeSvc, []byte(args.JWTSecret))

	utils.Info("Starting auction marketplace server", map[string]any{"addr": args.ServerAddr})
	if err := router.Run(args.ServerAddr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// seedAdmin makes sure the configured administrator exists so tokens issued
// by the identity provider resolve to a local user row.
func seedAdmin(repo *repository.GormRepo, args Args) error {
	if args.AdminID == "" || args.AdminEmail == "" {
		return nil
	}
	return repo.EnsureUser(model.User{
		ID:          args.AdminID,
		Email:       args.AdminEmail,
		DisplayName: "Administrator",
		IsAdmin:     true,
	})
}
