package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"cruisedesk/internal/auth"
	"cruisedesk/internal/config"
	"cruisedesk/internal/export"
	"cruisedesk/internal/logger"
	"cruisedesk/internal/store"

	"github.com/joho/godotenv"
)

const dateLayout = "02.01.2006"

func main() {
	listCruises := flag.Bool("list", false, "print the cruise catalog")
	exportPath := flag.String("export", "", "export all bookings to the given CSV file (admin)")
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded environment variables from .env file")
	}

	cfg := config.Load()

	log := logger.NewLogger(cfg.LogDir)
	defer log.Close()

	log.Info("APP", "Starting cruisedesk")

	ctx := context.Background()

	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to open %s: %v", cfg.Database.Path, err))
	}
	defer db.Close()
	log.Info("DATABASE", fmt.Sprintf("Opened sqlite database at %s", cfg.Database.Path))

	if err := db.Init(ctx); err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Schema init failed: %v", err))
	}

	admin := store.AdminSeed{
		Username:       cfg.Admin.Username,
		PasswordDigest: auth.HashPassword(cfg.Admin.Password),
		Fullname:       cfg.Admin.Fullname,
	}
	if err := db.Bootstrap(ctx, admin, cfg.Seed.SampleCruises); err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Bootstrap failed: %v", err))
	}
	log.Info("DATABASE", "Schema ready, bootstrap data in place")

	switch {
	case *exportPath != "":
		runExport(ctx, cfg, db, log, *exportPath)
	case *listCruises:
		runList(ctx, db, log)
	default:
		flag.Usage()
	}
}

func runList(ctx context.Context, db *store.DB, log *logger.Logger) {
	cruises, err := db.ListCruises(ctx)
	if err != nil {
		log.Error("DATABASE", fmt.Sprintf("Failed to list cruises: %v", err))
		return
	}

	fmt.Printf("%-4s %-50s %-12s %-6s %-12s %-6s\n",
		"ID", "Destination", "Departure", "Days", "Price", "Seats")
	for _, c := range cruises {
		status := ""
		if c.SoldOut() {
			status = " (sold out)"
		}
		fmt.Printf("%-4d %-50s %-12s %-6d %-12.2f %-6d%s\n",
			c.ID, c.Destination, c.Departure.Format(dateLayout),
			c.DurationDays, c.PricePerPerson, c.AvailableSeats, status)
	}
}

func runExport(ctx context.Context, cfg *config.Config, db *store.DB, log *logger.Logger, path string) {
	// Export is an administrator action; prove the configured admin
	// account still authenticates before touching the file.
	user, err := db.AuthenticateUser(ctx, cfg.Admin.Username, auth.HashPassword(cfg.Admin.Password))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Error("EXPORT", "Admin credentials rejected, not exporting")
		} else {
			log.Error("DATABASE", fmt.Sprintf("Authentication failed: %v", err))
		}
		os.Exit(1)
	}
	if !user.IsAdmin {
		log.Error("EXPORT", fmt.Sprintf("User %s is not an administrator", user.Username))
		os.Exit(1)
	}

	n, err := export.BookingsCSVFile(ctx, db, path)
	if err != nil {
		log.Error("EXPORT", fmt.Sprintf("Export to %s failed: %v", path, err))
		os.Exit(1)
	}
	log.LogExport(path, fmt.Sprintf("Wrote %d bookings", n))
}
