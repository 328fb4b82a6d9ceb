package main

import (
	"context"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/food-donation-service/internal/config"
	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/SergeyBogomolovv/food-donation-service/internal/gateway"
	"github.com/shopspring/decimal"
)

var (
	foods     = []string{"Bread", "Rice", "Vegetable soup", "Apples", "Milk", "Pasta", "Sandwiches"}
	units     = []entities.Unit{entities.UnitKg, entities.UnitLbs, entities.UnitPieces, entities.UnitPortions, entities.UnitLiters}
	locations = []string{"Central bakery", "Green market", "Campus canteen", "Hotel Riverside", "Main st 12"}
)

func randomDonation() entities.NewDonation {
	return entities.NewDonation{
		FoodType:       foods[rand.Intn(len(foods))],
		Description:    "generated",
		Quantity:       decimal.NewFromInt(int64(rand.Intn(20) + 1)),
		Unit:           units[rand.Intn(len(units))],
		ExpiryTime:     time.Now().Add(time.Duration(rand.Intn(48)+1) * time.Hour),
		PickupLocation: locations[rand.Intn(len(locations))],
	}
}

func main() {
	baseURL := flag.String("platform", "http://localhost:8081/api", "platform base url")
	username := flag.String("username", "donor", "donor username")
	password := flag.String("password", "donor", "donor password")
	interval := flag.Duration("interval", time.Second, "delay between donations")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	client := gateway.New(logger, config.Platform{BaseURL: *baseURL, Timeout: 10 * time.Second})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	login, err := client.Login(ctx, *username, *password)
	if err != nil {
		logger.Error("failed to login", slog.Any("error", err))
		os.Exit(1)
	}
	ctx = gateway.WithToken(ctx, login.Token)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			in := randomDonation()
			in.DonorID = login.User.ID

			d, err := client.CreateDonation(ctx, in)
			if err != nil {
				logger.Error("failed to create donation", slog.Any("error", err))
				continue
			}
			logger.Info("donation created", slog.String("id", d.ID), slog.String("food", d.FoodType))
		}
	}
}
