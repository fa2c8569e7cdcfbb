package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"squadbot/src/bot/components"
	"squadbot/src/bot/config"
	"squadbot/src/shared/data"
)

func main() {
	cfg := config.Load()

	gdb := data.MustMySQL(cfg.MySQLDSN)
	if err := data.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	rdb := data.MustRedis(cfg.RedisURL)

	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		log.Fatalf("telegram: %v", err)
	}
	log.Printf("Authorized as @%s", api.Self.UserName)

	handler := components.NewHandler(api, components.Config{
		DB:      gdb,
		Redis:   rdb,
		GroupID: cfg.GroupID,
	})

	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = 30
	updates := api.GetUpdatesChan(updateCfg)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		for update := range updates {
			handler.HandleUpdate(ctx, update)
		}
	}()

	log.Println("SquadBot is running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	cancel()
	api.StopReceivingUpdates()
}
