package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"suggestbot/bot"
	"suggestbot/config"
	"suggestbot/db"
	"suggestbot/discord"
	"suggestbot/handler/suggest"
	"suggestbot/suggestion"
	"suggestbot/utils"
	"suggestbot/web"
)

const defaultBrandColor = 0x7c3aed

func main() {
	err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	cfg := config.Cfg

	if cfg.Token == "" {
		log.Fatal("Missing TOKEN in config")
	}
	if cfg.SuggestBot.ChannelID == "" {
		log.Fatal("Missing suggestion_channel_id in config")
	}

	store, err := db.New(cfg.SuggestBot.DataDir)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	dg, err := bot.New(cfg.Token)
	if err != nil {
		log.Fatalf("Error creating Discord session: %v", err)
	}

	color := utils.ParseHexColor(cfg.SuggestBot.BrandColor, defaultBrandColor)
	svc := suggestion.NewService(store, discord.NewClient(dg), cfg.SuggestBot.ChannelID, color)
	suggest.Register(svc, cfg.Commands.Auth)

	if err := dg.Open(); err != nil {
		log.Fatalf("Error opening connection: %v", err)
	}
	defer dg.Close()

	if err := bot.RegisterCommands(dg, cfg.Commands.AllowGuilds); err != nil {
		log.Fatalf("Cannot register commands: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	srv := web.NewServer(cfg.Web.Addr, svc, web.SiteInfo{
		SiteTitle:  cfg.Web.SiteTitle,
		BrandColor: cfg.SuggestBot.BrandColor,
		LogoURL:    cfg.Web.LogoURL,
	}, "./public", logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Web server error: %v", err)
		}
	}()

	log.Println("Bot is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Web server shutdown: %v", err)
	}
}
