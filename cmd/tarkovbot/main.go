package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jagami/tarkovbot/internal/bot"
	"github.com/jagami/tarkovbot/internal/market"
)

func mustRead[T any](path string, out *T) {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		log.Fatal(err)
	}
}

func main() {
	var mcfg market.Conf
	var bcfg bot.Conf

	mustRead("conf/marketconfig.json", &mcfg)
	mustRead("conf/botconfig.json", &bcfg)

	// токен только из окружения; без него стартовать нет смысла
	token := strings.TrimSpace(os.Getenv("DISCORD_TOKEN"))
	if token == "" {
		log.Fatal("DISCORD_TOKEN не задан")
	}

	b := bot.New(bcfg)
	if err := b.SetDiscord(token); err != nil {
		log.Fatal(err)
	}
	b.SetMarket(mcfg)

	// операторские псевдонимы поверх встроенного словаря
	if err := b.UseConfig("conf/botaliases.json"); err != nil {
		log.Fatal(err)
	}

	if err := b.Start(); err != nil {
		log.Fatal(err)
	}
	defer b.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("running… press Ctrl+C to stop")

	<-ctx.Done()
}
