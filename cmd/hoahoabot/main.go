package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"github.com/ilyalavrinov/hoahoabot/internal/hoahoabot"
)

const cfg_filename = "hoahoabot.cfg"

func main() {
	cfgFilename := flag.String("config", cfg_filename, "path to the configuration file")
	flag.Parse()

	log.Print("Starting my bot")

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %s", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := hoahoabot.Start(ctx, *cfgFilename)
	if err != nil {
		log.Printf("My bot could not be started due to error: %s", err)
	}

	log.Print("My bot has stopped working")
}
