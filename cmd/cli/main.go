package main

import (
	"context"
	"log"

	"moodmate/internal/cli"
	"moodmate/internal/config"
)

func main() {

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())

}
