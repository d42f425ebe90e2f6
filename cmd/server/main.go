package main

import (
	"context"
	"log"

	"moodmate/internal/server"
)

func main() {

	ctx := context.Background()
	cfg := server.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}

}
