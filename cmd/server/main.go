package main

import (
	"context"
	"log"

	"github.com/akarpov87/authgate/internal/server"
	"github.com/akarpov87/authgate/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
