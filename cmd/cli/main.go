package main

import (
	"context"
	"log"
	"os"

	"github.com/lockboxapp/lockbox/internal/buildinfo"
	"github.com/lockboxapp/lockbox/internal/client/cli"
	"github.com/lockboxapp/lockbox/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
