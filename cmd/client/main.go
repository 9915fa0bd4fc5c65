package main

import (
	"context"
	"flag"
	"os"

	"wallboard/internal/client/cli"
)

func main() {

	addr := "http://localhost:8001"
	if v, ok := os.LookupEnv("SERVER_ADDRESS"); ok {
		addr = v
	}
	flag.StringVar(&addr, "a", addr, "server address")
	flag.Parse()

	app := cli.NewApp(addr)
	app.Run(context.Background())
}
