package main

import (
	"context"
	"os"

	"github.com/devfolio/dashboard/cmd"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := cmd.RootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
