package main

import (
	"fmt"
	"log"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"

	"github.com/marketdesk/sellerctl/cmd/sellerctl/commands"
	"github.com/marketdesk/sellerctl/internal/config"
)

func main() {
	// A missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	c := config.New()
	displayAppname(c.GetAppName())

	if err := commands.Execute(c); err != nil {
		log.Fatalf("Error: %s\n", err)
	}
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
