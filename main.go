package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/tauqeerkhan/portfolio/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
