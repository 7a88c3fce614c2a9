package main

import (
	"github.com/emrgen/pagesync/cmd"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cmd.Execute()
}
