package main

import "github.com/swishapp/court-scraper/internal/cli"

func main() {
	cli.Execute()
}
