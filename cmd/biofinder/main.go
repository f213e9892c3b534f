package main

import (
	"log"

	"biofinder/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("biofinder failed to start: %v", err)
	}
}
