// Package main is the entry point for the midipatterns API server
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/james-see/midipatterns/pkg/api"
	"github.com/james-see/midipatterns/pkg/config"
)

func main() {
	port := flag.Int("port", 8080, "Server port")
	configFile := flag.String("config", "", "YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting midipatterns API server on port %d...\n", *port)
	fmt.Printf("Swagger docs available at http://localhost:%d/swagger/index.html\n", *port)

	if err := api.StartServer(*port, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
