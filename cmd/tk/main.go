package main

import (
	"context"
	"fmt"
	"os"

	"tasktracker/internal/cli"
	"tasktracker/internal/config"
	"tasktracker/internal/services"
)

func main() {
	cfg := config.NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	factory := NewStoreFactory(cfg)
	store, err := factory.CreateStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	service := services.NewTaskService(store, serviceOptions(cfg)...)
	root := cli.NewRootCommand(service, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Application.Timeout)
	defer cancel()

	if err := root.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
