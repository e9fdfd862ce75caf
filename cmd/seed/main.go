package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/JaimeStill/employee-portal/internal/api"
	"github.com/JaimeStill/employee-portal/internal/config"
	"github.com/JaimeStill/employee-portal/internal/infrastructure"
)

func main() {
	var (
		configFile = flag.String("config", config.BaseConfigFile, "Base configuration file")
		all        = flag.Bool("all", false, "Run all seeders")
		emps       = flag.Bool("employees", false, "Seed employees")
		file       = flag.String("file", "", "External seed file (overrides embedded)")
		list       = flag.Bool("list", false, "List available seeders")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	if !*all && !*emps {
		fmt.Println("usage: seed [-config <path>] [-all|-employees] [-file <path>] [-list]")
		flag.PrintDefaults()
		return
	}

	cfg, err := config.LoadFrom(*configFile)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := cfg.Finalize(); err != nil {
		log.Fatalf("config finalize failed: %v", err)
	}

	infra, err := infrastructure.New(cfg)
	if err != nil {
		log.Fatalf("infrastructure init failed: %v", err)
	}
	if err := infra.Start(); err != nil {
		log.Fatalf("store connect failed: %v", err)
	}
	defer infra.Lifecycle.Shutdown(5 * time.Second)

	domain := api.NewDomain(infra)
	ctx := context.Background()

	if *file != "" {
		applySeedFile(*file)
	}

	var n int
	if *all {
		n, err = runAllSeeders(ctx, domain.Employees)
	} else {
		n, err = runSeeder(ctx, domain.Employees, "employees")
	}
	if err != nil {
		log.Fatalf("seeding failed after %d records: %v", n, err)
	}

	fmt.Printf("seeded %d records into %s store\n", n, cfg.Storage.Driver)
}
