package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/config"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/db"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/logger"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/migrate"
)

func main() {
	_ = godotenv.Load()

	dir := flag.String("dir", migrate.DefaultDir, "migrations directory")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: migrate [-dir path] <command> [args]\n")
		fmt.Fprintf(os.Stderr, "Commands: up, up-by-one, down, redo, status, version, create\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logg := logger.New(logger.Options{
		ServiceName: "techpinik-migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	ctx := context.Background()
	client, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect database: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	sqlDB, err := client.DB().DB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "extract sql.DB: %v\n", err)
		os.Exit(1)
	}

	if err := migrate.Run(ctx, sqlDB, *dir, args[0], args[1:]...); err != nil {
		fmt.Fprintf(os.Stderr, "migrate %s: %v\n", args[0], err)
		os.Exit(1)
	}
	logg.Info(ctx, "migration command completed")
}
