package main

import (
	"flag"
	"log"

	"github.com/chandrabosep/flow-schedule-transaction/pkg/config"
	ledgermigrations "github.com/chandrabosep/flow-schedule-transaction/pkg/migrations/ledgerdb"
	"github.com/chandrabosep/flow-schedule-transaction/pkg/migrations/relayerdb"
	"github.com/chandrabosep/flow-schedule-transaction/pkg/pgutil"
	mghelper "github.com/chandrabosep/flow-schedule-transaction/pkg/pgutil/migrations"

	"github.com/uptrace/bun/migrate"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	// Connect to database
	db, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	log.Printf("Running migrations for Relayer database (%s)...\n", cfg.Database.Database)

	// The relayer embeds the destination ledger, so its database carries
	// both the relay bookkeeping tables and the scheduled payment table.
	for _, migrations := range []*migrate.Migrations{relayerdb.Migrations, ledgermigrations.Migrations} {
		migrator := migrate.NewMigrator(db, migrations)
		if err := mghelper.RunMigrations(migrator, flag.Args()...); err != nil {
			mghelper.Exitf(err.Error())
		}
	}
}
