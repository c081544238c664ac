package relayerdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/chandrabosep/flow-schedule-transaction/pkg/pgutil/migrations"
	"github.com/chandrabosep/flow-schedule-transaction/pkg/relaydb"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating seen_events table...")
		if err := mghelper.CreateSchema(ctx, db, &relaydb.SeenEventDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &relaydb.SeenEventDao{}, "payment_id")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping seen_events table...")
		return mghelper.DropTables(ctx, db, &relaydb.SeenEventDao{})
	})
}
