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
		log.Println("creating chain_cursors table...")
		return mghelper.CreateSchema(ctx, db, &relaydb.ChainCursorDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping chain_cursors table...")
		return mghelper.DropTables(ctx, db, &relaydb.ChainCursorDao{})
	})
}
