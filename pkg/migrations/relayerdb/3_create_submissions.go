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
		log.Println("creating submissions table...")
		if err := mghelper.CreateSchema(ctx, db, &relaydb.SubmissionDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &relaydb.SubmissionDao{}, "status", "origin_id")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping submissions table...")
		return mghelper.DropTables(ctx, db, &relaydb.SubmissionDao{})
	})
}
