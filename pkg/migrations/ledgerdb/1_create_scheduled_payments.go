package ledgerdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	ledgerdao "github.com/chandrabosep/flow-schedule-transaction/pkg/ledgerdb"
	mghelper "github.com/chandrabosep/flow-schedule-transaction/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating scheduled_payments table...")
		if err := mghelper.CreateSchema(ctx, db, &ledgerdao.ScheduledPaymentDao{}); err != nil {
			return err
		}
		if err := mghelper.CreateModelIndexes(ctx, db, &ledgerdao.ScheduledPaymentDao{}, "executed", "scheduled_time"); err != nil {
			return err
		}
		return mghelper.CreateModelUniqueIndexes(ctx, db, &ledgerdao.ScheduledPaymentDao{}, "origin_key")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping scheduled_payments table...")
		return mghelper.DropTables(ctx, db, &ledgerdao.ScheduledPaymentDao{})
	})
}
