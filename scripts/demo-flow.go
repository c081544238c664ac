package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chandrabosep/flow-schedule-transaction/pkg/config"
	"github.com/chandrabosep/flow-schedule-transaction/pkg/emitter"
	"github.com/chandrabosep/flow-schedule-transaction/pkg/ledger"
	"github.com/chandrabosep/flow-schedule-transaction/pkg/relay"
)

// Local end-to-end walkthrough of the bridge flow without an EVM node
// or a database: in-process emitter -> relay engine -> payment ledger.
//
// Usage: go run scripts/demo-flow.go
func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to build logger: %s", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	const relayIdentity = "relay::operator"
	origin := emitter.New(relayIdentity, logger)
	source := relay.NewEmitterSource(origin, "local-origin", relayIdentity)

	paymentLedger, err := ledger.New(ctx, ledger.NewMemStore(), logger)
	if err != nil {
		log.Fatalf("failed to build ledger: %s", err)
	}

	cfg := &config.Config{
		Ethereum: config.EthereumConfig{
			PollingInterval: 200 * time.Millisecond,
			LookbackBlocks:  1000,
		},
		Relay: config.RelayConfig{
			Workers:        2,
			MaxRetries:     3,
			RetryBaseDelay: 100 * time.Millisecond,
			RetryMaxDelay:  time.Second,
			RescanInterval: time.Second,
		},
	}

	engine := relay.NewEngine(cfg, source, paymentLedger, source, relay.NewMemStore(), logger)
	if err := engine.Start(ctx); err != nil {
		log.Fatalf("failed to start engine: %s", err)
	}
	defer engine.Stop()

	fmt.Println("Requesting a schedule on the origin emitter (3s delay)...")
	originID, err := origin.RequestSchedule(ctx, "party::alice", "party::bob",
		decimal.RequireFromString("25.5"), 3)
	if err != nil {
		log.Fatalf("request failed: %s", err)
	}
	fmt.Printf("Origin request id: %d\n", originID)

	// give the relay a moment to deliver
	time.Sleep(time.Second)

	payments, err := paymentLedger.GetAllScheduledPayments(ctx)
	if err != nil {
		log.Fatalf("listing payments failed: %s", err)
	}
	var paymentID uint64
	for id, p := range payments {
		fmt.Printf("Ledger payment %d -> %s %s at %s\n",
			id, p.Recipient, p.Amount, p.ScheduledTime.Format(time.RFC3339))
		paymentID = id
	}
	if paymentID == 0 {
		log.Fatal("relay did not deliver the request")
	}

	fmt.Println("Executing before the scheduled time (expect rejection)...")
	if err := paymentLedger.ExecutePayment(ctx, paymentID); err != nil {
		fmt.Printf("  rejected: %s\n", err)
	}

	fmt.Println("Waiting for the scheduled time...")
	time.Sleep(3 * time.Second)

	if err := paymentLedger.ExecutePayment(ctx, paymentID); err != nil {
		log.Fatalf("execution failed: %s", err)
	}
	fmt.Println("Payment executed.")

	req, err := origin.GetRequest(ctx, originID)
	if err != nil {
		log.Fatalf("reading origin request failed: %s", err)
	}
	fmt.Printf("Origin request bridged: %t\n", req.Bridged)
}
