// Command board runs a staff or customer board in the terminal: it
// polls the ordering API, reconciles the list against this terminal's
// local overrides and prints the resulting view on every refresh.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/board"
	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/client"
	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/config"
	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/event"
	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/logger"
	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/order"
)

const (
	appNamespace = "SELFORDER"
	appName      = "selforder-board"
	appVersion   = "0.1.0"
)

var boardCategories = map[string]string{
	"barista": order.CategoryDrink,
	"kitchen": order.CategoryFood,
}

func main() {
	view := flag.String("view", "barista", "board view: barista, kitchen or customer")
	flag.Parse()

	if *view != "customer" {
		if _, ok := boardCategories[*view]; !ok {
			log.Fatalf("unknown view %q", *view)
		}
	}

	cfg, err := config.Load(appNamespace)
	if err != nil {
		log.Fatalf("%s(%s) cannot setup: %v", appName, appVersion, err)
	}

	logLevel, _ := cfg.GetString("log.level")
	lgr := logger.New(logLevel)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	apiURL := cfg.GetStringOrDef("services.api.url", "http://localhost:8080")
	orderAPI := client.New(apiURL)

	statePath := cfg.GetStringOrDef("board.state_path", "board_state.json")
	overrides, err := board.LoadOverrides(statePath)
	if err != nil {
		log.Fatalf("%s(%s) cannot load override state: %v", appName, appVersion, err)
	}

	b := board.New(orderAPI, overrides, orderAPI, lgr)

	if natsURL, _ := cfg.GetString("nats.url"); natsURL != "" {
		sub, err := event.NewNATSSubscriber(natsURL)
		if err != nil {
			log.Fatalf("%s(%s) cannot connect to NATS: %v", appName, appVersion, err)
		}
		defer sub.Close()

		statusSub := board.NewStatusSubscriber(sub, b, lgr)
		if err := statusSub.Start(ctx); err != nil {
			log.Fatalf("%s(%s) cannot subscribe: %v", appName, appVersion, err)
		}
	}

	interval := cfg.GetDuration("board.poll_interval", board.DefaultPollInterval)
	poller := board.NewPoller(b, interval, lgr)

	go printLoop(ctx, b, *view, interval)

	lgr.Infof("Starting %s(%s) view=%s api=%s", appName, appVersion, *view, apiURL)

	if err := poller.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("%s(%s) stopped: %v", appName, appVersion, err)
	}

	lgr.Infof("%s(%s) stopped", appName, appVersion)
}

func printLoop(ctx context.Context, b *board.Board, view string, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			printView(b, view)
		}
	}
}

func printView(b *board.Board, view string) {
	orders, lastErr, lastSync := b.Snapshot()
	if lastErr != nil {
		fmt.Printf("-- error: %v (showing data from %s)\n", lastErr, lastSync.Format(time.Kitchen))
	}

	if view == "customer" {
		waiting, completed := board.SplitByCompletion(orders)
		fmt.Printf("== orders: %d waiting / %d completed\n", len(waiting), len(completed))
		for _, g := range board.GroupByUser(orders) {
			fmt.Printf("  %s (table %s): %d items, latest %s\n",
				g.Username, g.Table, len(g.Items), g.LatestAt.Format(time.Kitchen))
		}
		return
	}

	category := boardCategories[view]
	buckets := board.GroupByCategoryStatus(orders)
	fmt.Printf("== %s board: pending %d / ready %d / delivered %d\n",
		view,
		board.BucketCount(buckets, category, order.StatusPending),
		board.BucketCount(buckets, category, order.StatusReady),
		board.BucketCount(buckets, category, order.StatusDelivered),
	)
	for _, entry := range buckets[board.BucketKey{Category: category, Status: order.StatusPending}] {
		fmt.Printf("  %dx %s for %s", entry.Item.Quantity, entry.Item.Name, entry.User.Username)
		if entry.Item.Notes != "" {
			fmt.Printf(" (%s)", entry.Item.Notes)
		}
		fmt.Println()
	}
}
