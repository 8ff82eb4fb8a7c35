package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/noteping/noteping/pkg/logger"
)

func daemon(ctx *cli.Context) error {
	l := logger.NewStandardLogger(log.Default())
	c, err := initDaemonComponents(l)
	if err != nil {
		printRuntimeErr(ctx, "daemon", "init", err)
		return nil
	}
	defer c.Close()

	runCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	c.Api.SetStopFunc(cancel)

	// The recovery sweep re-arms wake-ups lost to the restart. It runs in
	// the background under a stay-alive token so a stop request arriving
	// mid-sweep still waits for it.
	token := c.Keeper.Hold("sweep")
	go func() {
		defer token.Release()
		c.Scheduler.Sweep(c.Store)
	}()

	go func() {
		if err := c.RPC.Serve(runCtx); err != nil {
			l.Error("daemon: rpc endpoint failed: %v", err)
		}
	}()

	return c.Server.Start(runCtx)
}
