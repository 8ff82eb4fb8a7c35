package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/noteping/noteping/common"
	"github.com/noteping/noteping/internal/alarm"
	"github.com/noteping/noteping/internal/api"
	"github.com/noteping/noteping/internal/dispatch"
	"github.com/noteping/noteping/internal/lifetime"
	"github.com/noteping/noteping/internal/notify"
	"github.com/noteping/noteping/internal/perm"
	"github.com/noteping/noteping/internal/scheduler"
	"github.com/noteping/noteping/internal/server"
	"github.com/noteping/noteping/internal/store"
	"github.com/noteping/noteping/pkg/logger"
)

// notepingd is the headless daemon binary: no CLI, no desktop bus,
// reminders go to the log. The full-featured daemon lives behind
// `noteping daemon`.
func main() {
	l := logger.NewStandardLogger(log.Default())

	dbPath, err := store.DefaultPath()
	if err != nil {
		fmt.Println("notepingd:", err.Error())
		os.Exit(1)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		fmt.Println("notepingd:", err.Error())
		os.Exit(1)
	}
	defer st.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	keeper := &lifetime.Keeper{}
	disp := dispatch.New(l, st, notify.NewLogPresenter(l, nil), keeper)
	alarms := alarm.New(ctx, disp.Dispatch)
	sched := scheduler.New(l, alarms, perm.AllGranted())

	s := api.NewApi(l, st, sched)
	s.SetStopFunc(cancel)
	serv := server.NewServer(log.Default(), common.DefaultTCPPort)
	s.RegisterHandlers(serv)

	token := keeper.Hold("sweep")
	go func() {
		defer token.Release()
		sched.Sweep(st)
	}()

	if err := serv.Start(ctx); err != nil {
		fmt.Println("notepingd:", err.Error())
		os.Exit(1)
	}
	_ = keeper.Wait(context.Background())
}
