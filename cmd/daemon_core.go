package cmd

import (
	"context"
	"io"
	"os"
	"strconv"
	"time"

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

// keeperWaitTimeout bounds how long shutdown waits for in-flight
// reminder dispatches.
const keeperWaitTimeout = 10 * time.Second

// DaemonComponents holds all initialized daemon components.
// This allows for unified initialization and cleanup across
// console mode and headless service mode.
type DaemonComponents struct {
	Store      *store.Store
	Alarms     *alarm.Service
	Scheduler  *scheduler.Scheduler
	Dispatcher *dispatch.Dispatcher
	Api        *api.Api
	Server     *server.Server
	RPC        *server.RPCServer
	Keeper     *lifetime.Keeper

	logger       logger.Logger
	stdLogger    interface{ Println(v ...interface{}) }
	presenter    io.Closer
	cancelAlarms context.CancelFunc
}

// Close releases all daemon component resources in reverse order of
// initialization. The alarm service stops first so no new dispatches
// start, then shutdown waits for in-flight dispatches before closing
// the store underneath them.
func (c *DaemonComponents) Close() {
	if c.stdLogger != nil {
		c.stdLogger.Println("Shutting down daemon...")
	}

	if c.cancelAlarms != nil {
		c.cancelAlarms()
	}

	if c.Keeper != nil {
		ctx, cancel := context.WithTimeout(context.Background(), keeperWaitTimeout)
		if err := c.Keeper.Wait(ctx); err != nil {
			c.logger.Warning("daemon: gave up waiting for in-flight reminder work: %v", err)
		}
		cancel()
	}

	if c.RPC != nil {
		c.RPC.Close()
	}

	if c.presenter != nil {
		_ = c.presenter.Close()
	}

	if c.Store != nil {
		_ = c.Store.Close()
	}

	if c.stdLogger != nil {
		c.stdLogger.Println("Daemon stopped")
	}
}

// tcpPort resolves the fallback transport port from the environment.
func tcpPort() int {
	if v := os.Getenv(common.TCPPortEnv); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 && p < 65536 {
			return p
		}
	}
	return common.DefaultTCPPort
}

// initDaemonComponents initializes all daemon components with the provided logger.
// This is the shared initialization used by both console mode and service mode.
// Returns the initialized components or an error if initialization fails.
//
// On error, any partially initialized components are cleaned up before returning.
var initDaemonComponents = func(log logger.Logger) (*DaemonComponents, error) {
	stdLog := logger.ToStdLogger(log)

	dbPath, err := store.DefaultPath()
	if err != nil {
		return nil, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	port := tcpPort()
	serv := server.NewServer(stdLog, port)
	pool := serv.Pool()
	notifier := server.NewRPCNotifier(stdLog)

	// broadcastSummary pushes the refreshed upcoming-reminder summary to
	// socket-attached clients and JSON-RPC subscribers. Runs after every
	// mutation and every presented reminder.
	broadcastSummary := func() {
		var info *common.NoteInfo
		next, err := st.GetNextDueAfter(time.Now().UnixMilli())
		if err != nil {
			log.Error("daemon: summary query failed: %v", err)
		} else if next != nil {
			info = &common.NoteInfo{Id: next.Id, Text: next.Text, DueAt: next.DueAt}
		}
		notifier.Broadcast("summary.refresh", &server.SummaryNotification{Next: info})
		if err := pool.Broadcast(server.MakeResult(common.UPDATE_SUMMARY, &common.ReminderUpdate{
			Action: common.SummaryRefresh,
		})); err != nil {
			log.Warning("daemon: summary broadcast dropped a client: %v", err)
		}
	}

	oracle := perm.AllGranted()
	if os.Getenv(common.NoNotifyEnv) == "1" {
		oracle = perm.StaticOracle{Notifications: false, PreciseTimers: true}
	}

	var pres notify.Presenter
	var presCloser io.Closer
	dp, err := notify.NewDBusPresenter(log, oracle, broadcastSummary)
	if err != nil {
		log.Warning("daemon: session bus unavailable, reminders go to the log: %v", err)
		pres = notify.NewLogPresenter(log, broadcastSummary)
	} else {
		pres = dp
		presCloser = dp
	}

	keeper := &lifetime.Keeper{}

	// The alarm callback closes over disp, which is constructed right
	// after; nothing fires before the recovery sweep arms a wake-up.
	var disp *dispatch.Dispatcher
	alarmCtx, cancelAlarms := context.WithCancel(context.Background())
	alarms := alarm.New(alarmCtx, func(noteId int64) {
		disp.Dispatch(noteId)
	})

	disp = dispatch.New(log, st, pres, keeper)
	disp.SetDoneHook(func(noteId int64, final dispatch.State) {
		switch final {
		case dispatch.StatePresenting:
			text := ""
			if n, err := st.GetById(noteId); err == nil {
				text = n.Text
			}
			notifier.Broadcast("reminder.fired", &server.ReminderFiredNotification{Id: noteId, Text: text})
			if err := pool.Broadcast(server.MakeResult(common.UPDATE_REMINDER, &common.ReminderUpdate{
				Action: common.ReminderFired,
				Id:     noteId,
				Text:   text,
			})); err != nil {
				log.Warning("daemon: reminder broadcast dropped a client: %v", err)
			}
		case dispatch.StateSkipped:
			notifier.Broadcast("reminder.skipped", &server.ReminderSkippedNotification{Id: noteId})
			if err := pool.Broadcast(server.MakeResult(common.UPDATE_REMINDER, &common.ReminderUpdate{
				Action: common.ReminderSkipped,
				Id:     noteId,
			})); err != nil {
				log.Warning("daemon: reminder broadcast dropped a client: %v", err)
			}
		}
	})

	sched := scheduler.New(log, alarms, oracle)

	s := api.NewApi(log, st, sched)
	s.SetChangeHook(broadcastSummary)
	s.RegisterHandlers(serv)

	rpcSrv := server.NewRPCServer(stdLog, &server.RPCConfig{
		Secret:    os.Getenv(common.RPCSecretEnv),
		Port:      port + 1,
		Version:   currentBuildArgs.Version,
		Commit:    currentBuildArgs.Commit,
		BuildType: currentBuildArgs.BuildType,
	}, s, notifier)

	return &DaemonComponents{
		Store:        st,
		Alarms:       alarms,
		Scheduler:    sched,
		Dispatcher:   disp,
		Api:          s,
		Server:       serv,
		RPC:          rpcSrv,
		Keeper:       keeper,
		logger:       log,
		stdLogger:    stdLog,
		presenter:    presCloser,
		cancelAlarms: cancelAlarms,
	}, nil
}
