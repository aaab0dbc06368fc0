package main

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MikeRez0/coinsend/internal/adapter/client/lookup"
	"github.com/MikeRez0/coinsend/internal/adapter/config"
	"github.com/MikeRez0/coinsend/internal/adapter/handler/http"
	"github.com/MikeRez0/coinsend/internal/adapter/logger"
	"github.com/MikeRez0/coinsend/internal/adapter/metrics"
	"github.com/MikeRez0/coinsend/internal/adapter/notify"
	"github.com/MikeRez0/coinsend/internal/adapter/random"
	"github.com/MikeRez0/coinsend/internal/core/domain"
	"github.com/MikeRez0/coinsend/internal/core/port"
	"github.com/MikeRez0/coinsend/internal/core/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log, err := logger.NewLogger(conf.App)
	if err != nil {
		fmt.Printf("error creating log: %s", err)
		return
	}
	defer func() {
		_ = log.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	m := metrics.New(registry)

	rnd := random.Source{}
	simulated := lookup.NewSimulated(rnd, conf.Lookup.DelayMin, conf.Lookup.DelayMax, log.Named("Simulated lookup"))

	var userLookup port.UserLookup = simulated
	if conf.Lookup.HostString != "" {
		client, err := lookup.NewClient(conf.Lookup, log.Named("Lookup client"))
		if err != nil {
			log.Error("lookup client creating error", zap.Error(err))
			return
		}
		userLookup = client
	}

	feed := notify.NewFeed(notify.DefaultFeedSize, log.Named("Notifications"))

	form, err := service.NewForm(domain.DefaultCatalog(), userLookup, feed, rnd, m, service.Options{
		InitialBalance: conf.Form.InitialBalance,
		Debounce:       conf.Form.Debounce,
		SendCycleMin:   conf.Form.SendCycleMin,
		SendCycleMax:   conf.Form.SendCycleMax,
		SuccessWindow:  conf.Form.SuccessWindow,
	}, log.Named("Form"))
	if err != nil {
		log.Error("form service creating error", zap.Error(err))
		return
	}
	defer form.Close()

	formHandler, err := http.NewFormHandler(form, log.Named("Form handler"))
	if err != nil {
		log.Error("form handler creating error", zap.Error(err))
		return
	}
	// the lookup endpoint always answers from the simulation
	userHandler, err := http.NewUserHandler(simulated, log.Named("User handler"))
	if err != nil {
		log.Error("user handler creating error", zap.Error(err))
		return
	}
	notificationHandler, err := http.NewNotificationHandler(feed, log.Named("Notification handler"))
	if err != nil {
		log.Error("notification handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, formHandler, userHandler, notificationHandler, m.Handler(), log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}
	server := r.Server()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server started", zap.String("address", conf.HTTP.HostString))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return fmt.Errorf("router serve error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", zap.Error(err))
	}
}
