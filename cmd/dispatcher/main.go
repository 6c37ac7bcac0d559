package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	msghandler "github.com/aliskhannn/mail-dispatcher/internal/api/handlers/message"
	optouthandler "github.com/aliskhannn/mail-dispatcher/internal/api/handlers/optout"
	schedhandler "github.com/aliskhannn/mail-dispatcher/internal/api/handlers/scheduler"
	"github.com/aliskhannn/mail-dispatcher/internal/api/router"
	"github.com/aliskhannn/mail-dispatcher/internal/api/server"
	"github.com/aliskhannn/mail-dispatcher/internal/backoff"
	"github.com/aliskhannn/mail-dispatcher/internal/clock"
	"github.com/aliskhannn/mail-dispatcher/internal/config"
	"github.com/aliskhannn/mail-dispatcher/internal/provider"
	"github.com/aliskhannn/mail-dispatcher/internal/rabbitmq/handlers/dispatch"
	"github.com/aliskhannn/mail-dispatcher/internal/rabbitmq/queue"
	"github.com/aliskhannn/mail-dispatcher/internal/render"
	"github.com/aliskhannn/mail-dispatcher/internal/repository/contact"
	msgrepo "github.com/aliskhannn/mail-dispatcher/internal/repository/message"
	optoutrepo "github.com/aliskhannn/mail-dispatcher/internal/repository/optout"
	"github.com/aliskhannn/mail-dispatcher/internal/repository/template"
	"github.com/aliskhannn/mail-dispatcher/internal/scheduler"
	"github.com/aliskhannn/mail-dispatcher/internal/service/delivery"
	msgsvc "github.com/aliskhannn/mail-dispatcher/internal/service/message"
	optoutsvc "github.com/aliskhannn/mail-dispatcher/internal/service/optout"
	"github.com/aliskhannn/mail-dispatcher/internal/worker"
	"github.com/aliskhannn/mail-dispatcher/pkg/email"
	"github.com/aliskhannn/mail-dispatcher/pkg/resend"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewDispatchQueue(ch, queue.Names{
		Exchange:   cfg.RabbitMQ.Exchange,
		Queue:      cfg.RabbitMQ.Queue,
		DLQ:        cfg.RabbitMQ.DLQ,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
	})
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create dispatch queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	messages := msgrepo.NewRepository(db)
	contacts := contact.NewRepository(db)
	templates := template.NewRepository(db)
	optOuts := optoutrepo.NewRepository(db)

	gateway := provider.NewGateway(cfg.Providers.Default, senders(cfg)...)
	if !gateway.Has(cfg.Providers.Default) {
		zlog.Logger.Warn().Str("provider", cfg.Providers.Default).Msg("default provider is not configured")
	}

	clk := clock.System{}
	gate := optoutsvc.NewGate(optOuts, contacts, templates)

	messageService := msgsvc.NewService(messages, contacts, templates, gate, q, rdb, clk, msgsvc.Defaults{
		From:        cfg.Delivery.DefaultFrom,
		Provider:    cfg.Providers.Default,
		MaxAttempts: cfg.Delivery.MaxAttempts,
	})

	orchestrator := delivery.NewOrchestrator(messages, render.NewRenderer(templates), gateway, rdb, delivery.Options{
		Policy:      backoff.NewPolicy(cfg.Backoff.Base, cfg.Backoff.Jitter),
		Clock:       clk,
		SendTimeout: cfg.Delivery.ProviderTimeout,
		DefaultFrom: cfg.Delivery.DefaultFrom,
		Strategy:    cfg.Retry,
	})

	sched := scheduler.New(messages, orchestrator, clk, scheduler.Config{
		Interval:          cfg.Scheduler.Interval,
		FirstSendLimit:    cfg.Scheduler.FirstSendLimit,
		RetryLimit:        cfg.Scheduler.RetryLimit,
		Concurrency:       cfg.Scheduler.Concurrency,
		ProcessingTimeout: cfg.Scheduler.ProcessingTimeout,
	})

	dispatcher := worker.NewDispatcher(q, dispatch.NewHandler(orchestrator), messageService)

	go sched.Run(ctx)
	go dispatcher.Run(ctx, cfg.Retry, cfg.Workers.Count)

	r := router.New(
		msghandler.NewHandler(messageService, val, cfg),
		optouthandler.NewHandler(gate, val),
		schedhandler.NewHandler(sched),
	)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	// in-flight deliveries must finish before storage goes away
	sched.Wait()

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close master DB")
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Error().Err(err).Int("slave", i).Msg("failed to close slave DB")
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}

// senders builds the providers that have credentials configured. SMTP is
// always available.
func senders(cfg *config.Config) []provider.Sender {
	out := []provider.Sender{
		provider.NewSMTP(email.NewClient(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Username,
			cfg.SMTP.Password,
			cfg.SMTP.From,
			cfg.Delivery.ProviderTimeout,
		)),
	}

	if cfg.SendGrid.APIKey != "" {
		out = append(out, provider.NewSendGrid(cfg.SendGrid.APIKey, cfg.SendGrid.BaseURL, cfg.Delivery.ProviderTimeout))
	}

	if cfg.Resend.APIKey != "" {
		out = append(out, provider.NewResend(resend.NewClient(cfg.Resend.APIKey, cfg.Resend.BaseURL, cfg.Delivery.ProviderTimeout)))
	}

	return out
}
