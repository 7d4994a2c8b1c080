package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/config"
	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/event"
	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/logger"
	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/menu"
	repo "github.com/MuammarRizal/Restaurant-web-app-v2/internal/mongo"
	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/order"
	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/qr"
)

const (
	appNamespace = "SELFORDER"
	appName      = "selforder-server"
	appVersion   = "0.1.0"
)

func main() {
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
		syscall.SIGQUIT,
	)
	defer stop()

	baseRepo := repo.NewBaseRepo(cfg, lgr)
	if err := baseRepo.Start(ctx); err != nil {
		log.Fatalf("%s(%s) cannot start base repository: %v", appName, appVersion, err)
	}

	db := baseRepo.GetDatabase()
	if db == nil {
		log.Fatalf("%s(%s) cannot initialize repository database: %v", appName, appVersion, errors.New("repository database is nil"))
	}

	orderRepo := repo.NewOrderRepo(db)
	menuRepo := repo.NewMenuRepo(db)
	qrRepo := repo.NewQRCodeRepo(db)

	var publisher event.Publisher = event.NoopPublisher{}
	var natsPub *event.NATSPublisher
	if natsURL, _ := cfg.GetString("nats.url"); natsURL != "" {
		natsPub, err = event.NewNATSPublisher(natsURL)
		if err != nil {
			log.Fatalf("%s(%s) cannot connect to NATS publisher: %v", appName, appVersion, err)
		}
		publisher = natsPub
		lgr.Info("NATS publisher connected", "url", natsURL)
	} else {
		lgr.Info("no NATS URL configured, boards will rely on polling only")
	}

	orderHandler := order.NewHandler(orderRepo, publisher, lgr)
	menuHandler := menu.NewHandler(menuRepo, lgr)
	qrHandler := qr.NewHandler(qrRepo, lgr)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Route("/api", func(r chi.Router) {
		orderHandler.RegisterRoutes(r)
		menuHandler.RegisterRoutes(r)
		qrHandler.RegisterRoutes(r)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	port := cfg.GetStringOrDef("web.port", "8080")
	server := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	lgr.Infof("Starting %s(%s) on :%s", appName, appVersion, port)

	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		_ = baseRepo.Stop(context.Background())
		log.Fatalf("%s(%s) stopped: %v", appName, appVersion, err)
	}

	if natsPub != nil {
		_ = natsPub.Close()
	}
	_ = baseRepo.Stop(context.Background())
	lgr.Infof("%s(%s) stopped", appName, appVersion)
}
