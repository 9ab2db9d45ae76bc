package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"renthub/accounts"
	"renthub/controllers"
	"renthub/db"
	"renthub/images"
	"renthub/lifecycle"
	"renthub/logger"
	"renthub/router"
	"renthub/throttle"
	"renthub/workers"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, err := openDB()
	if err != nil {
		return err
	}
	defer g.Close()
	store := db.NewStore(g)

	limiter, closeLimiter, err := resetLimiter(ctx)
	if err != nil {
		return err
	}
	defer closeLimiter()

	// sem bucket configurado o upload de imagens responde 503
	var imageStore lifecycle.ImageStore
	if conf.Images.Bucket != "" {
		s3store, err := images.New(ctx, images.Config{
			Bucket:        conf.Images.Bucket,
			Region:        conf.Images.Region,
			PublicBaseURL: conf.Images.PublicBaseURL,
		})
		if err != nil {
			return err
		}
		imageStore = s3store
	} else {
		logger.Warn("images bucket not configured, uploads disabled")
	}

	manager := lifecycle.NewManager(store, imageStore)
	accountService := accounts.NewService(store,
		accounts.BcryptHasher{Cost: conf.Security.BcryptCost},
		accounts.LogNotifier{},
		limiter,
		accounts.Settings{
			CodeLength: conf.Security.ResetCodeLen,
			CodeTTL:    time.Duration(conf.Security.ResetCodeTTLMinutes) * time.Minute,
		},
	)

	h := controllers.NewHandler(controllers.Options{
		Accounts:       accountService,
		Lifecycle:      manager,
		Users:          store.Users(),
		Tokens:         controllers.NewTokenIssuer(conf.Security.JwtSecret, time.Duration(conf.Security.AccessTokenTTLMinutes)*time.Minute),
		MaxUploadBytes: int64(conf.Images.MaxUploadMB) << 20,
		Ping:           func(ctx context.Context) error { return g.DB().PingContext(ctx) },
	})

	if !conf.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	router.Initialize(r, h, conf)

	var workerDone <-chan struct{}
	if conf.RentalExpiryIntervalMinutes > 0 {
		workerDone = workers.StartRentalExpiry(ctx, manager, time.Duration(conf.RentalExpiryIntervalMinutes)*time.Minute)
	} else {
		closed := make(chan struct{})
		close(closed)
		workerDone = closed
	}

	srv := &http.Server{
		Addr:              ":" + conf.ApiPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("renthub listening", "port", conf.ApiPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		stop()
		<-workerDone
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err.Error())
	}
	<-workerDone
	return nil
}

// resetLimiter throttles forgot-password per email through Redis when an
// address is configured.
func resetLimiter(ctx context.Context) (accounts.Limiter, func(), error) {
	if conf.Redis.Addr == "" {
		logger.Warn("redis not configured, password reset requests are not throttled")
		return throttle.Unlimited{}, func() {}, nil
	}
	client, err := throttle.NewClient(ctx, conf.Redis.Addr, conf.Redis.Password, conf.Redis.DB)
	if err != nil {
		return nil, nil, err
	}
	limiter := throttle.NewRedisLimiter(client, conf.Redis.ResetRequestLimit, time.Duration(conf.Redis.ResetWindowMinutes)*time.Minute)
	return limiter, func() { client.Close() }, nil
}
