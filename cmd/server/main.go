package main

import (
	"log"
	"time"

	"channel-message-service/internal/server"
	"channel-message-service/internal/storage"

	"github.com/caarlos0/env/v6"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("zap.NewDevelopment: %v", err)
	}
	defer logger.Sync()

	sugar := logger.Sugar()
	sugar.Info("Application is starting")

	srvCfg := server.EnvConfig{}
	if err := env.Parse(&srvCfg); err != nil {
		sugar.Fatalf("Cannot parse server env config: %v", err)
	}

	storeCfg := storage.Config{}
	if err := env.Parse(&storeCfg); err != nil {
		sugar.Fatalf("Cannot parse storage env config: %v", err)
	}

	store, err := storage.NewStore(sugar, storeCfg, storage.ConnectionTimeout(30*time.Second))
	if err != nil {
		sugar.Fatalf("Cannot create Store instance: %v", err)
	}

	serverOpts := []server.Option{
		server.WithEnvConfig(srvCfg),
		server.ReadTimeout(5 * time.Second),
		server.TimeoutHandler(30*time.Second, "request timed out"),
	}

	srv, err := server.NewServer(sugar, store, serverOpts...)
	if err != nil {
		sugar.Fatalf("Cannot create Server instance: %v", err)
	}

	if err := srv.Start(); err != nil {
		sugar.Fatalf("Cannot start http srv: %v", err)
	}
}
