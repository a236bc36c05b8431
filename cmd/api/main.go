package main

import (
	"os"
	"time"

	"go-payroll/internal/app"
	"go-payroll/internal/bootstrap"
	"go-payroll/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	router := gin.Default()
	if err := app.BuildApp(router); err != nil {
		logger.Fatal("payroll API startup failed", zap.Error(err))
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	bootstrap.StartHTTPServer(
		router,
		bootstrap.ServerConfig{
			Port:              port,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
			ShutdownTimeout:   15 * time.Second,
		},
		bootstrap.NewStdoutAuditLogger(),
	)
}
