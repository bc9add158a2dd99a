package main

import (
	"grandhotel/config"
	"grandhotel/di"
	"grandhotel/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
