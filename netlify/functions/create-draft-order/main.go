package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/theabdulsaboor/Vercel-Shopify-App/app"
	"github.com/theabdulsaboor/Vercel-Shopify-App/config"
	"github.com/theabdulsaboor/Vercel-Shopify-App/draftorder"
	"github.com/theabdulsaboor/Vercel-Shopify-App/logger"
)

func main() {
	log := logger.New(logger.Options{
		Service: "create-draft-order",
		Level:   logger.ParseLevel(os.Getenv("LOG_LEVEL")),
	})

	cfg, err := config.Load()
	if err != nil {
		lambda.Start(app.ConfigErrorHandler(log, err))
		return
	}

	handler := draftorder.NewHandler(cfg, log)
	lambda.Start(app.TimeoutMiddleware(app.CacheMiddleware(app.CheckEnvMiddleware(
		app.RequestLogMiddleware(log, "create-draft-order",
			app.CORSMiddleware(cfg.AllowedOrigin, handler.CreateBulk)),
	))))
}
