package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"

	"people-api/internal/config"
	"people-api/internal/database"
	"people-api/pkg/server"
)

var (
	container *server.Container
	ginProxy  *ginadapter.GinLambda
)

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	container, err = server.NewContainer(cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	ginProxy = ginadapter.New(server.NewRouter(container))
}

// warmupEvent matches the payload sent by serverless-plugin-warmup and by
// scheduled warming rules.
type warmupEvent struct {
	Source string `json:"source"`
	Warmup bool   `json:"warmup"`
}

// handler triages the raw invocation payload. Warmup pings and bare
// initialization events never carry an API Gateway requestContext, so they
// are answered directly; everything else is proxied to the gin router.
func handler(ctx context.Context, raw json.RawMessage) (events.APIGatewayProxyResponse, error) {
	var warmup warmupEvent
	if err := json.Unmarshal(raw, &warmup); err == nil {
		if warmup.Source == "serverless-plugin-warmup" || warmup.Warmup {
			log.Println("Warmup event received")
			return events.APIGatewayProxyResponse{
				StatusCode: 200,
				Body:       "Lambda is warm!",
			}, nil
		}
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: 400,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"detail": "Unrecognized event payload"}`,
		}, nil
	}

	if _, ok := probe["requestContext"]; !ok {
		// Direct invocation without an HTTP context runs schema setup so the
		// function can be used to provision a fresh database.
		if err := database.InitSchema(container.DB(), container.Logger()); err != nil {
			log.Printf("Initialization failed: %v", err)
			return events.APIGatewayProxyResponse{
				StatusCode: 500,
				Body:       "Initialization failed",
			}, nil
		}
		return events.APIGatewayProxyResponse{
			StatusCode: 200,
			Body:       "Initialization completed",
		}, nil
	}

	var req events.APIGatewayProxyRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: 400,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"detail": "Malformed API Gateway event"}`,
		}, nil
	}

	return ginProxy.ProxyWithContext(ctx, req)
}

func main() {
	awslambda.Start(handler)
}
