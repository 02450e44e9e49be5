// Copyright (c) 2022 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"

	playfabmodels "playfab-models-go/cmd/playfab-models"
	"playfab-models-go/pkg/common"
	"playfab-models-go/pkg/modelregistry"
)

const environment = "production"

func initProvider(ctx context.Context, cfg common.Config) (*sdktrace.TracerProvider, error) {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(cfg.ServiceName),
		attribute.String("environment", common.GetEnv("ENVIRONMENT", environment)),
	)
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
	}

	// spans are only exported when a collector is configured
	if endpoint := common.GetEnv("OTEL_EXPORTER_ZIPKIN_ENDPOINT", ""); endpoint != "" {
		exporter, err := zipkin.New(endpoint)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sdktrace.WithSpanProcessor(sdktrace.NewBatchSpanProcessor(exporter)))
		logrus.Debugf("exporting spans to %s", endpoint)
	}

	tracerProvider := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tracerProvider, nil
}

// parentContext continues a trace handed over by the caller in the B3 variable
func parentContext(ctx context.Context) context.Context {
	header := http.Header{}
	if value := os.Getenv("B3"); value != "" {
		header.Set("b3", value)
	}
	propagator := b3.New(b3.WithInjectEncoding(b3.B3MultipleHeader))

	return propagator.Extract(ctx, propagation.HeaderCarrier(header))
}

func main() {
	cfg := common.LoadConfig()
	common.ConfigureLogging(cfg)

	ctx := context.Background()
	tp, err := initProvider(ctx, cfg)
	if err != nil {
		logrus.Fatalf("failed to initializing the provider. %s", err.Error())
	}
	ctx = parentContext(ctx)

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	playfabmodels.Register(subcommands.DefaultCommander, &playfabmodels.Env{
		Config:   cfg,
		Registry: modelregistry.Default(),
		In:       os.Stdin,
		Out:      os.Stdout,
	})

	flag.Parse()
	status := subcommands.Execute(ctx)

	// flush spans before exit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	if err = tp.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("failed to shut down the provider. %s", err.Error())
	}
	cancel()

	os.Exit(int(status))
}
