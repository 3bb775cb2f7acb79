package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupOTelEnv(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")
	t.Setenv("INVISIBOGA_OTLP_ENDPOINT", "https://collector.example:4318")
	t.Setenv("INVISIBOGA_OTLP_HEADERS", "x-api-key=secret")

	setupOTelEnv()

	require.Equal(t, "https://collector.example:4318", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	require.Equal(t, "x-api-key=secret", os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"))
}

func TestSetupOTelEnvKeepsExplicitValues(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "authorization=Bearer abc")
	t.Setenv("INVISIBOGA_OTLP_ENDPOINT", "https://collector.example:4318")
	t.Setenv("INVISIBOGA_OTLP_HEADERS", "x-api-key=secret")

	setupOTelEnv()

	require.Equal(t, "http://localhost:4318", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	require.Equal(t, "authorization=Bearer abc", os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"))
}
