package service

import (
	"perfume-designer/internal/model"
	"perfume-designer/internal/telemetry"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	TestOrderID = "4b7e0c47-8c4c-4a8b-9f3c-5d2c8f1a6e01"
	TestSize    = "35"
)

func newTestMetrics(t *testing.T) *telemetry.Metrics {
	t.Helper()
	m, err := telemetry.NewMetrics(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)
	return m
}

func testQuestions() []*model.Question {
	return []*model.Question{
		{ID: "q1", Text: "Mood?", Type: model.QuestionSingle, Options: []string{"Calm", "Bold"}},
		{ID: "q3", Text: "Scents?", Type: model.QuestionMultiple, Options: []string{"Fruity", "Woody"}},
		{ID: "q8", Text: "Memory?", Type: model.QuestionText, Options: []string{}},
	}
}
