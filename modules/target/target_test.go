package target_test

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/targetform/modules/target"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("accepted input", func(t *testing.T) {
		t.Parallel()
		in := validInput()
		in.Metric = "1200.5.1"
		in.Tags = "Web, db  web;prod"

		tg, err := target.New(in)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, tg.ID)
		assert.Equal(t, "CPU", tg.Name)
		assert.Equal(t, "alice", tg.Owner)
		assert.InDelta(t, 1200.5, tg.Metric, 1e-9)
		assert.Equal(t, "ops/sec", tg.MetricUnit)
		assert.Equal(t, []string{"web", "db", "prod"}, tg.Tags)
		assert.InDelta(t, 90.0, tg.Red, 1e-9)
		assert.InDelta(t, 70.0, tg.Orange, 1e-9)
		assert.InDelta(t, 50.0, tg.Yellow, 1e-9)
		assert.Zero(t, tg.AchievedMetric)
		assert.False(t, tg.CreatedAt.IsZero())
		assert.Equal(t, tg.CreatedAt, tg.UpdatedAt)
	})

	t.Run("rejected with message", func(t *testing.T) {
		t.Parallel()
		in := validInput()
		in.Owner = ""

		_, err := target.New(in)
		require.ErrorIs(t, err, target.ErrRejected)
		assert.Contains(t, err.Error(), target.MsgOwnerRequired)
	})

	t.Run("silently rejected", func(t *testing.T) {
		t.Parallel()
		in := validInput()
		in.ColorYellow = "n/a"

		_, err := target.New(in)
		assert.Equal(t, target.ErrRejected, err)
	})

	t.Run("strict options apply", func(t *testing.T) {
		t.Parallel()
		in := validInput()
		in.ColorYellow = "n/a"

		_, err := target.New(in, target.WithStrictThresholds())
		require.ErrorIs(t, err, target.ErrRejected)
		assert.Contains(t, err.Error(), target.MsgYellowPositive)
	})

	t.Run("ids are unique", func(t *testing.T) {
		t.Parallel()
		a, err := target.New(validInput())
		require.NoError(t, err)
		b, err := target.New(validInput())
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestStatusAndBand(t *testing.T) {
	t.Parallel()

	base := target.Target{Metric: 200, Red: 90, Orange: 70, Yellow: 50}

	tests := []struct {
		name     string
		achieved float64
		status   float64
		band     target.Band
	}{
		{"nothing achieved", 0, 0, target.BandGreen},
		{"below yellow", 98, 49, target.BandGreen},
		{"at yellow threshold", 100, 50, target.BandYellow},
		{"below orange", 138, 69, target.BandYellow},
		{"at orange threshold", 140, 70, target.BandOrange},
		{"at red threshold", 180, 90, target.BandRed},
		{"exceeded", 300, 150, target.BandRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tg := base
			tg.AchievedMetric = tt.achieved
			assert.InDelta(t, tt.status, tg.Status(), 1e-9)
			assert.Equal(t, tt.band, tg.Band())
		})
	}

	t.Run("zero metric", func(t *testing.T) {
		t.Parallel()
		assert.Zero(t, target.Target{AchievedMetric: 10}.Status())
	})
}

func TestReportJSON(t *testing.T) {
	t.Parallel()

	tg := target.Target{
		ID:             uuid.MustParse("6f1c1d4e-8f43-4a7b-9a55-2f6b0c1b9b10"),
		Name:           "CPU",
		Owner:          "alice",
		Metric:         100,
		Tags:           []string{"infra"},
		Red:            90,
		Orange:         70,
		Yellow:         50,
		AchievedMetric: 80,
	}

	data, err := json.Marshal(target.NewReport(tg))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "6f1c1d4e-8f43-4a7b-9a55-2f6b0c1b9b10", got["id"])
	assert.Equal(t, "CPU", got["name"])
	assert.InDelta(t, 80.0, got["status"], 1e-9)
	assert.Equal(t, "orange", got["band"])
	assert.NotContains(t, got, "achieved_metric_unit")
}

func TestNewStoresOverflowAsMaxFloat(t *testing.T) {
	t.Parallel()

	huge := "1" + strings.Repeat("0", 400)
	in := validInput()
	in.Metric = huge
	in.ColorRed = huge
	in.ColorOrange = huge + ".5"
	in.ColorYellow = huge

	tg, err := target.New(in)
	require.NoError(t, err)
	assert.Equal(t, math.MaxFloat64, tg.Metric)
	assert.Equal(t, math.MaxFloat64, tg.Red)
	assert.Equal(t, math.MaxFloat64, tg.Orange)
	assert.Equal(t, math.MaxFloat64, tg.Yellow)

	_, err = json.Marshal(target.NewReport(tg))
	assert.NoError(t, err)
}

func TestStatusIsFinite(t *testing.T) {
	t.Parallel()

	tg := newTarget(t, "tiny", "alice")
	tg.Metric = 1e-300
	tg.AchievedMetric = math.MaxFloat64

	assert.Equal(t, math.MaxFloat64, tg.Status())
	assert.Equal(t, target.BandRed, tg.Band())

	_, err := json.Marshal(target.NewReport(tg))
	assert.NoError(t, err)
}
