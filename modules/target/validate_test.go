package target_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/targetform/modules/target"
)

func validInput() target.Input {
	return target.Input{
		Name:        "CPU",
		Owner:       "alice",
		Metric:      "0.95",
		MetricUnit:  "ops/sec",
		Tags:        "infra",
		ColorRed:    "90",
		ColorOrange: "70",
		ColorYellow: "50",
	}
}

func TestValidateScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*target.Input)
		want   target.Decision
	}{
		{
			name:   "all fields empty",
			modify: func(in *target.Input) { *in = target.Input{} },
			want:   target.Decision{Message: target.MsgNameRequired},
		},
		{
			name:   "empty metric",
			modify: func(in *target.Input) { in.Metric = "" },
			want:   target.Decision{Message: target.MsgMetricPositive},
		},
		{
			name:   "valid definition",
			modify: func(in *target.Input) {},
			want:   target.Decision{Accepted: true},
		},
		{
			name:   "non-numeric metric",
			modify: func(in *target.Input) { in.Metric = "abc" },
			want:   target.Decision{Message: target.MsgMetricPositive},
		},
		{
			name:   "non-numeric red is rejected silently",
			modify: func(in *target.Input) { in.ColorRed = "abc" },
			want:   target.Decision{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := validInput()
			tt.modify(&in)
			assert.Equal(t, tt.want, target.Validate(in))
		})
	}
}

func TestValidatePriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   target.Input
		want string
	}{
		{
			name: "name before owner",
			in:   target.Input{Metric: "5", Tags: "x"},
			want: target.MsgNameRequired,
		},
		{
			name: "owner before metric",
			in:   target.Input{Name: "CPU", Metric: "0"},
			want: target.MsgOwnerRequired,
		},
		{
			name: "metric before tags",
			in:   target.Input{Name: "CPU", Owner: "alice", Metric: "-1"},
			want: target.MsgMetricPositive,
		},
		{
			name: "tags before colors",
			in:   target.Input{Name: "CPU", Owner: "alice", Metric: "1"},
			want: target.MsgTagsRequired,
		},
		{
			name: "red before orange",
			in:   target.Input{Name: "CPU", Owner: "alice", Metric: "1", Tags: "a"},
			want: target.MsgRedRequired,
		},
		{
			name: "orange before yellow",
			in:   target.Input{Name: "CPU", Owner: "alice", Metric: "1", Tags: "a", ColorRed: "abc"},
			want: target.MsgOrangeRequired,
		},
		{
			name: "yellow last",
			in:   target.Input{Name: "CPU", Owner: "alice", Metric: "1", Tags: "a", ColorRed: "1", ColorOrange: "2"},
			want: target.MsgYellowRequired,
		},
		{
			name: "empty metric unit is not reported",
			in: target.Input{
				Name: "CPU", Owner: "alice", Metric: "1", Tags: "a",
				ColorRed: "1", ColorOrange: "2", ColorYellow: "3",
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := target.Validate(tt.in)
			assert.False(t, d.Accepted)
			assert.Equal(t, tt.want, d.Message)
		})
	}
}

func TestValidateNumericEdgeCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		metric string
		want   bool
	}{
		{"1.2.3", true},
		{"5.", true},
		{".5", true},
		{"0", false},
		{"0.0", false},
		{".", false},
		{"-5", false},
		{"1e3", false},
		{" 5", false},
	}

	for _, tt := range tests {
		t.Run(tt.metric, func(t *testing.T) {
			t.Parallel()
			in := validInput()
			in.Metric = tt.metric
			d := target.Validate(in)
			assert.Equal(t, tt.want, d.Accepted)
			if !tt.want {
				assert.Equal(t, target.MsgMetricPositive, d.Message)
			}
		})
	}
}

func TestValidateHugeMetricIsPositive(t *testing.T) {
	t.Parallel()

	in := validInput()
	in.Metric = strings.Repeat("9", 400)
	assert.True(t, target.Validate(in).Accepted)
}

func TestValidateWhitespaceCountsAsPresent(t *testing.T) {
	t.Parallel()

	in := validInput()
	in.Name = " "
	in.MetricUnit = "\t"
	assert.True(t, target.Validate(in).Accepted)
}

func TestValidateDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := target.Input{Name: "CPU", ColorRed: "abc"}
	before := in
	_ = target.Validate(in, target.WithStrictThresholds())
	assert.Equal(t, before, in)
}

func TestValidateStrictThresholds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*target.Input)
		want   target.Decision
	}{
		{
			name:   "valid stays accepted",
			modify: func(in *target.Input) {},
			want:   target.Decision{Accepted: true},
		},
		{
			name:   "empty metric unit",
			modify: func(in *target.Input) { in.MetricUnit = "" },
			want:   target.Decision{Message: target.MsgMetricUnitRequired},
		},
		{
			name:   "metric reported before metric unit",
			modify: func(in *target.Input) { in.MetricUnit = ""; in.Metric = "" },
			want:   target.Decision{Message: target.MsgMetricPositive},
		},
		{
			name:   "metric unit reported before tags",
			modify: func(in *target.Input) { in.MetricUnit = ""; in.Tags = "" },
			want:   target.Decision{Message: target.MsgMetricUnitRequired},
		},
		{
			name:   "non-numeric red",
			modify: func(in *target.Input) { in.ColorRed = "abc" },
			want:   target.Decision{Message: target.MsgRedPositive},
		},
		{
			name:   "zero orange",
			modify: func(in *target.Input) { in.ColorOrange = "0" },
			want:   target.Decision{Message: target.MsgOrangePositive},
		},
		{
			name:   "non-numeric yellow",
			modify: func(in *target.Input) { in.ColorYellow = "50%" },
			want:   target.Decision{Message: target.MsgYellowPositive},
		},
		{
			name:   "red positivity before orange emptiness",
			modify: func(in *target.Input) { in.ColorRed = "x"; in.ColorOrange = "" },
			want:   target.Decision{Message: target.MsgRedPositive},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := validInput()
			tt.modify(&in)
			assert.Equal(t, tt.want, target.Validate(in, target.WithStrictThresholds()))
		})
	}
}

func TestDecisionJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(target.Decision{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"accepted":false,"message":null}`, string(data))

	data, err = json.Marshal(target.Decision{Message: target.MsgNameRequired})
	require.NoError(t, err)
	assert.JSONEq(t, `{"accepted":false,"message":"Please enter target name"}`, string(data))

	data, err = json.Marshal(target.Decision{Accepted: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"accepted":true,"message":null}`, string(data))
}

func TestInputFromMap(t *testing.T) {
	t.Parallel()

	in := target.InputFromMap(map[string]string{
		target.FieldName:        "CPU",
		target.FieldOwner:       "alice",
		target.FieldColorYellow: "50",
		"unknown":               "ignored",
	})

	assert.Equal(t, target.Input{Name: "CPU", Owner: "alice", ColorYellow: "50"}, in)
	assert.Equal(t, target.Input{}, target.InputFromMap(nil))
}
