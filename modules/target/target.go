package target

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/targetform/pkg/sanitizer"
	"github.com/dmitrymomot/targetform/pkg/validator"
)

// Band is the color a target is shown in.
type Band string

const (
	BandRed    Band = "red"
	BandOrange Band = "orange"
	BandYellow Band = "yellow"
	BandGreen  Band = "green"
)

// Target is a stored target definition with the best metric achieved so far.
type Target struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Owner              string    `json:"owner"`
	Metric             float64   `json:"metric"`
	MetricUnit         string    `json:"metric_unit"`
	Tags               []string  `json:"tags"`
	Red                float64   `json:"red"`
	Orange             float64   `json:"orange"`
	Yellow             float64   `json:"yellow"`
	AchievedMetric     float64   `json:"achieved_metric"`
	AchievedMetricUnit string    `json:"achieved_metric_unit,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// New validates in and builds a Target from it. A rejected input returns
// ErrRejected joined with the decision message, if any.
func New(in Input, opts ...Option) (Target, error) {
	d := Validate(in, opts...)
	if !d.Accepted {
		if d.Message == "" {
			return Target{}, ErrRejected
		}
		return Target{}, errors.Join(ErrRejected, errors.New(d.Message))
	}

	metric := parseStored(in.Metric)
	red := parseStored(in.ColorRed)
	orange := parseStored(in.ColorOrange)
	yellow := parseStored(in.ColorYellow)

	tags := sanitizer.Tags(in.Tags)
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	return Target{
		ID:         uuid.New(),
		Name:       in.Name,
		Owner:      in.Owner,
		Metric:     metric,
		MetricUnit: in.MetricUnit,
		Tags:       tags,
		Red:        red,
		Orange:     orange,
		Yellow:     yellow,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// parseStored reads the numeric prefix of an accepted field. Prefixes beyond
// float64 range are accepted as positive but stored as math.MaxFloat64, since
// +Inf cannot be encoded as JSON.
func parseStored(s string) float64 {
	v, ok := validator.ParseLeadingFloat(s)
	if !ok {
		return 0
	}
	return finite(v)
}

func finite(v float64) float64 {
	switch {
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	case math.IsNaN(v):
		return 0
	}
	return v
}

// Status is the achieved metric as a percentage of the target metric,
// capped at math.MaxFloat64.
func (t Target) Status() float64 {
	if t.Metric <= 0 {
		return 0
	}
	return finite(t.AchievedMetric / t.Metric * 100)
}

// Band maps Status onto the color thresholds, checked from red down. A
// status below every threshold is green.
func (t Target) Band() Band {
	status := t.Status()
	switch {
	case status >= t.Red:
		return BandRed
	case status >= t.Orange:
		return BandOrange
	case status >= t.Yellow:
		return BandYellow
	default:
		return BandGreen
	}
}

// Report is a Target with its computed status, as served over HTTP.
type Report struct {
	Target
	Status float64 `json:"status"`
	Band   Band    `json:"band"`
}

// NewReport computes the status fields of t.
func NewReport(t Target) Report {
	return Report{Target: t, Status: t.Status(), Band: t.Band()}
}
