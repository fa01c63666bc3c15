package target

import (
	"encoding/json"

	"github.com/dmitrymomot/targetform/pkg/validator"
)

// Messages reported by Validate, in cascade order.
const (
	MsgNameRequired       = "Please enter target name"
	MsgOwnerRequired      = "please enter target owner"
	MsgMetricPositive     = "Please enter a positive number for Target Metric."
	MsgMetricUnitRequired = "please enter target metric unit"
	MsgTagsRequired       = "please enter target tags"
	MsgRedRequired        = "please enter percentage value for red color"
	MsgOrangeRequired     = "please enter percentage value for orange color"
	MsgYellowRequired     = "please enter percentage value for yellow color"
	MsgRedPositive        = "Please enter a positive number for red color percentage."
	MsgOrangePositive     = "Please enter a positive number for orange color percentage."
	MsgYellowPositive     = "Please enter a positive number for yellow color percentage."
)

// Decision is the outcome of Validate. An empty Message on a rejected
// decision means no rule produced a message.
type Decision struct {
	Accepted bool
	Message  string
}

// MarshalJSON renders an empty message as null.
func (d Decision) MarshalJSON() ([]byte, error) {
	var msg *string
	if d.Message != "" {
		msg = &d.Message
	}
	return json.Marshal(struct {
		Accepted bool    `json:"accepted"`
		Message  *string `json:"message"`
	}{d.Accepted, msg})
}

// Option tunes Validate.
type Option func(*options)

type options struct {
	strict bool
}

// WithStrictThresholds adds messages for an empty metric unit and for color
// thresholds that are present but not positive numbers. Without it those
// inputs are rejected with an empty message.
func WithStrictThresholds() Option {
	return func(o *options) { o.strict = true }
}

// Validate decides whether in is an acceptable target definition.
// It accepts only when all eight fields are non-empty and the metric and the
// three color thresholds are positive numbers. Otherwise it reports the
// message of the first failing rule.
func Validate(in Input, opts ...Option) Decision {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if validator.Apply(acceptRules(in)...) == nil {
		return Decision{Accepted: true}
	}

	err := validator.ApplyFirst(cascade(in, o)...)
	if errs := validator.ExtractValidationErrors(err); len(errs) > 0 {
		return Decision{Message: errs[0].Message}
	}
	return Decision{}
}

func acceptRules(in Input) []validator.Rule {
	return []validator.Rule{
		validator.NotEmptyString(FieldName, in.Name),
		validator.NotEmptyString(FieldOwner, in.Owner),
		validator.NotEmptyString(FieldMetricUnit, in.MetricUnit),
		validator.NotEmptyString(FieldTags, in.Tags),
		validator.PositiveNumericString(FieldMetric, in.Metric),
		validator.PositiveNumericString(FieldColorRed, in.ColorRed),
		validator.PositiveNumericString(FieldColorOrange, in.ColorOrange),
		validator.PositiveNumericString(FieldColorYellow, in.ColorYellow),
	}
}

// cascade lists the message rules in priority order.
func cascade(in Input, o options) []validator.Rule {
	rules := []validator.Rule{
		validator.NotEmptyString(FieldName, in.Name).WithMessage(MsgNameRequired),
		validator.NotEmptyString(FieldOwner, in.Owner).WithMessage(MsgOwnerRequired),
		validator.PositiveNumericString(FieldMetric, in.Metric).WithMessage(MsgMetricPositive),
	}
	if o.strict {
		rules = append(rules, validator.NotEmptyString(FieldMetricUnit, in.MetricUnit).WithMessage(MsgMetricUnitRequired))
	}
	rules = append(rules, validator.NotEmptyString(FieldTags, in.Tags).WithMessage(MsgTagsRequired))

	colors := []struct {
		field, value, required, positive string
	}{
		{FieldColorRed, in.ColorRed, MsgRedRequired, MsgRedPositive},
		{FieldColorOrange, in.ColorOrange, MsgOrangeRequired, MsgOrangePositive},
		{FieldColorYellow, in.ColorYellow, MsgYellowRequired, MsgYellowPositive},
	}
	for _, c := range colors {
		rules = append(rules, validator.NotEmptyString(c.field, c.value).WithMessage(c.required))
		if o.strict {
			rules = append(rules, validator.PositiveNumericString(c.field, c.value).WithMessage(c.positive))
		}
	}
	return rules
}
