package form

import (
	"errors"
	"testing"

	"github.com/datazip-inc/olake-syncform/constants"
	"github.com/datazip-inc/olake-syncform/i18n"
	"github.com/stretchr/testify/assert"
)

func TestReduce(t *testing.T) {
	tests := []struct {
		name            string
		initial         Values
		events          []Event
		wantValues      Values
		wantErrors      map[string]string
		wantTouched     bool
		wantSubmitting  bool
		wantSubmitCount int
		wantDirty       bool
	}{
		{
			name:       "initial state is valid and clean",
			initial:    Values{},
			wantValues: Values{},
			wantErrors: map[string]string{},
		},
		{
			name:       "change validates",
			initial:    Values{Frequency: "5m"},
			events:     []Event{FieldChanged{Field: constants.FrequencyField, Value: ""}},
			wantValues: Values{},
			wantErrors: map[string]string{constants.FrequencyField: i18n.EmptyError},
			wantDirty:  true,
		},
		{
			name:        "blur touches and validates",
			initial:     Values{},
			events:      []Event{FieldBlurred{Field: constants.FrequencyField}},
			wantValues:  Values{},
			wantErrors:  map[string]string{constants.FrequencyField: i18n.EmptyError},
			wantTouched: true,
		},
		{
			name:            "submit with empty frequency does not enter submitting",
			initial:         Values{},
			events:          []Event{SubmitAttempted{}},
			wantValues:      Values{},
			wantErrors:      map[string]string{constants.FrequencyField: i18n.EmptyError},
			wantTouched:     true,
			wantSubmitCount: 1,
		},
		{
			name:            "valid submit enters submitting",
			initial:         Values{Frequency: "manual"},
			events:          []Event{SubmitAttempted{}},
			wantValues:      Values{Frequency: "manual"},
			wantErrors:      map[string]string{},
			wantTouched:     true,
			wantSubmitting:  true,
			wantSubmitCount: 1,
		},
		{
			name:            "success leaves submitting",
			initial:         Values{Frequency: "manual"},
			events:          []Event{SubmitAttempted{}, SubmitSucceeded{}},
			wantValues:      Values{Frequency: "manual"},
			wantErrors:      map[string]string{},
			wantTouched:     true,
			wantSubmitCount: 1,
		},
		{
			name:            "failure leaves submitting",
			initial:         Values{Frequency: "manual"},
			events:          []Event{SubmitAttempted{}, SubmitFailed{Err: errors.New("boom")}},
			wantValues:      Values{Frequency: "manual"},
			wantErrors:      map[string]string{},
			wantTouched:     true,
			wantSubmitCount: 1,
		},
		{
			name:           "submitting can be forced",
			initial:        Values{Frequency: "manual"},
			events:         []Event{SubmittingSet{Submitting: true}},
			wantValues:     Values{Frequency: "manual"},
			wantErrors:     map[string]string{},
			wantSubmitting: true,
		},
		{
			name:    "reset restores initial values",
			initial: Values{Frequency: "5m"},
			events: []Event{
				FieldChanged{Field: constants.FrequencyField, Value: ""},
				SubmitAttempted{},
				Reset{},
			},
			wantValues: Values{Frequency: "5m"},
			wantErrors: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewState(tt.initial)
			for _, event := range tt.events {
				state = Reduce(state, event)
			}

			assert.Equal(t, tt.wantValues, state.Values)
			assert.Equal(t, tt.wantErrors, state.Errors)
			assert.Equal(t, tt.wantTouched, state.Touched[constants.FrequencyField])
			assert.Equal(t, tt.wantSubmitting, state.IsSubmitting)
			assert.Equal(t, tt.wantSubmitCount, state.SubmitCount)
			assert.Equal(t, tt.wantDirty, state.Dirty())
			assert.Equal(t, len(tt.wantErrors) == 0, state.IsValid())
		})
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	state := NewState(Values{})
	next := Reduce(state, FieldBlurred{Field: constants.FrequencyField})

	assert.Empty(t, state.Errors)
	assert.Empty(t, state.Touched)
	assert.NotEmpty(t, next.Errors)
	assert.True(t, next.Touched[constants.FrequencyField])
}

func TestState_FieldErrorOnlyWhenTouched(t *testing.T) {
	state := Reduce(NewState(Values{Frequency: "5m"}), FieldChanged{Field: constants.FrequencyField, Value: ""})
	assert.Equal(t, "", state.FieldError(constants.FrequencyField))

	state = Reduce(state, FieldBlurred{Field: constants.FrequencyField})
	assert.Equal(t, i18n.EmptyError, state.FieldError(constants.FrequencyField))
}
