package form

import (
	"maps"

	"github.com/datazip-inc/olake-syncform/constants"
	"github.com/datazip-inc/olake-syncform/i18n"
	"github.com/datazip-inc/olake-syncform/utils"
)

// Values are the field values held by the form.
type Values struct {
	Frequency string `json:"frequency" validate:"required"`
}

func (v Values) get(field string) string {
	if field == constants.FrequencyField {
		return v.Frequency
	}

	return ""
}

func (v Values) with(field, value string) Values {
	if field == constants.FrequencyField {
		v.Frequency = value
	}

	return v
}

// State is the field-level form state. It only changes through Reduce.
type State struct {
	Values        Values
	InitialValues Values
	// Errors maps a field name to a message id
	Errors       map[string]string
	Touched      map[string]bool
	IsSubmitting bool
	SubmitCount  int
}

func NewState(initial Values) State {
	return State{
		Values:        initial,
		InitialValues: initial,
		Errors:        map[string]string{},
		Touched:       map[string]bool{},
	}
}

// IsValid reports whether the last validation found no errors.
func (s State) IsValid() bool {
	return len(s.Errors) == 0
}

// Dirty reports whether any field differs from its initial value.
func (s State) Dirty() bool {
	return s.Values != s.InitialValues
}

// FieldError returns the message id of a field error, shown only once the field was touched.
func (s State) FieldError(field string) string {
	if !s.Touched[field] {
		return ""
	}

	return s.Errors[field]
}

func (s State) clone() State {
	out := s
	out.Errors = maps.Clone(s.Errors)
	out.Touched = maps.Clone(s.Touched)
	if out.Errors == nil {
		out.Errors = map[string]string{}
	}
	if out.Touched == nil {
		out.Touched = map[string]bool{}
	}

	return out
}

type Event interface {
	isEvent()
}

// FieldChanged sets a field value and validates the form.
type FieldChanged struct {
	Field string
	Value string
}

// FieldBlurred marks a field touched and validates the form.
type FieldBlurred struct {
	Field string
}

// SubmitAttempted touches every field and validates; the form only enters
// submitting state when validation passes.
type SubmitAttempted struct{}

type SubmitSucceeded struct{}

type SubmitFailed struct {
	Err error
}

// SubmittingSet overrides the submitting flag, used around confirmed submits.
type SubmittingSet struct {
	Submitting bool
}

// Reset restores the initial values and clears errors and touched fields.
type Reset struct{}

func (FieldChanged) isEvent()    {}
func (FieldBlurred) isEvent()    {}
func (SubmitAttempted) isEvent() {}
func (SubmitSucceeded) isEvent() {}
func (SubmitFailed) isEvent()    {}
func (SubmittingSet) isEvent()   {}
func (Reset) isEvent()           {}

// Reduce applies an event to a state and returns the new state. The input state is left untouched.
func Reduce(state State, event Event) State {
	next := state.clone()
	switch e := event.(type) {
	case FieldChanged:
		next.Values = next.Values.with(e.Field, e.Value)
		next.Errors = validate(next.Values)
	case FieldBlurred:
		next.Touched[e.Field] = true
		next.Errors = validate(next.Values)
	case SubmitAttempted:
		next.SubmitCount++
		next.Touched[constants.FrequencyField] = true
		next.Errors = validate(next.Values)
		next.IsSubmitting = next.IsValid()
	case SubmitSucceeded, SubmitFailed:
		next.IsSubmitting = false
	case SubmittingSet:
		next.IsSubmitting = e.Submitting
	case Reset:
		return NewState(state.InitialValues)
	}

	return next
}

func validate(values Values) map[string]string {
	errs := map[string]string{}
	for _, fieldErr := range utils.ValidateFields(values) {
		errs[fieldErr.Field] = messageID(fieldErr)
	}

	return errs
}

func messageID(fieldErr utils.FieldError) string {
	if fieldErr.Tag == "required" {
		return i18n.EmptyError
	}

	return fieldErr.Message
}
