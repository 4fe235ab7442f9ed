package form

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/datazip-inc/olake-syncform/constants"
	"github.com/datazip-inc/olake-syncform/frequency"
	"github.com/datazip-inc/olake-syncform/i18n"
	"github.com/datazip-inc/olake-syncform/types"
	"github.com/datazip-inc/olake-syncform/utils"
	"github.com/datazip-inc/olake-syncform/utils/logger"
)

var (
	ErrInvalidProps = errors.New("invalid form props")
	ErrModalNotOpen = errors.New("confirmation modal is not open")
)

// ValidationError is returned when a submit is blocked by invalid fields.
type ValidationError struct {
	// Fields maps field names to message ids
	Fields map[string]string
}

func (v *ValidationError) Error() string {
	return fmt.Sprintf("form is invalid: %v", v.Fields)
}

// Submission is what the form hands to OnSubmit.
type Submission struct {
	Frequency string            `json:"frequency"`
	Schema    *types.SyncSchema `json:"schema"`
}

// SubmitFunc receives the submitted values. Its error is passed back to the
// caller untouched; the form neither interprets nor retries it.
type SubmitFunc func(ctx context.Context, values Submission) error

type Props struct {
	Schema         *types.SyncSchema
	ErrorMessage   string
	SuccessMessage string
	OnSubmit       SubmitFunc `validate:"required"`
	// OnDropDownSelect is optional and runs before the field value is set
	OnDropDownSelect func(item frequency.Item)
	FrequencyValue   string
	IsEditMode       bool
	// Translator defaults to the english catalog
	Translator i18n.Translator
}

type Outcome int

const (
	// Invalid means validation blocked the submit
	Invalid Outcome = iota
	// Submitted means OnSubmit was called
	Submitted
	// ConfirmationRequired means the save modal was opened instead of submitting
	ConfirmationRequired
)

func (o Outcome) String() string {
	switch o {
	case Submitted:
		return "submitted"
	case ConfirmationRequired:
		return "confirmation_required"
	default:
		return "invalid"
	}
}

// FrequencyForm holds the sync frequency field together with the working copy
// of the stream schema and decides how a submit is carried out.
type FrequencyForm struct {
	mu sync.Mutex

	props      Props
	translator i18n.Translator
	items      []frequency.Item

	// rawSchema is the last schema received through props, kept to detect stream list changes
	rawSchema     *types.SyncSchema
	initialSchema *types.SyncSchema
	newSchema     *types.SyncSchema
	modalIsOpen   bool
	state         State
}

func New(props Props) (*FrequencyForm, error) {
	if err := utils.Validate(props); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidProps, err)
	}

	translator := props.Translator
	if translator == nil {
		translator = i18n.Default()
	}

	if props.FrequencyValue != "" {
		if _, found := frequency.Lookup(props.FrequencyValue); !found {
			logger.Warnf("Initial frequency[%s] is not one of the known options: %s", props.FrequencyValue, frequency.Values())
		}
	}

	initialSchema := types.NormalizeSchema(props.Schema)
	f := &FrequencyForm{
		props:         props,
		translator:    translator,
		items:         frequency.Items(translator),
		rawSchema:     props.Schema.Clone(),
		initialSchema: initialSchema,
		newSchema:     initialSchema.Clone(),
		state:         NewState(Values{Frequency: props.FrequencyValue}),
	}

	logger.Debugf("Frequency form created with %d streams, edit mode: %t", len(initialSchema.Streams), props.IsEditMode)
	return f, nil
}

// SetSchema feeds a new incoming schema. The normalized initial schema is only
// recomputed when the stream list changed; the working copy is kept either way.
func (f *FrequencyForm) SetSchema(schema *types.SyncSchema) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.rawSchema.Equal(schema) {
		return
	}

	f.rawSchema = schema.Clone()
	f.initialSchema = types.NormalizeSchema(schema)
	logger.Debugf("Incoming schema changed, initial schema recomputed with %d streams", len(f.initialSchema.Streams))
}

// SetMessages updates the success and error messages shown by the controls.
func (f *FrequencyForm) SetMessages(successMessage, errorMessage string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.props.SuccessMessage = successMessage
	f.props.ErrorMessage = errorMessage
}

// Select applies a dropdown selection.
func (f *FrequencyForm) Select(item frequency.Item) {
	if f.props.OnDropDownSelect != nil {
		f.props.OnDropDownSelect(item)
	}

	f.dispatch(FieldChanged{Field: constants.FrequencyField, Value: item.Value})
}

// SelectValue selects the dropdown item with the given value.
func (f *FrequencyForm) SelectValue(value string) error {
	idx, found := utils.ArrayContains(f.items, func(elem frequency.Item) bool {
		return elem.Value == value
	})
	if found {
		f.Select(f.items[idx])
		return nil
	}

	return fmt.Errorf("unknown frequency[%s]; valid are %s", value, frequency.Values())
}

func (f *FrequencyForm) Blur() {
	f.dispatch(FieldBlurred{Field: constants.FrequencyField})
}

// ChangeSchema replaces the working schema, as reported by the schema editor.
func (f *FrequencyForm) ChangeSchema(schema *types.SyncSchema) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if schema == nil {
		schema = &types.SyncSchema{Streams: []*types.Stream{}}
	}
	f.newSchema = schema.Clone()
}

// SetSyncMode changes the sync mode of one stream in the working schema.
func (f *FrequencyForm) SetSyncMode(streamID string, mode types.SyncMode) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	schema := f.newSchema.Clone()
	if err := schema.SetSyncMode(streamID, mode); err != nil {
		return err
	}
	f.newSchema = schema

	return nil
}

// Submit validates the form and either calls OnSubmit or, in edit mode with a
// changed schema, opens the confirmation modal.
func (f *FrequencyForm) Submit(ctx context.Context) (Outcome, error) {
	f.mu.Lock()
	f.state = Reduce(f.state, SubmitAttempted{})
	if !f.state.IsSubmitting {
		errs := f.state.Errors
		f.mu.Unlock()
		logger.Debugf("Submit blocked by validation errors: %v", errs)
		return Invalid, &ValidationError{Fields: errs}
	}

	if f.props.IsEditMode && f.schemaChanged() {
		f.modalIsOpen = true
		f.state = Reduce(f.state, SubmittingSet{Submitting: false})
		f.mu.Unlock()
		logger.Info("Schema changed in edit mode, waiting for confirmation")
		return ConfirmationRequired, nil
	}

	submission := f.submission()
	f.mu.Unlock()

	return Submitted, f.submit(ctx, submission)
}

// ConfirmModal closes the modal and submits the current values. It always
// submits once the modal is open, whatever the schema state is by now.
func (f *FrequencyForm) ConfirmModal(ctx context.Context) error {
	f.mu.Lock()
	if !f.modalIsOpen {
		f.mu.Unlock()
		return ErrModalNotOpen
	}

	f.state = Reduce(f.state, SubmittingSet{Submitting: true})
	f.modalIsOpen = false
	submission := f.submission()
	f.mu.Unlock()

	logger.Info("Schema change confirmed")
	return f.submit(ctx, submission)
}

// CloseModal dismisses the modal without submitting; edits are kept.
func (f *FrequencyForm) CloseModal() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.modalIsOpen = false
}

// Reset restores the initial frequency and the normalized initial schema.
// Cancel discards stream edits as well, so Dirty reports false afterwards.
func (f *FrequencyForm) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state = Reduce(f.state, Reset{})
	f.newSchema = f.initialSchema.Clone()
	f.modalIsOpen = false
}

// Dirty is true when a field changed or the working schema differs from the initial one.
func (f *FrequencyForm) Dirty() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state.Dirty() || f.schemaChanged()
}

func (f *FrequencyForm) IsValid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state.IsValid()
}

func (f *FrequencyForm) IsSubmitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state.IsSubmitting
}

func (f *FrequencyForm) ModalIsOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.modalIsOpen
}

func (f *FrequencyForm) Values() Values {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state.Values
}

func (f *FrequencyForm) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state.clone()
}

// Schema returns a copy of the working schema.
func (f *FrequencyForm) Schema() *types.SyncSchema {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.newSchema.Clone()
}

// InitialSchema returns a copy of the normalized incoming schema.
func (f *FrequencyForm) InitialSchema() *types.SyncSchema {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.initialSchema.Clone()
}

func (f *FrequencyForm) dispatch(event Event) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state = Reduce(f.state, event)
}

func (f *FrequencyForm) schemaChanged() bool {
	return !f.newSchema.Equal(f.initialSchema)
}

func (f *FrequencyForm) submission() Submission {
	return Submission{
		Frequency: f.state.Values.Frequency,
		Schema:    f.newSchema.Clone(),
	}
}

func (f *FrequencyForm) submit(ctx context.Context, submission Submission) error {
	logger.Infof("Submitting frequency[%s] with %d streams", submission.Frequency, len(submission.Schema.Streams))
	err := f.props.OnSubmit(ctx, submission)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = Reduce(f.state, SubmitFailed{Err: err})
		return err
	}

	f.state = Reduce(f.state, SubmitSucceeded{})
	return nil
}
