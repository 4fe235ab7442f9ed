package form

import (
	"github.com/datazip-inc/olake-syncform/constants"
	"github.com/datazip-inc/olake-syncform/frequency"
	"github.com/datazip-inc/olake-syncform/i18n"
	"github.com/datazip-inc/olake-syncform/types"
)

// View is the render model of the form. Exactly one of EditControls and
// BottomBlock is set, depending on edit mode.
type View struct {
	Schema           *types.SyncSchema `json:"schema"`
	EditLaterMessage string            `json:"editLaterMessage,omitempty"`
	FrequencyField   FrequencyField    `json:"frequencyField"`
	EditControls     *EditControls     `json:"editControls,omitempty"`
	BottomBlock      *BottomBlock      `json:"bottomBlock,omitempty"`
	SaveModal        *SaveModal        `json:"saveModal,omitempty"`
}

type FrequencyField struct {
	Name        string           `json:"name"`
	Label       string           `json:"label"`
	Message     string           `json:"message"`
	Placeholder string           `json:"placeholder"`
	Items       []frequency.Item `json:"items"`
	Value       string           `json:"value"`
	Error       string           `json:"error,omitempty"`
}

type EditControls struct {
	IsSubmitting   bool   `json:"isSubmitting"`
	IsValid        bool   `json:"isValid"`
	Dirty          bool   `json:"dirty"`
	SuccessMessage string `json:"successMessage,omitempty"`
	ErrorMessage   string `json:"errorMessage,omitempty"`
	SaveLabel      string `json:"saveLabel"`
	CancelLabel    string `json:"cancelLabel"`
	SaveDisabled   bool   `json:"saveDisabled"`
	CancelDisabled bool   `json:"cancelDisabled"`
}

type BottomBlock struct {
	IsSubmitting   bool   `json:"isSubmitting"`
	IsValid        bool   `json:"isValid"`
	Dirty          bool   `json:"dirty"`
	ErrorMessage   string `json:"errorMessage,omitempty"`
	SubmitLabel    string `json:"submitLabel"`
	SubmitDisabled bool   `json:"submitDisabled"`
}

type SaveModal struct {
	Title        string `json:"title"`
	Text         string `json:"text"`
	ConfirmLabel string `json:"confirmLabel"`
	CancelLabel  string `json:"cancelLabel"`
}

// View renders the current state.
func (f *FrequencyForm) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()

	t := f.translator
	view := View{
		Schema: f.newSchema.Clone(),
		FrequencyField: FrequencyField{
			Name:        constants.FrequencyField,
			Label:       t.Message(i18n.Frequency),
			Message:     t.Message(i18n.FrequencyMessage),
			Placeholder: t.Message(i18n.FrequencyPlaceholder),
			Items:       f.items,
			Value:       f.state.Values.get(constants.FrequencyField),
		},
	}
	if errID := f.state.FieldError(constants.FrequencyField); errID != "" {
		view.FrequencyField.Error = t.Message(errID)
	}

	isSubmitting := f.state.IsSubmitting
	isValid := f.state.IsValid()

	if !f.props.IsEditMode {
		dirty := f.state.Dirty()
		view.EditLaterMessage = t.Message(i18n.DataSyncMessage)
		view.BottomBlock = &BottomBlock{
			IsSubmitting:   isSubmitting,
			IsValid:        isValid,
			Dirty:          dirty,
			ErrorMessage:   f.props.ErrorMessage,
			SubmitLabel:    t.Message(i18n.SetUpConnection),
			SubmitDisabled: isSubmitting || !isValid,
		}

		return view
	}

	dirty := f.state.Dirty() || f.schemaChanged()
	view.EditControls = &EditControls{
		IsSubmitting:   isSubmitting,
		IsValid:        isValid,
		Dirty:          dirty,
		SuccessMessage: f.props.SuccessMessage,
		ErrorMessage:   f.props.ErrorMessage,
		SaveLabel:      t.Message(i18n.SaveChanges),
		CancelLabel:    t.Message(i18n.Cancel),
		SaveDisabled:   isSubmitting || !isValid || !dirty,
		CancelDisabled: isSubmitting || !dirty,
	}
	if f.modalIsOpen {
		view.SaveModal = &SaveModal{
			Title:        t.Message(i18n.SaveSchema),
			Text:         t.Message(i18n.ChangedSchema),
			ConfirmLabel: t.Message(i18n.SaveChanges),
			CancelLabel:  t.Message(i18n.Cancel),
		}
	}

	return view
}
