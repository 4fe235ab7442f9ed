package i18n

import (
	"fmt"
	"sync"

	"github.com/datazip-inc/olake-syncform/utils/logger"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
)

// Message ids shown by the frequency form.
const (
	Every                = "form.every"
	EmptyError           = "form.empty.error"
	Frequency            = "form.frequency"
	FrequencyMessage     = "form.frequency.message"
	FrequencyPlaceholder = "form.frequency.placeholder"
	DataSyncMessage      = "form.dataSync.message"
	SaveSchema           = "form.saveSchema"
	ChangedSchema        = "form.changedSchema"
	Cancel               = "form.cancel"
	SaveChanges          = "form.saveChanges"
	SetUpConnection      = "form.setUpConnection"
)

var english = map[string]string{
	Every:                "Every {0}",
	EmptyError:           "Required",
	Frequency:            "Sync frequency",
	FrequencyMessage:     "Set how often data should sync to the destination",
	FrequencyPlaceholder: "Select a frequency",
	DataSyncMessage:      "Don't worry! You'll be able to change this later on",
	SaveSchema:           "Save changes",
	ChangedSchema:        "You have changed which streams are synced. The next sync will use the new settings.",
	Cancel:               "Cancel",
	SaveChanges:          "Save changes",
	SetUpConnection:      "Set up connection",
}

// Translator resolves a message id to display text.
type Translator interface {
	Message(id string, params ...string) string
}

type Catalog struct {
	trans ut.Translator
}

var (
	defaultCatalog *Catalog
	once           sync.Once
)

// New builds the english catalog.
func New() (*Catalog, error) {
	locale := en.New()
	trans, _ := ut.New(locale, locale).GetTranslator(locale.Locale())

	for id, text := range english {
		if err := trans.Add(id, text, false); err != nil {
			return nil, fmt.Errorf("failed to register message[%s]: %s", id, err)
		}
	}

	return &Catalog{trans: trans}, nil
}

// Default returns the shared english catalog.
func Default() *Catalog {
	once.Do(func() {
		catalog, err := New()
		if err != nil {
			panic(err)
		}
		defaultCatalog = catalog
	})

	return defaultCatalog
}

// Message falls back to the id itself for unknown messages.
func (c *Catalog) Message(id string, params ...string) string {
	text, err := c.trans.T(id, params...)
	if err != nil {
		logger.Debugf("message[%s] not found: %s", id, err)
		return id
	}

	return text
}
