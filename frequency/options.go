package frequency

import (
	"fmt"
	"strings"
	"time"

	"github.com/datazip-inc/olake-syncform/constants"
	"github.com/datazip-inc/olake-syncform/i18n"
	"github.com/datazip-inc/olake-syncform/utils"
)

// Option is one selectable schedule. Value is what gets submitted, Text what
// the dropdown shows before the "every" phrase is applied.
type Option struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

// Item is a rendered dropdown entry.
type Item struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

// Options is the ordered list offered by the frequency dropdown.
var Options = []Option{
	{Value: constants.ManualFrequency, Text: "manual"},
	{Value: "5m", Text: "5 min"},
	{Value: "15m", Text: "15 min"},
	{Value: "30m", Text: "30 min"},
	{Value: "60m", Text: "1 hour"},
	{Value: "120m", Text: "2 hours"},
	{Value: "180m", Text: "3 hours"},
	{Value: "360m", Text: "6 hours"},
	{Value: "480m", Text: "8 hours"},
	{Value: "720m", Text: "12 hours"},
	{Value: "1440m", Text: "24 hours"},
}

func (o Option) IsManual() bool {
	return o.Value == constants.ManualFrequency
}

// Interval is the time between two runs; zero for manual jobs.
func (o Option) Interval() (time.Duration, error) {
	if o.IsManual() {
		return 0, nil
	}

	d, err := time.ParseDuration(o.Value)
	if err != nil {
		return 0, fmt.Errorf("invalid frequency value[%s]: %s", o.Value, err)
	}

	return d, nil
}

// Item renders the option; everything but manual reads "Every <text>".
func (o Option) Item(translator i18n.Translator) Item {
	if o.IsManual() {
		return Item{Value: o.Value, Text: o.Text}
	}

	return Item{Value: o.Value, Text: translator.Message(i18n.Every, o.Text)}
}

// Items renders all options in order.
func Items(translator i18n.Translator) []Item {
	items := make([]Item, 0, len(Options))
	for _, option := range Options {
		items = append(items, option.Item(translator))
	}

	return items
}

func Lookup(value string) (Option, bool) {
	idx, found := utils.ArrayContains(Options, func(elem Option) bool {
		return elem.Value == value
	})
	if !found {
		return Option{}, false
	}

	return Options[idx], true
}

// Values lists the accepted option values, used in flag help and errors.
func Values() string {
	values := make([]string, 0, len(Options))
	for _, option := range Options {
		values = append(values, option.Value)
	}

	return strings.Join(values, ", ")
}
