package types

import (
	"fmt"
	"slices"
)

// Stream is one selectable data stream of a sync schema.
//
// Only SyncMode and SupportedSyncModes are interpreted by the form; every other
// field is carried through as is so the schema editor can round-trip it.
type Stream struct {
	Name                string         `json:"name"`
	Namespace           string         `json:"namespace,omitempty"`
	CleanedName         string         `json:"cleanedName,omitempty"`
	Selected            bool           `json:"selected"`
	SyncMode            SyncMode       `json:"syncMode,omitempty"`
	SupportedSyncModes  []SyncMode     `json:"supportedSyncModes"`
	SourceDefinedCursor bool           `json:"sourceDefinedCursor,omitempty"`
	DefaultCursorField  []string       `json:"defaultCursorField,omitempty"`
	CursorField         []string       `json:"cursorField,omitempty"`
	JSONSchema          map[string]any `json:"jsonSchema,omitempty"`
}

func NewStream(name, namespace string) *Stream {
	return &Stream{
		Name:      name,
		Namespace: namespace,
		Selected:  true,
	}
}

func (s *Stream) ID() string {
	if s.Namespace == "" {
		return s.Name
	}

	return fmt.Sprintf("%s.%s", s.Namespace, s.Name)
}

func (s *Stream) WithSyncMode(modes ...SyncMode) *Stream {
	for _, mode := range modes {
		if !slices.Contains(s.SupportedSyncModes, mode) {
			s.SupportedSyncModes = append(s.SupportedSyncModes, mode)
		}
	}

	return s
}

func (s *Stream) SupportsSyncMode(mode SyncMode) bool {
	return slices.Contains(s.SupportedSyncModes, mode)
}

// Validate checks the chosen sync mode against the modes the stream supports
func (s *Stream) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("stream name is required")
	}

	if !s.SyncMode.Valid() {
		return fmt.Errorf("stream[%s] has unknown sync mode[%s]", s.ID(), s.SyncMode)
	}

	if !s.SupportsSyncMode(s.SyncMode) {
		return fmt.Errorf("stream[%s] has invalid sync mode[%s]; valid are %v", s.ID(), s.SyncMode, s.SupportedSyncModes)
	}

	return nil
}

// Clone returns a deep copy, including the opaque json schema.
func (s *Stream) Clone() *Stream {
	if s == nil {
		return nil
	}

	out := *s
	out.SupportedSyncModes = slices.Clone(s.SupportedSyncModes)
	out.DefaultCursorField = slices.Clone(s.DefaultCursorField)
	out.CursorField = slices.Clone(s.CursorField)
	if s.JSONSchema != nil {
		out.JSONSchema = cloneValue(s.JSONSchema).(map[string]any)
	}

	return &out
}

// normalize fills the sync mode defaults on a copy of the stream.
func (s *Stream) normalize() *Stream {
	out := s.Clone()
	// missing sync mode: full refresh is selected by default
	if out.SyncMode == "" {
		out.SyncMode = FULLREFRESH
	}
	// no supported modes advertised: full refresh is the only one assumed
	if len(out.SupportedSyncModes) == 0 {
		out.SupportedSyncModes = []SyncMode{FULLREFRESH}
	}

	return out
}

func cloneValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, item := range value {
			out[k] = cloneValue(item)
		}
		return out
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return value
	}
}
