package types

import (
	"fmt"

	"github.com/datazip-inc/olake-syncform/utils/logger"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/hashstructure"
)

// SyncSchema is the ordered list of streams a sync job copies.
type SyncSchema struct {
	Streams []*Stream `json:"streams"`
}

// NormalizeSchema returns a deep copy of schema in which every stream carries a
// sync mode and a non-empty list of supported sync modes. The input is not modified.
func NormalizeSchema(schema *SyncSchema) *SyncSchema {
	normalized := &SyncSchema{Streams: []*Stream{}}
	if schema == nil {
		return normalized
	}

	for idx, stream := range schema.Streams {
		if stream == nil {
			logger.Warnf("Skipping empty stream entry at position %d", idx)
			continue
		}
		normalized.Streams = append(normalized.Streams, stream.normalize())
	}

	return normalized
}

var schemaCompareOpts = []cmp.Option{
	cmpopts.EquateEmpty(),
}

// Equal compares two schemas field by field. Map key order never matters and
// nil and empty collections are considered the same.
//
// Values inside JSONSchema are compared with their dynamic types, so int(1) and
// float64(1) differ. Schemas decoded from json or yaml only hold float64 numbers.
func (s *SyncSchema) Equal(other *SyncSchema) bool {
	return cmp.Equal(s.streams(), other.streams(), schemaCompareOpts...)
}

// Diff describes how other differs from s; empty when they are equal.
func (s *SyncSchema) Diff(other *SyncSchema) string {
	return cmp.Diff(s.streams(), other.streams(), schemaCompareOpts...)
}

// Fingerprint is a stable hash of the schema; map key order does not change it.
func (s *SyncSchema) Fingerprint() (uint64, error) {
	hash, err := hashstructure.Hash(s.streams(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to hash schema: %s", err)
	}

	return hash, nil
}

func (s *SyncSchema) streams() []*Stream {
	if s == nil {
		return nil
	}

	return s.Streams
}

func (s *SyncSchema) Clone() *SyncSchema {
	if s == nil {
		return nil
	}

	out := &SyncSchema{Streams: make([]*Stream, 0, len(s.Streams))}
	for _, stream := range s.Streams {
		out.Streams = append(out.Streams, stream.Clone())
	}

	return out
}

// Validate reports every invalid stream at once.
func (s *SyncSchema) Validate() error {
	var multErr error
	seen := make(map[string]struct{})
	for idx, stream := range s.streams() {
		if stream == nil {
			multErr = multierror.Append(multErr, fmt.Errorf("stream at position %d is empty", idx))
			continue
		}
		if err := stream.Validate(); err != nil {
			multErr = multierror.Append(multErr, err)
		}
		if _, found := seen[stream.ID()]; found {
			multErr = multierror.Append(multErr, fmt.Errorf("duplicate stream[%s]", stream.ID()))
		}
		seen[stream.ID()] = struct{}{}
	}

	return multErr
}

// SetSyncMode changes the sync mode of a single stream in place.
func (s *SyncSchema) SetSyncMode(streamID string, mode SyncMode) error {
	stream, found := StreamsToMap(s.streams()...)[streamID]
	if !found {
		return fmt.Errorf("stream[%s] not found in schema", streamID)
	}

	if !stream.SupportsSyncMode(mode) {
		return fmt.Errorf("invalid sync mode[%s] for stream[%s]; valid are %v", mode, streamID, stream.SupportedSyncModes)
	}

	stream.SyncMode = mode
	return nil
}

func StreamsToMap(streams ...*Stream) map[string]*Stream {
	output := make(map[string]*Stream)
	for _, stream := range streams {
		if stream == nil {
			continue
		}
		output[stream.ID()] = stream
	}

	return output
}
