// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Slice-size bounds for the bounded query facility. The remote query has a
// maximum expression length, so the number of ids packed into a single query
// is clamped to MaxSliceSize regardless of configuration.
const (
	DefaultSliceSize = 500
	MaxSliceSize     = 2000
)

var (
	ErrNoRecordSpecs       = errors.New("no record specs configured")
	ErrDuplicateRecordType = errors.New("duplicate record type in briefcase config")
)

// RecordSpec is the immutable per-record-type configuration: where fetched
// records of this type are stored locally and which fields are requested
// from the remote store.
type RecordSpec struct {
	// RecordType is the remote record type this spec applies to. Unique
	// across the briefcase config.
	RecordType string `json:"record_type"`

	// Destination is the local store destination records of this type are
	// saved into.
	Destination string `json:"destination"`

	// IDField is the name of the record's identifier field.
	IDField string `json:"id_field"`

	// ModTimeField is the name of the record's modification-timestamp field.
	ModTimeField string `json:"mod_time_field"`

	// Fields is the list of fields to fetch for records of this type.
	Fields []string `json:"fields"`
}

// FetchFields returns the field list to request from the remote store: the
// configured fields plus the identifier and modification-timestamp fields,
// appended when the configured list omits them. Both are required for
// routing and for future watermarking.
func (s RecordSpec) FetchFields() []string {
	fields := make([]string, 0, len(s.Fields)+2)
	fields = append(fields, s.Fields...)

	for _, required := range []string{s.IDField, s.ModTimeField} {
		if !containsField(fields, required) {
			fields = append(fields, required)
		}
	}

	return fields
}

func (s RecordSpec) validate() error {
	if s.RecordType == "" {
		return errors.New("record spec without record type")
	}
	if s.Destination == "" {
		return fmt.Errorf("record spec %s without destination", s.RecordType)
	}
	if s.IDField == "" {
		return fmt.Errorf("record spec %s without id field", s.RecordType)
	}
	if s.ModTimeField == "" {
		return fmt.Errorf("record spec %s without mod time field", s.RecordType)
	}
	return nil
}

// BriefcaseConfig is the serialized form of a briefcase sync-down target:
// the record spec list plus the global slice-size override. Cursor state and
// watermark are run-scoped and deliberately not part of this form.
type BriefcaseConfig struct {
	// Specs lists one RecordSpec per record type.
	Specs []RecordSpec `json:"specs"`

	// SliceSize is the maximum number of ids packed into one query. Zero
	// means DefaultSliceSize; values above MaxSliceSize are clamped.
	SliceSize int `json:"slice_size,omitempty"`
}

// ParseBriefcaseConfig decodes and validates a serialized briefcase config.
func ParseBriefcaseConfig(data []byte) (BriefcaseConfig, error) {
	var cfg BriefcaseConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return BriefcaseConfig{}, fmt.Errorf("decode briefcase config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return BriefcaseConfig{}, err
	}

	return cfg, nil
}

// Validate checks that at least one spec is configured, every spec is
// complete, and record types are unique.
func (c BriefcaseConfig) Validate() error {
	if len(c.Specs) == 0 {
		return ErrNoRecordSpecs
	}

	seen := make(map[string]struct{}, len(c.Specs))
	for _, spec := range c.Specs {
		if err := spec.validate(); err != nil {
			return err
		}
		if _, ok := seen[spec.RecordType]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateRecordType, spec.RecordType)
		}
		seen[spec.RecordType] = struct{}{}
	}

	return nil
}

// EffectiveSliceSize returns the slice size to use for query batching, with
// the default applied and the hard ceiling enforced.
func (c BriefcaseConfig) EffectiveSliceSize() int {
	size := c.SliceSize
	if size <= 0 {
		size = DefaultSliceSize
	}
	if size > MaxSliceSize {
		size = MaxSliceSize
	}
	return size
}

func containsField(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}
