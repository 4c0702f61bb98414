package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSpec() RecordSpec {
	return RecordSpec{
		RecordType:   "Account",
		Destination:  "accounts",
		IDField:      "Id",
		ModTimeField: "LastModifiedDate",
		Fields:       []string{"Name", "Industry"},
	}
}

// ── FetchFields ──────────────────────────────────────────────────────────────

func TestRecordSpec_FetchFields_AppendsRequired(t *testing.T) {
	spec := validSpec()

	got := spec.FetchFields()
	assert.Equal(t, []string{"Name", "Industry", "Id", "LastModifiedDate"}, got)
}

func TestRecordSpec_FetchFields_NoDuplicates(t *testing.T) {
	spec := validSpec()
	spec.Fields = []string{"Id", "Name", "LastModifiedDate"}

	got := spec.FetchFields()
	assert.Equal(t, []string{"Id", "Name", "LastModifiedDate"}, got)
}

func TestRecordSpec_FetchFields_EmptyFieldList(t *testing.T) {
	spec := validSpec()
	spec.Fields = nil

	got := spec.FetchFields()
	assert.Equal(t, []string{"Id", "LastModifiedDate"}, got)
}

// ── ParseBriefcaseConfig ─────────────────────────────────────────────────────

func TestParseBriefcaseConfig_Success(t *testing.T) {
	data := []byte(`{
		"specs": [
			{
				"record_type": "Account",
				"destination": "accounts",
				"id_field": "Id",
				"mod_time_field": "LastModifiedDate",
				"fields": ["Name"]
			}
		],
		"slice_size": 1000
	}`)

	cfg, err := ParseBriefcaseConfig(data)
	require.NoError(t, err)
	require.Len(t, cfg.Specs, 1)
	assert.Equal(t, "Account", cfg.Specs[0].RecordType)
	assert.Equal(t, 1000, cfg.SliceSize)
}

func TestParseBriefcaseConfig_InvalidJSON(t *testing.T) {
	_, err := ParseBriefcaseConfig([]byte(`{not json`))
	require.Error(t, err)
}

func TestParseBriefcaseConfig_NoSpecs(t *testing.T) {
	_, err := ParseBriefcaseConfig([]byte(`{"specs": []}`))
	assert.ErrorIs(t, err, ErrNoRecordSpecs)
}

// ── Validate ─────────────────────────────────────────────────────────────────

func TestBriefcaseConfig_Validate_DuplicateType(t *testing.T) {
	cfg := BriefcaseConfig{Specs: []RecordSpec{validSpec(), validSpec()}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateRecordType)
}

func TestBriefcaseConfig_Validate_IncompleteSpec(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RecordSpec)
	}{
		{"missing record type", func(s *RecordSpec) { s.RecordType = "" }},
		{"missing destination", func(s *RecordSpec) { s.Destination = "" }},
		{"missing id field", func(s *RecordSpec) { s.IDField = "" }},
		{"missing mod time field", func(s *RecordSpec) { s.ModTimeField = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec()
			tt.mutate(&spec)

			err := BriefcaseConfig{Specs: []RecordSpec{spec}}.Validate()
			assert.Error(t, err)
		})
	}
}

// ── EffectiveSliceSize ───────────────────────────────────────────────────────

func TestBriefcaseConfig_EffectiveSliceSize(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"zero defaults", 0, DefaultSliceSize},
		{"negative defaults", -5, DefaultSliceSize},
		{"within bounds kept", 100, 100},
		{"ceiling kept", MaxSliceSize, MaxSliceSize},
		{"above ceiling clamped", 3000, MaxSliceSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := BriefcaseConfig{SliceSize: tt.size}
			assert.Equal(t, tt.want, cfg.EffectiveSliceSize())
		})
	}
}
