package models

// Keys under which the remote store reports a record's own type.
const (
	AttributesKey = "attributes"
	TypeKey       = "type"
)

// Record is one structured record as returned by the bounded query facility.
// The payload is opaque to the sync engine except for the attributes block
// (which carries the declared record type) and the identifier and
// modification-timestamp fields named by the matching RecordSpec.
type Record map[string]any

// ObjectType returns the record type declared in the attributes block, or an
// empty string if the block is missing or malformed.
func (r Record) ObjectType() string {
	attrs, ok := r[AttributesKey].(map[string]any)
	if !ok {
		return ""
	}

	objectType, _ := attrs[TypeKey].(string)
	return objectType
}

// StringField returns the named field rendered as a string, or an empty
// string if the field is absent or not a string.
func (r Record) StringField(name string) string {
	value, _ := r[name].(string)
	return value
}

// CachedRecord is the routed form of a fetched record: the record payload
// plus everything the local cache needs to persist it under the right
// destination with run provenance.
type CachedRecord struct {
	// Destination is the local store destination the record was routed to.
	Destination string

	// RecordID is the value of the spec's identifier field.
	RecordID string

	// RecordType is the declared record type matched against the registry.
	RecordType string

	// ModStamp is the value of the spec's modification-timestamp field, kept
	// as received so the next incremental watermark can be derived from it.
	ModStamp string

	// SyncRunID is the provenance marker stamped onto the record at save time.
	SyncRunID string

	// Payload is the full record as fetched from the remote store.
	Payload Record
}
