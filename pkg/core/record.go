package core

// FormatVersion is the BeerXML record version written by default.
const FormatVersion int64 = 1

// Record is implemented by every record type of the model.
// Key is the record's display name, used as its collection key.
type Record interface {
	Key() string
	Kind() Kind
	record()
}
