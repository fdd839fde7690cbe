package models

// Storage defines the record collection for stringlab.
//
// Records are keyed by their trimmed string value, not by their
// SHA-256 fingerprint: duplicate detection is then an exact value
// match by definition, while the fingerprint stays a stable derived
// identifier on the record itself. The two disciplines are never
// mixed.
//
// Thread Safety: implementations must be safe for concurrent use.
// Create must check existence and insert as one atomic step.
type Storage interface {
	// Create inserts a new record under its Value.
	//
	// Returns ErrDuplicate if a record already exists for the same
	// value; the store is left unchanged in that case.
	Create(record *Record) error

	// Get retrieves a record by its value key.
	//
	// Returns the record and true if found, nil and false otherwise.
	Get(value string) (*Record, bool)

	// List returns all records in insertion order.
	List() []*Record

	// Delete removes the record stored under the given value key.
	//
	// Returns ErrNotFound if no such record exists.
	Delete(value string) error

	// Count returns the number of stored records.
	Count() int

	// Close releases any resources held by the storage.
	//
	// After Close is called, the storage should not be used.
	Close() error
}
