package graph

import "github.com/google/uuid"

// uuidProperty carries a producer's stable logical identifier. The
// identifier survives instance replacement: when the engine recreates
// a producer during an edit it copies this property onto the new
// instance, so lookup by UUID keeps finding the logical producer.
const uuidProperty = "shotcut:uuid"

// EnsureUUID returns the producer's logical identifier, assigning a
// fresh one as producer metadata on first need. Idempotent: once a
// producer has an identifier it is never reassigned.
func EnsureUUID(p *Producer) uuid.UUID {
	if id, ok := UUIDOf(p); ok {
		return id
	}
	id := uuid.New()
	p.props.Set(uuidProperty, id.String())
	return id
}

// UUIDOf returns the producer's logical identifier, if it has one.
func UUIDOf(p *Producer) (uuid.UUID, bool) {
	if !p.IsValid() || !p.props.Has(uuidProperty) {
		return uuid.UUID{}, false
	}
	id, err := uuid.Parse(p.props.Get(uuidProperty))
	if err != nil {
		return uuid.UUID{}, false
	}
	return id, true
}

// SetUUID copies a logical identifier onto a producer. Used when the
// engine replaces an instance and the replacement must keep the
// original's logical identity.
func SetUUID(p *Producer, id uuid.UUID) {
	p.props.Set(uuidProperty, id.String())
}
