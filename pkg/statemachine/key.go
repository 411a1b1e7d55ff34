package statemachine

import "github.com/google/uuid"

// keyNamespace scopes NamedKey derivation to this package.
var keyNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("statetrack/statemachine/key"))

// Key groups callback registrations so they can be removed together.
// Keys are compared by identity only. The zero Key is a valid key.
type Key struct {
	id uuid.UUID
}

// NewKey returns a key that is unique to the caller.
func NewKey() Key {
	return Key{id: uuid.New()}
}

// NamedKey derives a deterministic key from name.
// Equal names always produce equal keys, so unrelated subsystems should
// prefer NewKey unless they intentionally share registrations.
func NamedKey(name string) Key {
	return Key{id: uuid.NewSHA1(keyNamespace, []byte(name))}
}

func (k Key) String() string {
	return k.id.String()
}

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool {
	return k.id == uuid.Nil
}
