package id

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	t.Parallel()

	gen := NewUUIDGenerator()
	seen := make(map[string]struct{}, 64)
	for i := 0; i < 64; i++ {
		v, err := gen.NewID()
		if err != nil {
			t.Fatalf("new id: %v", err)
		}
		parsed, err := uuid.Parse(v)
		if err != nil {
			t.Fatalf("id %q is not a uuid: %v", v, err)
		}
		if parsed.Version() != 4 {
			t.Fatalf("expected random uuid, got version %d", parsed.Version())
		}
		if _, dup := seen[v]; dup {
			t.Fatalf("duplicate id %q", v)
		}
		seen[v] = struct{}{}
	}
}
