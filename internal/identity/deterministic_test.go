package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDIsDeterministic(t *testing.T) {
	if UUID("langlink:x") != UUID(" langlink:x ") {
		t.Fatal("expected trimmed keys to hash identically")
	}
	if UUID("") != uuid.Nil {
		t.Fatal("expected empty key to yield uuid.Nil")
	}
}

func TestRowUUIDsDifferByKind(t *testing.T) {
	if ItemLanguageUUID(10) == GroupMemberUUID(10) {
		t.Fatal("expected language and membership rows to use distinct ids")
	}
	if ItemLanguageUUID(10) != ItemLanguageUUID(10) {
		t.Fatal("expected stable language row id")
	}
	if GroupMemberUUID(10) == GroupMemberUUID(11) {
		t.Fatal("expected membership ids to differ per item")
	}
}
