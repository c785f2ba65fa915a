package identity

import (
	"strconv"
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must prefix keys by record kind to avoid cross-kind collisions.
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// ItemLanguageUUID identifies the language row of an item.
func ItemLanguageUUID(itemID int64) uuid.UUID {
	return UUID("langlink:item_language:" + strconv.FormatInt(itemID, 10))
}

// GroupMemberUUID identifies the group membership row of an item. Items belong
// to at most one group, so the key carries the item only.
func GroupMemberUUID(itemID int64) uuid.UUID {
	return UUID("langlink:group_member:" + strconv.FormatInt(itemID, 10))
}
