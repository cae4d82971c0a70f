// Package stream bridges the backend to the external chat/video provider.
//
// No SDK is involved: the provider only needs a deterministic room key and a
// short signed token, both of which the frontend recomputes independently.
// The formats here are part of the frontend contract and must not change.
package stream

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// TokenProvider mints chat tokens for authenticated users.
type TokenProvider struct {
	apiSecret string
}

// NewTokenProvider creates a token provider signing with the Stream API secret.
func NewTokenProvider(apiSecret string) *TokenProvider {
	return &TokenProvider{apiSecret: apiSecret}
}

// MintToken produces a token of the form "{ts}.{sigHex}" where sigHex is the
// hex HMAC-SHA256 of userId concatenated with the unix timestamp.
func (p *TokenProvider) MintToken(userID uuid.UUID, now time.Time) string {
	ts := strconv.FormatInt(now.Unix(), 10)

	mac := hmac.New(sha256.New, []byte(p.apiSecret))
	mac.Write([]byte(userID.String() + ts))
	sig := hex.EncodeToString(mac.Sum(nil))

	return fmt.Sprintf("%s.%s", ts, sig)
}

// ChannelID derives the chat room key for a user pair: hex SHA-256 over the
// canonical pair joined with ":", truncated to 32 characters. Callers must
// pass the pair in canonical order so both sides land on the same room.
func ChannelID(userA, userB uuid.UUID) string {
	sum := sha256.Sum256([]byte(userA.String() + ":" + userB.String()))
	return hex.EncodeToString(sum[:])[:32]
}
