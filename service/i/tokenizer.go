package i

import (
	"time"
)

// ClaimBoardID is the token claim naming the board a bearer may use.
const ClaimBoardID = "boardID"

// Tokenizer defines methods for generating and decoding tokens.
type Tokenizer interface {
	// Generate creates a signed token carrying claims that expires after expTime.
	Generate(claims map[string]any, expTime time.Duration) (string, error)

	// Decode validates a token's signature, expiry and issuer and returns its claims.
	Decode(token string) (map[string]any, error)
}
