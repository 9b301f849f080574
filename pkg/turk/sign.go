package turk

import (
	"crypto/sha1"
	"encoding/base64"
	"time"
)

// timestampFormat is the wire format for signing timestamps: UTC with
// seconds precision and a literal trailing Z.
const timestampFormat = "2006-01-02T15:04:05Z"

// Timestamp returns the current UTC time in the signing format. Each signed
// request uses a freshly computed timestamp; signatures are not reusable
// across calls.
func Timestamp() string {
	return time.Now().UTC().Format(timestampFormat)
}

// Sign computes the legacy request signature: HMAC-SHA1 over the
// concatenation service+operation+timestamp, base64-encoded.
//
// The construction is spelled out by hand because the legacy scheme predates
// the service's adoption of library HMAC primitives: the secret key is
// zero-padded to the SHA-1 block size, XORed with the 0x36/0x5c pads, and
// the raw inner digest feeds the outer hash. The result is byte-identical
// to a standard HMAC-SHA1 over the same message.
func Sign(secretKey, service, operation, timestamp string) string {
	key := make([]byte, sha1.BlockSize)
	copy(key, secretKey) // zero-padded, truncated past the block size

	ipad := make([]byte, sha1.BlockSize)
	opad := make([]byte, sha1.BlockSize)
	for i, b := range key {
		ipad[i] = b ^ 0x36
		opad[i] = b ^ 0x5c
	}

	inner := sha1.New()
	inner.Write(ipad)
	inner.Write([]byte(service))
	inner.Write([]byte(operation))
	inner.Write([]byte(timestamp))

	outer := sha1.New()
	outer.Write(opad)
	outer.Write(inner.Sum(nil))

	return base64.StdEncoding.EncodeToString(outer.Sum(nil))
}
