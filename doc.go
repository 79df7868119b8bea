// Package sodiumkit provides a safe, ergonomic API surface over well-reviewed
// cryptographic primitives: authenticated symmetric encryption, generic
// keyed/unkeyed hashing, and cryptographically secure random generation.
//
// The package itself implements no algorithms. The primitives come from
// golang.org/x/crypto (XSalsa20-Poly1305 via nacl/secretbox, BLAKE2b) and the
// operating system CSPRNG via crypto/rand; sodiumkit validates parameters,
// manages nonces and secret buffers, and translates primitive-layer failures
// into an explicit error taxonomy defined in this root package.
//
// # Subpackages
//
//   - [github.com/opd-ai/sodiumkit/secretbox]: authenticated symmetric
//     encryption in combined and detached modes
//   - [github.com/opd-ai/sodiumkit/generichash]: one-shot and streaming
//     BLAKE2b with optional key and variable output length
//   - [github.com/opd-ai/sodiumkit/randombytes]: uniform random buffers and
//     unbiased bounded integers
//   - [github.com/opd-ai/sodiumkit/securebuffer]: zero-on-release storage
//     for secret material
//   - [github.com/opd-ai/sodiumkit/utils]: constant-time comparison, secure
//     zeroing, and a separator-tolerant hex codec
//
// # Encrypting and Decrypting
//
// SecretBox generates a fresh nonce for every seal and prefixes it to the
// sealed output, so the combined buffer is self-contained:
//
//	key, err := secretbox.GenerateKey()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer utils.Zero(key)
//
//	sealed, err := secretbox.Seal([]byte("attack at dawn"), key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plaintext, err := secretbox.Open(sealed, key)
//	if errors.Is(err, sodiumkit.ErrDecryptionFailed) {
//	    // wrong key or tampered message; no further detail is available
//	}
//
// # Hashing
//
// GenericHash supports one-shot and streaming use; both produce identical
// digests for identical input:
//
//	digest, _ := generichash.Hash(message, nil, 0) // unkeyed, default length
//
//	st, _ := generichash.New(key, generichash.Bytes)
//	st.Update(part1)
//	st.Update(part2)
//	digest, _ = st.Final()
//
// # Error Handling
//
// All failures are sentinel errors declared in this package and wrapped with
// context by the subpackages; test them with errors.Is. Cryptographic
// verification failures are a single opaque [ErrDecryptionFailed] by design:
// distinguishing a wrong key from a corrupted ciphertext would hand an
// attacker an authentication oracle.
//
// # Secret Hygiene
//
// Keys and nonces are caller-owned. The library wipes its internal copies on
// every exit path and never logs secret material; callers should wipe their
// own copies with utils.Zero or hold them in a securebuffer.Buffer.
//
// # Thread Safety
//
// All operations are synchronous and safe for concurrent use as long as each
// call operates on its own buffers. The only process-wide shared state is the
// CSPRNG behind crypto/rand, which is internally synchronized. A
// generichash.State or securebuffer.Buffer must be owned by one logical
// sequence of calls at a time.
package sodiumkit
