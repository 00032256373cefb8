package signer

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signer holds the server-side key that authorizes badge mints. The key is
// loaded once per process and never leaves memory; the corresponding address
// is configured into the badge contract as the trusted signer.
type Signer struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// New parses a hex-encoded secp256k1 private key, with or without 0x prefix.
func New(hexKey string) (*Signer, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("parse signer key: %w", err)
	}
	return &Signer{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// Address returns the trusted-signer address for this key.
func (s *Signer) Address() common.Address {
	return s.address
}

// MintPayload builds the exact bytes the badge contract hashes during
// signature recovery: the 20-byte wallet address followed by the course
// number as a 32-byte big-endian unsigned integer. Any change to width or
// order here makes every signature unrecoverable on-chain.
func MintPayload(wallet common.Address, courseNumber int64) []byte {
	payload := make([]byte, 0, 52)
	payload = append(payload, wallet.Bytes()...)
	payload = append(payload, common.LeftPadBytes(big.NewInt(courseNumber).Bytes(), 32)...)
	return payload
}

// MintDigest is the digest actually signed: keccak256 of the payload wrapped
// in the personal-message prefix. The contract must apply
// toEthSignedMessageHash to the same keccak256 before ecrecover.
func MintDigest(wallet common.Address, courseNumber int64) []byte {
	return accounts.TextHash(crypto.Keccak256(MintPayload(wallet, courseNumber)))
}

// SignMint produces the 65-byte r||s||v mint authorization, hex-encoded,
// with v normalized to 27/28 as ecrecover expects. Signing is deterministic
// (RFC 6979), so re-requests yield byte-identical signatures.
func (s *Signer) SignMint(wallet common.Address, courseNumber int64) (string, error) {
	sig, err := crypto.Sign(MintDigest(wallet, courseNumber), s.key)
	if err != nil {
		return "", fmt.Errorf("sign mint payload: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return hexutil.Encode(sig), nil
}

// RecoverSigner recovers the address that produced a mint signature. Used in
// tests and debugging; the authoritative recovery happens on-chain.
func RecoverSigner(wallet common.Address, courseNumber int64, sigHex string) (common.Address, error) {
	sig, err := hexutil.Decode(sigHex)
	if err != nil {
		return common.Address{}, fmt.Errorf("decode signature: %w", err)
	}
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("signature must be %d bytes, got %d", crypto.SignatureLength, len(sig))
	}
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig = append([]byte{}, sig...)
		sig[crypto.RecoveryIDOffset] -= 27
	}
	pub, err := crypto.SigToPub(MintDigest(wallet, courseNumber), sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("recover signer: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}
