package client

import (
	"crypto/ed25519"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"go.hashgraph.tech/core/types"
	"go.hashgraph.tech/core/wire"
	"golang.org/x/crypto/sha3"
)

// A Signer signs transaction bodies on behalf of the operator.
type Signer interface {
	PublicKey() types.Key
	Sign(msg []byte) ([]byte, error)
}

type ed25519Signer ed25519.PrivateKey

func (s ed25519Signer) PublicKey() types.Key {
	return types.KeyEd25519(ed25519.PrivateKey(s).Public().(ed25519.PublicKey))
}

func (s ed25519Signer) Sign(msg []byte) ([]byte, error) {
	return ed25519.Sign(ed25519.PrivateKey(s), msg), nil
}

// Ed25519Signer returns a Signer backed by an Ed25519 private key.
func Ed25519Signer(sk ed25519.PrivateKey) Signer { return ed25519Signer(sk) }

type secp256k1Signer struct {
	sk *secp256k1.PrivateKey
}

func (s secp256k1Signer) PublicKey() types.Key { return types.KeySecp256k1(s.sk.PubKey()) }

// Sign signs the Keccak-256 hash of msg, returning the 64-byte r || s form.
func (s secp256k1Signer) Sign(msg []byte) ([]byte, error) {
	h := sha3.NewLegacyKeccak256()
	h.Write(msg)
	sig := ecdsa.SignCompact(s.sk, h.Sum(nil), true)
	return sig[1:], nil
}

// Secp256k1Signer returns a Signer backed by a secp256k1 private key.
func Secp256k1Signer(sk *secp256k1.PrivateKey) Signer { return secp256k1Signer{sk} }

// signaturePair pairs sig with the public key that produced it.
func signaturePair(pk types.Key, sig []byte) (*wire.SignaturePair, error) {
	alg, raw, ok := pk.RawPublicKey()
	if !ok {
		return nil, types.NewError(types.ErrorKindUnsupportedOperationVariant, "signer key must be a single public key")
	}
	sp := &wire.SignaturePair{PubKeyPrefix: raw, Signature: sig}
	switch alg {
	case types.AlgorithmEd25519:
		sp.Kind = wire.SignatureEd25519
	case types.AlgorithmSecp256k1:
		sp.Kind = wire.SignatureECDSASecp256k1
	default:
		return nil, types.NewError(types.ErrorKindUnsupportedOperationVariant, "cannot sign with %v keys", alg)
	}
	return sp, nil
}
