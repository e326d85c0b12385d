package wallet

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// StaticProvider grants a fixed, configured address. It stands in for an
// installed wallet extension in the CLI and in tests.
type StaticProvider struct {
	address string
}

// NewStaticProvider returns a nil Provider for a blank address so that [New]
// yields an absent adapter.
func NewStaticProvider(address string) Provider {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil
	}
	return &StaticProvider{address: address}
}

func (p *StaticProvider) RequestAccess(context.Context) (AccessResult, error) {
	return AccessResult{PublicKey: p.address}, nil
}

func (p *StaticProvider) PublicKey(context.Context) (string, error) {
	return p.address, nil
}

// SignTransaction returns the envelope with a deterministic marker appended.
// It does not produce a network-valid signature.
func (p *StaticProvider) SignTransaction(_ context.Context, xdr, networkPassphrase string) (string, error) {
	sum := sha256.Sum256([]byte(networkPassphrase + "\x00" + p.address + "\x00" + xdr))
	return xdr + "." + base64.RawURLEncoding.EncodeToString(sum[:]), nil
}
