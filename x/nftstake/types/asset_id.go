package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/x/nft"
)

const (
	MinClassIDLength = 3
	MaxClassIDLength = 101
	MaxAssetIDLength = 128
)

// ValidateClassID checks an x/nft class id: a letter followed by letters,
// digits, '/', ':' or '-'.
func ValidateClassID(id string) error {
	if id == "" {
		return nft.ErrEmptyClassID
	}
	if len(id) < MinClassIDLength || len(id) > MaxClassIDLength {
		return errorsmod.Wrapf(ErrInvalidClassID, "%q must be %d-%d characters", id, MinClassIDLength, MaxClassIDLength)
	}
	if !isLetter(id[0]) {
		return errorsmod.Wrapf(ErrInvalidClassID, "%q must start with a letter", id)
	}
	if i := strings.IndexFunc(id, func(r rune) bool { return !isIDRune(r, "/:-") }); i >= 0 {
		return errorsmod.Wrapf(ErrInvalidClassID, "%q has invalid character %q", id, id[i])
	}
	return nil
}

// ValidateAssetID checks the id of a unique asset inside its class.
func ValidateAssetID(id string) error {
	if id == "" {
		return nft.ErrEmptyNFTID
	}
	if len(id) > MaxAssetIDLength {
		return errorsmod.Wrapf(ErrInvalidAssetID, "%q exceeds %d characters", id, MaxAssetIDLength)
	}
	if i := strings.IndexFunc(id, func(r rune) bool { return !isIDRune(r, "/:-_.") }); i >= 0 {
		return errorsmod.Wrapf(ErrInvalidAssetID, "%q has invalid character %q", id, id[i])
	}
	return nil
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIDRune(r rune, extra string) bool {
	if r < 0x80 && (isLetter(byte(r)) || ('0' <= r && r <= '9')) {
		return true
	}
	return strings.ContainsRune(extra, r)
}
