// Package registry adapts the host chain's x/nft and x/bank keepers to the
// asset registries the stake ledger depends on.
package registry

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/x/nft"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"nftstake/x/nftstake/types"
)

// NFTKeeper is the subset of the x/nft keeper the registry uses.
type NFTKeeper interface {
	GetOwner(ctx context.Context, classID, nftID string) sdk.AccAddress
	HasNFT(ctx context.Context, classID, id string) bool
	Transfer(ctx context.Context, classID, nftID string, receiver sdk.AccAddress) error
	HasClass(ctx context.Context, classID string) bool
	SaveClass(ctx context.Context, class nft.Class) error
	Mint(ctx context.Context, token nft.NFT, receiver sdk.AccAddress) error
}

// NFTRegistry serves unique assets out of x/nft classes.
type NFTRegistry struct {
	nk NFTKeeper
}

var _ types.UniqueAssetRegistry = NFTRegistry{}

func NewNFTRegistry(nk NFTKeeper) NFTRegistry {
	return NFTRegistry{nk: nk}
}

func (r NFTRegistry) OwnerOf(ctx context.Context, classID, assetID string) (sdk.AccAddress, error) {
	if !r.nk.HasNFT(ctx, classID, assetID) {
		return nil, types.ErrNonexistentAsset
	}
	return r.nk.GetOwner(ctx, classID, assetID), nil
}

// TransferCustody moves the asset from `from` to `to`. It fails when `from`
// is not the current holder.
func (r NFTRegistry) TransferCustody(ctx context.Context, classID, assetID string, from, to sdk.AccAddress) error {
	holder, err := r.OwnerOf(ctx, classID, assetID)
	if err != nil {
		return err
	}
	if !holder.Equals(from) {
		return errorsmod.Wrapf(types.ErrNotAssetOwner, "%s/%s is held by %s", classID, assetID, holder)
	}
	return r.nk.Transfer(ctx, classID, assetID, to)
}

// EnsureClass creates the class when it does not exist yet.
func (r NFTRegistry) EnsureClass(ctx context.Context, classID, name string) error {
	if r.nk.HasClass(ctx, classID) {
		return nil
	}
	if err := types.ValidateClassID(classID); err != nil {
		return err
	}
	return r.nk.SaveClass(ctx, nft.Class{Id: classID, Name: name})
}

// MintAsset creates assetID in classID owned by receiver.
func (r NFTRegistry) MintAsset(ctx context.Context, classID, assetID string, receiver sdk.AccAddress) error {
	if err := types.ValidateAssetID(assetID); err != nil {
		return err
	}
	return r.nk.Mint(ctx, nft.NFT{ClassId: classID, Id: assetID}, receiver)
}
