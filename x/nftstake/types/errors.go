package types

import errorsmod "cosmossdk.io/errors"

// DONTCOVER

// Messages of the ownership, balance and entry errors are relied on verbatim by
// integrations and must not change.
var (
	ErrNonexistentAsset       = errorsmod.Register(ModuleName, 1, "ERC721: owner query for nonexistent token")
	ErrNotAssetOwner          = errorsmod.Register(ModuleName, 2, "Account doesnt own token")
	ErrAlreadyStaked          = errorsmod.Register(ModuleName, 3, "Account doesnt own token")
	ErrInsufficientBalance    = errorsmod.Register(ModuleName, 4, "Account have less token")
	ErrNotStaker              = errorsmod.Register(ModuleName, 5, "Nft Staking System: user must be the owner of the staked nft")
	ErrNoStakeEntry           = errorsmod.Register(ModuleName, 6, "Nft Staking System: user has no nfts of this type staked")
	ErrArityMismatch          = errorsmod.Register(ModuleName, 7, "batch arrays differ in length")
	ErrStakingNotInitialized  = errorsmod.Register(ModuleName, 8, "staking is not initialized")
	ErrUnauthorized           = errorsmod.Register(ModuleName, 9, "unauthorized")
	ErrInvalidQuantity        = errorsmod.Register(ModuleName, 10, "quantity must be positive")
	ErrBatchTooLarge          = errorsmod.Register(ModuleName, 11, "batch exceeds max size")
	ErrInvalidParams          = errorsmod.Register(ModuleName, 12, "invalid params")
	ErrInvalidGenesis         = errorsmod.Register(ModuleName, 13, "invalid genesis state")
	ErrInvalidRequest         = errorsmod.Register(ModuleName, 14, "invalid request")
	ErrCustodyTransferFailure = errorsmod.Register(ModuleName, 15, "custody transfer failed")
	ErrInvalidClassID         = errorsmod.Register(ModuleName, 16, "invalid class id")
	ErrInvalidAssetID         = errorsmod.Register(ModuleName, 17, "invalid asset id")
)
