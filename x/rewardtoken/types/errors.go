package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	ErrInvalidDenom     = errorsmod.Register(ModuleName, 1, "invalid denom")
	ErrUnauthorized     = errorsmod.Register(ModuleName, 2, "unauthorized")
	ErrMinterNotGranted = errorsmod.Register(ModuleName, 3, "minter not granted for denom")
	ErrInvalidAmount    = errorsmod.Register(ModuleName, 4, "amount must be positive")
	ErrUnknownDenom     = errorsmod.Register(ModuleName, 5, "unknown denom")
	ErrInvalidRequest   = errorsmod.Register(ModuleName, 6, "invalid request")
)
