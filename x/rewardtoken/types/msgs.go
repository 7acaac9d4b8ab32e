package types

import "context"

type MsgGrantMinter struct {
	Authority string `json:"authority"`
	Denom     string `json:"denom"`
	Minter    string `json:"minter"`
}

type MsgGrantMinterResponse struct{}

type MsgRevokeMinter struct {
	Authority string `json:"authority"`
	Denom     string `json:"denom"`
}

type MsgRevokeMinterResponse struct{}

type MsgServer interface {
	GrantMinter(context.Context, *MsgGrantMinter) (*MsgGrantMinterResponse, error)
	RevokeMinter(context.Context, *MsgRevokeMinter) (*MsgRevokeMinterResponse, error)
}

type QueryMinterRequest struct {
	Denom string `json:"denom"`
}

type QueryMinterResponse struct {
	Minter string `json:"minter"`
}

type QueryDenomsByMinterRequest struct {
	Minter string `json:"minter"`
}

type QueryDenomsByMinterResponse struct {
	Denoms []string `json:"denoms"`
}

type QueryServer interface {
	Minter(context.Context, *QueryMinterRequest) (*QueryMinterResponse, error)
	DenomsByMinter(context.Context, *QueryDenomsByMinterRequest) (*QueryDenomsByMinterResponse, error)
}
