package types

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryGateRequest struct{}

type QueryGateResponse struct {
	Gate AccessGate `json:"gate"`
}

type QueryStakedRequest struct {
	Owner   string `json:"owner"`
	AssetID string `json:"asset_id"`
}

type QueryStakedResponse struct {
	Stake StakeInfo `json:"stake"`
}

type QueryStakedFungibleRequest struct {
	Owner  string `json:"owner"`
	TypeID uint64 `json:"type_id"`
}

type QueryStakedFungibleResponse struct {
	Entries []FungibleStakeEntry `json:"entries"`
}

type QueryOwnerStakesRequest struct {
	Owner string `json:"owner"`
}

type QueryOwnerStakesResponse struct {
	Unique   []UniqueStakeRecord `json:"unique"`
	Fungible []FungibleStake     `json:"fungible"`
}
