// Package storeview reads nftstake state straight from a node's module store
// through raw ABCI store queries.
package storeview

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/protobuf/encoding/protowire"

	"nftstake/x/nftstake/types"
)

// Querier fetches raw values from a module store. client.Context satisfies
// it.
type Querier interface {
	QueryStore(key []byte, storeName string) ([]byte, int64, error)
	QueryWithData(path string, data []byte) ([]byte, int64, error)
}

// KVPair is one raw store entry returned by a subspace query.
type KVPair struct {
	Key   []byte
	Value []byte
}

// View decodes ledger state fetched through a Querier.
type View struct {
	q Querier
}

func New(q Querier) View {
	return View{q: q}
}

// Params returns the stored params, or the defaults when none are stored.
func (v View) Params() (types.Params, error) {
	p := types.DefaultParams()
	_, err := v.get(types.ParamsKey.Bytes(), &p)
	return p, err
}

func (v View) Gate() (types.AccessGate, error) {
	g := types.DefaultAccessGate()
	_, err := v.get(types.GateKey.Bytes(), &g)
	return g, err
}

// Staked mirrors the ledger's staked query for one owner and asset.
func (v View) Staked(owner, assetID string) (types.StakeInfo, error) {
	if _, err := sdk.AccAddressFromBech32(owner); err != nil {
		return types.StakeInfo{}, fmt.Errorf("invalid owner address: %w", err)
	}
	info := types.StakeInfo{Owner: owner, AssetID: assetID}

	key, err := collections.EncodeKeyWithPrefix(types.UniqueStakeKeyPrefix.Bytes(), types.UniqueStakeKeyCodec, assetID)
	if err != nil {
		return types.StakeInfo{}, err
	}
	var rec types.UniqueStakeRecord
	found, err := v.get(key, &rec)
	if err != nil || !found {
		return info, err
	}
	if rec.Owner == owner {
		info.Amount = 1
		info.StakedAt = rec.StakedAt
	}
	return info, nil
}

// StakedFungible lists the live entries of owner for typeID in index order.
// All entries are fetched with one subspace query over the (owner, typeID)
// range.
func (v View) StakedFungible(owner string, typeID uint64) ([]types.FungibleStakeEntry, error) {
	if _, err := sdk.AccAddressFromBech32(owner); err != nil {
		return nil, fmt.Errorf("invalid owner address: %w", err)
	}
	prefix, err := collections.EncodeKeyWithPrefix(
		types.FungibleEntryKeyPrefix.Bytes(), types.FungibleEntryKeyCodec,
		collections.TripleSuperPrefix[string, uint64, uint64](owner, typeID))
	if err != nil {
		return nil, err
	}
	pairs, err := v.subspace(prefix)
	if err != nil {
		return nil, err
	}

	entries := make([]types.FungibleStakeEntry, 0, len(pairs))
	for _, p := range pairs {
		var e types.FungibleStakeEntry
		if err := json.Unmarshal(p.Value, &e); err != nil {
			return nil, fmt.Errorf("decode entry %X: %w", p.Key, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (v View) subspace(prefix []byte) ([]KVPair, error) {
	bz, _, err := v.q.QueryWithData(fmt.Sprintf("/store/%s/subspace", types.StoreKey), prefix)
	if err != nil {
		return nil, err
	}
	return DecodePairs(bz)
}

// DecodePairs decodes the protobuf pair list a node returns for a subspace
// store query. Pairs come back in ascending key order.
func DecodePairs(bz []byte) ([]KVPair, error) {
	var pairs []KVPair
	for len(bz) > 0 {
		num, typ, n := protowire.ConsumeTag(bz)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		bz = bz[n:]
		if num != 1 || typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, bz)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			bz = bz[n:]
			continue
		}
		msg, n := protowire.ConsumeBytes(bz)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		bz = bz[n:]
		pair, err := decodePair(msg)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

func decodePair(bz []byte) (KVPair, error) {
	var p KVPair
	for len(bz) > 0 {
		num, typ, n := protowire.ConsumeTag(bz)
		if n < 0 {
			return KVPair{}, protowire.ParseError(n)
		}
		bz = bz[n:]
		if typ != protowire.BytesType || (num != 1 && num != 2) {
			n = protowire.ConsumeFieldValue(num, typ, bz)
			if n < 0 {
				return KVPair{}, protowire.ParseError(n)
			}
			bz = bz[n:]
			continue
		}
		field, n := protowire.ConsumeBytes(bz)
		if n < 0 {
			return KVPair{}, protowire.ParseError(n)
		}
		bz = bz[n:]
		if num == 1 {
			p.Key = field
		} else {
			p.Value = field
		}
	}
	return p, nil
}

// get decodes the JSON value at key into out. It reports false when the key
// is absent.
func (v View) get(key []byte, out any) (bool, error) {
	bz, _, err := v.q.QueryStore(key, types.StoreKey)
	if err != nil {
		return false, err
	}
	if len(bz) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(bz, out); err != nil {
		return false, err
	}
	return true, nil
}
