// Package rest serves read-only nftstake queries over HTTP.
package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"nftstake/x/nftstake/types"
)

// Reader is the ledger state the routes expose. storeview.View satisfies it.
type Reader interface {
	Params() (types.Params, error)
	Gate() (types.AccessGate, error)
	Staked(owner, assetID string) (types.StakeInfo, error)
	StakedFungible(owner string, typeID uint64) ([]types.FungibleStakeEntry, error)
}

const basePath = "/nftstake/v1"

// RegisterRoutes mounts the query routes on r.
func RegisterRoutes(r *mux.Router, reader Reader) {
	sub := r.PathPrefix(basePath).Subrouter()
	sub.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
	sub.HandleFunc("/params", paramsHandler(reader)).Methods(http.MethodGet)
	sub.HandleFunc("/gate", gateHandler(reader)).Methods(http.MethodGet)
	sub.HandleFunc("/staked/{owner}/{asset_id}", stakedHandler(reader)).Methods(http.MethodGet)
	sub.HandleFunc("/staked_items/{owner}/{type_id}", stakedItemsHandler(reader)).Methods(http.MethodGet)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodGet)
	writeError(w, http.StatusMethodNotAllowed, r.Method+" not allowed")
}

func paramsHandler(reader Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		p, err := reader.Params()
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, types.QueryParamsResponse{Params: p})
	}
}

func gateHandler(reader Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		g, err := reader.Gate()
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, types.QueryGateResponse{Gate: g})
	}
}

func stakedHandler(reader Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		info, err := reader.Staked(vars["owner"], vars["asset_id"])
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, types.QueryStakedResponse{Stake: info})
	}
}

func stakedItemsHandler(reader Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		typeID, err := strconv.ParseUint(vars["type_id"], 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid type_id")
			return
		}
		entries, err := reader.StakedFungible(vars["owner"], typeID)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, types.QueryStakedFungibleResponse{Entries: entries})
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	bz, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(bz)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	bz, _ := json.Marshal(map[string]any{"code": code, "message": msg})
	_, _ = w.Write(bz)
}
