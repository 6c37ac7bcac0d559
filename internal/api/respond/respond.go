// Package respond writes JSON API responses.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

type resultBody struct {
	Result interface{} `json:"result"`
}

type errorBody struct {
	Error string `json:"error"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

// OK writes data wrapped in {"result": ...} with 200.
func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, resultBody{Result: data})
}

// Created writes data wrapped in {"result": ...} with 201.
func Created(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusCreated, resultBody{Result: data})
}

// Accepted writes data wrapped in {"result": ...} with 202.
func Accepted(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusAccepted, resultBody{Result: data})
}

// Fail writes {"error": err} with the given status code.
func Fail(w http.ResponseWriter, code int, err error) {
	JSON(w, code, errorBody{Error: err.Error()})
}
