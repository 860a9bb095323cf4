package service

import (
	"encoding/json"
	"net/http"
)

// serverErrorMessage is the generic body for unexpected store or hashing
// failures. Internal details are logged, never sent to clients.
const serverErrorMessage = "Erro no servidor.. tente mais tarde!"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
