package sharetelemetry

import (
	"encoding/json"
	"net/http"
)

// BuildVersion is overridden at build time.
var BuildVersion = "dev"

func renderJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Add("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}
