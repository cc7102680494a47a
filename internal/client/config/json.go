package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophvault/internal/cryptox"
	"github.com/dmitrijs2005/gophvault/internal/flagx"
	"github.com/dmitrijs2005/gophvault/internal/timex"
)

// JsonConfig is the on-disk shape of Config.
type JsonConfig struct {
	Mode                string          `json:"mode"`
	ServerEndpointAddr  string          `json:"server_endpoint_addr"`
	OnlineCheckInterval timex.Duration  `json:"online_check_interval"`
	LocalDSN            string          `json:"local_dsn"`
	KDFParams           *cryptox.Params `json:"kdf_params"`
}

// parseJson overlays cfg with the file named by -c/-config. Keys that are
// absent or zero leave cfg untouched. Read and decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Mode != "" {
		cfg.Mode = jc.Mode
	}
	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.LocalDSN != "" {
		cfg.LocalDSN = jc.LocalDSN
	}
	if jc.KDFParams != nil {
		cfg.KDFParams = *jc.KDFParams
	}
}
