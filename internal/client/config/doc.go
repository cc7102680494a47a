// Package config loads runtime configuration for the vault CLI.
//
// Sources, later ones win:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags.
//
// Flags:
//
//	-a string   address:port of the vault server
//	-i int      online status check interval (seconds)
//	-m string   backend mode: remote or local
//	-f string   path of the local vault database
//
// JSON keys mirror the flags; durations accept "3s" or integer nanoseconds:
//
//	{
//	  "mode": "remote",
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "local_dsn": "gophvault.db",
//	  "kdf_params": {"version": 1, "cost": 32768, "blockSize": 8, "parallelization": 1}
//	}
package config
