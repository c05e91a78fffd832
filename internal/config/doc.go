// Package config loads ffui.toml.
//
// A missing file is not an error for Load: the defaults are used. Values are
// read with BurntSushi/toml, defaults are applied to anything left unset,
// FFUI_ADDR overrides server.addr, and the result is validated.
//
//	[server]
//	addr = ":8080"
//	shutdown_timeout = "10s"
//
//	[log]
//	level = "debug"
//
//	[metrics]
//	enabled = true
//
//	[export]
//	bucket = "snapshots"
//	region = "us-east-1"
package config
