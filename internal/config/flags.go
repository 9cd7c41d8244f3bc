// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags holds the global command-line flags. Values are only meaningful after
// the owning FlagSet has been parsed.
type Flags struct {
	JSONFilePath string
	ItemsFile    string
	OnCorrupt    string
	WritePolicy  string
	DatabaseDSN  string
	PlaidEnv     string
	LogLevel     string
	HTTPAddress  NetAddress
}

// RegisterFlags registers the global flags on fs and returns the struct they
// are parsed into.
//
// Flags:
//
//	-c/-config json file path with configs
//	-items-file path of the items file
//	-on-corrupt discard|fail
//	-write-policy best_effort|strict
//	-d/-db ledger database DSN (postgres:// URL or SQLite path)
//	-plaid-env sandbox|development|production
//	-log-level zerolog level
//	-a server address in format [host]:[port]
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVar(&f.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&f.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&f.ItemsFile, "items-file", "", "Items file path (default ~/.plaid-items.json)")
	fs.StringVar(&f.OnCorrupt, "on-corrupt", "", "Corrupt items file policy: discard|fail")
	fs.StringVar(&f.WritePolicy, "write-policy", "", "Items file write policy: best_effort|strict")
	fs.StringVar(&f.DatabaseDSN, "d", "", "Ledger database DSN")
	fs.StringVar(&f.DatabaseDSN, "db", "", "Ledger database DSN (alias)")
	fs.StringVar(&f.PlaidEnv, "plaid-env", "", "Plaid environment: sandbox|development|production")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level: debug|info|warn|error")
	fs.Var(&f.HTTPAddress, "a", "Server address host:port")

	return f
}

func (f *Flags) config() *Config {
	return &Config{
		Plaid: Plaid{
			Environment: f.PlaidEnv,
		},
		Storage: Storage{
			Items: Items{
				File:        f.ItemsFile,
				OnCorrupt:   CorruptPolicy(f.OnCorrupt),
				WritePolicy: WritePolicy(f.WritePolicy),
			},
			DB: DB{
				DSN: f.DatabaseDSN,
			},
		},
		Server: Server{
			HTTPAddress: f.HTTPAddress.String(),
		},
		LogLevel:     f.LogLevel,
		JSONFilePath: f.JSONFilePath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
