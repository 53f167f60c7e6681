// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses args into a partial [StructuredConfig].
//
// Flags:
//
//	-a host channel listen address in format [host]:[port]
//	-host host channel address used by the launcher
//	-d SQLite database file
//	-game-path default game directory
//	-external-dir external launcher directory for imports
//	-backend-url backend project URL
//	-backend-key backend anon key
//	-refresh-token backend refresh token
//	-request-timeout request timeout (e.g., "10s")
//	-sync-interval instance sync interval (e.g., "5m")
//	-debounce search debounce interval (e.g., "400ms")
//	-username offline account name
//	-log-dir launcher log directory
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var listenAddress, hostAddress NetAddress
	var dsn, gamePath, externalDir string
	var backendURL, backendKey, refreshToken string
	var requestTimeout, syncInterval, debounce time.Duration
	var username, logDir, jsonConfigPath string

	fs := flag.NewFlagSet("blocklauncher", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&listenAddress, "a", "Host channel listen address host:port")
	fs.Var(&hostAddress, "host", "Host channel address host:port")
	fs.StringVar(&dsn, "d", "", "SQLite database file")
	fs.StringVar(&gamePath, "game-path", "", "Default game directory")
	fs.StringVar(&externalDir, "external-dir", "", "External launcher directory")
	fs.StringVar(&backendURL, "backend-url", "", "Backend project URL")
	fs.StringVar(&backendKey, "backend-key", "", "Backend anon key")
	fs.StringVar(&refreshToken, "refresh-token", "", "Backend refresh token")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Instance sync interval (e.g., 5m)")
	fs.DurationVar(&debounce, "debounce", 0, "Search debounce interval (e.g., 400ms)")
	fs.StringVar(&username, "username", "", "Offline account name")
	fs.StringVar(&logDir, "log-dir", "", "Launcher log directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    listenAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage:  Storage{DB: DB{DSN: dsn}},
		Launcher: Launcher{GamePath: gamePath, ExternalDir: externalDir},
		Host: Host{
			Address:        hostAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Backend: Backend{
			URL:            backendURL,
			AnonKey:        backendKey,
			RefreshToken:   refreshToken,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{SyncInterval: syncInterval},
		UI:           UI{DebounceInterval: debounce, Username: username, LogDir: logDir},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
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
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
