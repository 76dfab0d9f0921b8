package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-users-address user directory base URL
//	-listings-address listing catalog base URL
//	-token-sign-key token verification key
//	-token-issuer expected token issuer name
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var usersAddress string
	var listingsAddress string
	var tokenSignKey string
	var tokenIssuer string
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&usersAddress, "users-address", "", "User directory base URL")
	flag.StringVar(&listingsAddress, "listings-address", "", "Listing catalog base URL")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token verification key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Expected token issuer")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Upstreams: Upstreams{
			Users:    Upstream{Address: usersAddress},
			Listings: Upstream{Address: listingsAddress},
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that mergo
// treats the field as unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("invalid host: " + host)
		}
	}

	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return errors.New("invalid port: " + hostAndPort[1])
	}
	if port < 0 || port > 65535 {
		return errors.New("port out of range: " + hostAndPort[1])
	}

	a.Host = host
	a.Port = port

	return nil
}
