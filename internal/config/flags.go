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
//	-d database URI
//	-database-name database name
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration session token duration (e.g., "72h", "30m")
//	-verification-token-duration verification token duration (e.g., "24h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-base-url public base URL for verification links
//	-environment runtime mode (development/production)
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseURI string
	var databaseName string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var verificationTokenDuration time.Duration
	var requestTimeout time.Duration
	var baseURL string
	var environment string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseURI, "d", "", "Database URI")
	flag.StringVar(&databaseName, "database-name", "", "Database name")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Session token duration (e.g., 72h, 30m)")
	flag.DurationVar(&verificationTokenDuration, "verification-token-duration", 0, "Verification token duration (e.g., 24h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&baseURL, "base-url", "", "Public base URL for verification links")
	flag.StringVar(&environment, "environment", "", "Runtime mode (development/production)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:              tokenSignKey,
			TokenIssuer:               tokenIssuer,
			TokenDuration:             tokenDuration,
			VerificationTokenDuration: verificationTokenDuration,
			BaseURL:                   baseURL,
			Environment:               environment,
		},
		Storage: Storage{
			DB: DB{
				URI:      databaseURI,
				Database: databaseName,
			},
		},
		Server: Server{
			Address:        serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
