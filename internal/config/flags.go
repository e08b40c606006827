package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses the command-line configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config JSON or YAML config file path
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-session-ttl idle session lifetime
//	-caption-url caption provider base URL
//	-translation-url translation provider base URL
//	-variants number of noisy caption attempts
//	-base-language language captions are generated in
//	-languages comma separated list of offered language codes
//	-log-level zerolog level name
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("captioner", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, configPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout, sessionTTL time.Duration
	var captionURL, translationURL string
	var variants int
	var baseLanguage, languages, logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&configPath, "c", "", "Config file path (.json, .yaml, .yml)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Idle session lifetime (e.g., 12h)")
	fs.StringVar(&captionURL, "caption-url", "", "Caption provider base URL")
	fs.StringVar(&translationURL, "translation-url", "", "Translation provider base URL")
	fs.IntVar(&variants, "variants", 0, "Number of noisy caption attempts")
	fs.StringVar(&baseLanguage, "base-language", "", "Caption language")
	fs.StringVar(&languages, "languages", "", "Comma separated language codes")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			SessionTTL:     sessionTTL,
		},
		Adapter: Adapter{
			CaptionURL:     captionURL,
			TranslationURL: translationURL,
		},
		Captions: Captions{
			Variants: variants,
		},
		Translation: Translation{
			BaseLanguage: baseLanguage,
			Languages:    splitList(languages),
		},
		FilePath: configPath,
	}, nil
}

// splitList splits a comma separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// An unset address yields an empty string so it does not override other
// configuration sources.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
