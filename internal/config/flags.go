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
//	-a bridge listen address in format [host]:[port]
//	-r remote service base URL
//	-d storage base directory
//	-db database file name
//	-c/-config JSON or YAML file path with configs
//	-token remote bearer token
//	-request-timeout remote request timeout (e.g., "30s", "1m")
//	-probe-ttl connectivity probe cache lifetime
//	-sync-interval background sync period
//	-sync-max-attempts failed pushes before an entry becomes terminal
//	-content-limit content cache limit in bytes
//	-checksum content digest algorithm (sha256 or blake2b)
//	-log-level log level
func ParseFlags() *StructuredConfig {
	var bridgeAddress NetAddress
	var remoteAddress string
	var baseDir string
	var dbFile string
	var configPath string
	var token string
	var requestTimeout time.Duration
	var probeTTL time.Duration
	var syncInterval time.Duration
	var syncMaxAttempts int
	var contentLimit int64
	var checksum string
	var logLevel string

	flag.Var(&bridgeAddress, "a", "Bridge listen address host:port")
	flag.StringVar(&remoteAddress, "r", "", "Remote service base URL")
	flag.StringVar(&baseDir, "d", "", "Storage base directory")
	flag.StringVar(&dbFile, "db", "", "Database file name")
	flag.StringVar(&configPath, "c", "", "JSON/YAML config file path")
	flag.StringVar(&configPath, "config", "", "JSON/YAML config file path (alias)")
	flag.StringVar(&token, "token", "", "Remote bearer token")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&probeTTL, "probe-ttl", 0, "Connectivity probe cache lifetime")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync period")
	flag.IntVar(&syncMaxAttempts, "sync-max-attempts", 0, "Failed pushes before an entry becomes terminal")
	flag.Int64Var(&contentLimit, "content-limit", 0, "Content cache limit in bytes")
	flag.StringVar(&checksum, "checksum", "", "Content digest algorithm (sha256, blake2b)")
	flag.StringVar(&logLevel, "log-level", "", "Log level")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			BaseDir:           baseDir,
			DBFile:            dbFile,
			ContentLimitBytes: contentLimit,
			ContentChecksum:   checksum,
		},
		Server: Server{
			HTTPAddress: bridgeAddress.String(),
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			Token:          token,
			RequestTimeout: requestTimeout,
			ProbeTTL:       probeTTL,
		},
		Workers: Workers{
			SyncInterval:    syncInterval,
			SyncMaxAttempts: syncMaxAttempts,
		},
		Log: Log{
			Level: logLevel,
		},
		ConfigFilePath: configPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string when neither Host nor Port are set.
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
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
