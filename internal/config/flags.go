package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
)

// NetAddress is a flag.Value for "[host]:port". The host must be empty,
// "localhost" or an IP literal.
type NetAddress struct {
	Host string
	Port int
}

var (
	errAddressFormat = errors.New("need address in a form `host:port`")
	errPortRange     = errors.New("port must be in range 1-65535")
	errHostNotIP     = errors.New("host must be localhost or an IP address")
)

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", errAddressFormat, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("error parsing port %q: %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return errPortRange
	}
	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errHostNotIP
	}

	a.Host, a.Port = host, port
	return nil
}

// parseFlags reads command-line overrides. Flags that are not passed stay
// zero, so they lose to every other source during the merge.
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var address NetAddress

	fs := flag.NewFlagSet("event-planner", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&address, "a", "HTTP listen address, host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "database DSN (postgres://..., sqlite://path)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "path to a JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "alias for -c")

	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "JWT signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "JWT iss claim")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "JWT lifetime, e.g. 24h")
	fs.IntVar(&cfg.App.PasswordHashCost, "password-hash-cost", 0, "bcrypt cost")
	fs.StringVar(&cfg.App.Version, "version", "", "version reported by GET /version")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "debug, info, warn or error")

	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "per-request timeout, e.g. 30s")
	fs.Float64Var(&cfg.Server.AuthRateLimit, "auth-rate-limit", 0, "register/login requests per second per IP")
	fs.IntVar(&cfg.Server.AuthRateBurst, "auth-rate-burst", 0, "register/login burst per IP")

	fs.DurationVar(&cfg.Workers.ReminderPollInterval, "reminder-poll-interval", 0, "how often due reminders are checked")
	fs.IntVar(&cfg.Workers.ReminderBatchSize, "reminder-batch-size", 0, "max reminders fired per poll")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	cfg.Server.HTTPAddress = address.String()

	return cfg, nil
}
