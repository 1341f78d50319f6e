// Command bpxsign signs a private REST request described on the
// command line and prints the resulting authentication headers. It is
// the manual verification tool for the signing path.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/driftline/bpxconnect/config"
	"github.com/driftline/bpxconnect/internal/adapters/backpack"
	"github.com/driftline/bpxconnect/internal/observability"
	"github.com/driftline/bpxconnect/lib/telemetry"
)

const telemetryShutdownTimeout = 5 * time.Second

type kvFlag struct {
	values map[string]any
}

func (f *kvFlag) String() string { return fmt.Sprint(f.values) }

func (f *kvFlag) Set(raw string) error {
	key, value, ok := strings.Cut(raw, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return fmt.Errorf("expected key=value, got %q", raw)
	}
	if f.values == nil {
		f.values = make(map[string]any)
	}
	f.values[key] = value
	return nil
}

type stdLogger struct {
	inner *log.Logger
}

func (l stdLogger) Debug(msg string, fields ...observability.Field) { l.print("DEBUG", msg, fields) }
func (l stdLogger) Info(msg string, fields ...observability.Field)  { l.print("INFO", msg, fields) }
func (l stdLogger) Error(msg string, fields ...observability.Field) { l.print("ERROR", msg, fields) }

func (l stdLogger) print(level, msg string, fields []observability.Field) {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s=%v", f.Key, f.Value))
	}
	l.inner.Printf("%s %s %s", level, msg, strings.Join(parts, " "))
}

func main() {
	logger := log.New(os.Stderr, "bpxsign ", log.LstdFlags)

	var params, data kvFlag
	configPath := flag.String("config", "", "path to connector YAML configuration")
	method := flag.String("method", "GET", "HTTP method of the request to sign")
	urlFlag := flag.String("url", "", "full request URL or path (required)")
	verbose := flag.Bool("v", false, "log signing details")
	flag.Var(&params, "param", "query parameter as key=value (repeatable)")
	flag.Var(&data, "data", "body parameter as key=value (repeatable)")
	flag.Parse()

	if strings.TrimSpace(*urlFlag) == "" {
		logger.Fatalf("-url is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	provider, shutdownTelemetry, err := telemetry.Init(ctx, cfg.Telemetry)
	if err != nil {
		logger.Fatalf("init telemetry: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			logger.Printf("telemetry shutdown: %v", err)
		}
	}()
	observability.SetMetrics(telemetry.NewMetrics(provider))
	if *verbose {
		observability.SetLogger(stdLogger{inner: logger})
	}

	creds, err := backpack.NewCredentials(
		cfg.Venue.Credentials.APIKey,
		cfg.Venue.Credentials.Secret,
		backpack.SecretKind(cfg.Venue.Credentials.Kind),
	)
	if err != nil {
		logger.Fatalf("credentials: %v", err)
	}

	auth := backpack.NewAuth(creds, nil)
	req := &backpack.RESTRequest{
		Method: backpack.RESTMethod(strings.ToUpper(strings.TrimSpace(*method))),
		URL:    *urlFlag,
		Params: params.values,
		Data:   data.values,
	}
	if cfg.Venue.WindowMillis != 5000 {
		req.Headers = map[string]string{"X-Window": strconv.FormatInt(cfg.Venue.WindowMillis, 10)}
	}
	signed := auth.RESTAuthenticate(req)

	keys := make([]string, 0, len(signed.Headers))
	for k := range signed.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s: %s\n", k, signed.Headers[k])
	}
}
