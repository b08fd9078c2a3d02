// Command sqlkit is a small demonstration host for the library: it opens
// a SQLite connector against the DSN given on the command line, runs a
// short create/insert/select sequence built through pkg/ast and
// pkg/builder, and serves Prometheus metrics plus a
// health endpoint — the same shape as the axfor-aproxy proxy's main.go,
// minus the MySQL wire-protocol listener it no longer needs.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"sqlkit/internal/config"
	"sqlkit/pkg/ast"
	"sqlkit/pkg/builder"
	"sqlkit/pkg/connector"
	"sqlkit/pkg/connector/sqliteconn"
	"sqlkit/pkg/observability"
	"sqlkit/pkg/value"
)

var (
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
	dsn         = flag.String("dsn", ":memory:", "SQLite DSN to connect to")
	metricsAddr = flag.String("metrics-addr", ":9090", "Metrics/health listen address")
	version     = "dev"
)

func main() {
	flag.Parse()

	fmt.Printf("sqlkit %s\n", version)

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger, err := observability.NewLogger(
		cfg.Observability.LogLevel,
		cfg.Observability.LogFormat,
		cfg.Observability.RedactParameters,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var metrics observability.MetricsRecorder = observability.Noop{}
	if cfg.Observability.MetricsEnabled {
		metrics = observability.NewPromMetrics()
	}

	conn, err := sqliteconn.Open(*dsn, cfg.Timeouts.SocketTimeout, cfg.Timeouts.QueryTimeout)
	if err != nil {
		logger.Fatal("failed to open connector", zap.Error(err))
	}
	defer conn.Close()
	logger.LogConnection("sqlite", *dsn, true)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.ConnectTimeout)
	defer cancel()
	if err := conn.Ping(ctx); err != nil {
		logger.Fatal("failed to ping connector", zap.Error(err))
	}

	if err := runDemoQuery(context.Background(), conn, logger, metrics); err != nil {
		logger.Error("demo query failed", zap.Error(err))
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", *metricsAddr))
		http.Handle("/metrics", promhttp.Handler())
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			if err := conn.Ping(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte("unhealthy"))
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
		})
		if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
			logger.Error("metrics server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("received shutdown signal", zap.String("signal", sig.String()))
}

// runDemoQuery exercises the builder/visitor/connector path end to end:
// create a table with a Raw statement, insert a row through the AST, then
// select it back.
func runDemoQuery(ctx context.Context, conn connector.Connector, logger *observability.Logger, metrics observability.MetricsRecorder) error {
	start := time.Now()

	_, err := conn.Exec(ctx, &ast.Raw{Text: `CREATE TABLE IF NOT EXISTS widgets (id INTEGER PRIMARY KEY, name TEXT NOT NULL)`})
	if err != nil {
		metrics.IncErrors("sqlite", "exec")
		return err
	}

	ins := ast.NewInsert(ast.From("widgets"), ast.Column{Name: "name"})
	ins.Rows = []ast.Row{{Exprs: []ast.Expression{ast.ValueExpr{Value: value.Text("left-handed smoke shifter")}}}}

	res, err := conn.Exec(ctx, ins)
	if err != nil {
		metrics.IncErrors("sqlite", "exec")
		return err
	}
	id, _ := res.LastInsertID()

	sel := ast.NewSelect(ast.From("widgets"), ast.Column{Name: "id"}, ast.Column{Name: "name"})
	sel.Where = builder.Cond(builder.Col("id").Equals(id))

	rows, err := conn.Query(ctx, sel)
	if err != nil {
		metrics.IncErrors("sqlite", "query")
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var gotID int64
		var name string
		if err := rows.Scan(&gotID, &name); err != nil {
			return err
		}
		logger.Info("demo row", zap.Int64("id", gotID), zap.String("name", name))
	}

	metrics.IncQueries("sqlite")
	metrics.ObserveQueryDuration("sqlite", time.Since(start).Seconds())
	return rows.Err()
}
