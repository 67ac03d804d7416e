package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"airdrop-scout/internal/addrbook"
	"airdrop-scout/internal/config"
	"airdrop-scout/internal/domain"
	"airdrop-scout/internal/explorer"
	"airdrop-scout/internal/logging"
	"airdrop-scout/internal/reporting"
	"airdrop-scout/internal/scan"
	clickhousestore "airdrop-scout/internal/storage/clickhouse"
	"airdrop-scout/internal/storage/migrations"
	"airdrop-scout/internal/storage/postgres"
)

func addChainFlag(flags []cli.Flag) []cli.Flag {
	return append(flags, &cli.StringFlag{
		Name:    "chain",
		Aliases: []string{"c"},
		Value:   "eth",
		Usage:   "Chain to scan (eth, arb, opt)",
	})
}

func addThresholdFlags(flags []cli.Flag) []cli.Flag {
	th := domain.DefaultThresholds()
	return append(flags,
		&cli.Float64Flag{
			Name:  "min-balance",
			Value: th.MinBalance,
			Usage: "Minimum native balance",
		},
		&cli.IntFlag{
			Name:  "min-tx",
			Value: th.MinTxCount,
			Usage: "Minimum transaction count",
		},
		&cli.IntFlag{
			Name:  "min-contracts",
			Value: th.MinUniqueContracts,
			Usage: "Minimum unique contracts interacted with",
		},
		&cli.IntFlag{
			Name:  "min-days",
			Value: th.MinActiveDays,
			Usage: "Minimum active-day span",
		},
	)
}

func addOutputFlags(flags []cli.Flag) []cli.Flag {
	return append(flags,
		&cli.StringFlag{
			Name:  "json-out",
			Usage: "Optional JSON report output path",
		},
		&cli.StringFlag{
			Name:  "csv-out",
			Usage: "Optional CSV report output path",
		},
		&cli.StringFlag{
			Name:  "markdown-out",
			Usage: "Optional Markdown report output path",
		},
	)
}

func addStoreFlags(flags []cli.Flag) []cli.Flag {
	return append(flags,
		&cli.StringFlag{
			Name:    "postgres-dsn",
			Usage:   "Postgres DSN for scan persistence",
			EnvVars: []string{"POSTGRES_DSN"},
		},
		&cli.StringFlag{
			Name:    "clickhouse-dsn",
			Usage:   "ClickHouse DSN for metric history",
			EnvVars: []string{"CLICKHOUSE_DSN"},
		},
	)
}

func addScanFlags(flags []cli.Flag) []cli.Flag {
	flags = addChainFlag(flags)
	flags = addThresholdFlags(flags)
	flags = addOutputFlags(flags)
	flags = addStoreFlags(flags)
	return append(flags,
		&cli.StringFlag{
			Name:  "config",
			Usage: "Threshold profile JSON file",
		},
		&cli.DurationFlag{
			Name:  "pace",
			Value: scan.DefaultPace,
			Usage: "Delay between address queries",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Value: explorer.DefaultTimeout,
			Usage: "Explorer HTTP timeout",
		},
	)
}

// resolveThresholds layers profile values over defaults, then explicit flags
// over both.
func resolveThresholds(c *cli.Context, profile *config.Profile) domain.Thresholds {
	th := domain.DefaultThresholds()
	if profile != nil {
		th = profile.Apply(th)
	}
	if c.IsSet("min-balance") {
		th.MinBalance = c.Float64("min-balance")
	}
	if c.IsSet("min-tx") {
		th.MinTxCount = c.Int("min-tx")
	}
	if c.IsSet("min-contracts") {
		th.MinUniqueContracts = c.Int("min-contracts")
	}
	if c.IsSet("min-days") {
		th.MinActiveDays = c.Int("min-days")
	}
	return th
}

func resolvePace(c *cli.Context, profile *config.Profile) time.Duration {
	if c.IsSet("pace") || profile == nil || profile.PaceMs == nil {
		return c.Duration("pace")
	}
	return time.Duration(*profile.PaceMs) * time.Millisecond
}

func runScan(c *cli.Context) error {
	chain, ok := domain.ChainByID(c.String("chain"))
	if !ok {
		return fmt.Errorf("unsupported chain %q (supported: %v)",
			c.String("chain"), domain.ChainIDs())
	}

	var profile *config.Profile
	if path := c.String("config"); path != "" {
		p, err := config.LoadProfile(path)
		if err != nil {
			return err
		}
		profile = p
	}

	addrs, err := addrbook.Load(c.Args().Slice())
	if err != nil {
		return err
	}

	client := explorer.NewClient(chain,
		explorer.WithAPIKey(os.Getenv(chain.KeyEnv)),
		explorer.WithTimeout(c.Duration("timeout")),
	)

	opts := []scan.Option{scan.WithPace(resolvePace(c, profile))}

	if dsn := c.String("postgres-dsn"); dsn != "" {
		pool, err := postgres.NewPool(c.Context, dsn)
		if err != nil {
			return err
		}
		defer pool.Close()
		opts = append(opts, scan.WithScanStore(postgres.NewScanStore(pool)))
	}

	if dsn := c.String("clickhouse-dsn"); dsn != "" {
		conn, err := clickhousestore.NewConn(c.Context, dsn)
		if err != nil {
			return err
		}
		defer conn.Close()
		opts = append(opts, scan.WithMetricHistory(clickhousestore.NewMetricHistoryStore(conn)))
	}

	runner := scan.NewRunner(client, chain, resolveThresholds(c, profile), opts...)

	report, err := runner.Run(c.Context, addrs)
	if err != nil {
		return err
	}

	fmt.Print(reporting.RenderText(report))

	if path := c.String("json-out"); path != "" {
		if err := reporting.WriteJSON(path, report); err != nil {
			return err
		}
	}
	if path := c.String("csv-out"); path != "" {
		if err := os.WriteFile(path, []byte(reporting.RenderCSV(report)), 0o644); err != nil {
			return fmt.Errorf("write csv report: %w", err)
		}
	}
	if path := c.String("markdown-out"); path != "" {
		if err := os.WriteFile(path, []byte(reporting.RenderMarkdown(report)), 0o644); err != nil {
			return fmt.Errorf("write markdown report: %w", err)
		}
	}

	return nil
}

func runChains(_ *cli.Context) error {
	for _, id := range domain.ChainIDs() {
		chain, _ := domain.ChainByID(id)
		fmt.Printf("%-4s %-14s %s\n", chain.ID, chain.Name, chain.APIBase)
	}
	return nil
}

func runMigrate(c *cli.Context) error {
	ctx := c.Context
	log := logging.Logger()
	migrated := false

	if dsn := c.String("postgres-dsn"); dsn != "" {
		pool, err := postgres.NewPool(ctx, dsn)
		if err != nil {
			return err
		}
		defer pool.Close()
		if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
			return err
		}
		log.Info("postgres migrations applied")
		migrated = true
	}

	if dsn := c.String("clickhouse-dsn"); dsn != "" {
		conn, err := clickhousestore.NewConn(ctx, dsn)
		if err != nil {
			return err
		}
		defer conn.Close()
		if err := migrations.RunClickhouseMigrations(ctx, conn); err != nil {
			return err
		}
		log.Info("clickhouse migrations applied")
		migrated = true
	}

	if !migrated {
		return fmt.Errorf("nothing to migrate: set --postgres-dsn and/or --clickhouse-dsn")
	}
	return nil
}

func main() {
	// API keys and DSNs may live in a local .env file.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "scout",
		Usage: "Check EVM addresses against airdrop eligibility heuristics",
		Commands: []*cli.Command{
			{
				Name:      "scan",
				Usage:     "Score addresses on one chain and print the report",
				ArgsUsage: "ADDRESS|FILE ...",
				Flags:     addScanFlags(nil),
				Action:    runScan,
			},
			{
				Name:   "chains",
				Usage:  "List supported chains",
				Action: runChains,
			},
			{
				Name:   "migrate",
				Usage:  "Apply database migrations",
				Flags:  addStoreFlags(nil),
				Action: runMigrate,
			},
		},
	}

	if err := app.RunContext(context.Background(), os.Args); err != nil {
		logging.Logger().Error("command failed", "error", err)
		os.Exit(1)
	}
}
