package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/Lumos-Labs-HQ/uruseed/internal/config"
	"github.com/Lumos-Labs-HQ/uruseed/internal/database"
	"github.com/Lumos-Labs-HQ/uruseed/internal/entities"
	"github.com/Lumos-Labs-HQ/uruseed/internal/seeder"
	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	dbPath string
	counts map[string]int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate synthetic data into an existing schema",
	Long: `Generate fills every table of the commerce schema inside one transaction.
If any table fails, the transaction is rolled back and nothing is written.

The schema must already exist. Run your migrations (or load
db/schema/001_initial_schema.sql) before generating.`,
	Example: `  uruseed generate --db-path ./dev.db
  uruseed generate --provider postgresql --database-url postgres://localhost/shop --seed 7
  uruseed generate --count customers=50 --count orders=100 --report summary.yaml`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	flags := generateCmd.Flags()
	flags.StringVar(&dbPath, "db-path", "", "SQLite database file (shorthand for --provider sqlite --database-url PATH)")
	flags.String("database-url", "", "Database connection URL")
	flags.String("provider", "", "Database provider (sqlite, postgresql, mysql)")
	flags.String("driver", "", "Driver override (pq for postgresql)")
	flags.Int64("seed", config.DefaultSeed, "Random seed")
	flags.String("anchor", "", "RFC3339 instant all timestamps are relative to")
	flags.String("schema", "", "Schema file named when tables are missing")
	flags.StringToIntVar(&counts, "count", nil, "Row count override per table (table=n)")
	flags.String("report", "", "Write a YAML summary to this file")

	viper.BindPFlag("database.url", flags.Lookup("database-url"))
	viper.BindPFlag("database.provider", flags.Lookup("provider"))
	viper.BindPFlag("database.driver", flags.Lookup("driver"))
	viper.BindPFlag("seed", flags.Lookup("seed"))
	viper.BindPFlag("anchor", flags.Lookup("anchor"))
	viper.BindPFlag("schema_path", flags.Lookup("schema"))
	viper.BindPFlag("report", flags.Lookup("report"))
}

// loadConfig applies command-line overrides that viper cannot bind directly.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Anchor == "" {
		cfg.Anchor = config.DefaultAnchor
	}
	if cfg.SchemaPath == "" {
		cfg.SchemaPath = config.DefaultSchemaPath
	}
	if dbPath != "" {
		cfg.Database.Provider = "sqlite"
		cfg.Database.URL = dbPath
	}
	for table, n := range counts {
		cfg.Volumes[table] = n
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func seederFor(cfg *config.Config) (*seeder.Seeder, error) {
	anchor, err := cfg.AnchorTime()
	if err != nil {
		return nil, err
	}
	return seeder.New(entities.Registry(cfg.InventoryOptions()), seeder.Options{
		Seed:       cfg.Seed,
		Anchor:     anchor,
		Volumes:    cfg.EffectiveVolumes(),
		SchemaPath: cfg.SchemaPath,
		Quiet:      cfg.Quiet,
	}, log.Logger), nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	db, err := database.Open(ctx, cfg.Database.Provider, cfg.Database.Driver, dbURL)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Debug().Str("dialect", db.Dialect().Name()).Str("driver", db.Dialect().DriverName()).Msg("connected")

	s, err := seederFor(cfg)
	if err != nil {
		return err
	}

	summary, err := s.Run(ctx, db)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if !cfg.Quiet {
		fmt.Println()
		summary.Print(os.Stdout)
	}

	if cfg.Report != "" {
		if err := summary.WriteYAML(cfg.Report); err != nil {
			return err
		}
		if !cfg.Quiet {
			color.Green("📝 Summary written to %s", cfg.Report)
		}
	}

	return nil
}
