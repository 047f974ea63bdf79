// Package commands implements the formcheck CLI.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	kjs "github.com/kaptinlin/jsonschema"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/conform"
	"github.com/dmitrymomot/formkit/pkg/jsonschema"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/payload"
	"github.com/dmitrymomot/formkit/pkg/sanitize"
	"github.com/dmitrymomot/formkit/pkg/submission"
)

// Config is read from FORMCHECK_* environment variables; flags override it.
type Config struct {
	Schema    string `env:"SCHEMA"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	// Trim strips control characters and surrounding whitespace from every
	// value before validation.
	Trim bool `env:"TRIM" envDefault:"true"`
	// Skip and Undefined map engine keywords to the reserved messages,
	// e.g. FORMCHECK_SKIP=pattern.
	Skip      []string `env:"SKIP"`
	Undefined []string `env:"UNDEFINED"`
}

var errValidationFailed = errors.New("validation failed")

var (
	schemaFlag string
	dataFlag   string
)

func init() {
	rootCmd.Flags().StringVarP(&schemaFlag, "schema", "s", "",
		"path to a JSON or YAML schema file (default $FORMCHECK_SCHEMA)")
	rootCmd.Flags().StringVarP(&dataFlag, "data", "d", "",
		"urlencoded payload, e.g. 'kv.key=value&tags=a' (default: read stdin)")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "formcheck",
	Short: "Validate a form payload against a JSON Schema",
	Long: `formcheck expands an urlencoded form payload into a document,
validates it against a JSON Schema and prints the normalized outcome:

  {"value": {...}}  when the payload is valid
  {"error": {...}}  with messages keyed by field name otherwise

Exit codes:
  0 - valid payload
  1 - invalid payload or runtime error

Examples:
  formcheck -s signup.json -d 'email=a@b.co&password=secret'
  echo 'kv.key=invalid' | FORMCHECK_SKIP=pattern formcheck -s kv.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var cfg Config
		if err := config.Load(&cfg, config.WithPrefix("FORMCHECK_")); err != nil {
			return err
		}
		if schemaFlag != "" {
			cfg.Schema = schemaFlag
		}

		var in io.Reader = cmd.InOrStdin()
		if dataFlag != "" {
			in = strings.NewReader(dataFlag)
		}
		return Run(cmd.Context(), cfg, in, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil && !errors.Is(err, errValidationFailed) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// Run validates the payload read from in and writes the outcome to out.
// It returns errValidationFailed for invalid payloads.
func Run(ctx context.Context, cfg Config, in io.Reader, out, logOut io.Writer) error {
	format := logger.Format(strings.ToLower(cfg.LogFormat))
	if format != logger.FormatJSON && format != logger.FormatText {
		return fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}
	log := logger.New(
		logger.WithOutput(logOut),
		logger.WithFormat(format),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithAttr(logger.Component("formcheck")),
	)

	if cfg.Schema == "" {
		return errors.New("schema is required: pass --schema or set FORMCHECK_SCHEMA")
	}
	schema, err := loadSchema(cfg.Schema)
	if err != nil {
		return err
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}
	values, err := url.ParseQuery(strings.TrimSpace(string(raw)))
	if err != nil {
		return fmt.Errorf("parse payload: %w", err)
	}

	p := payload.FromValues(values)
	if cfg.Trim {
		p = sanitize.Payload(p, sanitize.Rules{
			sanitize.AllFields: sanitize.Compose(sanitize.RemoveControlChars, sanitize.Trim),
		})
	}

	v := jsonschema.New(schema, jsonschema.WithMessages(reservedMessages(cfg)))
	sub, err := conform.Parse(ctx, p, conform.Config[map[string]any]{
		Schema: conform.Fixed[map[string]any](v),
		Logger: log,
	})
	if err != nil {
		return err
	}

	log.Info("payload checked", logger.Valid(sub.Valid), logger.Fields(len(sub.Error)), slog.String("schema", cfg.Schema))

	outcome := submission.Invalid[map[string]any](sub.Error)
	if sub.Valid {
		outcome = submission.Valid(sub.Value)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(outcome); err != nil {
		return fmt.Errorf("write outcome: %w", err)
	}

	if !sub.Valid {
		return errValidationFailed
	}
	return nil
}

func loadSchema(path string) (*kjs.Schema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return jsonschema.CompileYAML(raw)
	default:
		return jsonschema.Compile(raw)
	}
}

func reservedMessages(cfg Config) jsonschema.MessageFunc {
	return func(keyword, _ string, _ []any) string {
		for _, k := range cfg.Undefined {
			if k == keyword {
				return conform.MessageUndefined
			}
		}
		for _, k := range cfg.Skip {
			if k == keyword {
				return conform.MessageSkipped
			}
		}
		return ""
	}
}
