package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	cufinder "github.com/cufinder/cufinder-go"
	"github.com/cufinder/cufinder-go/config"
)

const configKey = "config"

func newApp(streams Streams) *cli.App {
	return &cli.App{
		Name:      "cufinder",
		Usage:     "Query the CUFinder B2B data enrichment API",
		Version:   cufinder.Version,
		Writer:    streams.Stdout,
		ErrWriter: streams.Stderr,
		Metadata:  map[string]interface{}{},

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "api-key",
				Usage: "API key (default $" + config.EnvAPIKey + ")",
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "API base URL",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Per-request timeout",
			},
			&cli.IntFlag{
				Name:  "max-retries",
				Usage: "Retry budget, used with --retry",
			},
			&cli.BoolFlag{
				Name:  "retry",
				Usage: "Retry transient failures with exponential backoff",
			},
			&cli.StringFlag{
				Name:  "encoding",
				Usage: "Wire encoding (json, form)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "json",
				Usage:   "Output format (json, yaml)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format (json, console)",
			},
		},

		Before: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			c.App.Metadata[configKey] = cfg
			return nil
		},

		Commands: append([]*cli.Command{listCommand()}, operationCommands()...),
	}
}

// loadConfig reads the environment and applies any global flags on top.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if c.IsSet("api-key") {
		cfg.APIKey = c.String("api-key")
	}
	if c.IsSet("base-url") {
		cfg.BaseURL = c.String("base-url")
	}
	if c.IsSet("timeout") {
		cfg.Timeout = c.Duration("timeout")
	}
	if c.IsSet("max-retries") {
		cfg.MaxRetries = c.Int("max-retries")
	}
	if c.IsSet("retry") {
		cfg.Retry = c.Bool("retry")
	}
	if c.IsSet("encoding") {
		cfg.Encoding = c.String("encoding")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.LogFormat = c.String("log-format")
	}

	switch c.String("output") {
	case "json", "yaml":
	default:
		return nil, fmt.Errorf("unknown output format %q (want json or yaml)", c.String("output"))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configFrom(c *cli.Context) *config.Config {
	cfg, _ := c.App.Metadata[configKey].(*config.Config)
	return cfg
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List available operations",
		Action: func(c *cli.Context) error {
			w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "COMMAND\tPATH\tREQUIRED\tDESCRIPTION")
			for _, op := range cufinder.Operations() {
				required := "-"
				if len(op.Required) > 0 {
					flags := make([]string, len(op.Required))
					for i, name := range op.Required {
						flags[i] = "--" + flagName(name)
					}
					required = strings.Join(flags, " ")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", strings.ToLower(op.Code), op.Path, required, op.Name)
			}
			return w.Flush()
		},
	}
}
