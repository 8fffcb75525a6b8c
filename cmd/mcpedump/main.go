package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/Versifine/mcpewire/internal/config"
	"github.com/Versifine/mcpewire/internal/dump"
	"github.com/Versifine/mcpewire/internal/item"
	"github.com/Versifine/mcpewire/internal/logger"
	"github.com/Versifine/mcpewire/internal/protocol"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

func main() {
	configPath := flag.StringP("config", "c", "", "path to a YAML config file")
	kind := flag.StringP("kind", "k", "", "value kind to decode ("+strings.Join(dump.Kinds(), ", ")+")")
	all := flag.BoolP("all", "a", false, "decode values until the input is exhausted")
	verify := flag.Bool("verify", false, "re-encode each value and report whether the bytes match")
	level := flag.String("log-level", "", "override logging.level")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			slog.Error("Failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
	}
	if flag.CommandLine.Changed("kind") {
		cfg.Dump.Kind = *kind
	}
	if flag.CommandLine.Changed("all") {
		cfg.Dump.All = *all
	}
	if flag.CommandLine.Changed("verify") {
		cfg.Dump.Verify = *verify
	}
	if *level != "" {
		cfg.Logging.Level = *level
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid config", "error", err)
		os.Exit(1)
	}

	logCfg := logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format}
	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			slog.Error("Failed to open log file", "path", cfg.Logging.File, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		logCfg.Output = f
	}
	logger.Init(logCfg)

	if err := run(cfg, flag.Args(), os.Stdin, os.Stdout); err != nil {
		logger.L().Error("Dump failed", "kind", cfg.Dump.Kind, "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, args []string, stdin io.Reader, stdout io.Writer) error {
	if !slices.Contains(dump.Kinds(), cfg.Dump.Kind) {
		return fmt.Errorf("%w %q", dump.ErrUnknownKind, cfg.Dump.Kind)
	}

	registry := item.DefaultTable()
	if cfg.Items.Registry != "" {
		var err error
		registry, err = item.LoadTable(cfg.Items.Registry)
		if err != nil {
			return err
		}
		logger.L().Debug("Loaded item table", "path", cfg.Items.Registry, "types", len(registry.Types()))
	}
	codec := protocol.NewItemCodec(registry)
	codec.Logger = logger.L()
	dec := dump.New(codec)

	input := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return err
		}
		input = string(data)
	}
	raw, err := dump.ParseHex(input)
	if err != nil {
		return fmt.Errorf("parse input: %w", err)
	}
	buf := protocol.NewBuffer(raw)

	enc := yaml.NewEncoder(stdout)
	defer enc.Close()
	enc.SetIndent(2)

	var values []any
	switch {
	case cfg.Dump.Verify:
		for {
			res, err := dec.Verify(cfg.Dump.Kind, buf)
			if err != nil {
				return err
			}
			switch {
			case !res.Match:
				logger.L().Warn("Re-encoded bytes differ", "kind", cfg.Dump.Kind, "offset", res.Offset)
			case !res.Exact:
				logger.L().Debug("Re-encoded in a different order", "kind", cfg.Dump.Kind, "offset", res.Offset)
			}
			values = append(values, res)
			if !cfg.Dump.All || buf.Len() == 0 {
				break
			}
		}
	case cfg.Dump.All:
		values, err = dec.DecodeAll(cfg.Dump.Kind, buf)
		if err != nil {
			return err
		}
	default:
		v, err := dec.Decode(cfg.Dump.Kind, buf)
		if err != nil {
			return err
		}
		values = append(values, v)
	}
	for _, v := range values {
		if err := enc.Encode(dump.View(v)); err != nil {
			return err
		}
	}
	if buf.Len() > 0 {
		logger.L().Info("Trailing bytes left undecoded", "bytes", buf.Len())
	}
	return nil
}
