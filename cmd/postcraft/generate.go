package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"PostCraft/internal/app"
	"PostCraft/internal/render"
	"PostCraft/internal/usecase"
)

var (
	outputFormat string
	renderStyle  string
	renderWidth  int
	timeout      time.Duration
)

var generateCmd = &cobra.Command{
	Use:   "generate <blog-url>",
	Short: "Generate posts for one blog URL and print the digest",
	Long: `Runs the same extraction and generation pipeline as the JSON-RPC endpoint
for a single URL, without starting the HTTP server.

Example:
  postcraft generate https://example.com/blog/my-post --format terminal`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&outputFormat, "format", "f", "markdown", "Output format: markdown, html or terminal")
	generateCmd.Flags().StringVar(&renderStyle, "style", "auto", "Terminal style (glamour style name or path)")
	generateCmd.Flags().IntVar(&renderWidth, "width", 80, "Terminal word-wrap width")
	generateCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "Overall timeout")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// stdout carries the digest
	logger := newLogger(cfg, os.Stderr)

	ctx, stop := commandContext(cmd)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("init application: %w", err)
	}
	defer application.Close()

	posts, err := application.Processor().Process(ctx, args[0])
	if err != nil {
		return fmt.Errorf("process %s: %w", args[0], err)
	}

	out, err := render.Digest(usecase.FormatDigest(posts), format, render.Options{Style: renderStyle, Width: renderWidth})
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
