// Package main wires the governance workflow engine's command modes.
//
// The engine runs as a short-lived process per trigger event:
//
//	bot intake            parse the proposal from PR_* env and update the ledger
//	bot notify <number>   open voting on a proposal thread
//	bot tally <number>    recompute and post the vote state for one thread
//	bot deadline          scan all open threads for reminder/close transitions
//	bot finalize          reconcile merged proposals into the ledger
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/nwspk/politech-awards-2026/config"
	"github.com/nwspk/politech-awards-2026/internal/entities"
	"github.com/nwspk/politech-awards-2026/internal/repository"
	"github.com/nwspk/politech-awards-2026/internal/usecase"
	"github.com/nwspk/politech-awards-2026/pkg/logger"

	"github.com/spf13/pflag"
)

const usage = `usage: bot [--env-file path] <intake|notify|tally|deadline|finalize> [issue_number]`

func main() {
	envFile := pflag.String("env-file", config.DefaultEnvFile, "dotenv file to load before reading the environment")
	pflag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	pflag.Parse()

	args := pflag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	mode := args[0]

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig(*envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	store, err := repository.NewStore(ctx, "jsonfile", log, cfg)
	if err != nil {
		log.Errorw("store initialization error", "error", err)
		os.Exit(1)
	}
	if err := store.OnStart(ctx); err != nil {
		log.Errorw("store start error", "error", err)
		os.Exit(1)
	}
	defer func() { _ = store.OnStop(context.Background()) }()

	// Only the modes that talk to the platform need credentials; the
	// file-only modes run without a token.
	var platform repository.Platform
	switch mode {
	case "notify", "tally", "deadline":
		platform, err = repository.NewPlatform(ctx, "github", log, cfg)
		if err != nil {
			log.Errorw("platform initialization error", "error", err)
			os.Exit(1)
		}
	}

	uc, err := usecase.New(log, ctx, store, platform, cfg, 0)
	if err != nil {
		log.Errorw("usecase initialization error", "error", err)
		os.Exit(1)
	}

	switch mode {
	case "intake":
		proposal := entities.Proposal{
			Body:   cfg.PR.Body,
			Number: cfg.PR.Number,
			URL:    cfg.PR.URL,
			Author: cfg.PR.Author,
		}
		entry, path, err := uc.Intake(ctx, proposal)
		if err != nil {
			log.Errorw("intake failed", "error", err)
			os.Exit(1)
		}
		fmt.Printf("✓ %s recorded for PR #%d, summary at %s\n", entry.Version, proposal.Number, path)

	case "notify", "tally":
		number := argNumber(args, mode)
		if mode == "notify" {
			if err := uc.Notify(ctx, number); err != nil {
				log.Errorw("notify failed", "number", number, "error", err)
				os.Exit(1)
			}
			fmt.Printf("✓ Voting started for PR #%d\n", number)
		} else {
			tally, err := uc.TallyVote(ctx, number)
			if err != nil {
				log.Errorw("tally failed", "number", number, "error", err)
				os.Exit(1)
			}
			if tally != nil {
				fmt.Printf("✓ Tally for PR #%d: %d 👍, %d 👎\n", number, tally.Yes, tally.No)
			}
		}

	case "deadline":
		if err := uc.Deadline(ctx); err != nil {
			log.Errorw("deadline scan failed", "error", err)
			os.Exit(1)
		}
		fmt.Println("✓ Deadline scan complete")

	case "finalize":
		n, err := uc.Finalize(ctx)
		if err != nil {
			log.Errorw("finalize failed", "error", err)
			os.Exit(1)
		}
		fmt.Printf("✓ %d iteration(s) finalized\n", n)

	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}

func argNumber(args []string, mode string) int {
	if len(args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: bot %s <issue_number>\n", mode)
		os.Exit(2)
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n <= 0 {
		fmt.Fprintf(os.Stderr, "usage: bot %s <issue_number>\n", mode)
		os.Exit(2)
	}
	return n
}
