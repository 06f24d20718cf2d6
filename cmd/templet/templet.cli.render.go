package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	templet "github.com/itsatony/go-templet"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	inputPath  string
	outputPath string
}

func runRender(args []string, stderr io.Writer) int {
	cfg, err := parseRenderFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgBadArguments, err)
		return ExitCodeUsageError
	}

	source, err := os.ReadFile(cfg.inputPath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	engine := templet.MustNew()
	opts := templet.DefaultOptions()
	opts.Filename = cfg.inputPath
	result, err := engine.Render(context.Background(), string(source), nil, opts)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgRenderFailed, err)
		return ExitCodeError
	}

	if err := os.WriteFile(cfg.outputPath, []byte(result), FilePermissions); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

func parseRenderFlags(args []string) (*renderConfig, error) {
	fs := flag.NewFlagSet(CmdNameRender, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &renderConfig{}
	fs.StringVar(&cfg.outputPath, FlagOutput, "", "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, "", "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.outputPath == "" {
		return nil, errors.New(ErrMsgMissingOutput)
	}
	switch fs.NArg() {
	case 0:
		return nil, errors.New(ErrMsgMissingInput)
	case 1:
		cfg.inputPath = fs.Arg(0)
	default:
		return nil, errors.New(ErrMsgTooManyInputs)
	}

	return cfg, nil
}
