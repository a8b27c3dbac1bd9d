package cmd

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zeebo/sha256step"
	"github.com/zeebo/sha256step/internal/logging"
	"github.com/zeebo/sha256step/ref"
	"github.com/zeebo/sha256step/report"
)

const messagePrompt = "Enter the message to hash: "

// Execute runs the root command against the process arguments and standard
// streams. This is called by main.main().
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd returns the sha256step command with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   filepath.Base(os.Args[0]) + " [message]",
		Short: "Walk through the SHA-256 computation of a message step by step",
		Long: `Hashes a message with a step-by-step SHA-256 implementation and prints the
padding, the first block, its message schedule and the first compression rounds,
then checks the digest against crypto/sha256.

If no message is given it is read from standard input.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, args)
		},
	}
	addFlags(cmd.Flags())

	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper, args []string) error {
	cfg, cfgFile, err := loadConfig(v, cmd.Flags())
	if err != nil {
		return err
	}

	log, err := logging.New(logging.Config{
		Level: cfg.LogLevel,
		Dir:   cfg.LogDir,
		Out:   cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	if cfgFile != "" {
		log.WithField("file", cfgFile).Info("using config file")
	}

	pacing, err := cfg.pacing()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var rep report.Reporter = report.NewRich(out, cfg.Width)
	if cfg.Plain {
		rep = report.NewPlain(out)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	in := bufio.NewReader(cmd.InOrStdin())

	var msg string
	if len(args) > 0 {
		msg = args[0]
	} else {
		var ok bool
		msg, ok, err = promptMessage(ctx, rep, cfg.Plain, in)
		if err != nil {
			return errors.Wrap(err, "read message")
		}
		if !ok {
			log.Debug("no message given")
			return nil
		}
	}

	rounds := sha256step.ClampRounds(cfg.Rounds)
	if rounds != cfg.Rounds {
		log.WithFields(logrus.Fields{"requested": cfg.Rounds, "rounds": rounds}).Warn("clamped rounds to display")
	}

	data := []byte(msg)
	res, err := sha256step.Trace(data, rounds)
	if err != nil {
		log.WithError(err).Error("digest failed")
		return errors.WithMessage(err, "sha256")
	}

	log.WithFields(logrus.Fields{
		"bytes":  len(data),
		"blocks": res.BlockCount(),
		"digest": res.Digest,
	}).Debug("traced message")
	if log.IsLevelEnabled(logrus.TraceLevel) {
		log.Trace(spew.Sdump(res.Rounds))
	}

	verification := ref.Verify(data, res.Digest)
	if !verification.Match {
		log.WithFields(logrus.Fields{
			"computed":  verification.Computed,
			"reference": verification.Reference,
		}).Error("digest mismatch")
	}

	w := &report.Walkthrough{
		Reporter:      rep,
		Pacing:        pacing,
		Input:         in,
		ScheduleLimit: cfg.ScheduleLimit,
		HideSchedule:  cfg.NoSchedule,
	}
	if err := w.Run(ctx, res, verification); err != nil {
		if errors.Cause(err) == context.Canceled {
			log.Info("interrupted")
			return nil
		}
		return err
	}
	return nil
}

// promptMessage asks for the message on in. ok is false when the input ends
// or ctx is cancelled before a message is entered.
func promptMessage(ctx context.Context, rep report.Reporter, plain bool, in *bufio.Reader) (msg string, ok bool, err error) {
	if plain {
		rep.Prompt(messagePrompt)
	} else {
		rep.Section(strings.TrimSpace(messagePrompt))
		rep.Prompt("> ")
	}

	type result struct {
		line string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		line, err := in.ReadString('\n')
		done <- result{line, err}
	}()

	var r result
	select {
	case r = <-done:
	case <-ctx.Done():
		return "", false, nil
	}

	if r.err == io.EOF && r.line == "" {
		return "", false, nil
	} else if r.err != nil && r.err != io.EOF {
		return "", false, r.err
	}
	return strings.TrimRight(r.line, "\r\n"), true, nil
}
