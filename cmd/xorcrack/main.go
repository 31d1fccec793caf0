package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/krehermann/xorcrack/crack"
	"github.com/krehermann/xorcrack/data"
	"github.com/krehermann/xorcrack/english"
	"github.com/krehermann/xorcrack/internal/cliconfig"
)

var exampleUsage = strings.TrimSpace(`
  xorcrack crack 1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736
  xorcrack detect 4.txt --workers 8
  xorcrack encrypt --key ICE "Burning 'em, if you ain't quick and nimble"
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

type app struct {
	cfg     cliconfig.Config
	cfgPath string
	log     zerolog.Logger
	stderr  io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{cfg: cliconfig.DefaultConfig(), log: zerolog.Nop(), stderr: stderr}

	root := &cobra.Command{
		Use:           "xorcrack",
		Short:         "Recover single-byte XOR keys from hex ciphertexts",
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "config file (default $HOME/.xorcrack/config.toml)")
	pf.Float64Var(&a.cfg.MinLetterRatio, "min-letter-ratio", a.cfg.MinLetterRatio, "reject plaintexts whose share of letters and spaces is not above this")
	pf.IntVar(&a.cfg.Workers, "workers", a.cfg.Workers, "goroutines used to score keys")
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	pf.BoolVar(&a.cfg.Confirm, "confirm", a.cfg.Confirm, "report language model confidence that the plaintext is English")

	root.AddCommand(
		a.crackCmd(),
		a.detectCmd(),
		xorCmd(),
		encryptCmd(),
		hexToBase64Cmd(),
	)
	return root
}

// load applies the config file, then XORCRACK_* variables, then flags.
func (a *app) load(cmd *cobra.Command) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cliconfig.ApplyFileConfig(&a.cfg, fc, changed)
	} else if a.cfgPath != "" {
		return fmt.Errorf("config file %s not found", a.cfgPath)
	}

	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	log, err := cliconfig.NewLogger(a.stderr, a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.log = log
	a.log.Debug().Interface("config", a.cfg).Msg("configuration")
	return nil
}

func (a *app) crackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crack <hex>",
		Short: "Recover the key of one hex-encoded ciphertext",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := data.FromHex(strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			best, err := crack.SingleByteXor(cmd.Context(), ct, a.cfg.AttackOptions(a.log)...)
			if err != nil {
				return err
			}
			a.printCandidate(cmd.OutOrStdout(), best)
			return nil
		},
	}
}

func (a *app) detectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <file>",
		Short: "Find the line of a hex file that was encrypted with a single-byte key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			lines, err := data.ReadLines(f, data.Hex)
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			best, err := crack.Detect(cmd.Context(), lines, a.cfg.AttackOptions(a.log)...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "line:         %d\n", best.Index+1)
			a.printCandidate(out, best.Candidate)
			return nil
		},
	}
}

func (a *app) printCandidate(w io.Writer, c crack.Candidate) {
	fmt.Fprintf(w, "key:          %d (0x%02x)\n", c.Key, c.Key)
	fmt.Fprintf(w, "distance:     %.6f\n", c.Score.Distance)
	fmt.Fprintf(w, "letter ratio: %.4f\n", c.Score.LetterRatio)
	fmt.Fprintf(w, "plaintext:    %q\n", c.Plaintext.Bytes())
	if a.cfg.Confirm {
		fmt.Fprintf(w, "english:      %.4f\n", english.NewDetector().Confidence(c.Plaintext.String()))
	}
}

func xorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "xor <hex> <hex>",
		Short: "XOR two equal-length hex strings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := data.FromHex(args[0])
			if err != nil {
				return err
			}
			b, err := data.FromHex(args[1])
			if err != nil {
				return err
			}
			out, err := data.Xor(a, b)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Hex())
			return nil
		},
	}
}

func encryptCmd() *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "encrypt <text>",
		Short: "Encrypt text with a repeating XOR key and print it as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := data.RepeatingKeyXor(data.FromText(args[0]), data.FromText(key))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Hex())
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "encryption key")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func hexToBase64Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hex2b64 <hex>",
		Short: "Re-encode a hex string as base64",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := data.HexToBase64(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
