// Copyright (c) 2026 ToeiRei
// Vaultmaster - master-password gated credential vault
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for the Vaultmaster
// application using the Cobra library. It defines the root command,
// subcommands (like setup, add, list, export), flags, and the shared
// service wiring every command relies on.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/toeirei/vaultmaster/internal/config"
	"github.com/toeirei/vaultmaster/internal/i18n"
	"github.com/toeirei/vaultmaster/internal/logging"
	"github.com/toeirei/vaultmaster/internal/security"
	"github.com/toeirei/vaultmaster/internal/state"
	"github.com/toeirei/vaultmaster/internal/store"
	"github.com/toeirei/vaultmaster/internal/vault"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var cfgFile string
var masterPasswordFlag string
var appConfig config.Config

// setupDefaultServices resolves the configuration and initializes i18n and
// logging. It runs as PersistentPreRunE for every command, so command bodies
// can rely on appConfig being populated.
func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig(cmd, optionalConfigPath)
	// A "file not found" error is expected on first run, so we handle it
	// specifically and persist a default config for later runs.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			logging.Errorf("could not write default config file: %v", writeErr)
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Post-process config to ensure critical values are not empty, falling
	// back to defaults. This handles config files with blanked-out fields.
	defaults := config.Defaults()
	if appConfig.DataDir == "" {
		appConfig.DataDir = defaults["data_dir"].(string)
	}
	if appConfig.Language == "" {
		appConfig.Language = defaults["language"].(string)
	}
	if appConfig.DefaultCategory == "" {
		appConfig.DefaultCategory = defaults["default_category"].(string)
	}
	if appConfig.Generator.Length <= 0 {
		appConfig.Generator.Length = defaults["generator.length"].(int)
	}

	i18n.Init(appConfig.Language)
	logging.SetDebug(appConfig.Debug)

	// A --password flag value is parked in the mailbox so prompts are
	// skipped; it is cleared the first time a command consumes it.
	if masterPasswordFlag != "" {
		state.MasterPassword.Set([]byte(masterPasswordFlag))
		masterPasswordFlag = ""
	}

	return nil
}

// getConfigPathFromCli returns the config file path when the user explicitly
// set --config, after checking the file exists.
func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// Execute runs the CLI entrypoint. The main packages call this function and
// handle process exit.
func Execute() error {
	defer state.MasterPassword.Clear()
	return NewRootCmd().Execute()
}

// NewRootCmd creates and configures a new root cobra command. This function
// is used to create the main application command as well as fresh instances
// for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vaultmaster",
		Short: "Vaultmaster is a local, master-password gated credential vault.",
		Long: `Vaultmaster keeps per-service credentials in a plain-file vault
guarded by a master password. Entries live in two human-diffable JSON
files under a per-user data directory; the master password never leaves
the machine and only its salted hash is stored.

Running without a subcommand prints this help.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.Version = compositeVersion()

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is vaultmaster.yaml in the user config dir)")
	cmd.PersistentFlags().String("data_dir", "", "vault data directory (default is ~/.vaultmaster)")
	cmd.PersistentFlags().String("language", "en", `output language ("en", "de")`)
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVarP(&masterPasswordFlag, "password", "p", "", "master password (prompted when omitted)")

	cmd.AddCommand(
		setupCmd,
		statusCmd,
		addCmd,
		listCmd,
		showCmd,
		rmCmd,
		clearCmd,
		searchCmd,
		generateCmd,
		checkCmd,
		recoveryCmd,
		categoriesCmd,
		exportCmd,
		importCmd,
		newVersionCmd(),
	)

	return cmd
}

// newVersionCmd returns a lightweight `version` subcommand so users and CI
// can run `vaultmaster version`.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			fmt.Printf("version: %s\n", v)
			fmt.Printf("commit: %s\n", c)
			if d != "" {
				fmt.Printf("built: %s\n", d)
			}
		},
	}
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime. This helper is separated to make unit testing straightforward.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := version
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if infoLocal, found := debug.ReadBuildInfo(); found {
			info = infoLocal
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}

// newStore returns the file store for the configured data directory.
func newStore() *store.Store {
	return store.New(appConfig.DataDir)
}

// readSecret prompts for a password. With a terminal on stdin the input is
// read without echo; otherwise a line is read from stdin, which keeps the
// commands scriptable.
func readSecret(prompt string) (security.Secret, error) {
	fmt.Print(prompt)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return nil, errors.New(i18n.T("error.read_password", err))
		}
		return security.FromBytes(raw), nil
	}
	line, err := readLine(os.Stdin)
	if err != nil && line == "" {
		return nil, errors.New(i18n.T("error.read_password", err))
	}
	return security.FromString(line), nil
}

// readLine reads a single line without buffering ahead, so consecutive
// prompts within one command never swallow each other's input.
func readLine(r io.Reader) (string, error) {
	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				break
			}
			line = append(line, buf[0])
		}
		if err != nil {
			if errors.Is(err, io.EOF) && len(line) > 0 {
				break
			}
			return strings.TrimRight(string(line), "\r"), err
		}
	}
	return strings.TrimRight(string(line), "\r"), nil
}

// masterPassword returns the master password, preferring the mailbox (filled
// by the --password flag) over an interactive prompt. The mailbox copy is
// consumed and cleared on first use.
func masterPassword() (security.Secret, error) {
	if cached := state.MasterPassword.Get(); cached != nil {
		state.MasterPassword.Clear()
		return security.Secret(cached), nil
	}
	return readSecret(i18n.T("login.prompt"))
}

// openVault unlocks a session against the configured data directory. It is
// the shared entry path for every command that needs vault access.
func openVault() (*vault.Session, error) {
	s := vault.NewSession(newStore(), appConfig.DefaultCategory)
	if !s.Provisioned() {
		return nil, fmt.Errorf("%w: %s", store.ErrNoVault, i18n.T("vault.error_no_vault"))
	}
	pw, err := masterPassword()
	if err != nil {
		return nil, err
	}
	defer pw.Zero()
	if !s.Unlock(pw) {
		return nil, errors.New(i18n.T("login.invalid"))
	}
	return s, nil
}

// promptForConfirmation displays a prompt and reads a line from stdin.
func promptForConfirmation(prompt string) string {
	fmt.Print(prompt)
	answer, _ := readLine(os.Stdin)
	return strings.TrimSpace(strings.ToLower(answer))
}
