// Copyright (c) 2026 ToeiRei
// Vaultmaster - master-password gated credential vault
// This source code is licensed under the MIT license found in the LICENSE file.

// tools.go implements the commands that work without an unlocked session:
// setup, status, generate, check, recovery and categories.

package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/toeirei/vaultmaster/internal/catalog"
	"github.com/toeirei/vaultmaster/internal/i18n"
	"github.com/toeirei/vaultmaster/internal/password"
	"github.com/toeirei/vaultmaster/internal/security"
	"github.com/toeirei/vaultmaster/internal/state"
	"github.com/toeirei/vaultmaster/internal/store"
	"github.com/toeirei/vaultmaster/internal/vault"
)

var setupHint string
var setupEmail string
var setupPhone string
var setupForce bool

func init() {
	setupCmd.Flags().StringVar(&setupHint, "hint", "", "password hint shown on the recovery screen")
	setupCmd.Flags().StringVar(&setupEmail, "recovery-email", "", "recovery email (shown masked)")
	setupCmd.Flags().StringVar(&setupPhone, "recovery-phone", "", "recovery phone (shown masked)")
	setupCmd.Flags().BoolVar(&setupForce, "force", false, "overwrite an existing master password")
}

// setupCmd represents the 'setup' command. It provisions the vault with a
// new master password and optional recovery metadata.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the vault and set the master password",
	Long: `Provisions a new vault in the data directory: prompts for a master
password (confirmed twice), stores its salted hash and the optional
recovery metadata. Refuses to overwrite an existing vault unless --force
is given; entries are kept either way, only the master password and the
recovery metadata are replaced.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := vault.NewSession(newStore(), appConfig.DefaultCategory)
		if s.Provisioned() && !setupForce {
			return errors.New(i18n.T("setup.error_exists"))
		}

		var pw security.Secret
		if cached := state.MasterPassword.Get(); cached != nil {
			state.MasterPassword.Clear()
			pw = security.Secret(cached)
		} else {
			first, err := readSecret(i18n.T("setup.prompt_password"))
			if err != nil {
				return err
			}
			confirm, err := readSecret(i18n.T("setup.prompt_confirm"))
			if err != nil {
				first.Zero()
				return err
			}
			if string(first.Bytes()) != string(confirm.Bytes()) {
				first.Zero()
				confirm.Zero()
				return errors.New(i18n.T("setup.error_mismatch"))
			}
			confirm.Zero()
			pw = first
		}

		err := s.Provision(pw, setupHint, setupEmail, setupPhone)
		pw.Zero()
		if err != nil {
			return err
		}
		fmt.Println(i18n.T("setup.success"))
		return nil
	},
}

// statusCmd represents the 'status' command. It reports whether a vault is
// provisioned and how many entries it holds, without requiring the master
// password (both files are readable either way).
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show vault provisioning state and entry count",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := newStore()
		cfg, err := st.LoadVaultConfig()
		if err != nil {
			return err
		}
		if cfg == nil {
			fmt.Println(i18n.T("status.not_provisioned"))
			return nil
		}
		fmt.Println(i18n.T("status.provisioned", cfg.CreatedAt, len(st.LoadEntries())))
		return nil
	},
}

// generateCmd represents the 'generate' command. It prints a generated
// password without touching the vault.
var generateCmd = &cobra.Command{
	Use:   "generate [length]",
	Short: "Generate a strong password",
	Long: `Generates a password with at least one lowercase letter, one uppercase
letter, one digit and one symbol. The length defaults to the configured
generator length.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		length := appConfig.Generator.Length
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid length %q: %w", args[0], err)
			}
			length = n
		}
		pw, err := password.Generate(length)
		if err != nil {
			return err
		}
		fmt.Println(pw)
		return nil
	},
}

// checkCmd represents the 'check' command. It scores a candidate password
// and prints the verdict.
var checkCmd = &cobra.Command{
	Use:   "check [password]",
	Short: "Evaluate password strength",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var candidate string
		if len(args) > 0 {
			candidate = args[0]
		} else {
			secret, err := readSecret(i18n.T("check.prompt"))
			if err != nil {
				return err
			}
			candidate = string(secret.Bytes())
			secret.Zero()
		}
		score, label := password.Score(candidate)
		fmt.Println(i18n.T("check.result", score, string(label)))
		return nil
	},
}

// recoveryCmd represents the 'recovery' command. It shows the stored
// recovery metadata with email and phone masked; it never needs the master
// password, matching the login screen's "forgot password" view.
var recoveryCmd = &cobra.Command{
	Use:   "recovery",
	Short: "Show masked recovery options",
	RunE: func(cmd *cobra.Command, args []string) error {
		m := vault.NewManager(newStore())
		if !m.Exists() {
			return fmt.Errorf("%w: %s", store.ErrNoVault, i18n.T("vault.error_no_vault"))
		}
		info := m.RecoveryInfo()
		if info.IsEmpty() {
			fmt.Println(i18n.T("recovery.none"))
			return nil
		}
		if info.Hint != "" {
			fmt.Println(i18n.T("recovery.hint", info.Hint))
		}
		if info.Email != "" {
			fmt.Println(i18n.T("recovery.email", vault.MaskEmail(info.Email)))
		}
		if info.Phone != "" {
			fmt.Println(i18n.T("recovery.phone", vault.MaskPhone(info.Phone)))
		}
		return nil
	},
}

// categoriesCmd represents the 'categories' command. Without arguments it
// lists the catalog categories; with one it lists that category's services.
var categoriesCmd = &cobra.Command{
	Use:   "categories [category]",
	Short: "List the service catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			for _, name := range catalog.Categories() {
				fmt.Println(name)
			}
			return nil
		}
		services, ok := catalog.Services(args[0])
		if !ok {
			return errors.New(i18n.T("categories.unknown", args[0]))
		}
		for _, svc := range services {
			fmt.Println(svc)
		}
		return nil
	},
}
