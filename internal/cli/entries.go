// Copyright (c) 2026 ToeiRei
// Vaultmaster - master-password gated credential vault
// This source code is licensed under the MIT license found in the LICENSE file.

// entries.go implements the credential entry commands: add, list, show,
// rm, clear and search.

package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/toeirei/vaultmaster/internal/i18n"
	"github.com/toeirei/vaultmaster/internal/model"
	"github.com/toeirei/vaultmaster/internal/password"
	"github.com/toeirei/vaultmaster/internal/vault"
)

var addEmail string
var addCategory string
var addGenerate bool

func init() {
	addCmd.Flags().StringVar(&addEmail, "email", "", "account email or username")
	addCmd.Flags().StringVar(&addCategory, "category", "", "entry category (default from config)")
	addCmd.Flags().BoolVar(&addGenerate, "generate", false, "generate the entry password instead of prompting")
}

// addCmd represents the 'add' command. It stores a new credential entry,
// prompting for the entry password unless --generate is given.
var addCmd = &cobra.Command{
	Use:   "add <service>",
	Short: "Add a credential entry to the vault",
	Long: `Stores a new credential entry for a service. The entry password is
prompted without echo; with --generate a strong password is generated
using the configured length and printed once.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openVault()
		if err != nil {
			return err
		}
		defer s.Lock()

		var entryPassword string
		if addGenerate {
			entryPassword, err = password.Generate(appConfig.Generator.Length)
			if err != nil {
				return err
			}
		} else {
			secret, err := readSecret(i18n.T("add.prompt_password", args[0]))
			if err != nil {
				return err
			}
			entryPassword = string(secret.Bytes())
			secret.Zero()
		}

		created, err := s.AddEntry(model.VaultEntry{
			Service:  args[0],
			Email:    addEmail,
			Password: entryPassword,
			Category: addCategory,
		})
		if err != nil {
			return err
		}
		fmt.Println(i18n.T("add.success", created.Service))
		if addGenerate {
			fmt.Println(created.Password)
		}
		return nil
	},
}

// listCmd represents the 'list' command. It prints every stored entry
// without passwords; use 'show' to reveal one.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openVault()
		if err != nil {
			return err
		}
		defer s.Lock()

		entries, err := s.Entries()
		if err != nil {
			return err
		}
		printEntryList(entries)
		return nil
	},
}

// searchCmd represents the 'search' command. The query is matched
// case-insensitively against every entry field.
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search entries across all fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openVault()
		if err != nil {
			return err
		}
		defer s.Lock()

		entries, err := s.Search(args[0])
		if err != nil {
			return err
		}
		printEntryList(entries)
		return nil
	},
}

// showCmd represents the 'show' command. It reveals a single entry including
// its password, addressed by id or by the position shown in 'list'.
var showCmd = &cobra.Command{
	Use:   "show <id|position>",
	Short: "Show a single entry including its password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openVault()
		if err != nil {
			return err
		}
		defer s.Lock()

		entry, err := resolveEntry(s, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("service:  %s\n", entry.Service)
		if entry.Email != "" {
			fmt.Printf("email:    %s\n", entry.Email)
		}
		fmt.Printf("password: %s\n", entry.Password)
		fmt.Printf("category: %s\n", entry.Category)
		fmt.Printf("created:  %s\n", entry.CreatedAt)
		fmt.Printf("id:       %s\n", entry.ID)
		return nil
	},
}

// rmCmd represents the 'rm' command. It deletes one entry, addressed by id
// or by the position shown in 'list'.
var rmCmd = &cobra.Command{
	Use:   "rm <id|position>",
	Short: "Delete a single entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openVault()
		if err != nil {
			return err
		}
		defer s.Lock()

		entry, err := resolveEntry(s, args[0])
		if err != nil {
			return err
		}
		if err := s.DeleteEntry(entry.ID); err != nil {
			return err
		}
		fmt.Println(i18n.T("rm.success", entry.Service))
		return nil
	},
}

// clearCmd represents the 'clear' command. It deletes every entry after an
// explicit confirmation; --force skips the prompt for scripted use.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete ALL entries from the vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openVault()
		if err != nil {
			return err
		}
		defer s.Lock()

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			if promptForConfirmation(i18n.T("clear.prompt")) != "yes" {
				fmt.Println(i18n.T("clear.aborted"))
				return nil
			}
		}
		if err := s.ClearAll(); err != nil {
			return err
		}
		fmt.Println(i18n.T("clear.success"))
		return nil
	},
}

func init() {
	clearCmd.Flags().Bool("force", false, "skip the confirmation prompt")
}

// resolveEntry finds an entry by its stable id, falling back to the 1-based
// position printed by 'list'.
func resolveEntry(s *vault.Session, arg string) (model.VaultEntry, error) {
	entries, err := s.Entries()
	if err != nil {
		return model.VaultEntry{}, err
	}
	for _, e := range entries {
		if e.ID == arg {
			return e, nil
		}
	}
	if pos, err := strconv.Atoi(arg); err == nil {
		if pos >= 1 && pos <= len(entries) {
			return entries[pos-1], nil
		}
	}
	return model.VaultEntry{}, errors.New(i18n.T("entry.not_found", arg))
}

// printEntryList renders entries as one line each, passwords omitted.
func printEntryList(entries []model.VaultEntry) {
	if len(entries) == 0 {
		fmt.Println(i18n.T("list.empty"))
		return
	}
	for i, e := range entries {
		line := fmt.Sprintf("%3d. %s", i+1, e.Service)
		if e.Email != "" {
			line += "  <" + e.Email + ">"
		}
		line += "  [" + e.Category + "]  " + e.CreatedAt
		fmt.Println(line)
	}
}
