// Copyright (c) 2026 ToeiRei
// Vaultmaster - master-password gated credential vault
// This source code is licensed under the MIT license found in the LICENSE file.

// transfer.go implements the backup commands: export and import of
// zstd-compressed JSON archives.

package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/toeirei/vaultmaster/internal/i18n"
)

var fullImport bool

func init() {
	importCmd.Flags().BoolVar(&fullImport, "full", false, "replace all existing entries (and the vault config, when the backup carries one)")
}

// exportCmd represents the 'export' command. It writes the vault config and
// every entry into a single Zstandard-compressed JSON file.
var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Create a compressed (zstd) JSON backup of the vault",
	Long: `Dumps the vault config and all entries into a single,
Zstandard-compressed JSON file. The archive contains cleartext entry
passwords, exactly like the vault's data file; treat it accordingly.

If an output file is specified, '.zst' will be appended to the name if
it's not already present. If no output file is specified, a default
filename 'vaultmaster-backup-YYYY-MM-DD.json.zst' is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var outputFile string
		if len(args) == 0 {
			outputFile = fmt.Sprintf("vaultmaster-backup-%s.json.zst", time.Now().Format("2006-01-02"))
		} else {
			outputFile = args[0]
			if !strings.HasSuffix(outputFile, ".zst") {
				outputFile += ".zst"
			}
		}

		s, err := openVault()
		if err != nil {
			return err
		}
		defer s.Lock()

		outf, err := os.Create(outputFile)
		if err != nil {
			return err
		}
		defer func() { _ = outf.Close() }()

		if err := s.Export(outf); err != nil {
			return err
		}
		fmt.Println(i18n.T("export.success", outputFile))
		return nil
	},
}

// importCmd represents the 'import' command. By default it performs a
// non-destructive merge, only adding entries whose ids are not already
// present. With --full the current entries are replaced wholesale.
var importCmd = &cobra.Command{
	Use:   "import <backup-file.zst>",
	Short: "Import entries from a compressed JSON backup",
	Long: `Reads a Zstandard-compressed JSON backup created by 'export'.

By default this performs a non-destructive merge: entries whose ids
already exist are skipped. With --full the current entries are wiped and
replaced by the backup's, and a vault config carried by the backup
replaces the current one (including the master password hash).
WARNING: --full is destructive and not reversible.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openVault()
		if err != nil {
			return err
		}
		defer s.Lock()

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()

		n, err := s.Import(f, fullImport)
		if err != nil {
			return err
		}
		fmt.Println(i18n.T("import.success", n))
		return nil
	},
}
