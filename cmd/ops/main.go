// Command jobhunter-ops backs up and restores the server's data directory.
package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/raghugg/job-hunter/internal/ops"
)

func main() {
	root := &cobra.Command{
		Use:   "jobhunter-ops",
		Short: "Backup and restore tooling for the job hunter data directory",
	}
	root.AddCommand(backupCmd(), restoreCmd(), drillCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func backupCmd() *cobra.Command {
	var dataDir, out string
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Archive the data directory to a .tar.gz",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out == "" {
				ts := time.Now().UTC().Format("20060102T150405Z")
				out = filepath.Join("backups", "jobhunter-"+ts+".tar.gz")
			}
			if err := ops.BackupDataDir(dataDir, out); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&dataDir, "data-dir", "data", "path to data directory")
	cmd.Flags().StringVar(&out, "out", "", "output archive path (.tar.gz)")
	return cmd
}

func restoreCmd() *cobra.Command {
	var archive, target string
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Unpack a backup archive into a fresh directory",
		RunE: func(_ *cobra.Command, _ []string) error {
			if archive == "" {
				return fmt.Errorf("archive is required")
			}
			return ops.RestoreDataDir(archive, target)
		},
	}
	cmd.Flags().StringVar(&archive, "archive", "", "input backup archive (.tar.gz)")
	cmd.Flags().StringVar(&target, "target-dir", "data-restored", "restore target directory")
	return cmd
}

// drill round-trips a backup and verifies the restored tree matches the
// source byte for byte.
func drillCmd() *cobra.Command {
	var dataDir, workDir string
	cmd := &cobra.Command{
		Use:   "drill",
		Short: "Verify that backup and restore round-trip cleanly",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := os.MkdirAll(workDir, 0o755); err != nil {
				return err
			}
			ts := time.Now().UTC().Format("20060102T150405Z")
			archive := filepath.Join(workDir, "jobhunter-drill-"+ts+".tar.gz")
			restoreDir := filepath.Join(workDir, "jobhunter-drill-restore-"+ts)

			if err := ops.BackupDataDir(dataDir, archive); err != nil {
				return err
			}
			if err := ops.RestoreDataDir(archive, restoreDir); err != nil {
				return err
			}

			srcDigest, err := dirDigest(dataDir)
			if err != nil {
				return err
			}
			restoreDigest, err := dirDigest(restoreDir)
			if err != nil {
				return err
			}
			if srcDigest != restoreDigest {
				return fmt.Errorf("digest mismatch after restore: src=%s restored=%s", srcDigest, restoreDigest)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "backup:", archive)
			fmt.Fprintln(cmd.OutOrStdout(), "restored:", restoreDir)
			fmt.Fprintln(cmd.OutOrStdout(), "digest:", srcDigest)
			return nil
		},
	}
	cmd.Flags().StringVar(&dataDir, "data-dir", "data", "path to data directory")
	cmd.Flags().StringVar(&workDir, "work-dir", os.TempDir(), "temporary workspace for drill artifacts")
	return cmd
}

func dirDigest(root string) (string, error) {
	root = filepath.Clean(root)
	entries := []string{}
	if err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		entries = append(entries, filepath.ToSlash(rel))
		return nil
	}); err != nil {
		return "", err
	}
	sort.Strings(entries)

	h := sha256.New()
	for _, rel := range entries {
		_, _ = io.WriteString(h, rel)
		_, _ = io.WriteString(h, "\n")
		b, err := os.ReadFile(filepath.Join(root, rel))
		if err != nil {
			return "", err
		}
		if _, err := h.Write(b); err != nil {
			return "", err
		}
		_, _ = io.WriteString(h, "\n")
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
