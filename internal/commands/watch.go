// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LINE Bot SDK Rust Authors

package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/XuHaoJun/line-bot-sdk-rs/internal/config"
	"github.com/XuHaoJun/line-bot-sdk-rs/internal/pipeline"
	"github.com/XuHaoJun/line-bot-sdk-rs/internal/prompts"
)

// debounceWindow absorbs the editor write-then-rename event bursts.
const debounceWindow = 250 * time.Millisecond

func newWatchCmd() *cobra.Command {
	var (
		configPath   string
		skipGenerate bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate documents when their schema files change",
		Long: `Watch every schema document in the manifest and re-run the pipeline
for a document whenever its file changes. Runs until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			docs, err := documentOptions(cfg, skipGenerate, cmd)
			if err != nil {
				return err
			}
			return runWatch(cmd, docs)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.ConfigFileName, "project manifest path")
	cmd.Flags().BoolVar(&skipGenerate, "skip-generate", false, "skip the external generator and synthesize over existing model sources")

	return cmd
}

func runWatch(cmd *cobra.Command, docs []pipeline.Options) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close() //nolint:errcheck

	// Watch directories, not files: editors typically replace the file,
	// which drops a file-level watch.
	byPath := make(map[string]int, len(docs))
	watched := make(map[string]bool)
	for i, d := range docs {
		byPath[filepath.Clean(d.SchemaPath)] = i
		dir := filepath.Dir(d.SchemaPath)
		if !watched[dir] {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("watch %s: %w", dir, err)
			}
			watched[dir] = true
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "watching %d document(s)\n", len(docs))

	ctx := cmd.Context()
	pending := make(map[int]bool)
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			idx, ok := byPath[filepath.Clean(ev.Name)]
			if !ok {
				continue
			}
			pending[idx] = true
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
			} else {
				timer.Reset(debounceWindow)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			for idx := range pending {
				summary, err := pipeline.Run(ctx, docs[idx])
				if err != nil {
					prompts.PrintWarn(fmt.Sprintf("%s: %v", docs[idx].SchemaPath, err))
					continue
				}
				printSummary(summary)
			}
			pending = make(map[int]bool)

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			prompts.PrintWarn(werr.Error())
		}
	}
}
