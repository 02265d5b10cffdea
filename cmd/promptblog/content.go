package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/promptblog"
)

var seedDB string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the built-in posts to a SQLite content snapshot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		path := seedDB
		if path == "" {
			path = cfg.ContentDatabasePath
		}
		if path == "" {
			return fmt.Errorf("no database path: pass --db or --content-db")
		}

		posts := promptblog.DefaultPosts(cfg.URL)
		if err := promptblog.ValidatePosts(posts); err != nil {
			return err
		}
		src, err := promptblog.OpenSource(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer src.Close()
		if err := src.Import(posts); err != nil {
			return fmt.Errorf("import: %w", err)
		}
		cmd.Printf("seeded %d posts into %s\n", len(posts), path)
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and validate the post collection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := promptblog.LoadPostStore(loadConfig())
		if err != nil {
			return err
		}
		cmd.Printf("%d posts, %d categories, %d tags: ok\n",
			store.Len(), len(store.AllCategories()), len(store.AllTags()))
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedDB, "db", "", "SQLite file to write (defaults to --content-db)")
	rootCmd.AddCommand(seedCmd, validateCmd)
}
