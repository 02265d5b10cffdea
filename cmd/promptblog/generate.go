package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/promptblog"
)

var sitemapOut string

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Print the sitemap XML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		store, err := promptblog.LoadPostStore(cfg)
		if err != nil {
			return err
		}
		xml, err := promptblog.GenerateSitemap(cfg, store, time.Now())
		if err != nil {
			return err
		}
		if sitemapOut == "" {
			_, err = fmt.Fprint(cmd.OutOrStdout(), xml)
			return err
		}
		if err := os.WriteFile(sitemapOut, []byte(xml), 0o644); err != nil {
			return fmt.Errorf("write sitemap: %w", err)
		}
		cmd.PrintErrf("wrote %s (%d posts)\n", sitemapOut, store.Len())
		return nil
	},
}

var robotsCmd = &cobra.Command{
	Use:   "robots",
	Short: "Print robots.txt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprint(cmd.OutOrStdout(), promptblog.GenerateRobotsTxt(loadConfig()))
		return err
	},
}

func init() {
	sitemapCmd.Flags().StringVarP(&sitemapOut, "out", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(sitemapCmd, robotsCmd)
}
