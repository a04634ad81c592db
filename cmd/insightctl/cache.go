package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cacheCmd := &cobra.Command{Use: "cache", Short: "Cache operations"}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show cache statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(apiFlag + "/api/cache/stats")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	cacheCmd.AddCommand(statsCmd)

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached profiles and insights",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doDelete(apiFlag + "/api/cache")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	cacheCmd.AddCommand(clearCmd)

	rootCmd.AddCommand(cacheCmd)
}
