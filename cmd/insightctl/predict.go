package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	var name, birthDate, birthTime, birthPlace, userID, language string

	predictCmd := &cobra.Command{
		Use:   "predict",
		Short: "Generate a daily insight from birth details",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || birthDate == "" {
				return fmt.Errorf("--name and --birth-date required")
			}
			payload := map[string]interface{}{
				"name":      name,
				"birthDate": birthDate,
			}
			if birthTime != "" {
				payload["birthTime"] = birthTime
			}
			if birthPlace != "" {
				payload["birthPlace"] = birthPlace
			}
			if userID != "" {
				payload["userId"] = userID
			}
			url := fmt.Sprintf("%s/api/predict?language=%s", apiFlag, language)
			data, err := doPostJSON(url, payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	predictCmd.Flags().StringVarP(&name, "name", "n", "", "User name (required)")
	predictCmd.Flags().StringVarP(&birthDate, "birth-date", "d", "", "Birth date YYYY-MM-DD (required)")
	predictCmd.Flags().StringVarP(&birthTime, "birth-time", "t", "", "Birth time HH:MM")
	predictCmd.Flags().StringVarP(&birthPlace, "birth-place", "p", "", "Birth place")
	predictCmd.Flags().StringVarP(&userID, "user", "u", "", "User ID for personalization")
	predictCmd.Flags().StringVarP(&language, "language", "l", "en", "Target language code")
	_ = predictCmd.MarkFlagRequired("name")
	_ = predictCmd.MarkFlagRequired("birth-date")
	rootCmd.AddCommand(predictCmd)
}
