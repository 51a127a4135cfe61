package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) privacyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "privacy",
		Short: "Show the published privacy policy (no login required)",
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := a.client.GetPrivacyPolicy(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(policy, func() {
				if policy.Title != "" {
					fmt.Println(policy.Title)
					fmt.Println()
				}
				fmt.Println(policy.Content)
			})
		},
	}
}
