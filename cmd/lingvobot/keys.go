package main

import (
	"fmt"
	"strings"

	"github.com/gimalovartem2-bit/lingvobot/internal/auth"
	"github.com/gimalovartem2-bit/lingvobot/internal/prompt"
	"github.com/spf13/cobra"
)

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage the GigaChat authorization key in the OS Keychain",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeysStatus(cmd)
		},
	}

	cmd.SetUsageTemplate(keysUsageTemplate)

	cmd.AddCommand(
		newKeysSetupCmd(),
		newKeysDeleteCmd(),
		newKeysStatusCmd(),
	)
	return cmd
}

func newKeysSetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Save the authorization key to the keychain (prompt only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeysSetup(cmd)
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func newKeysDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the authorization key from the keychain",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeysDelete(cmd, yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking")
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func newKeysStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show key status (default if no action given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeysStatus(cmd)
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func runKeysSetup(cmd *cobra.Command) error {
	promptKey, err := promptForCredentials("GigaChat authorization key: ")
	if err != nil {
		return fmt.Errorf("error reading key: %w", err)
	}
	key := strings.TrimSpace(promptKey)
	if key == "" {
		return fmt.Errorf("authorization key is required for setup")
	}
	if err := auth.SaveCredentials(key); err != nil {
		return fmt.Errorf("error saving key: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Saved GigaChat authorization key to keychain.")
	return nil
}

func runKeysDelete(cmd *cobra.Command, yes bool) error {
	confirmed, err := prompt.DefaultConfirmer().ConfirmDelete("GigaChat authorization key", yes)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
		return nil
	}
	if err := auth.DeleteCredentials(); err != nil {
		return fmt.Errorf("error deleting key: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Deleted GigaChat authorization key from keychain.")
	return nil
}

func runKeysStatus(cmd *cobra.Command) error {
	if hasStoredCredentials() {
		fmt.Fprintln(cmd.OutOrStdout(), "GigaChat authorization key: Found (source=Keychain)")
		return nil
	}
	if envKey, ok := getEnvCredentials(); ok && envKey != "" {
		fmt.Fprintln(cmd.OutOrStdout(), "GigaChat authorization key: Found (source=Environment Variable; disabled by default, use --allow-env)")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "GigaChat authorization key: Not Found (keychain empty, env not set)")
	return nil
}
