package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"stockmeta/internal/secrets"
)

func newKeyCommand(ctx *commandContext) *cobra.Command {
	keyCmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the stored service API key",
	}

	keyCmd.AddCommand(newKeySetCommand(ctx))
	keyCmd.AddCommand(newKeyShowCommand(ctx))
	keyCmd.AddCommand(newKeyClearCommand(ctx))

	return keyCmd
}

func newKeySetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <api-key>",
		Short: "Store the service API key in the local keystore",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.TrimSpace(args[0])
			if key == "" {
				return errors.New("api key must not be empty")
			}

			store, err := ctx.openSecrets()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Set(cmd.Context(), secrets.APIKeyName, key); err != nil {
				return fmt.Errorf("store api key: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored API key in %s\n", store.Path())
			return nil
		},
	}
}

func newKeyShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored API key (masked)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openSecrets()
			if err != nil {
				return err
			}
			defer store.Close()

			key, err := store.Get(cmd.Context(), secrets.APIKeyName)
			if errors.Is(err, secrets.ErrNotFound) {
				return errors.New("no API key stored; run `stockmeta key set <key>`")
			}
			if err != nil {
				return fmt.Errorf("read api key: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), maskKey(key))
			return nil
		},
	}
}

func newKeyClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openSecrets()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(cmd.Context(), secrets.APIKeyName); err != nil {
				return fmt.Errorf("clear api key: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "API key cleared")
			return nil
		},
	}
}

// maskKey keeps enough of the key visible to recognize it without exposing it.
func maskKey(key string) string {
	runes := []rune(key)
	if len(runes) <= 8 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[:4]) + strings.Repeat("*", len(runes)-8) + string(runes[len(runes)-4:])
}
