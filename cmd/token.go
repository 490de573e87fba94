package main

import (
	"fmt"
	"time"

	"github.com/jekabolt/organic-reports/config"
	"github.com/jekabolt/organic-reports/internal/auth/jwt"
	"github.com/spf13/cobra"
)

var (
	tokenCmd = &cobra.Command{
		Use:   "token",
		Short: "Mint an admin bearer token for the report api",
		RunE:  runToken,
	}

	tokenSubject string
	tokenTTL     time.Duration
)

func init() {
	tokenCmd.Flags().StringVarP(&tokenSubject, "subject", "s", "admin", "token subject")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "token lifetime, defaults to auth.ttl")
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("cannot load a config %v", err.Error())
	}
	token, err := mintToken(&cfg.Auth, tokenSubject, tokenTTL)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}

func mintToken(c *jwt.Config, subject string, ttl time.Duration) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("auth secret is not configured")
	}
	if ttl <= 0 {
		ttl = c.TTL
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return jwt.NewTokenWithSubject(jwt.New(c), ttl, subject)
}
