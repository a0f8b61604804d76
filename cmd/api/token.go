package main

import (
	"context"
	"fmt"

	"pet-adoption/internal/adapters/auth/jwtauth"
	"pet-adoption/internal/config"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/auth"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tokenCommand firma un token de sesión para un usuario sin pasar por login.
func tokenCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generates a session token for given user ID and role",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			userID, _ := cmd.Flags().GetInt64("user-id")
			role, _ := cmd.Flags().GetString("role")
			email, _ := cmd.Flags().GetString("email")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			if !auth.Role(role).Valid() {
				logger.Get(ctx).Fatal("invalid role", zap.String("role", role))
			}
			if ttl <= 0 {
				ttl = cfg.Auth.TTL
			}

			tokens, err := jwtauth.New(jwtauth.Config{Secret: cfg.Auth.Secret, TTL: ttl})
			if err != nil {
				logger.Get(ctx).Fatal("could not create token service", zap.Error(err))
			}

			signed, err := tokens.Issue(ctx, auth.Claims{UserID: userID, Email: email, Role: auth.Role(role)})
			if err != nil {
				logger.Get(ctx).Fatal("could not sign token", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().Int64("user-id", 0, "User ID (token subject)")
	cmd.Flags().String("role", "adopter", "admin|shelter|adopter")
	cmd.Flags().String("email", "", "Email claim (optional)")
	cmd.Flags().Duration("ttl", 0, "Token TTL (default: AUTH_TTL)")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}
