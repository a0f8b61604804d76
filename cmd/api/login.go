package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"pet-adoption/internal/platform/httpclient"
	"pet-adoption/internal/platform/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loginCommand pide un token a un servidor en marcha (útil para curl).
func loginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Logs in against a running server and prints the session token",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			server, _ := cmd.Flags().GetString("server")
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			client, err := httpclient.New(server, 10*time.Second)
			if err != nil {
				logger.Get(ctx).Fatal("invalid server url", zap.Error(err))
			}

			var out struct {
				Token string `json:"token"`
			}
			err = client.DoJSON(ctx, http.MethodPost, "/api/login", map[string]string{
				"email":    email,
				"password": password,
			}, &out)
			if err != nil {
				logger.Get(ctx).Fatal("login failed", zap.Int("status", httpclient.StatusCode(err)), zap.Error(err))
			}

			fmt.Println(out.Token) //nolint: forbidigo
		},
	}

	cmd.Flags().String("server", "http://localhost:8080", "Server base URL")
	cmd.Flags().String("email", "", "Account email")
	cmd.Flags().String("password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
