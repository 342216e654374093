package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/valueobject"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/jwt"
)

// tokenCmd は運用・検証用のアクセストークンを発行するコマンドです
func tokenCmd() *cobra.Command {
	var (
		userID string
		role   string
		expiry time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a signed access token for a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			uid, err := uuid.Parse(userID)
			if err != nil {
				return fmt.Errorf("invalid --user: %w", err)
			}
			userRole, err := valueobject.NewUserRole(role)
			if err != nil {
				return fmt.Errorf("invalid --role: %w", err)
			}

			jwtService := jwt.NewJWTService(jwt.Config{
				SecretKey:         cfg.JWT.SecretKey,
				Issuer:            cfg.JWT.Issuer,
				Audience:          cfg.JWT.Audience,
				AccessTokenExpiry: cfg.JWT.AccessTokenExpiry,
			})
			if expiry <= 0 {
				expiry = jwtService.GetAccessTokenExpiry()
			}

			token, err := jwtService.GenerateAccessTokenWithExpiry(uid, userRole.String(), expiry)
			if err != nil {
				return fmt.Errorf("generate token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id (uuid)")
	cmd.Flags().StringVar(&role, "role", string(valueobject.UserRoleUser), "global role")
	cmd.Flags().DurationVar(&expiry, "expiry", 0, "token lifetime (defaults to JWT_ACCESS_TOKEN_EXPIRY)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
