package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/pentest-stories/internal/app"
	"github.com/heartmarshall/pentest-stories/internal/auth"
	"github.com/heartmarshall/pentest-stories/internal/domain"
)

// cliActor marks audit rows written from storyctl.
const cliActor = "storyctl"

func newPromoteCmd(e *env) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Grant the admin role to a user; used to bootstrap the first admin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return e.withRepos(ctx, func(r *app.Repos) error {
				p, err := lookupProfile(ctx, r, email)
				if err != nil {
					return err
				}

				role, err := r.Roles.GetRole(ctx, p.ID)
				if err != nil {
					return fmt.Errorf("get role: %w", err)
				}
				if role == domain.UserRoleAdmin {
					fmt.Fprintf(cmd.OutOrStdout(), "%s is already an admin\n", p.Email)
					return nil
				}

				err = r.Tx.RunInTx(ctx, func(txCtx context.Context) error {
					if err := r.Roles.Bootstrap(txCtx, p.ID); err != nil {
						return fmt.Errorf("grant admin: %w", err)
					}
					record := p.ID.String()
					_, err := r.Audit.Create(txCtx, domain.AuditEntry{
						Action:    domain.AuditActionRoleGranted,
						TableName: "user_roles",
						RecordID:  &record,
						NewValues: map[string]any{"role": string(domain.UserRoleAdmin), "granted_via": cliActor},
					})
					if err != nil {
						return fmt.Errorf("audit: %w", err)
					}
					return nil
				})
				if err != nil {
					return err
				}

				e.logger.InfoContext(ctx, "user promoted to admin", slog.String("user_id", p.ID.String()))
				fmt.Fprintf(cmd.OutOrStdout(), "%s promoted to admin\n", p.Email)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email of the user to promote")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newResetPasswordCmd(e *env) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Set a generated temporary password and revoke the user's sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return e.withRepos(ctx, func(r *app.Repos) error {
				p, err := lookupProfile(ctx, r, email)
				if err != nil {
					return err
				}

				temp, err := auth.GenerateTempPassword()
				if err != nil {
					return err
				}
				hash, err := auth.NewPasswordHasher(e.cfg.Auth.PasswordHashCost).Hash(temp)
				if err != nil {
					return err
				}

				err = r.Tx.RunInTx(ctx, func(txCtx context.Context) error {
					if err := r.Users.UpdatePassword(txCtx, p.ID, hash); err != nil {
						return fmt.Errorf("update password: %w", err)
					}
					record := p.ID.String()
					_, err := r.Audit.Create(txCtx, domain.AuditEntry{
						Action:    domain.AuditActionPasswordReset,
						TableName: "auth.users",
						RecordID:  &record,
						NewValues: map[string]any{"reset_via": cliActor},
					})
					if err != nil {
						return fmt.Errorf("audit: %w", err)
					}
					if err := r.Tokens.RevokeAllByUser(txCtx, p.ID); err != nil {
						return fmt.Errorf("revoke tokens: %w", err)
					}
					return nil
				})
				if err != nil {
					return err
				}

				e.logger.InfoContext(ctx, "password reset", slog.String("user_id", p.ID.String()))
				fmt.Fprintf(cmd.OutOrStdout(), "temporary password for %s: %s\n", p.Email, temp)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email of the user whose password is reset")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newCleanupTokensCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup-tokens",
		Short: "Delete expired and revoked refresh tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return e.withRepos(ctx, func(r *app.Repos) error {
				n, err := r.Tokens.DeleteExpired(ctx)
				if err != nil {
					return fmt.Errorf("cleanup tokens: %w", err)
				}
				e.logger.InfoContext(ctx, "refresh tokens deleted", slog.Int("count", n))
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %d expired or revoked refresh tokens\n", n)
				return nil
			})
		},
	}
}

func lookupProfile(ctx context.Context, r *app.Repos, email string) (*domain.Profile, error) {
	p, err := r.Profiles.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("no user with email %q", email)
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return p, nil
}
