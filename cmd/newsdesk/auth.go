package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/newsdesk-cms/newsdesk/internal/client"
	"github.com/newsdesk-cms/newsdesk/internal/session"
)

func (a *app) loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and cache the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				fmt.Print("Password: ")
				raw, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Println()
				if err != nil {
					return err
				}
				password = string(raw)
			}

			result := a.client.Login(cmd.Context(), email, password)
			if !result.Status {
				return fmt.Errorf("login failed: %s", result.Message)
			}
			fmt.Println(result.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the cached session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.ClearSession(); err != nil {
				return err
			}
			fmt.Println("session cleared")
			return nil
		},
	}
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the cached session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.sessions.Current()
			if err != nil {
				if errors.Is(err, session.ErrAuthenticationRequired) {
					return fmt.Errorf("not logged in")
				}
				return err
			}
			return a.print(sess, func() {
				fmt.Printf("%s <%s>\n", sess.UserName, sess.UserEmail)
				if len(sess.Roles) > 0 {
					fmt.Printf("roles: %s\n", strings.Join(sess.Roles, ", "))
				}
				if exp, ok := session.ExpiresAt(sess.Token); ok {
					fmt.Printf("token expires: %s\n", exp.Format("2006-01-02 15:04:05 MST"))
				}
			})
		},
	}
}

func (a *app) registerCmd() *cobra.Command {
	var req client.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a staff account",
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := a.client.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Println(message)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "display name")
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (a *app) passwordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Password recovery",
	}

	var email string
	forgot := &cobra.Command{
		Use:   "forgot",
		Short: "Request a reset OTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := a.client.ForgotPassword(cmd.Context(), email)
			if err != nil {
				return err
			}
			fmt.Println(message)
			return nil
		},
	}
	forgot.Flags().StringVar(&email, "email", "", "account email")
	_ = forgot.MarkFlagRequired("email")

	var otp, newPassword string
	reset := &cobra.Command{
		Use:   "reset",
		Short: "Exchange an OTP for a new password",
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := a.client.ResetPassword(cmd.Context(), otp, newPassword)
			if err != nil {
				return err
			}
			fmt.Println(message)
			return nil
		},
	}
	reset.Flags().StringVar(&otp, "otp", "", "one-time code from the reset email")
	reset.Flags().StringVar(&newPassword, "new-password", "", "replacement password")
	_ = reset.MarkFlagRequired("otp")
	_ = reset.MarkFlagRequired("new-password")

	cmd.AddCommand(forgot, reset)
	return cmd
}
