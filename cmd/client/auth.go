package main

import (
	"fmt"

	"github.com/spf13/cobra"

	trackerv1 "github.com/gurkanbulca/tasktracker/api/tracker/v1"
)

func registerCmd(opts *clientOptions) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and print its access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, ctx, done, err := opts.dial(cmd)
			if err != nil {
				return err
			}
			defer done()

			resp, err := trackerv1.NewAuthServiceClient(conn).Register(ctx, &trackerv1.RegisterRequest{
				Name:     name,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("register: %w", err)
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func loginCmd(opts *clientOptions) *cobra.Command {
	var email, password string
	var tokenOnly bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print the access token",
		Long: `Log in with email and password. With --token-only the bare token is
printed so it can be exported as TASKTRACKER_TOKEN.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, ctx, done, err := opts.dial(cmd)
			if err != nil {
				return err
			}
			defer done()

			resp, err := trackerv1.NewAuthServiceClient(conn).Login(ctx, &trackerv1.LoginRequest{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}
			if tokenOnly {
				fmt.Fprintln(cmd.OutOrStdout(), resp.AccessToken)
				return nil
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	cmd.Flags().BoolVar(&tokenOnly, "token-only", false, "print only the access token")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
