package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	trackerv1 "github.com/gurkanbulca/tasktracker/api/tracker/v1"
)

func adminCmd(opts *clientOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Cross-user views; requires an admin token",
	}

	cmd.AddCommand(adminTasksCmd(opts))
	cmd.AddCommand(adminUsersCmd(opts))
	cmd.AddCommand(adminStatsCmd(opts))

	return cmd
}

func adminTasksCmd(opts *clientOptions) *cobra.Command {
	req := &trackerv1.AdminListTasksRequest{}

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Stream every task matching the filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, ctx, done, err := opts.dial(cmd)
			if err != nil {
				return err
			}
			defer done()

			stream, err := trackerv1.NewAdminServiceClient(conn).ListTasks(ctx, req)
			if err != nil {
				return fmt.Errorf("list tasks: %w", err)
			}

			var tasks []*trackerv1.Task
			for {
				task, err := stream.Recv()
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					return fmt.Errorf("receive task: %w", err)
				}
				tasks = append(tasks, task)
			}
			return printJSON(cmd, tasks)
		},
	}

	cmd.Flags().StringVar(&req.UserId, "user", "", "owner id")
	cmd.Flags().StringVar(&req.Status, "status", "", "TODO, DOING or DONE")
	cmd.Flags().StringVar(&req.DueDateFrom, "due-from", "", "earliest due date (inclusive)")
	cmd.Flags().StringVar(&req.DueDateTo, "due-to", "", "latest due date (inclusive)")

	return cmd
}

func adminUsersCmd(opts *clientOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List every user with their task count",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, ctx, done, err := opts.dial(cmd)
			if err != nil {
				return err
			}
			defer done()

			resp, err := trackerv1.NewAdminServiceClient(conn).ListUsers(ctx, &trackerv1.ListUsersRequest{})
			if err != nil {
				return fmt.Errorf("list users: %w", err)
			}
			return printJSON(cmd, resp.Users)
		},
	}
}

func adminStatsCmd(opts *clientOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the dashboard counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, ctx, done, err := opts.dial(cmd)
			if err != nil {
				return err
			}
			defer done()

			stats, err := trackerv1.NewAdminServiceClient(conn).GetStats(ctx, &trackerv1.GetStatsRequest{})
			if err != nil {
				return fmt.Errorf("get stats: %w", err)
			}
			if asJSON {
				return printJSON(cmd, stats)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Dashboard")
			fmt.Fprintln(out, strings.Repeat("=", 30))
			fmt.Fprintf(out, "  Users:      %d\n", stats.TotalUsers)
			fmt.Fprintf(out, "  Tasks:      %d\n", stats.TotalTasks)
			fmt.Fprintf(out, "  Categories: %d\n", stats.TotalCategories)
			fmt.Fprintf(out, "  Overdue:    %d\n", stats.OverdueTasks)
			for _, s := range []string{"TODO", "DOING", "DONE"} {
				fmt.Fprintf(out, "  %-10s  %d\n", s+":", stats.TasksByStatus[s])
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Output as JSON")
	return cmd
}
