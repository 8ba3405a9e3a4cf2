package main

import (
	"fmt"

	"github.com/spf13/cobra"

	trackerv1 "github.com/gurkanbulca/tasktracker/api/tracker/v1"
)

func tasksCmd(opts *clientOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage your tasks",
	}

	cmd.AddCommand(createTaskCmd(opts))
	cmd.AddCommand(listTasksCmd(opts))
	cmd.AddCommand(getTaskCmd(opts))
	cmd.AddCommand(updateTaskCmd(opts))
	cmd.AddCommand(deleteTaskCmd(opts))

	return cmd
}

func createTaskCmd(opts *clientOptions) *cobra.Command {
	req := &trackerv1.CreateTaskRequest{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, ctx, done, err := opts.dial(cmd)
			if err != nil {
				return err
			}
			defer done()

			task, err := trackerv1.NewTaskServiceClient(conn).CreateTask(ctx, req)
			if err != nil {
				return fmt.Errorf("create task: %w", err)
			}
			return printJSON(cmd, task)
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "task title")
	cmd.Flags().StringVar(&req.Description, "description", "", "task description")
	cmd.Flags().StringVar(&req.DueDate, "due", "", "due date (RFC 3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.Priority, "priority", "", "LOW, MEDIUM or HIGH")
	cmd.Flags().StringSliceVar(&req.CategoryIds, "category", nil, "category id (repeatable)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("due")

	return cmd
}

func listTasksCmd(opts *clientOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your tasks, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, ctx, done, err := opts.dial(cmd)
			if err != nil {
				return err
			}
			defer done()

			resp, err := trackerv1.NewTaskServiceClient(conn).ListMyTasks(ctx, &trackerv1.ListMyTasksRequest{})
			if err != nil {
				return fmt.Errorf("list tasks: %w", err)
			}
			return printJSON(cmd, resp.Tasks)
		},
	}
}

func getTaskCmd(opts *clientOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, ctx, done, err := opts.dial(cmd)
			if err != nil {
				return err
			}
			defer done()

			task, err := trackerv1.NewTaskServiceClient(conn).GetTask(ctx, &trackerv1.GetTaskRequest{Id: args[0]})
			if err != nil {
				return fmt.Errorf("get task: %w", err)
			}
			return printJSON(cmd, task)
		},
	}
}

func updateTaskCmd(opts *clientOptions) *cobra.Command {
	var (
		title, description, status, due, priority string
		categories                                []string
		clearCategories                           bool
	)

	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Change fields of a task",
		Long: `Only the flags that are given are changed. --category replaces the whole
category set; use --clear-categories to remove every category.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &trackerv1.UpdateTaskRequest{Id: args[0]}
			flags := cmd.Flags()
			if flags.Changed("title") {
				req.Title = &title
			}
			if flags.Changed("description") {
				req.Description = &description
			}
			if flags.Changed("status") {
				req.Status = &status
			}
			if flags.Changed("due") {
				req.DueDate = &due
			}
			if flags.Changed("priority") {
				req.Priority = &priority
			}
			switch {
			case clearCategories:
				empty := []string{}
				req.CategoryIds = &empty
			case flags.Changed("category"):
				req.CategoryIds = &categories
			}

			conn, ctx, done, err := opts.dial(cmd)
			if err != nil {
				return err
			}
			defer done()

			task, err := trackerv1.NewTaskServiceClient(conn).UpdateTask(ctx, req)
			if err != nil {
				return fmt.Errorf("update task: %w", err)
			}
			return printJSON(cmd, task)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&status, "status", "", "TODO, DOING or DONE")
	cmd.Flags().StringVar(&due, "due", "", "new due date")
	cmd.Flags().StringVar(&priority, "priority", "", "LOW, MEDIUM or HIGH")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "category id (repeatable)")
	cmd.Flags().BoolVar(&clearCategories, "clear-categories", false, "remove every category")
	cmd.MarkFlagsMutuallyExclusive("category", "clear-categories")

	return cmd
}

func deleteTaskCmd(opts *clientOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, ctx, done, err := opts.dial(cmd)
			if err != nil {
				return err
			}
			defer done()

			if _, err := trackerv1.NewTaskServiceClient(conn).DeleteTask(ctx, &trackerv1.DeleteTaskRequest{Id: args[0]}); err != nil {
				return fmt.Errorf("delete task: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %s deleted\n", args[0])
			return nil
		},
	}
}
