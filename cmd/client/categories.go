package main

import (
	"fmt"

	"github.com/spf13/cobra"

	trackerv1 "github.com/gurkanbulca/tasktracker/api/tracker/v1"
)

func categoriesCmd(opts *clientOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category"},
		Short:   "List categories; create, rename and delete require an admin token",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List categories, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, ctx, done, err := opts.dial(cmd)
			if err != nil {
				return err
			}
			defer done()

			resp, err := trackerv1.NewCategoryServiceClient(conn).ListCategories(ctx, &trackerv1.ListCategoriesRequest{})
			if err != nil {
				return fmt.Errorf("list categories: %w", err)
			}
			return printJSON(cmd, resp.Categories)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "create [name]",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, ctx, done, err := opts.dial(cmd)
			if err != nil {
				return err
			}
			defer done()

			category, err := trackerv1.NewCategoryServiceClient(conn).CreateCategory(ctx, &trackerv1.CreateCategoryRequest{Name: args[0]})
			if err != nil {
				return fmt.Errorf("create category: %w", err)
			}
			return printJSON(cmd, category)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rename [id] [name]",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, ctx, done, err := opts.dial(cmd)
			if err != nil {
				return err
			}
			defer done()

			category, err := trackerv1.NewCategoryServiceClient(conn).UpdateCategory(ctx, &trackerv1.UpdateCategoryRequest{
				Id:   args[0],
				Name: args[1],
			})
			if err != nil {
				return fmt.Errorf("rename category: %w", err)
			}
			return printJSON(cmd, category)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a category and detach it from every task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, ctx, done, err := opts.dial(cmd)
			if err != nil {
				return err
			}
			defer done()

			if _, err := trackerv1.NewCategoryServiceClient(conn).DeleteCategory(ctx, &trackerv1.DeleteCategoryRequest{Id: args[0]}); err != nil {
				return fmt.Errorf("delete category: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Category %s deleted\n", args[0])
			return nil
		},
	})

	return cmd
}
