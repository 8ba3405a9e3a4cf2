// Command tasktracker is a command line client for the tracker gRPC API.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

var Version = "dev"

// clientOptions are the persistent flags shared by every command
type clientOptions struct {
	addr    string
	token   string
	timeout time.Duration
}

func main() {
	opts := &clientOptions{}

	rootCmd := &cobra.Command{
		Use:     "tasktracker",
		Short:   "TaskTracker - command line client for the task tracker",
		Version: Version,
	}
	rootCmd.PersistentFlags().StringVar(&opts.addr, "addr", envOr("TASKTRACKER_ADDR", "localhost:50051"), "gRPC server address")
	rootCmd.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("TASKTRACKER_TOKEN"), "access token (defaults to $TASKTRACKER_TOKEN)")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "request timeout")

	rootCmd.AddCommand(registerCmd(opts))
	rootCmd.AddCommand(loginCmd(opts))
	rootCmd.AddCommand(tasksCmd(opts))
	rootCmd.AddCommand(categoriesCmd(opts))
	rootCmd.AddCommand(adminCmd(opts))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// dial opens a connection and a request context carrying the bearer token
func (o *clientOptions) dial(cmd *cobra.Command) (*grpc.ClientConn, context.Context, context.CancelFunc, error) {
	conn, err := grpc.NewClient(o.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect to %s: %w", o.addr, err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
	if o.token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+o.token)
	}
	return conn, ctx, func() {
		cancel()
		conn.Close()
	}, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
