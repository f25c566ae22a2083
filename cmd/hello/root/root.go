package root

import (
	"github.com/flarebyte/hello/internal/greeting"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for hello.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "hello",
		Short:              "Print a greeting",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return greeting.Write(cmd.OutOrStdout())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

// Execute runs the root command. The args are accepted for the usual
// entry-point shape and ignored.
func Execute(args []string) error {
	return execute(NewRootCmd(), args)
}

// execute never hands args to cobra, which would otherwise dispatch
// its hidden __complete command on them.
func execute(cmd *cobra.Command, _ []string) error {
	cmd.SetArgs([]string{})
	return cmd.Execute()
}
