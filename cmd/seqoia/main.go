// Command seqoia is a thin filename-suffix dispatcher: it resolves
// input/output format by extension among .png, .jpg/.jpeg, .qoi, and
// .sqoa, and contributes no core codec logic of its own.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "seqoia:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "seqoia",
		Short: "Convert images to and from SQOA by filename suffix",
	}
	root.AddCommand(newConvertCmd())
	root.AddCommand(newCodecsCmd())
	return root
}

func newCodecsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-codecs",
		Short: "List registered block codecs",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range blockCodecNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
