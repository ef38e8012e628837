package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/runner/info"
	"tableflip.dev/daybook/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the configuration and where data is stored.",
		Example: `
daybook info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			kv, err := store.Open(cfg.StoreOptions())
			if err != nil {
				return err
			}
			defer kv.Close()

			s := info.Info{
				Config:  cfg,
				Storage: kv,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
