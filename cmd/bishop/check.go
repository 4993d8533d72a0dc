package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bishopart/fixture"
)

// newCheckCmd replays fixture files against the renderer.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Verify recorded renderings",
		Long:  `Loads JSON or YAML fixture files and re-renders every case, reporting PASS or FAIL per case.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd)
			out := cmd.OutOrStdout()

			total, failed := 0, 0
			for _, path := range args {
				cases, err := fixture.Load(path)
				if err != nil {
					return err
				}
				log.Debug("loaded fixtures", "path", path, "cases", len(cases))

				for _, c := range cases {
					total++
					got, err := fixture.Verify(c)
					if err == nil {
						fmt.Fprintf(out, "PASS %s\n", c.Name())
						continue
					}
					failed++
					fmt.Fprintf(out, "FAIL %s\n", c.Name())
					if errors.Is(err, fixture.ErrMismatch) {
						fmt.Fprintf(out, "want:\n%s\ngot:\n%s\n", c.Want(), got)
					} else {
						log.Error("case could not be rendered", "path", path, "error", err)
					}
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d cases failed", failed, total)
			}
			fmt.Fprintf(out, "ok: %d cases\n", total)

			return nil
		},
	}
}
