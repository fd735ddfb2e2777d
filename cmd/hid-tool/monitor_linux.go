package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ruabmbua/hidapi-go/internal/udevenum"
)

func init() {
	rootCmd.AddCommand(monitorCmd())
}

func monitorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "monitor",
		Short: "Watch hidraw hot-plug events",
		RunE: func(cmd *cobra.Command, args []string) error {
			monitor := udevenum.NewMonitor(func(event udevenum.Event) {
				switch event.Type {
				case udevenum.EventAdd:
					fmt.Printf("add    %s\n", event.DevNode)
				case udevenum.EventRemove:
					fmt.Printf("remove %s\n", event.DevNode)
				}
			})

			if err := monitor.Start(); err != nil {
				return err
			}

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

			log.Info().Msg("Monitoring hidraw hot-plug events, press Ctrl+C to stop")
			<-sigChan

			return monitor.Stop()
		},
	}
}
