// Package main provides the entry point for the hid-tool command line utility.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	hidapi "github.com/ruabmbua/hidapi-go"
)

var (
	verbose bool

	devicePath string
	vendorFlag string
	productFlag string
	serialFlag string

	rootCmd = &cobra.Command{
		Use:   "hid-tool",
		Short: "Inspect and talk to HID devices",
		Long: `hid-tool is a command line utility for working with HID devices.

It can enumerate attached devices, dump device metadata and report
descriptors, stream input reports, and send output or feature reports.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&devicePath, "path", "p", "", "Device path token from 'hid-tool list'")
	rootCmd.PersistentFlags().StringVar(&vendorFlag, "vid", "", "Vendor ID (hex)")
	rootCmd.PersistentFlags().StringVar(&productFlag, "pid", "", "Product ID (hex)")
	rootCmd.PersistentFlags().StringVar(&serialFlag, "serial", "", "Serial number to match")

	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(infoCmd())
	rootCmd.AddCommand(readCmd())
	rootCmd.AddCommand(writeCmd())
}

func setupLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

// parseHexID parses a vendor or product ID given as hex, with or without a
// leading "0x".
func parseHexID(s string) (uint16, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid ID %q: expected a 16-bit hex value", s)
	}
	return uint16(n), nil
}

// openTarget opens the device selected by the global flags: an explicit path
// wins, otherwise vendor and product IDs are required.
func openTarget() (hidapi.Device, error) {
	if devicePath != "" {
		return hidapi.OpenPath(devicePath)
	}
	if vendorFlag == "" || productFlag == "" {
		return nil, fmt.Errorf("either --path or both --vid and --pid are required")
	}

	vid, err := parseHexID(vendorFlag)
	if err != nil {
		return nil, err
	}
	pid, err := parseHexID(productFlag)
	if err != nil {
		return nil, err
	}

	if serialFlag != "" {
		return hidapi.OpenSerial(vid, pid, serialFlag)
	}
	return hidapi.Open(vid, pid)
}

func formatDeviceInfo(info hidapi.DeviceInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%04x:%04x", info.VendorID, info.ProductID)
	fmt.Fprintf(&b, "  bus=%s", info.BusType)
	if info.InterfaceNumber >= 0 {
		fmt.Fprintf(&b, " if=%d", info.InterfaceNumber)
	}
	fmt.Fprintf(&b, " usage=%04x:%04x", info.UsagePage, info.Usage)
	if info.ProductString != "" {
		fmt.Fprintf(&b, "  %q", info.ProductString)
	}
	if info.SerialNumber != "" {
		fmt.Fprintf(&b, " serial=%s", info.SerialNumber)
	}
	fmt.Fprintf(&b, "\n    path: %s", info.Path)
	return b.String()
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Enumerate attached HID devices",
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := hidapi.Enumerate()
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				log.Warn().Msg("No HID devices found")
				return nil
			}
			for _, info := range infos {
				fmt.Println(formatDeviceInfo(info))
			}
			return nil
		},
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show metadata and report descriptor of one device",
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, err := openTarget()
			if err != nil {
				return err
			}
			defer dev.Close()

			info, err := dev.Info()
			if err != nil {
				return err
			}
			fmt.Println(formatDeviceInfo(info))

			if manufacturer, err := dev.ManufacturerString(); err == nil && manufacturer != "" {
				fmt.Printf("    manufacturer: %s\n", manufacturer)
			}

			desc := make([]byte, 4096)
			n, err := dev.ReportDescriptor(desc)
			if err != nil {
				log.Debug().Err(err).Msg("Report descriptor not available")
				return nil
			}
			fmt.Printf("    report descriptor (%d bytes):\n", n)
			dumpHex(desc[:n])
			return nil
		},
	}
}

func readCmd() *cobra.Command {
	var (
		timeout time.Duration
		count   int
		maxRate float64
	)

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Stream input reports from a device",
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, err := openTarget()
			if err != nil {
				return err
			}
			defer dev.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// Cap the print rate so a chatty device does not flood the
			// terminal; reports beyond the cap are still drained.
			limiter := rate.NewLimiter(rate.Limit(maxRate), 1)

			buf := make([]byte, 4096)
			for read := 0; count == 0 || read < count; {
				if ctx.Err() != nil {
					return nil
				}

				n, err := dev.ReadTimeout(buf, timeout)
				if err != nil {
					return err
				}
				if n == 0 {
					log.Debug().Dur("timeout", timeout).Msg("No report within timeout")
					continue
				}

				read++
				if err := limiter.Wait(ctx); err != nil {
					return nil
				}
				fmt.Printf("%s\n", hex.EncodeToString(buf[:n]))
			}
			return nil
		},
	}

	cmd.Flags().DurationVarP(&timeout, "timeout", "t", time.Second, "Per-read timeout")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Stop after this many reports (0 = forever)")
	cmd.Flags().Float64Var(&maxRate, "max-rate", 50, "Maximum reports printed per second")
	return cmd
}

func writeCmd() *cobra.Command {
	var feature bool

	cmd := &cobra.Command{
		Use:   "write <hex-bytes>",
		Short: "Send an output or feature report",
		Long: `Send a report to a device. The argument is the raw report as hex,
including the leading report ID byte (use 00 for devices without
numbered reports).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := hex.DecodeString(strings.ReplaceAll(args[0], " ", ""))
			if err != nil {
				return fmt.Errorf("invalid report hex: %w", err)
			}

			dev, err := openTarget()
			if err != nil {
				return err
			}
			defer dev.Close()

			var n int
			if feature {
				n, err = dev.SendFeatureReport(data)
			} else {
				n, err = dev.Write(data)
			}
			if err != nil {
				return err
			}
			log.Info().Int("bytes", n).Bool("feature", feature).Msg("Report sent")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&feature, "feature", "f", false, "Send a feature report instead of an output report")
	return cmd
}

// dumpHex prints data as 16-byte indented hex rows.
func dumpHex(data []byte) {
	for off := 0; off < len(data); off += 16 {
		end := off + 16
		if end > len(data) {
			end = len(data)
		}
		fmt.Printf("      %s\n", hex.EncodeToString(data[off:end]))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("Failed to execute command")
	}
}
