// Command clem drives a machine from the terminal: load a ROM (and
// optionally an Intel HEX program blob), run it for a fixed instruction
// budget or interactively, and inspect CPU/memory state.
//
// Grounded on the optimizer pack repo's cmd/z80opt root-command tree: one rootCmd
// with per-subcommand flag-bound local vars and RunE closures.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clem-emu/clem/clemlog"
	"github.com/clem-emu/clem/debugger"
	"github.com/clem-emu/clem/machine"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clem",
		Short: "Apple IIgs emulator core command line driver",
	}

	var romPath string
	var hexPath string
	var hexBank uint8
	var banks int
	var steps int
	var verbose bool

	buildMachine := func() (*machine.Machine, error) {
		rom, err := os.ReadFile(romPath)
		if err != nil {
			return nil, fmt.Errorf("reading ROM: %w", err)
		}
		cfg := machine.Config{ROM: rom, FPIBankCount: banks}
		if verbose {
			cfg.Logger = clemlog.New(os.Stderr)
		}
		mach, err := machine.New(cfg)
		if err != nil {
			return nil, err
		}
		if hexPath != "" {
			f, err := os.Open(hexPath)
			if err != nil {
				return nil, fmt.Errorf("opening hex file: %w", err)
			}
			defer f.Close()
			n, err := mach.LoadHex(hexBank, f)
			if err != nil {
				return nil, fmt.Errorf("loading hex: %w", err)
			}
			fmt.Printf("loaded %d bytes into bank %02X\n", n, hexBank)
		}
		return mach, nil
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the machine for a fixed number of instructions",
		RunE: func(cmd *cobra.Command, args []string) error {
			mach, err := buildMachine()
			if err != nil {
				return err
			}
			if verbose {
				mach.SetDebugFlags(machine.DebugStdoutTrace)
			}
			if err := mach.Run(steps); err != nil {
				return fmt.Errorf("run stopped: %w", err)
			}
			fmt.Println("run complete")
			return nil
		},
	}
	runCmd.Flags().StringVar(&romPath, "rom", "", "path to the ROM image (required)")
	runCmd.Flags().StringVar(&hexPath, "hex", "", "optional Intel HEX program to load before running")
	runCmd.Flags().Uint8Var(&hexBank, "hex-bank", 0, "bank to load the hex program into")
	runCmd.Flags().IntVar(&banks, "banks", 8, "number of FPI RAM banks")
	runCmd.Flags().IntVar(&steps, "steps", 1_000_000, "instruction budget (0 = unbounded)")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace every instruction to stdout")
	runCmd.MarkFlagRequired("rom")

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Load the machine and drop into the interactive inspector",
		RunE: func(cmd *cobra.Command, args []string) error {
			mach, err := buildMachine()
			if err != nil {
				return err
			}
			return debugger.Run(mach)
		},
	}
	inspectCmd.Flags().StringVar(&romPath, "rom", "", "path to the ROM image (required)")
	inspectCmd.Flags().StringVar(&hexPath, "hex", "", "optional Intel HEX program to load before inspecting")
	inspectCmd.Flags().Uint8Var(&hexBank, "hex-bank", 0, "bank to load the hex program into")
	inspectCmd.Flags().IntVar(&banks, "banks", 8, "number of FPI RAM banks")
	inspectCmd.MarkFlagRequired("rom")

	rootCmd.AddCommand(runCmd, inspectCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
