package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/kegliz/qspc/internal/app"
	"github.com/kegliz/qspc/internal/config"
	"github.com/kegliz/qspc/internal/schedrender"
	"github.com/kegliz/qspc/qc/pbc"
	"github.com/kegliz/qspc/qc/qasm"
	"github.com/kegliz/qspc/qc/report"
	"github.com/kegliz/qspc/qc/translate"
)

var version = "0.2.0"

func main() {
	rootCmd := &cobra.Command{
		Use:     "spc",
		Short:   "spc — translate OpenQASM circuits into Pauli-based computation schedules",
		Version: version,
	}

	// translate command
	var filename string
	var renderPath string
	var noColor bool

	translateCmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate a QASM file and print the SPC and compact schedules",
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(filename)
			if err != nil {
				return err
			}
			nodes, err := qasm.Parse(string(source))
			if err != nil {
				return err
			}

			ops, regs, err := translate.Extract(nodes)
			if err != nil {
				// Decomposition diagnostics are part of the report, not
				// a process failure.
				fmt.Println(err)
				return nil
			}

			mode := report.ColorAuto
			if noColor {
				mode = report.ColorNever
			}
			rep := report.NewReporter(report.ReporterOptions{Color: mode})
			if err := rep.Render(ops, regs.NumQubits()); err != nil {
				return err
			}

			if renderPath != "" {
				compact := pbc.SPCCompactTranslation(ops)
				img := schedrender.NewDefaultRenderer().RenderSchedule(compact, regs.NumQubits())
				f, err := os.Create(renderPath)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := png.Encode(f, img); err != nil {
					return err
				}
				fmt.Printf("Written to %s\n", renderPath)
			}
			return nil
		},
	}
	translateCmd.Flags().StringVarP(&filename, "filename", "f", "", "The filename of the QASM file to be translated")
	translateCmd.MarkFlagRequired("filename")
	translateCmd.Flags().StringVar(&renderPath, "render", "", "Write the compact schedule as a PNG to this path")
	translateCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable ANSI colors in the report")

	// serve command
	var port int
	var debug bool

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the translation API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Set("port", port)
			}
			if cmd.Flags().Changed("debug") {
				cfg.Set("debug", debug)
			}

			srv, err := app.NewServer(app.ServerOptions{C: cfg, Version: version})
			if err != nil {
				return err
			}
			return srv.Listen(cfg.GetInt("port"), cfg.GetBool("local-only"))
		},
	}
	serveCmd.Flags().IntVar(&port, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(translateCmd, serveCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
