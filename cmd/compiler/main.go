// Package main provides the compiler entry point: a Cobra-based CLI
// driving the core pipeline via internal/compiler.Translate.
//
// Subcommands mirror the driver's stage options:
//  1. tokens  - lexical analysis only
//  2. parse   - syntax analysis, tree dump
//  3. ir      - IR lowering, textual printer output
//  4. check   - full pipeline through type checking
package main

import (
	"fmt"
	"os"

	"github.com/hassan/langcore/internal/compiler"
	"github.com/hassan/langcore/internal/parser/ast"
	"github.com/spf13/cobra"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "compiler",
		Short: "A lexer/parser/IR/type-checker pipeline driver",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "compiler.yaml", "driver configuration file")

	rootCmd.AddCommand(tokensCmd(), parseCmd(), irCmd(), checkCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func readSource(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading file: %v\n", err)
		os.Exit(1)
	}
	return string(data)
}

// sinkFor builds the error-sink callback the options table requires,
// honoring the config's abort/collect policy (§6.A, §7.A).
func sinkFor(cfg Config) func(string) {
	aborted := false
	return func(msg string) {
		fmt.Fprintf(os.Stderr, "Type error: %s\n", msg)
		if cfg.OnError == "abort" && !aborted {
			aborted = true
			os.Exit(1)
		}
	}
}

func tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Stop after lexing, print one token per line",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg, _ := loadConfig(configPath)
			res := compiler.Translate(readSource(args[0]), compiler.Options{
				Stage: compiler.StageTokenise, ErrorSink: sinkFor(cfg), Filename: args[0],
			})
			for _, tok := range res.Tokens {
				fmt.Println(tok.String())
			}
			if res.Errored {
				os.Exit(1)
			}
		},
	}
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Stop after parsing, print a tree dump of the AST",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg, _ := loadConfig(configPath)
			res := compiler.Translate(readSource(args[0]), compiler.Options{
				Stage: compiler.StageParse, ErrorSink: sinkFor(cfg), Filename: args[0],
			})
			if res.AST != nil {
				fmt.Print(ast.Dump(res.AST))
			}
			if res.Errored {
				os.Exit(1)
			}
		},
	}
}

func irCmd() *cobra.Command {
	var testMode bool
	cmd := &cobra.Command{
		Use:   "ir <file>",
		Short: "Lower to IR and print it via the textual grammar",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg, _ := loadConfig(configPath)
			res := compiler.Translate(readSource(args[0]), compiler.Options{
				Stage: compiler.StageMakeIR, ErrorSink: sinkFor(cfg), Filename: args[0],
				Test: testMode || cfg.Output == "test",
			})
			fmt.Print(res.PrintedIR)
			if res.Errored {
				os.Exit(1)
			}
		},
	}
	cmd.Flags().BoolVar(&testMode, "test", false, "deterministic, counter-based block identifiers")
	return cmd
}

func checkCmd() *cobra.Command {
	var testMode bool
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Run the full pipeline through type checking",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg, _ := loadConfig(configPath)
			res := compiler.Translate(readSource(args[0]), compiler.Options{
				Stage: compiler.StageTypecheck, ErrorSink: sinkFor(cfg), Filename: args[0],
				Test: testMode || cfg.Output == "test",
			})
			fmt.Print(res.PrintedIR)
			if res.Errored {
				os.Exit(1)
			}
			fmt.Println("\ntype check passed")
		},
	}
	cmd.Flags().BoolVar(&testMode, "test", false, "deterministic, counter-based block identifiers")
	return cmd
}
