// Copyright Ignite Legal, 2026. All rights reserved.

// Package main is the entry point for the convert-doc CLI: it converts a
// Markdown document into a styled Word document, optionally applying an
// organizational .docx template.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Ignitelegal/convertMDtoWord/internal/convert"
	"github.com/Ignitelegal/convertMDtoWord/internal/translate"
	"github.com/Ignitelegal/convertMDtoWord/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd converts a single Markdown file. The input path is positional;
// everything else has a flag and a config-file default.
var rootCmd = &cobra.Command{
	Use:   "convert-doc <input.md>",
	Short: "Convert Markdown files to styled Word documents",
	Long: `convert-doc turns a Markdown document into a Word-compatible .docx file.
Headings, paragraphs, nested lists, block quotes, code blocks, tables and
horizontal rules map onto named paragraph styles; inline bold, italic, code
and links become styled runs.

Styles resolve against the template given with --template. Missing styles
fall back to sensible defaults instead of aborting, so any template works.
Without a template, a built-in style set is used.

Exit codes:
  0  success
  1  unexpected failure
  2  input file missing or unreadable
  3  template or style map unreadable
  4  translation failure
  5  output not writable`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := types.ConverterConfig{
			TemplatePath: viper.GetString("template"),
			StyleMapPath: viper.GetString("style_map"),
			OutputSuffix: viper.GetString("output_suffix"),
			Verbose:      viper.GetBool("verbose"),
		}
		output, _ := cmd.Flags().GetString("output")

		res, err := convert.Convert(convert.Options{
			Input:    args[0],
			Template: cfg.TemplatePath,
			Output:   output,
			StyleMap: cfg.StyleMapPath,
			Suffix:   cfg.OutputSuffix,
			Verbose:  cfg.Verbose,
		}, os.Stderr)
		if err != nil {
			return err
		}

		fmt.Printf("Converted %s -> %s (%d blocks", args[0], res.OutputPath, res.Blocks)
		if res.Degraded > 0 {
			fmt.Printf(", %d degraded", res.Degraded)
		}
		fmt.Println(")")
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./convert-doc.yaml or ~/.config/convert-doc/config.yaml)")

	rootCmd.Flags().StringP("template", "t", "", "Word template (.docx) providing the style catalog")
	rootCmd.Flags().StringP("output", "o", "", "output path (default: <stem>_converted.docx beside the input)")
	rootCmd.Flags().String("style-map", "", "YAML file overriding the semantic style mapping")
	rootCmd.Flags().BoolP("verbose", "v", false, "report degraded blocks and other detail")

	mustBind("template", rootCmd.Flags().Lookup("template"))
	mustBind("style_map", rootCmd.Flags().Lookup("style-map"))
	mustBind("verbose", rootCmd.Flags().Lookup("verbose"))
	viper.SetDefault("output_suffix", types.DefaultOutputSuffix)
}

func mustBind(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("convert-doc")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "convert-doc"))
		}
	}

	viper.SetEnvPrefix("CONVERT_DOC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// exitCode maps error kinds to the stable codes documented in the long
// help.
func exitCode(err error) int {
	var terr *translate.TranslationError
	switch {
	case errors.Is(err, convert.ErrInputNotFound),
		errors.Is(err, convert.ErrInputUnreadable):
		return 2
	case errors.Is(err, convert.ErrTemplateUnreadable):
		return 3
	case errors.As(err, &terr):
		return 4
	case errors.Is(err, convert.ErrOutputUnwritable):
		return 5
	}
	return 1
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}
