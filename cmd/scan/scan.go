package scan

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tanglefoot/multimatch/internal/pkg/logger"
	"github.com/tanglefoot/multimatch/internal/pkg/rules"
	"github.com/tanglefoot/multimatch/pkg/multimatch"
)

var ScanCmd = &cobra.Command{
	Use:   "scan [file ...]",
	Short: "Scan files or stdin for registered keywords",
	Long: `Scan streams each input through a keyword finder and reports every
occurrence, including overlapping ones. Offsets are counted in runes.

Keywords come from a YAML rules file, or from a finder precompiled
with 'multimatch build'. With no file arguments, stdin is scanned.

Example:
  multimatch scan --rules keywords.yaml access.log
  multimatch build --rules keywords.yaml -o keywords.mmx
  cat access.log | multimatch scan --finder keywords.mmx --format json`,
	Args:         cobra.ArbitraryArgs,
	RunE:         runScan,
	SilenceUsage: true,
}

var (
	rulesPath  string
	finderPath string
	format     string
	countOnly  bool
	quiet      bool
)

func init() {
	ScanCmd.Flags().StringVarP(&rulesPath, "rules", "r", "", "YAML rules file with keywords to search for")
	ScanCmd.Flags().StringVarP(&finderPath, "finder", "F", "", "precompiled finder file (from 'multimatch build')")
	ScanCmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or json")
	ScanCmd.Flags().BoolVarP(&countOnly, "count", "c", false, "print per-input match counts instead of matches")
	ScanCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "no output; exit 0 if any input matches, 1 otherwise")

	viper.BindPFlag("scan.rules", ScanCmd.Flags().Lookup("rules"))
	viper.BindPFlag("scan.finder", ScanCmd.Flags().Lookup("finder"))
	viper.BindPFlag("scan.format", ScanCmd.Flags().Lookup("format"))
}

func runScan(cmd *cobra.Command, args []string) error {
	finder, err := loadFinder()
	if err != nil {
		return err
	}
	format = viper.GetString("scan.format")
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown output format %q", format)
	}

	inputs := args
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	total := 0
	for _, name := range inputs {
		n, err := scanOne(finder, name)
		if err != nil {
			return err
		}
		total += n
		if quiet && total > 0 {
			return nil
		}
	}

	if quiet {
		os.Exit(1)
	}
	logger.Info("scan complete", "inputs", len(inputs), "matches", total)
	return nil
}

func loadFinder() (*multimatch.StringFinder[string], error) {
	if finderPath == "" {
		finderPath = viper.GetString("scan.finder")
	}
	if rulesPath == "" {
		rulesPath = viper.GetString("scan.rules")
	}

	switch {
	case finderPath != "":
		f, err := os.Open(finderPath)
		if err != nil {
			return nil, fmt.Errorf("open finder file: %w", err)
		}
		defer f.Close()
		return multimatch.DecodeStringFinder[string](f)
	case rulesPath != "":
		rs, err := rules.Load(rulesPath)
		if err != nil {
			return nil, err
		}
		logger.Debug("rules loaded", "path", rulesPath, "keywords", len(rs))
		return rules.Compile(rs)
	default:
		return nil, fmt.Errorf("either --rules or --finder is required")
	}
}

func scanOne(finder *multimatch.StringFinder[string], name string) (int, error) {
	var r io.Reader
	if name == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		r = f
	}

	count := 0
	for m := range finder.FindReader(r) {
		count++
		if quiet {
			// One hit is enough; the lazy scan reads no further input.
			return count, nil
		}
		if countOnly {
			continue
		}
		if err := printMatch(name, m); err != nil {
			return count, err
		}
	}

	if countOnly && !quiet {
		fmt.Printf("%s: %d\n", name, count)
	}
	return count, nil
}

type jsonMatch struct {
	File   string   `json:"file"`
	Start  int      `json:"start"`
	Length int      `json:"length"`
	IDs    []string `json:"ids"`
}

func printMatch(name string, m multimatch.Match[string]) error {
	if format == "json" {
		return json.NewEncoder(os.Stdout).Encode(jsonMatch{
			File:   name,
			Start:  m.Start,
			Length: m.Length,
			IDs:    m.IDs,
		})
	}
	_, err := fmt.Printf("%s:%d:%d\t%s\n", name, m.Start, m.Length, strings.Join(m.IDs, ","))
	return err
}
