package build

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tanglefoot/multimatch/internal/pkg/logger"
	"github.com/tanglefoot/multimatch/internal/pkg/rules"
)

var BuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile a rules file into a finder",
	Long: `Build compiles a YAML rules file into a keyword finder and writes it
to disk, so repeated scans skip automaton construction.

Example:
  multimatch build --rules keywords.yaml -o keywords.mmx`,
	RunE:         runBuild,
	SilenceUsage: true,
}

var (
	rulesPath string
	outPath   string
)

func init() {
	BuildCmd.Flags().StringVarP(&rulesPath, "rules", "r", "", "YAML rules file with keywords to compile")
	BuildCmd.Flags().StringVarP(&outPath, "out", "o", "", "output finder file")
	BuildCmd.MarkFlagRequired("rules")
	BuildCmd.MarkFlagRequired("out")
}

func runBuild(cmd *cobra.Command, args []string) error {
	rs, err := rules.Load(rulesPath)
	if err != nil {
		return err
	}

	finder, err := rules.Compile(rs)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create finder file: %w", err)
	}
	defer out.Close()

	if err := finder.Encode(out); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("write finder file: %w", err)
	}

	logger.Info("finder written", "keywords", len(rs), "path", outPath)
	return nil
}
