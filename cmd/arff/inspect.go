package main

import (
	"fmt"
	"os"

	"github.com/p-w-rs/arff/arffparser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.arff>",
	Short: "Parse an ARFF file and report its structure",
	Long:  "Parse an ARFF file, split it into a feature matrix and label vector, and print the relation summary and any diagnostics.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().IntP("class", "c", 0, "Class column (1-based; 0 resolves by attribute name)")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	quiet := viper.GetBool("quiet")
	verbose := viper.GetBool("verbose")
	classIndex, _ := cmd.Flags().GetInt("class")

	rel, diags, err := arffparser.ParseFile(path)
	if !quiet {
		for _, d := range diags {
			fmt.Fprintf(os.Stderr, "[arff] %s\n", d)
		}
	}
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	ds, err := rel.Dataset(classIndex)
	if err != nil {
		return fmt.Errorf("splitting dataset: %w", err)
	}

	fmt.Printf("Relation: %s\n", rel.Name)
	fmt.Printf("Rows:     %d accepted, %d warnings\n", len(rel.Rows), len(diags.Warnings()))
	fmt.Printf("Class:    %s (%s)\n", ds.Class.Name, ds.Class.Kind)
	fmt.Printf("Features: %d\n", len(ds.Features))

	if verbose {
		for i, attr := range ds.Features {
			fmt.Printf("  %3d  %-20s %s%s\n", i+1, attr.Name, attr.Kind, attrDetail(attr))
		}
	}

	// Report the numeric rendering when the features allow one.
	if m, err := ds.FloatMatrix(); err == nil {
		r, c := m.Dims()
		fmt.Printf("Matrix:   %dx%d\n", r, c)
	} else if verbose {
		fmt.Fprintf(os.Stderr, "[arff] no numeric matrix: %v\n", err)
	}

	return nil
}

func attrDetail(attr arffparser.Attribute) string {
	switch attr.Kind {
	case arffparser.AttrNominal:
		return fmt.Sprintf(" (%d labels)", len(attr.Labels))
	case arffparser.AttrDate:
		return fmt.Sprintf(" (%s)", attr.Format)
	}
	return ""
}
