package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	fft "mipfam/models/constants/family-file-type"
	ga "mipfam/models/constants/gene-annotation"
	so "mipfam/models/constants/sort"
	"mipfam/services"
	"mipfam/services/output"
	"mipfam/services/pedigree"
	variantsService "mipfam/services/variants"
	"mipfam/utils"

	"github.com/spf13/cobra"
)

var (
	annotateVerbose        bool
	annotateGeneAnnotation string
	annotateOutput         string
	annotateByPosition     bool
	annotateThreshold      int
	annotateFamilyType     string
)

var annotateCmd = &cobra.Command{
	Use:   "annotate FAMILY_FILE VARIANT_FILE",
	Short: "Annotate a variant file with the inheritance models of a family",
	Long: `Reads a pedigree (cmms or ped) and a tab separated variant file, gzipped or not,
and writes the variant file back with the Inheritance_model, Compounds and
Rank_score columns appended.`,
	Args: cobra.ExactArgs(2),
	RunE: runAnnotate,
}

func init() {
	f := annotateCmd.Flags()
	f.BoolVarP(&annotateVerbose, "verbose", "v", false, "print timing and a summary of the models found")
	f.StringVar(&annotateGeneAnnotation, "gene-annotation", "", "gene annotation to group variants by: Ensembl or HGNC")
	f.StringVarP(&annotateOutput, "output", "o", "", "file to write the annotated variants to (default stdout)")
	f.BoolVar(&annotateByPosition, "position", false, "sort by position instead of rank score")
	f.IntVar(&annotateThreshold, "threshold", -1, "lowest rank score to output")
	f.StringVar(&annotateFamilyType, "family-type", "", "pedigree format: cmms or ped")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	startTime := time.Now()
	familyPath, variantPath := args[0], args[1]

	// flags override the configured analysis defaults
	geneAnnotation := ga.CastToGeneAnnotation(cfg.Analysis.GeneAnnotation)
	if annotateGeneAnnotation != "" {
		if !ga.IsKnownGeneAnnotation(annotateGeneAnnotation) {
			return fmt.Errorf("unknown gene annotation %q", annotateGeneAnnotation)
		}
		geneAnnotation = ga.CastToGeneAnnotation(annotateGeneAnnotation)
	}

	familyFileType := fft.CastToFamilyFileType(cfg.Analysis.FamilyFileType)
	if annotateFamilyType != "" {
		familyFileType = fft.CastToFamilyFileType(annotateFamilyType)
	}
	if familyFileType == fft.Unknown {
		return fmt.Errorf("unknown family file type %q", annotateFamilyType)
	}

	opts := services.AnalysisOptions{
		SortOrder: so.FromPositionFlag(annotateByPosition || cfg.Analysis.SortByPosition),
		Threshold: cfg.Analysis.Threshold,
	}
	if annotateThreshold >= 0 {
		opts.Threshold = annotateThreshold
	}

	familyFile, err := os.Open(familyPath)
	if err != nil {
		return err
	}
	defer familyFile.Close()

	family, err := pedigree.ParseFamily(familyFile, familyFileType)
	if err != nil {
		return fmt.Errorf("%s: %w", familyPath, err)
	}

	variantFile, err := utils.OpenMaybeGzipped(variantPath)
	if err != nil {
		return err
	}
	defer variantFile.Close()

	as := services.NewAnalysisService(&cfg)
	reader := variantsService.NewReader(variantFile, family, geneAnnotation)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	result, _, err := as.RunAnalysis(ctx, family, variantPath, reader, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", variantPath, err)
	}

	if err := writeResult(result); err != nil {
		return err
	}

	if annotateVerbose {
		stderr := cmd.ErrOrStderr()
		fmt.Fprintf(stderr, "Family %s: %d individuals, %d affected\n",
			family.Id, len(family.Individuals), family.AffectedCount())
		fmt.Fprintln(stderr, output.SummaryTable(result.Variants))
		fmt.Fprintf(stderr, "Time for whole analysis: %s\n", time.Since(startTime))
	}
	return nil
}

func writeResult(result *services.AnalysisResult) error {
	var w io.Writer = os.Stdout
	if annotateOutput != "" {
		f, err := os.Create(annotateOutput)
		if err != nil {
			return err
		}
		if err := output.WriteVariants(f, result.Metadata, result.Header, result.Variants); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	return output.WriteVariants(w, result.Metadata, result.Header, result.Variants)
}
