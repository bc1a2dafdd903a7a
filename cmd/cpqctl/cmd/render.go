package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cartonquote/internal/assets"
	"cartonquote/internal/config"
	"cartonquote/internal/lookup"
	"cartonquote/internal/offer"
	"cartonquote/internal/quote"
	"cartonquote/internal/render"
)

var (
	inputPath string
	outPath   string
	htmlOnly  bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a commercial offer from a quote form JSON file",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to the quote form JSON file (required)")
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "offer.pdf", "output file")
	renderCmd.Flags().BoolVar(&htmlOnly, "html-only", false, "write the HTML document instead of printing to PDF")
	_ = renderCmd.MarkFlagRequired("input")
}

func runRender(cmd *cobra.Command, args []string) error {
	log := zap.NewNop()
	if verbose {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			return err
		}
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read form file: %w", err)
	}

	var form quote.Form
	if err := json.Unmarshal(data, &form); err != nil {
		return fmt.Errorf("parse form file: %w", err)
	}

	cfg := config.Load()
	assembler := quote.NewAssembler(
		quote.CompanyInfo{
			Name:     cfg.CompanyName,
			Telegram: cfg.CompanyTelegram,
			Phone:    cfg.CompanyPhone,
			WhatsApp: cfg.CompanyWhatsApp,
		},
		quote.WithAssets(assets.LoadRefs(cfg.StaticDir)),
	)

	var pdfRenderer *render.PDFRenderer
	if !htmlOnly {
		pdfRenderer = &render.PDFRenderer{ChromePath: cfg.ChromePath}
	}

	generator := offer.NewGenerator(log, lookup.MockProvider{}, assembler, pdfRenderer)

	result, fieldErrs, err := generator.Generate(context.Background(), form)
	if err != nil {
		return err
	}
	if len(fieldErrs) > 0 {
		for _, fe := range fieldErrs {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", fe.Field, fe.Message)
		}
		return fmt.Errorf("form has %d validation error(s)", len(fieldErrs))
	}

	output := result.PDF
	if htmlOnly {
		output = []byte(result.HTML)
	}
	if err := os.WriteFile(outPath, output, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	fmt.Printf("lead %s written to %s\n", result.Quote.LeadID, outPath)
	return nil
}
