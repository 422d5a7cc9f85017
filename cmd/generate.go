package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"resume-studio/pkg/config"
	"resume-studio/pkg/pipeline"
	"resume-studio/pkg/profile"
	"resume-studio/pkg/watsonx"
)

//nolint:gochecknoglobals // Cobra boilerplate
var styleName string

//nolint:gochecknoglobals // Cobra boilerplate
var modelName string

//nolint:gochecknoglobals // Cobra boilerplate
var fontName string

//nolint:gochecknoglobals // Cobra boilerplate
var fontSize float64

//nolint:gochecknoglobals // Cobra boilerplate
var outputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var generateCmd = &cobra.Command{
	Use:   "generate <profile-file>",
	Short: "Generate a resume from a profile file",
	Long: `Generate a resume from a JSON profile file.

The profile file holds the career record: name, role, phone, and email are
required; location, linkedin, github, skills, experience, education, and
certifications are optional.

Example:
  resume-studio generate profile.json --style technical
  resume-studio generate profile.json --model "IBM Granite 13B Instruct" --font "Times New Roman"`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&styleName, "style", "", "Template style: professional, technical, creative, or academic (default from config)")
	generateCmd.Flags().StringVar(&modelName, "model", "", "Model to generate with (default from config)")
	generateCmd.Flags().StringVar(&fontName, "font", "", "PDF font (default from config)")
	generateCmd.Flags().Float64Var(&fontSize, "font-size", 0, "PDF font size in points (default from config)")
	generateCmd.Flags().StringVar(&outputDir, "output-dir", "", "Output directory (default from config)")
}

func runGenerate(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		return err
	}

	catalog := config.DefaultCatalog()

	var p profile.UserProfile
	p, err = profile.Load(args[0])
	if err != nil {
		return err
	}

	// Resolve settings: flags win, then config defaults
	chosenStyle := styleName
	if chosenStyle == "" {
		chosenStyle = cfg.GetTemplate()
	}
	var style profile.Style
	style, err = profile.ParseStyle(chosenStyle)
	if err != nil {
		return err
	}

	chosenModel := modelName
	if chosenModel == "" {
		chosenModel = cfg.GetModel()
	}
	var modelID string
	modelID, err = catalog.ModelID(chosenModel)
	if err != nil {
		return err
	}

	chosenFont := fontName
	if chosenFont == "" {
		chosenFont = cfg.GetFont()
	}
	var fontFamily string
	fontFamily, err = catalog.FontFamily(chosenFont)
	if err != nil {
		return err
	}

	size := fontSize
	if size == 0 {
		size = cfg.GetFontSize()
	}

	outDir := outputDir
	if outDir == "" {
		outDir = cfg.Defaults.OutputDir
	}

	client := watsonx.NewClient(cfg.WatsonxAPIKey, cfg.WatsonxProjectID)
	pipe := pipeline.New(client)

	if getVerbose() {
		fmt.Printf("Generating %s resume for %s with %s...\n", style, p.Name, chosenModel)
	} else {
		fmt.Printf("Generating resume for %s...\n", p.Name)
	}

	var res pipeline.Result
	res, err = pipe.Run(ctx, pipeline.Request{
		Profile:    p,
		Style:      style,
		Model:      chosenModel,
		ModelID:    modelID,
		Font:       chosenFont,
		FontFamily: fontFamily,
		FontSize:   size,
		OutputDir:  outDir,
	})
	if err != nil {
		if hint := watsonx.Remediation(err); hint != "" {
			fmt.Printf("Hint: %s\n", hint)
		}
		return err
	}

	fmt.Println("\nResume generated:")
	fmt.Printf("  Text: %s\n", res.Artifacts.TextPath)
	fmt.Printf("  Data: %s\n", res.Artifacts.JSONPath)
	fmt.Printf("  PDF:  %s\n", res.Artifacts.PDFPath)

	return err
}
