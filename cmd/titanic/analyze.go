package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hjwestbye/titanic/internal/logger"
	"github.com/hjwestbye/titanic/pkg/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full pipeline: clean, split, fit, evaluate, render",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.Setup(viper.GetString("log.level"), viper.GetBool("log.pretty"))

		cfg := report.Config{
			Input:        viper.GetString("input"),
			OutputDir:    viper.GetString("output"),
			Seed:         viper.GetInt64("seed"),
			TestFrac:     viper.GetFloat64("test-fraction"),
			Stratify:     viper.GetBool("stratify"),
			LearningRate: viper.GetFloat64("learning-rate"),
			Epochs:       viper.GetInt("epochs"),
			BatchSize:    viper.GetInt("batch-size"),
			Charts:       viper.GetBool("charts"),
		}

		m, err := report.Run(cfg, log)
		if err != nil {
			return err
		}

		fmt.Printf("\nValidation metrics (%d train / %d test rows, seed %d):\n",
			m.TrainRows, m.TestRows, m.Seed)
		fmt.Printf("  accuracy   %.4f\n", m.Accuracy)
		fmt.Printf("  precision  %.4f\n", m.Precision)
		fmt.Printf("  recall     %.4f\n", m.Recall)
		fmt.Printf("  F1         %.4f\n", m.F1)
		fmt.Printf("  AUC        %.4f\n", m.AUC)
		fmt.Printf("\nConfusion matrix:\n")
		fmt.Printf("               pred died  pred survived\n")
		fmt.Printf("  died         %9d  %13d\n", m.Confusion.TN, m.Confusion.FP)
		fmt.Printf("  survived     %9d  %13d\n", m.Confusion.FN, m.Confusion.TP)
		fmt.Printf("\nArtifacts written to %s\n", cfg.OutputDir)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().String("output", "out", "directory for charts and metrics.json")
	analyzeCmd.Flags().Int64("seed", 42, "seed for split, weight init and batch order")
	analyzeCmd.Flags().Float64("test-fraction", 0.2, "validation fraction of the split")
	analyzeCmd.Flags().Bool("stratify", false, "preserve class balance in the split")
	analyzeCmd.Flags().Float64("learning-rate", 0.1, "SGD learning rate")
	analyzeCmd.Flags().Int("epochs", 200, "training epochs")
	analyzeCmd.Flags().Int("batch-size", 32, "mini-batch size")
	analyzeCmd.Flags().Bool("charts", true, "render PNG charts")

	_ = viper.BindPFlag("output", analyzeCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("seed", analyzeCmd.Flags().Lookup("seed"))
	_ = viper.BindPFlag("test-fraction", analyzeCmd.Flags().Lookup("test-fraction"))
	_ = viper.BindPFlag("stratify", analyzeCmd.Flags().Lookup("stratify"))
	_ = viper.BindPFlag("learning-rate", analyzeCmd.Flags().Lookup("learning-rate"))
	_ = viper.BindPFlag("epochs", analyzeCmd.Flags().Lookup("epochs"))
	_ = viper.BindPFlag("batch-size", analyzeCmd.Flags().Lookup("batch-size"))
	_ = viper.BindPFlag("charts", analyzeCmd.Flags().Lookup("charts"))
}
