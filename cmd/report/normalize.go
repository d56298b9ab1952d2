package main

import (
	"github.com/spf13/cobra"

	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/studiobooking"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/usecases/normalizing"
)

var (
	inputDirFlag  string
	outputDirFlag string
	combineFlag   bool
)

// normalizeCmd não depende do Stripe nem da configuração das plataformas
var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normaliza as exportações de membros do Studio Bookings",
	RunE: func(cmd *cobra.Command, args []string) error {
		service := normalizing.NewService(studiobooking.NewStore())

		summary, err := service.TransformDirectory(cmd.Context(), inputDirFlag, outputDirFlag)
		if err != nil {
			return err
		}

		result := map[string]any{"summary": summary}

		if combineFlag {
			combined, err := service.CombineDirectory(cmd.Context(), outputDirFlag, outputDirFlag)
			if err != nil {
				return err
			}
			result["combined"] = combined
		}

		printJSON(cmd, result)
		return nil
	},
}

func init() {
	normalizeCmd.Flags().StringVar(&inputDirFlag, "input", "raw_files", "diretório com os arquivos exportados")
	normalizeCmd.Flags().StringVar(&outputDirFlag, "output", "modified_files", "diretório dos arquivos normalizados")
	normalizeCmd.Flags().BoolVar(&combineFlag, "combine", false, "une os arquivos normalizados em combined_modified_files.csv")
}
