// Package cli define os subcomandos do binário de terminal.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Apeirom/rental-manager/internal/application/analysis"
	"github.com/Apeirom/rental-manager/internal/application/rental"
	"github.com/Apeirom/rental-manager/internal/infrastructure/excel"
	"github.com/Apeirom/rental-manager/internal/interfaces/terminal"
	"github.com/Apeirom/rental-manager/pkg/config"
	"github.com/Apeirom/rental-manager/pkg/logger"
)

// bootstrap carrega a configuração, abre as planilhas e monta o Store.
func bootstrap() (*config.Config, *logger.Logger, *rental.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("carregar configuração: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	ds := excel.New(cfg.Data.Dir, log)
	if err := ds.EnsureFiles(); err != nil {
		return nil, nil, nil, fmt.Errorf("preparar planilhas: %w", err)
	}
	store, err := rental.NewStore(ds, log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("carregar dados: %w", err)
	}
	return cfg, log, store, nil
}

// InitCmd cria o diretório de dados e as planilhas vazias que faltarem.
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Cria o diretório de dados e as planilhas iniciais",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("carregar configuração: %w", err)
			}
			log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
			if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
				return err
			}
			if err := excel.New(cfg.Data.Dir, log).EnsureFiles(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Planilhas prontas em %s\n", cfg.Data.Dir)
			return nil
		},
	}
}

// MenuCmd abre o menu interativo no terminal.
func MenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Abre o menu interativo do sistema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, store, err := bootstrap()
			if err != nil {
				return err
			}
			ui := terminal.New(store, analysis.NewEngine(store), log, cfg.Data.DocsDir, cmd.InOrStdin(), cmd.OutOrStdout())
			ui.Run()
			return nil
		},
	}
}

// parsePeriod interpreta um período MM/YYYY.
func parsePeriod(s string) (analysis.Period, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return analysis.Period{}, fmt.Errorf("período %q inválido: use MM/YYYY", s)
	}
	month, errM := strconv.Atoi(parts[0])
	year, errY := strconv.Atoi(parts[1])
	if errM != nil || errY != nil {
		return analysis.Period{}, fmt.Errorf("período %q inválido: use MM/YYYY", s)
	}
	return analysis.Period{Year: year, Month: month}, nil
}

// ReportCmd monta a análise de imposto de renda sem passar pelo menu.
func ReportCmd() *cobra.Command {
	var startFlag, endFlag string
	var export bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Gera a análise de imposto de renda de um intervalo",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parsePeriod(startFlag)
			if err != nil {
				return err
			}
			end, err := parsePeriod(endFlag)
			if err != nil {
				return err
			}

			cfg, _, store, err := bootstrap()
			if err != nil {
				return err
			}
			report, err := analysis.NewEngine(store).BuildIncomeReport(start, end)
			if err != nil {
				return err
			}

			if export {
				if len(report.Rows) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Nenhum dado para salvar.")
					return nil
				}
				path, err := excel.WriteIncomeReport(filepath.Join(cfg.Data.DocsDir, "analises"), report)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Análise salva em %s\n", path)
				return nil
			}
			return report.WriteTable(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&startFlag, "inicio", "", "início do intervalo (MM/YYYY)")
	cmd.Flags().StringVar(&endFlag, "fim", "", "fim do intervalo (MM/YYYY)")
	cmd.Flags().BoolVar(&export, "exportar", false, "salvar em planilha em vez de exibir")
	_ = cmd.MarkFlagRequired("inicio")
	_ = cmd.MarkFlagRequired("fim")

	return cmd
}
