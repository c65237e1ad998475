package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"control-system/configs"
	"control-system/internal/cliout"
	"control-system/internal/formula"
	"control-system/internal/middleware"
	"control-system/internal/services"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		// Текст ошибки отправки уже выведен в терминал
		if !errors.Is(err, services.ErrInvalidFunction) && !errors.Is(err, services.ErrRequestFailed) {
			fmt.Fprintln(os.Stderr, "Ошибка:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	cfg := &configs.Config{}

	root := &cobra.Command{
		Use:           "tfcli",
		Short:         "Анализ передаточных функций W(s) из терминала",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			// Конфигурация читается после настройки логгера
			*cfg = *configs.LoadConfig()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Подробный журнал в stderr")

	root.AddCommand(newLatexCmd(), newComputeCmd(cfg), newTokenCmd(cfg))
	return root
}

func newLatexCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "latex <function>",
		Short:   "Показать LaTeX формы функции без обращения к сервису расчёта",
		Example: "  tfcli latex '" + formula.Example + "'",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !formula.IsValidTransferFunction(args[0]) {
				fmt.Fprintln(cmd.OutOrStdout(), services.MsgInvalidFunction)
				return services.ErrInvalidFunction
			}
			fmt.Fprintln(cmd.OutOrStdout(), formula.DisplayFormula(formula.ToLatex(args[0])))
			return nil
		},
	}
}

func newComputeCmd(cfg *configs.Config) *cobra.Command {
	var (
		apiURL  string
		outDir  string
		timeout time.Duration
		color   bool
	)

	cmd := &cobra.Command{
		Use:     "compute <function>",
		Short:   "Рассчитать функцию и вывести показатели и графики",
		Example: "  tfcli compute '" + formula.Example + "' --out ./plots",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiURL == "" {
				apiURL = cfg.Compute.URL
			}
			if !cmd.Flags().Changed("timeout") {
				timeout = cfg.Compute.Timeout
			}

			client := services.NewComputeClient(apiURL, timeout)
			submissions := services.NewSubmissionService(client)

			display := cliout.NewTerminalDisplay(cmd.OutOrStdout(), outDir, color)
			if _, err := submissions.Submit(cmd.Context(), args[0], display); err != nil {
				return err
			}
			return display.Err()
		},
	}

	cmd.Flags().StringVar(&apiURL, "api", "", "Адрес сервиса расчёта (по умолчанию COMPUTE_API_URL)")
	cmd.Flags().StringVar(&outDir, "out", "", "Каталог для сохранения встроенных картинок")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Таймаут запроса, 0 - без таймаута (по умолчанию COMPUTE_TIMEOUT_SEC)")
	cmd.Flags().BoolVar(&color, "color", false, "Цветная метка устойчивости")

	return cmd
}

func newTokenCmd(cfg *configs.Config) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Выпустить JWT для чтения журнала отправок",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := middleware.NewJWTService(cfg.Auth.JWTSecret).GenerateToken(subject, ttl)
			if err != nil {
				return fmt.Errorf("generate token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "operator", "Субъект токена")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Время жизни токена")

	return cmd
}
