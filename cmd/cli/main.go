package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/iho/txledger/internal/adapter/csvio"
	"github.com/iho/txledger/internal/adapter/repository/memory"
	"github.com/iho/txledger/internal/usecase"
)

var logLevel string

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:   "txledger",
		Short: "Transaction ledger processor",
		Long:  `Processes a log of typed financial transactions and reports the resulting per-client account balances.`,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	processCmd := &cobra.Command{
		Use:   "process [file]",
		Short: "Process a transaction log and print account summaries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(args[0])
		},
	}

	rootCmd.AddCommand(processCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runProcess(path string) error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)

	logger := log.With().Str("run_id", ulid.Make().String()).Logger()

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	accountRepo := memory.NewAccountRepository()
	bookingRepo := memory.NewBookingRepository()
	ledger := usecase.NewLedgerUseCase(
		usecase.NewTransactionUseCase(accountRepo, bookingRepo),
		accountRepo,
	)

	ctx := context.Background()
	reader := csvio.NewReader(file)

	for {
		tx, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Warn().Err(err).Msg("skipping malformed record")
			continue
		}

		// A rejected transaction never aborts the run.
		if err := ledger.ProcessTransaction(ctx, tx); err != nil {
			logger.Warn().Err(err).Uint32("tx_id", tx.TxID).
				Uint16("client_id", tx.ClientID).Str("type", string(tx.Type)).
				Msg("transaction rejected")
		}
	}

	summaries, err := ledger.DumpAccounts(ctx)
	if err != nil {
		return err
	}

	writer := csvio.NewWriter(os.Stdout)
	for _, summary := range summaries {
		if err := writer.Write(summary); err != nil {
			return err
		}
	}

	return writer.Flush()
}
