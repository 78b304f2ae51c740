package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tidyhome/lib/databrowser"
	"tidyhome/lib/restyutil"
	"tidyhome/lib/telemetry"

	"github.com/spf13/cobra"
)

var (
	flagYear    int
	flagStates  []string
	flagActions []string
	flagRaces   []string
	flagBaseUrl string
	flagVerbose bool
	flagCsv     bool
)

var client *databrowser.Client
var tel telemetry.Telemetry

var rootCmd = &cobra.Command{
	Use:   "hmda",
	Short: "hmda queries the CFPB HMDA Data Browser API.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(flagVerbose)

		t, err := telemetry.SetupFromEnv(cmd.Context(), "hmda-cli")
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err == nil {
			tel = t
			telemetry.InstrumentPerfStats(cmd.Context())
		}

		if flagVerbose {
			databrowser.SetRestyInstrumentOutput(
				restyutil.NewFilesystemOutput(".dev/resty/databrowser"),
			)
		}

		client = databrowser.NewClient(databrowser.ClientOptions{
			BaseUrl: flagBaseUrl,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagYear, "year", 0, "filing year to query")
	rootCmd.PersistentFlags().StringSliceVar(&flagStates, "state", nil, "two-letter state abbreviation (repeatable)")
	rootCmd.PersistentFlags().StringSliceVar(&flagActions, "action", nil, "action taken filter, e.g. originated, denied (repeatable)")
	rootCmd.PersistentFlags().StringSliceVar(&flagRaces, "race", nil, "race filter, e.g. black, white, joint (repeatable)")
	rootCmd.PersistentFlags().StringVar(&flagBaseUrl, "base-url", "", "override the data browser base url")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging and request dumps")
	rootCmd.PersistentFlags().BoolVar(&flagCsv, "csv", false, "print raw csv instead of a table")
}

func queryFromFlags() (databrowser.Query, error) {
	var actions []databrowser.Action
	for _, name := range flagActions {
		action, err := databrowser.ParseAction(name)
		if err != nil {
			return databrowser.Query{}, err
		}
		actions = append(actions, action)
	}

	var races []databrowser.Race
	for _, name := range flagRaces {
		race, err := databrowser.ParseRace(name)
		if err != nil {
			return databrowser.Query{}, err
		}
		races = append(races, race)
	}

	return databrowser.Query{
		Year:    flagYear,
		States:  flagStates,
		Actions: actions,
		Races:   races,
	}, nil
}

func runQuery(ctx context.Context, fetch func(context.Context, databrowser.Query) (databrowser.Table, error)) error {
	query, err := queryFromFlags()
	if err != nil {
		return err
	}
	result, err := fetch(ctx, query)
	if err != nil {
		return err
	}
	if flagCsv {
		return writeCsv(os.Stdout, result)
	}
	result.Render(os.Stdout)
	return nil
}

func Execute() {
	err := rootCmd.Execute()

	// flush any batched spans/metrics before exiting
	if shutdownErr := tel.Shutdown(context.Background()); shutdownErr != nil {
		fmt.Fprintln(os.Stderr, shutdownErr)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
