package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/subchain-io/subchain-go/pkg/sbclient"
	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// createClient builds a client from the global flags and the persisted
// session. The token store keeps the session across invocations.
func createClient() (subchain.Client, error) {
	config := &subchain.Config{
		BaseURL: viper.GetString("api"),
	}

	if path, err := sbclient.DefaultTokenStorePath(); err == nil {
		config.TokenStore = sbclient.NewFileTokenStore(path)
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = newZerologLogger()
	}

	return sbclient.New(config)
}

// structuredOutput writes v as JSON or YAML when the output flag asks for
// it, reporting whether it handled the output. Table rendering stays with
// the caller.
func structuredOutput(v interface{}) (bool, error) {
	switch viper.GetString("output") {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return true, encoder.Encode(v)
	case "yaml":
		return true, yaml.NewEncoder(os.Stdout).Encode(v)
	default:
		return false, nil
	}
}

// addListFlags registers the shared pagination and filter flags.
func addListFlags(cmd *cobra.Command, params *listFlags) {
	cmd.Flags().IntVar(&params.page, "page", 0, "page number")
	cmd.Flags().IntVar(&params.pageSize, "page-size", 0, "results per page")
	cmd.Flags().StringVar(&params.search, "search", "", "search term")
	cmd.Flags().StringVar(&params.ordering, "ordering", "", "ordering field, prefix with - to reverse")
}

type listFlags struct {
	page     int
	pageSize int
	search   string
	ordering string
}

func (f *listFlags) toParams() *subchain.ListParams {
	params := subchain.NewListParams()
	if f.page > 0 {
		params.WithPage(f.page)
	}
	if f.pageSize > 0 {
		params.WithPageSize(f.pageSize)
	}
	if f.search != "" {
		params.WithSearch(f.search)
	}
	if f.ordering != "" {
		params.WithOrdering(f.ordering)
	}

	return params
}

// zerologLogger adapts zerolog to the subchain.Logger interface for the
// --verbose flag.
type zerologLogger struct {
	log zerolog.Logger
}

func newZerologLogger() *zerologLogger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr}

	return &zerologLogger{
		log: zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger(),
	}
}

func (l *zerologLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Info(msg string, fields map[string]interface{}) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Error(msg string, fields map[string]interface{}) {
	l.log.Error().Fields(fields).Msg(msg)
}

// parseID converts a positional argument into a numeric resource ID.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ID %q", arg)
	}

	return id, nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}
