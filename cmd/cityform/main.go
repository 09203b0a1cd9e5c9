// cityform serves city suggestions and enquiry submissions for the contact
// form, and offers a terminal demo of the suggestion engine.
//
// Subcommands:
//   - serve: run the HTTP API
//   - suggest: run one lookup and print the suggestions
//   - demo: interactive autocomplete on stdin/stdout
//   - migrate: apply database migrations
//   - enquiries: list the most recent stored enquiries
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mwhite7112/cityform/internal/cache"
	"github.com/mwhite7112/cityform/internal/clients"
	"github.com/mwhite7112/cityform/internal/config"
	"github.com/mwhite7112/cityform/internal/logger"
	"github.com/mwhite7112/cityform/internal/suggest"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "cityform",
	Short: "City autocomplete and enquiry form backend",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		logger.Init(cfg.LogLevel, cfg.LogFormat)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, suggestCmd, demoCmd, migrateCmd, enquiriesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newEngine builds the suggestion engine from cfg, putting the Redis cache in
// front of both lookups when REDIS_URL is set. The returned func releases the
// cache connection.
func newEngine(input suggest.Input, surface suggest.Surface) (*suggest.Engine, func()) {
	httpClient := &http.Client{Timeout: cfg.LookupTimeout}

	var pincode suggest.PincodeLookup = clients.NewPincodeClient(cfg.PincodeAPIURL, httpClient)
	var cities suggest.CityLookup = clients.NewCityClient(cfg.CityAPIURL, httpClient)
	cleanup := func() {}

	if cfg.RedisURL != "" {
		store, err := cache.New(cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, lookups are not cached")
		} else {
			pincode = cache.NewPincodeCache(store, pincode)
			cities = cache.NewCityCache(store, cities)
			cleanup = func() { _ = store.Close() }
		}
	}

	engine := suggest.NewEngine(pincode, cities, input, surface, suggest.Options{
		Debounce:      cfg.Debounce,
		BlurDelay:     cfg.BlurDelay,
		LookupTimeout: cfg.LookupTimeout,
	})
	return engine, func() {
		engine.Close()
		cleanup()
	}
}
