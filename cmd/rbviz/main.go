package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/rbviz/configuration"
	"github.com/iotaledger/rbviz/ierrors"
	"github.com/iotaledger/rbviz/log"
	"github.com/iotaledger/rbviz/runtime/options"
	"github.com/iotaledger/rbviz/web/api"
	"github.com/iotaledger/rbviz/web/basicauth"
	"github.com/iotaledger/rbviz/web/websockethub"
)

// ErrInvalidSeedRange is returned if the seed parameters describe an empty key range.
var ErrInvalidSeedRange = ierrors.New("invalid seed range")

// envPrefix is the prefix of the environment variables that override parameters (e.g. RBVIZ_API_BINDADDRESS).
const envPrefix = "RBVIZ"

func main() {
	if err := loadParameters(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "loading parameters failed: %s\n", err)
		os.Exit(1)
	}

	level, err := log.LevelFromString(paramsLogger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid logger.level: %s\n", err)
		os.Exit(1)
	}

	logger := log.NewLogger(log.WithName(paramsLogger.Name), log.WithLevel(level))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, logger); err != nil {
		logger.LogFatalf("%s", err)
	}
}

// loadParameters fills the parameters from (in increasing priority) defaults, a config file, env vars and flags.
func loadParameters(args []string) error {
	flagSet := flag.NewFlagSet("rbviz", flag.ContinueOnError)
	flagSet.SortFlags = false
	configFile := flagSet.StringP("config", "c", "", "the path of a JSON or YAML config file")

	config := configuration.New()
	config.BindParameters(flagSet, "api", paramsAPI)
	config.BindParameters(flagSet, "seed", paramsSeed)
	config.BindParameters(flagSet, "logger", paramsLogger)

	if err := flagSet.Parse(args); err != nil {
		return ierrors.Wrap(err, "parsing flags failed")
	}

	if *configFile != "" {
		if err := config.LoadFile(*configFile); err != nil {
			return err
		}
	}

	// load the flags first so the env vars find the keys they override and then again to let flags win
	if err := config.LoadFlagSet(flagSet); err != nil {
		return ierrors.Wrap(err, "loading flags failed")
	}
	if err := config.LoadEnvironmentVars(envPrefix); err != nil {
		return ierrors.Wrap(err, "loading env vars failed")
	}
	if err := config.LoadFlagSet(flagSet); err != nil {
		return ierrors.Wrap(err, "loading flags failed")
	}

	config.UpdateBoundParameters()

	return nil
}

func run(ctx context.Context, logger log.Logger) error {
	if paramsSeed.Count > 0 && paramsSeed.MaxKey < 0 {
		return ierrors.Wrapf(ErrInvalidSeedRange, "seed.maxKey must not be negative, got %d", paramsSeed.MaxKey)
	}

	hub := websockethub.NewHub(logger.NewChildLogger("WebSocket"))
	go hub.Run(ctx)

	serverOptions := []options.Option[api.Server]{api.WithHub(hub)}
	if paramsAPI.Auth.Username != "" {
		basicAuth, err := basicauth.NewBasicAuth(paramsAPI.Auth.Username, paramsAPI.Auth.PasswordHash, paramsAPI.Auth.PasswordSalt)
		if err != nil {
			return ierrors.Wrap(err, "invalid api.auth parameters")
		}

		serverOptions = append(serverOptions, api.WithBasicAuth(basicAuth))
	}

	server := api.New(logger.NewChildLogger("API"), serverOptions...)

	if paramsSeed.Count > 0 {
		inserted := server.Seed(randomKeys(paramsSeed.Count, paramsSeed.MaxKey)...)
		logger.LogInfof("seeded the tree with %d distinct keys", inserted)
	}

	return server.ListenAndServe(ctx, paramsAPI.BindAddress)
}

// randomKeys returns count random keys from the range [0, maxKey].
func randomKeys(count int, maxKey int) []int {
	keys := make([]int, count)
	for i := range keys {
		keys[i] = rand.Intn(maxKey + 1) //nolint:gosec // the keys are not security relevant
	}

	return keys
}
