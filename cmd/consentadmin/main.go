package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"consentadmin/internal/consent/config"
	"consentadmin/internal/consent/repository"
	"consentadmin/internal/consent/util"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "consentadmin",
	Short: "Consent and privacy administration backend",
	Long: `consentadmin serves the admin API for apps, campaigns, collection points,
consents, data discovery and breach records. Configuration comes from an
optional YAML file (--config) and environment variables such as MONGO_URI,
PORT, DB_NAME, STORE_DRIVER and CREDENTIALS_KEY.`,
	SilenceUsage: true,
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("CONSENTADMIN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to a YAML config file")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func registerCommands() {
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(indexesCmd())
	rootCmd.AddCommand(entitiesCmd())
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(viper.GetString("config"))
	if err != nil {
		return nil, err
	}
	util.InitLogger(cfg.LogLevel)
	return cfg, nil
}

// openStore connects the configured driver. The caller closes it.
func openStore(cfg *config.Config) (repository.Store, error) {
	if cfg.StoreDriver == config.DriverMemory {
		return repository.NewMemoryStore(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return repository.Connect(ctx, cfg.MongoURI, cfg.DBName)
}
