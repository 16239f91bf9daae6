package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string
	Debug    bool
	TestMode bool
	AppName  string
	Build    string

	Server struct {
		Host    string
		Address string
	}

	Spreadsheet struct {
		// ID of the spreadsheet document holding all collections.
		ID string
		// CredentialsFile is the path to a Google service account JSON key.
		CredentialsFile string
	}

	RollbarToken string
}

// LoadConfig reads configuration from the environment into a Config.
// An optional config/.env.<env> file is loaded first if present.
// Recognized envs: DEV (local; default), TEST, QA, PROD.
func LoadConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "GestaoIPSS")
	conf.SetDefault("serverHost", "localhost")
	conf.SetDefault("serverAddress", ":8000")
	conf.SetDefault("spreadsheetId", "")
	conf.SetDefault("spreadsheetCredentialsFile", "")
	conf.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV")
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	cfg := &Config{
		Env:          env,
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		AppName:      conf.GetString("appName"),
		Build:        conf.GetString("build"),
		RollbarToken: conf.GetString("rollbarToken"),
	}
	cfg.Server.Host = conf.GetString("serverHost")
	cfg.Server.Address = conf.GetString("serverAddress")
	cfg.Spreadsheet.ID = conf.GetString("spreadsheetId")
	cfg.Spreadsheet.CredentialsFile = conf.GetString("spreadsheetCredentialsFile")
	return cfg
}

// Getwd returns the app's working directory; APP_WD overrides it
// (go-test changes the working directory to the package being tested).
func Getwd() string {
	if wd := os.Getenv("APP_WD"); wd != "" {
		return wd
	}
	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	return wd
}
