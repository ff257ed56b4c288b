package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/samuelassuncao1/fitprogress/internal"
	"github.com/samuelassuncao1/fitprogress/internal/config"
	"github.com/samuelassuncao1/fitprogress/internal/logging"
	"github.com/samuelassuncao1/fitprogress/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	envVars, err := config.LoadEnv(context.Background())
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    false,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        envVars.SentryDSN,
		SentryServerName: "fitprogress-service",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)
	log.Debugf("using storage type: [%s]", cfg.StorageType)

	if envVars.DefaultOwnerID != "" {
		cfg.DefaultOwnerID = envVars.DefaultOwnerID
	}
	if cfg.DefaultOwnerID == "" {
		log.Errorf("default owner not set, use FITPROGRESS_OWNER env var or the config file")
	}

	if cfg.RedisHost != "" && envVars.RedisPassword == "" {
		log.Errorf("redis password not set. use FITPROGRESS_REDIS_PASS")
	}

	if envVars.HoneycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	if cfg.StorageType == config.StorageTypeLocal {
		storeDir := filepath.Dir(cfg.LocalStorePath)
		dirExists, err := pkg.PathExists(storeDir, true)
		if err != nil {
			log.Fatalf("check local store dir: %s", err)
		}
		if !dirExists {
			if err := os.MkdirAll(storeDir, 0o755); err != nil {
				log.Fatalf("create local store dir: %s", err)
			}
		}
		log.Printf("local store path: %s", cfg.LocalStorePath)
	}

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			RedisPassword:           envVars.RedisPassword,
			VersionInfo:             versionInfo,
			HoneycombTracingEnabled: envVars.HoneycombEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(ctx, cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(stdout)), nil
}
