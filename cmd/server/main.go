// BayMax backend server: an HTTP API that classifies the emotional tone of
// chat transcripts and free-form messages.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/SinlessRook/BayMax-Backend/internal/server"
	"github.com/SinlessRook/BayMax-Backend/pkg/classifier"
	"github.com/SinlessRook/BayMax-Backend/pkg/config"
	"github.com/SinlessRook/BayMax-Backend/pkg/emotion"
	"github.com/SinlessRook/BayMax-Backend/pkg/health"
	"github.com/SinlessRook/BayMax-Backend/pkg/logger"
)

var (
	version = "1.0.0"

	configFile  = flag.String("config", "", "Path to configuration file (YAML or JSON)")
	host        = flag.String("host", "", "Server host (overrides config)")
	port        = flag.Int("port", 0, "Server port (overrides config)")
	modelURL    = flag.String("model-url", "", "Base URL of the hosted inference API (overrides config)")
	modelKey    = flag.String("model-key", "", "API key for the hosted inference API (overrides config)")
	modelName   = flag.String("model-name", "", "Model identifier for the hosted inference API (overrides config)")
	logLevel    = flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	logFormat   = flag.String("log-format", "", "Log format: json, text (overrides config)")
	showVersion = flag.Bool("version", false, "Show version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("baymax-server %s\n", version)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(&logger.Config{
		Level:   logger.ParseLogLevel(cfg.LogLevel),
		Format:  logger.ParseLogFormat(cfg.LogFormat),
		Service: "baymax",
		Version: version,
	})
	logger.SetDefault(log)

	clf, err := buildClassifier(cfg)
	if err != nil {
		log.Fatal("Failed to initialize classifier: %v", err)
	}
	log.WithField("classifier", clf.Name()).Info("classifier initialized")

	analyzer := emotion.NewAnalyzer(clf, emotion.NewResponder(nil), cfg.Analysis)

	healthChecker := health.NewHealthChecker(version, 5*time.Second)
	healthChecker.Register(health.CheckerFunc{
		CheckName: "classifier",
		CheckFunc: analyzer.HealthCheck,
	})

	srv, err := server.New(cfg, analyzer, healthChecker, log)
	if err != nil {
		log.Fatal("Failed to create server: %v", err)
	}

	if err := srv.Start(context.Background()); err != nil {
		log.Fatal("Server error: %v", err)
	}
}

// loadConfig resolves configuration: defaults, then file, then environment,
// then command-line flags.
func loadConfig() (*server.Config, error) {
	cfg := server.GetDefaultConfig()

	loader := config.NewLoader("BAYMAX")
	if *configFile != "" {
		if err := loader.LoadFromFile(*configFile, cfg); err != nil {
			return nil, err
		}
	}
	if err := loader.LoadFromEnv(cfg); err != nil {
		return nil, err
	}

	if *host != "" {
		cfg.Host = *host
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *modelURL != "" {
		cfg.Model.BaseURL = *modelURL
	}
	if *modelKey != "" {
		cfg.Model.APIKey = *modelKey
	}
	if *modelName != "" {
		cfg.Model.Model = *modelName
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logFormat != "" {
		cfg.LogFormat = *logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// buildClassifier picks the hosted inference client when a base URL is
// configured, otherwise the offline lexicon classifier.
func buildClassifier(cfg *server.Config) (emotion.Classifier, error) {
	if cfg.Model != nil && cfg.Model.BaseURL != "" {
		return classifier.NewInferenceClient(cfg.Model)
	}
	return classifier.NewLexiconClassifier(), nil
}
