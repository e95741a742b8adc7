package launcher

import (
	"crypto/tls"
	"net/http"
	"time"

	"github.com/certifi/gocertifi"
	"github.com/evalphobia/logrus_sentry"
	"github.com/getsentry/raven-go"
	"github.com/sirupsen/logrus"
)

// verbosityLevels maps the --log.verbosity integer onto logrus levels.
var verbosityLevels = []logrus.Level{
	logrus.FatalLevel,
	logrus.ErrorLevel,
	logrus.WarnLevel,
	logrus.InfoLevel,
	logrus.DebugLevel,
	logrus.TraceLevel,
}

// setupLogging configures the process-wide logger from the logging config and
// attaches the Sentry hook when a DSN is configured.
func setupLogging(cfg LoggingConfig) error {
	switch cfg.Format {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{
			ForceColors: cfg.Color,
		})
	}

	v := cfg.Verbosity
	if v < 0 {
		v = 0
	}
	if v >= len(verbosityLevels) {
		v = len(verbosityLevels) - 1
	}
	logrus.SetLevel(verbosityLevels[v])

	if cfg.SentryDSN != "" {
		return setupSentryHook(cfg.SentryDSN)
	}
	return nil
}

// setupSentryHook forwards error-level entries to Sentry. The raven transport
// is pinned to the certifi CA bundle so reporting works on hosts with a bare
// system trust store.
func setupSentryHook(dsn string) error {
	client, err := raven.New(dsn)
	if err != nil {
		return err
	}
	rootCAs, err := gocertifi.CACerts()
	if err != nil {
		return err
	}
	client.Transport = &raven.HTTPTransport{
		Client: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{RootCAs: rootCAs},
			},
		},
	}

	hook, err := logrus_sentry.NewWithClientSentryHook(client, []logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	})
	if err != nil {
		return err
	}
	hook.Timeout = 3 * time.Second
	logrus.AddHook(hook)
	return nil
}
