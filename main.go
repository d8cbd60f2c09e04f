package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/analytics"
	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/report"
	"github.com/pocketledger/backend/internal/router"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	dataFile, ok := os.LookupEnv("DATA_FILE")
	if !ok {
		dataFile = filepath.Join(".", "data", "pocketledger.json")
	}

	if err := os.MkdirAll(filepath.Dir(dataFile), os.ModePerm); err != nil {
		log.Fatal().Msg(err.Error())
	}

	store := ledger.Open(dataFile)
	engine := analytics.New(store)
	controller := v1.Controller{
		Store:   store,
		Engine:  engine,
		Reports: report.New(engine),
	}

	r, err := router.Router()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer router.Cleanup()

	router.AttachRoutes(controller, r.Group(""))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
