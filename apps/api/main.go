package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jmoiron/sqlx"

	echoapi "github.com/trezcool/tathmini/apps/api/echo"
	"github.com/trezcool/tathmini/core"
	"github.com/trezcool/tathmini/core/analytics"
	"github.com/trezcool/tathmini/core/feedback"
	"github.com/trezcool/tathmini/core/moderation"
	"github.com/trezcool/tathmini/core/sentiment"
	"github.com/trezcool/tathmini/core/submission"
	emailsvc "github.com/trezcool/tathmini/services/email"
	logsvc "github.com/trezcool/tathmini/services/logger"
	"github.com/trezcool/tathmini/storage/database"
	sqlxrepos "github.com/trezcool/tathmini/storage/database/sqlx"
)

const shutdownTimeout = 20 * time.Second

func main() {
	conf := core.Conf

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up DB
	db, err := setUpDB(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	defer func() {
		if err = db.Close(); err != nil {
			logger.Error(fmt.Sprintf("closing database: %v", err), err)
		}
	}()

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}

	analyzer := sentiment.NewAnalyzer(conf.Moderation.CapsMinRunLength)
	moderator := moderation.NewModerator(moderation.Options{
		WordRepeatThreshold: conf.Moderation.WordRepeatThreshold,
		Analyzer:            analyzer,
	})
	fbSvc := feedback.NewService(sqlxrepos.NewFeedbackRepository(db), analyzer)
	analyticsSvc := analytics.NewService(sqlxrepos.NewFactsRepository(db), fbSvc, mailSvc, logger, conf)

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	// start API server
	server := echoapi.NewServer(
		&echoapi.Options{
			Address:      conf.Server.Address(),
			Logger:       logger,
			Analyzer:     analyzer,
			Moderator:    moderator,
			FeedbackSvc:  fbSvc,
			AnalyticsSvc: analyticsSvc,
			GradePolicy:  submission.PolicyFromConfig(conf.Grading),
		},
	)

	go func() {
		server.Start()
	}()

	// shutdown
	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func setUpDB(conf *core.Config) (*sqlx.DB, error) {
	if err := database.CreateIfNotExist(conf); err != nil {
		return nil, err
	}

	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}

	if err = database.Migrate(db.DB); err != nil {
		return nil, err
	}
	return db, nil
}
