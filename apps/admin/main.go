package main

import (
	"log"
	"os"

	"github.com/trezcool/tathmini/core"
	"github.com/trezcool/tathmini/core/analytics"
	"github.com/trezcool/tathmini/core/feedback"
	"github.com/trezcool/tathmini/core/sentiment"
	emailsvc "github.com/trezcool/tathmini/services/email"
	logsvc "github.com/trezcool/tathmini/services/logger"
	"github.com/trezcool/tathmini/storage/database"
	sqlxrepos "github.com/trezcool/tathmini/storage/database/sqlx"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	conf := core.Conf
	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up DB
	db, err := database.Open(conf)
	errAndDie(err)
	defer db.Close()
	errAndDie(db.Ping())

	// set up services
	rollbarLogger := logsvc.NewRollbarLogger(logger, conf)
	rollbarLogger.Enable(!conf.Debug)

	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(rollbarLogger)
	}
	fbSvc := feedback.NewService(sqlxrepos.NewFeedbackRepository(db), sentiment.NewAnalyzer(conf.Moderation.CapsMinRunLength))
	analyticsSvc := analytics.NewService(sqlxrepos.NewFactsRepository(db), fbSvc, mailSvc, rollbarLogger, conf)

	// start CLI
	cli := commandLine{
		db:           db.DB,
		analyticsSvc: analyticsSvc,
		threshold:    conf.Alerts.StressThreshold,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
