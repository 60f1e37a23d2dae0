package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sharc777/allam-lambda/internal/config"
	"github.com/sharc777/allam-lambda/internal/llm"
	"github.com/sharc777/allam-lambda/internal/quizgen"
)

func main() {
	var (
		delay      = flag.Duration("delay", 3*time.Second, "Pause between generation calls")
		perCall    = flag.Int("count", 10, "Questions requested per combination")
		testType   = flag.String("test-type", "", "Only fill this test type (aptitude, achievement)")
		difficulty = flag.String("difficulty", "", "Only fill this difficulty (easy, medium, hard)")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := config.Load()
	config.InitLogger(env.LogLevel)
	log := config.Log.WithField("cmd", "bankfill")

	if err := config.Connect(ctx, env.DatabaseDSN); err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	provider, err := llm.New(ctx, env)
	if err != nil {
		log.WithError(err).Fatal("failed to create AI provider")
	}

	qc := quizgen.NewQuizGenContainer(config.DB, provider)
	filler := quizgen.NewBankFiller(qc.Generator, qc.Filters, qc.Bank, qc.Settings, *delay)

	var jobs []quizgen.FillJob
	for _, j := range quizgen.DefaultFillJobs(*perCall) {
		if *testType != "" && string(j.TestType) != *testType {
			continue
		}
		if *difficulty != "" && j.Difficulty != *difficulty {
			continue
		}
		jobs = append(jobs, j)
	}
	log.WithField("jobs", len(jobs)).Info("starting bank fill")

	report, err := filler.Fill(ctx, jobs)
	fields := logrus.Fields{
		"calls":     report.Calls,
		"generated": report.Generated,
		"accepted":  report.Accepted,
		"inserted":  report.Inserted,
	}
	if err != nil {
		log.WithError(err).WithFields(fields).Fatal("bank fill stopped")
	}
	log.WithFields(fields).Info("bank fill completed")
}
