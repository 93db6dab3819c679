package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"riftrewind/pkg/config"
	"riftrewind/scheduler/jobs"

	"github.com/go-co-op/gocron/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't initialize the configuration: %v", err)
	}

	log.Println("Starting scheduler.")

	// Create a new scheduler with options.
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	// Register the version revalidation job - once per day at 4:00 AM.
	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(4, 0, 0),
			),
		),
		gocron.NewTask(
			jobs.RevalidateVersions,
			cfg,
		),
		gocron.WithName("version-revalidation"),
		gocron.WithTags("versions"),
		gocron.JobOption(gocron.WithStartImmediately()),
	)
	if err != nil {
		log.Fatalf("Failed to create version job: %v", err)
	}

	s.Start()

	// Block until a termination signal arrives.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Stopping scheduler.")
	if err := s.Shutdown(); err != nil {
		log.Fatalf("Failed to shutdown scheduler: %v", err)
	}
}
