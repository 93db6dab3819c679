package jobs

import (
	"fmt"
	"log"
	"time"

	"riftrewind/pkg/config"
	"riftrewind/pkg/ddragon"
	"riftrewind/pkg/logger"
	"riftrewind/pkg/redis"
)

// RevalidateVersions refreshes the Redis warm cache of the ddragon versions
// feed so every gateway instance shares a single feed fetch per day, and
// ships the run log to the bucket.
func RevalidateVersions(cfg *config.Config) error {
	log.Println("Starting version cache revalidation")

	runLog, err := logger.CreateLogger()
	if err != nil {
		return fmt.Errorf("couldn't create the run logger: %w", err)
	}

	client, err := redis.NewClient(cfg.Redis)
	if err != nil {
		return fmt.Errorf("couldn't get redis connection: %w", err)
	}
	defer client.Close()

	if err := ddragon.RevalidateVersionCache(client); err != nil {
		runLog.Errorf("version cache revalidation failed: %v", err)
	} else {
		runLog.Infof("version cache revalidation completed")
	}

	objectKey := fmt.Sprintf("scheduler/versions-%s.log", time.Now().Format("2006-01-02"))
	if err := runLog.UploadToS3Bucket(cfg.Bucket, objectKey); err != nil {
		log.Printf("Couldn't upload the run log: %v", err)
	}

	log.Println("Version cache revalidation job finished")
	return nil
}
