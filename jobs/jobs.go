package jobs

import (
	"context"
	"log"
	"time"

	"medwebcare/config/db"
	"medwebcare/models"
	"medwebcare/util"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
)

// Files younger than this are skipped: their record insert may still be
// in flight.
const orphanAge = 24 * time.Hour

func StartDailyScheduler() {
	c := cron.New()

	// Runs every day at 02:30 AM
	c.AddFunc("30 2 * * *", func() {
		log.Println("Running daily orphaned file sweep...")
		if err := SweepOrphanedFiles(context.Background()); err != nil {
			log.Println("Error from orphaned file sweep:", err)
		}
	})

	c.Start()
}

/*
* An upload followed by a failed record insert leaves a stored file no
* record references. Collect every referenced storage key, then delete
* day-old files outside that set.
 */
func SweepOrphanedFiles(ctx context.Context) error {
	bucket, err := db.MedicalFilesBucket()
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-orphanAge)
	cursor, err := bucket.Find(bson.M{"uploadDate": bson.M{"$lt": cutoff}})
	if err != nil {
		return err
	}
	var files []models.StoredFile
	if err := cursor.All(ctx, &files); err != nil {
		return err
	}
	if len(files) == 0 {
		return nil
	}

	referenced, err := ReferencedFileKeys(ctx)
	if err != nil {
		return err
	}

	for _, f := range files {
		if _, ok := referenced[f.Name]; ok {
			continue
		}
		if err := bucket.Delete(f.ID); err != nil {
			log.Println("Error while deleting orphaned file:", f.Name, err)
			continue
		}
		log.Println("Deleted orphaned file:", f.Name)
	}
	return nil
}

/*
* Every non-null file_url across medical records
 */
func ReferencedFileKeys(ctx context.Context) (map[string]struct{}, error) {
	raw, err := db.OpenCollection(util.MedicalRecordCollection).
		Distinct(ctx, "file_url", bson.M{"file_url": bson.M{"$ne": nil}})
	if err != nil {
		return nil, err
	}
	keys := make(map[string]struct{}, len(raw))
	for _, v := range raw {
		if key, ok := v.(string); ok {
			keys[key] = struct{}{}
		}
	}
	return keys, nil
}
