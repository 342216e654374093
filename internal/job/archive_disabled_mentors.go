package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/repository"
	"github.com/mentorpal/mentor-graphql-sub001/internal/infrastructure/worker"
)

// ArchivedCounter はアーカイブ件数の記録先です
type ArchivedCounter interface {
	Add(float64)
}

// ArchiveDisabledMentorsJob is a background job that archives mentors whose owner was disabled
// but whose archive step did not complete.
type ArchiveDisabledMentorsJob struct {
	mentorRepo repository.MentorRepository
	counter    ArchivedCounter
	interval   time.Duration
}

// NewArchiveDisabledMentorsJob creates a new ArchiveDisabledMentorsJob.
func NewArchiveDisabledMentorsJob(mentorRepo repository.MentorRepository, counter ArchivedCounter, interval time.Duration) *ArchiveDisabledMentorsJob {
	if interval <= 0 {
		interval = time.Hour
	}
	return &ArchiveDisabledMentorsJob{
		mentorRepo: mentorRepo,
		counter:    counter,
		interval:   interval,
	}
}

// Run archives every unarchived mentor owned by a disabled user.
func (j *ArchiveDisabledMentorsJob) Run(ctx context.Context) error {
	count, err := j.mentorRepo.ArchiveOwnedByDisabledUsers(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		slog.Info("archived mentors of disabled users", "count", count)
		if j.counter != nil {
			j.counter.Add(float64(count))
		}
	}
	return nil
}

// Job returns the job definition for worker.Manager.
func (j *ArchiveDisabledMentorsJob) Job() worker.Job {
	return worker.Job{
		Name:     "archive_disabled_mentors",
		Interval: j.interval,
		Fn:       j.Run,
	}
}
