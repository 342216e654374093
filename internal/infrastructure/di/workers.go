package di

import (
	"github.com/mentorpal/mentor-graphql-sub001/internal/infrastructure/worker"
	"github.com/mentorpal/mentor-graphql-sub001/internal/job"
)

// NewWorkerManager はバックグラウンドジョブを登録したManagerを作成します
func NewWorkerManager(c *Container) *worker.Manager {
	m := worker.NewManager(c.Metrics)
	archiveJob := job.NewArchiveDisabledMentorsJob(c.MentorRepo, c.Metrics.ArchivedMentorsTotal, c.config.Job.ArchiveInterval)
	m.Register(archiveJob.Job())
	return m
}
