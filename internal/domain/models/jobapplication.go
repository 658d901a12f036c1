// internal/domain/models/jobapplication.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reply dispatch states. A record moves pending → sent on success or
// pending → failed when the mail transport reports an error. A record
// stuck in "pending" means the process died between handing the message
// to the transport and recording the outcome; those are surfaced by the
// replyState list filter so an admin can re-send.
const (
	ReplyStatePending = "pending"
	ReplyStateSent    = "sent"
	ReplyStateFailed  = "failed"
)

// JobApplication is a candidate's application for a Job.
//
// JobID is an informational reference; deleting a job does not cascade to
// its applications.
type JobApplication struct {
	ID    primitive.ObjectID `bson:"_id" json:"_id"`
	JobID primitive.ObjectID `bson:"job_id" json:"jobId"`

	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"phone" json:"phone"`
	Experience  string    `bson:"experience" json:"experience"`
	ResumeURL   string    `bson:"resume_url" json:"resumeUrl"`
	CoverLetter string    `bson:"cover_letter" json:"coverLetter"`
	AppliedAt   time.Time `bson:"applied_at" json:"appliedAt"`

	// Reply bookkeeping. Replied is only true once a send was confirmed;
	// ReplyState records where the dispatch saga got to.
	Reply      string     `bson:"reply,omitempty" json:"reply,omitempty"`
	Replied    bool       `bson:"replied" json:"replied"`
	ReplyState string     `bson:"reply_state,omitempty" json:"replyState,omitempty"`
	DispatchID string     `bson:"dispatch_id,omitempty" json:"dispatchId,omitempty"`
	RepliedAt  *time.Time `bson:"replied_at,omitempty" json:"repliedAt,omitempty"`

	Version int64 `bson:"version" json:"version"`
}

// JobApplicationWithJob is a list row joining the application with the job
// it references, mirroring what the dashboard's applications table shows.
// Job is nil when the referenced job has been deleted.
type JobApplicationWithJob struct {
	JobApplication `bson:",inline"`
	Job            *Job `bson:"job,omitempty" json:"job,omitempty"`
}
