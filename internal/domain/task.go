package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskState is the lifecycle position of a task.
type TaskState string

// submitted and working are never emitted by this agent; canceled is unused.
const (
	TaskSubmitted TaskState = "submitted"
	TaskWorking   TaskState = "working"
	TaskCompleted TaskState = "completed"
	TaskFailed    TaskState = "failed"
	TaskCanceled  TaskState = "canceled"
)

// Artifact names attached to finished tasks.
const (
	ArtifactSocialPosts = "social_media_posts"
	ArtifactError       = "error_response"
)

// TaskStatus records the state and when it was reached.
type TaskStatus struct {
	State     TaskState `json:"state"`
	Timestamp string    `json:"timestamp,omitempty"`
}

// NewTaskStatus stamps state with the current UTC time.
func NewTaskStatus(state TaskState, now time.Time) TaskStatus {
	return TaskStatus{
		State:     state,
		Timestamp: now.UTC().Format("2006-01-02T15:04:05.000000") + "Z",
	}
}

// Artifact is a named bundle of text output.
type Artifact struct {
	ArtifactID string     `json:"artifactId"`
	Name       string     `json:"name"`
	Parts      []TextPart `json:"parts"`
}

// NewTextArtifact wraps text in a single-part artifact.
func NewTextArtifact(name, text string) Artifact {
	return Artifact{
		ArtifactID: uuid.NewString(),
		Name:       name,
		Parts:      []TextPart{{Text: text}},
	}
}

// Task is the protocol record of one message/send invocation.
type Task struct {
	ID        string         `json:"id"`
	ContextID string         `json:"contextId,omitempty"`
	Status    TaskStatus     `json:"status"`
	Artifacts []Artifact     `json:"artifacts"`
	History   []Message      `json:"history"`
	Kind      string         `json:"kind"`
	Metadata  map[string]any `json:"metadata"`
}
