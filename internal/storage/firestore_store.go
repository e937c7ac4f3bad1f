package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollectionName = "users"
	tasksSubcollName    = "tasks"
)

var ErrTaskNotFound = errors.New("task not found")

// FirestoreStore persists per-user task lists as documents under
// users/{userID}/tasks/{taskID}. Firestore serializes concurrent writes,
// so no extra locking is needed here.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

type taskDoc struct {
	ID        string    `firestore:"id"`
	Text      string    `firestore:"text"`
	CreatedAt time.Time `firestore:"created_at"`
	Completed bool      `firestore:"completed"`
}

func (s *FirestoreStore) AddTask(ctx context.Context, userID int64, task Task) error {
	if task.ID == "" {
		return fmt.Errorf("add task: id is empty")
	}

	_, err := s.taskDoc(userID, task.ID).Set(ctx, taskDoc{
		ID:        task.ID,
		Text:      task.Text,
		CreatedAt: task.Created,
		Completed: task.Completed,
	})
	if err != nil {
		return fmt.Errorf("add task: %w", err)
	}
	return nil
}

// ListTasks returns the user's tasks ordered by creation time, which
// preserves the insertion order the handlers rely on.
func (s *FirestoreStore) ListTasks(ctx context.Context, userID int64) ([]Task, error) {
	iter := s.userDoc(userID).Collection(tasksSubcollName).
		OrderBy("created_at", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	out := make([]Task, 0, 16)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list tasks: %w", err)
		}

		var item taskDoc
		if err := doc.DataTo(&item); err != nil {
			return nil, fmt.Errorf("decode task: %w", err)
		}
		if item.ID == "" {
			item.ID = doc.Ref.ID
		}
		out = append(out, Task{
			ID:        item.ID,
			Text:      item.Text,
			Created:   item.CreatedAt,
			Completed: item.Completed,
		})
	}

	return out, nil
}

func (s *FirestoreStore) CompleteTask(ctx context.Context, userID int64, taskID string) (Task, error) {
	ref := s.taskDoc(userID, taskID)

	snap, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Task{}, ErrTaskNotFound
		}
		return Task{}, fmt.Errorf("get task before complete: %w", err)
	}

	var item taskDoc
	if err := snap.DataTo(&item); err != nil {
		return Task{}, fmt.Errorf("decode task: %w", err)
	}

	if _, err := ref.Update(ctx, []firestore.Update{{Path: "completed", Value: true}}); err != nil {
		return Task{}, fmt.Errorf("complete task: %w", err)
	}

	return Task{
		ID:        taskID,
		Text:      item.Text,
		Created:   item.CreatedAt,
		Completed: true,
	}, nil
}

// DeleteTask is tolerant of missing documents: deleting an unknown id still
// succeeds, matching the confirm-regardless reply contract.
func (s *FirestoreStore) DeleteTask(ctx context.Context, userID int64, taskID string) error {
	_, err := s.taskDoc(userID, taskID).Delete(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func (s *FirestoreStore) userDoc(userID int64) *firestore.DocumentRef {
	return s.client.Collection(usersCollectionName).Doc(strconv.FormatInt(userID, 10))
}

func (s *FirestoreStore) taskDoc(userID int64, taskID string) *firestore.DocumentRef {
	return s.userDoc(userID).Collection(tasksSubcollName).Doc(taskID)
}
