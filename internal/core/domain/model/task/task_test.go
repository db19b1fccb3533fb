package task_test

import (
	"testing"
	"time"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/task"
	"tailoring/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTask(t *testing.T) *task.Task {
	t.Helper()
	tk, err := task.NewTask(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		task.TypeStitching,
		time.Now(),
	)
	require.NoError(t, err)
	return tk
}

func TestNewTask(t *testing.T) {
	t.Run("should create valid pending task", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		workerID := kernel.NewUUID()
		assignedAt := time.Now()

		tk, err := task.NewTask(id, orderID, workerID, task.TypeCutting, assignedAt)

		require.NoError(t, err)
		require.NoError(t, tk.Validate())
		assert.True(t, tk.ID().IsEqual(id))
		assert.True(t, tk.OrderID().IsEqual(orderID))
		assert.True(t, tk.WorkerID().IsEqual(workerID))
		assert.Equal(t, task.TypeCutting, tk.TaskType())
		assert.Equal(t, task.StatusPending, tk.Status())
		assert.Equal(t, assignedAt, tk.AssignedAt())
		assert.Nil(t, tk.StartedAt())
		assert.Nil(t, tk.CompletedAt())
	})

	t.Run("should fail with invalid worker ID", func(t *testing.T) {
		var invalidID kernel.UUID

		tk, err := task.NewTask(kernel.NewUUID(), kernel.NewUUID(), invalidID, task.TypeCutting, time.Now())

		require.Error(t, err)
		assert.Nil(t, tk)
	})

	t.Run("should fail with invalid task type", func(t *testing.T) {
		tk, err := task.NewTask(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), task.TypeUnknown, time.Now())

		require.Error(t, err)
		assert.Nil(t, tk)
	})
}

func TestTask_IsAssignedTo(t *testing.T) {
	tk := newTestTask(t)

	assert.True(t, tk.IsAssignedTo(tk.WorkerID()))
	assert.False(t, tk.IsAssignedTo(kernel.NewUUID()))
}

func TestTask_Start(t *testing.T) {
	t.Run("should start a pending task", func(t *testing.T) {
		tk := newTestTask(t)
		now := time.Now()

		require.NoError(t, tk.Start(now))

		assert.Equal(t, task.StatusInProgress, tk.Status())
		require.NotNil(t, tk.StartedAt())
		assert.Equal(t, now, *tk.StartedAt())
	})

	t.Run("should reject starting twice", func(t *testing.T) {
		tk := newTestTask(t)
		require.NoError(t, tk.Start(time.Now()))

		err := tk.Start(time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject starting a completed task", func(t *testing.T) {
		tk := newTestTask(t)
		require.NoError(t, tk.Start(time.Now()))
		require.NoError(t, tk.Complete(time.Now()))

		err := tk.Start(time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestTask_Complete(t *testing.T) {
	t.Run("should complete an in-progress task", func(t *testing.T) {
		tk := newTestTask(t)
		started := time.Now()
		require.NoError(t, tk.Start(started))
		finished := started.Add(2 * time.Hour)

		require.NoError(t, tk.Complete(finished))

		assert.Equal(t, task.StatusCompleted, tk.Status())
		require.NotNil(t, tk.CompletedAt())
		assert.Equal(t, finished, *tk.CompletedAt())
	})

	t.Run("should reject completing a pending task", func(t *testing.T) {
		tk := newTestTask(t)

		err := tk.Complete(time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, task.StatusPending, tk.Status())
	})

	t.Run("should reject completion time before start time", func(t *testing.T) {
		tk := newTestTask(t)
		started := time.Now()
		require.NoError(t, tk.Start(started))

		err := tk.Complete(started.Add(-time.Minute))

		require.Error(t, err)
		assert.Equal(t, task.StatusInProgress, tk.Status())
	})
}

func TestType_PipelineRank(t *testing.T) {
	assert.Less(t, task.TypeCutting.PipelineRank(), task.TypeStitching.PipelineRank())
	assert.Less(t, task.TypeStitching.PipelineRank(), task.TypeIroning.PipelineRank())
	assert.Greater(t, task.TypeUnknown.PipelineRank(), task.TypeIroning.PipelineRank())
}

func TestTypeFromString(t *testing.T) {
	t.Run("should parse every valid type name", func(t *testing.T) {
		cases := map[string]task.Type{
			"CUTTING":   task.TypeCutting,
			"STITCHING": task.TypeStitching,
			"IRONING":   task.TypeIroning,
		}

		for name, want := range cases {
			got, err := task.TypeFromString(name)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("should reject unknown type name", func(t *testing.T) {
		_, err := task.TypeFromString("EMBROIDERY")

		require.Error(t, err)
	})
}

func TestRestoreTask(t *testing.T) {
	t.Run("should restore persisted state verbatim", func(t *testing.T) {
		started := time.Now().Add(-time.Hour)

		tk, err := task.RestoreTask(
			kernel.NewUUID(),
			kernel.NewUUID(),
			kernel.NewUUID(),
			task.TypeIroning,
			task.StatusInProgress,
			started.Add(-time.Hour),
			&started,
			nil,
		)

		require.NoError(t, err)
		assert.Equal(t, task.StatusInProgress, tk.Status())
		require.NotNil(t, tk.StartedAt())
		assert.Nil(t, tk.CompletedAt())
	})

	t.Run("should reject invalid stored status", func(t *testing.T) {
		_, err := task.RestoreTask(
			kernel.NewUUID(),
			kernel.NewUUID(),
			kernel.NewUUID(),
			task.TypeIroning,
			task.StatusUnknown,
			time.Now(),
			nil,
			nil,
		)

		require.Error(t, err)
	})
}
