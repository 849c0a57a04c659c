package worker

import (
	"fmt"

	"text2label.com/fex/tasks"
)

type redisTransactions interface {
	getChunkTask(redisKey string) (*tasks.ChunkTask, error)
	getJobTask(task *Task) (*tasks.JobTask, error)
	getDocTask(task *Task) (*tasks.DocumentTaskCached, error)
	onTaskStarted(task *Task) error
	onTaskCancelled(task *Task, errorMessages ...string) error
	onTaskExceededRetries(task *Task, maxRetries int) error
	onTaskFailedWithError(task *Task, err error) error
	onTaskComplete(task *Task) error
	close()
}

type redisClientWrapper struct {
	tasksClient *tasks.Client
}

func (wrapper *redisClientWrapper) close() {
	wrapper.tasksClient.Close()
}

func (wrapper *redisClientWrapper) onTaskStarted(task *Task) error {
	return wrapper.tasksClient.Chunks.Update(task.redisKey, func(task *tasks.ChunkTask) {
		task.TaskStatuses.FEX.Status = tasks.TaskStatusStarted
		task.TaskStatuses.FEX.Attempts += 1
		task.TaskStatuses.FEX.StartedAt = getFormattedNow()
		task.TaskStatuses.FEX.CompletedAt = nil
	})
}

func (wrapper *redisClientWrapper) onTaskCancelled(task *Task, errorMessages ...string) error {
	return wrapper.tasksClient.Chunks.Update(task.redisKey, func(chunkTask *tasks.ChunkTask) {
		chunkTask.TaskStatuses.FEX.Status = tasks.TaskStatusCanceled
		chunkTask.TaskStatuses.FEX.StartedAt = getFormattedNow()
		chunkTask.TaskStatuses.FEX.CompletedAt = getFormattedNow()
		chunkTask.TaskStatuses.FEX.Attempts += 1
		chunkTask.TaskStatuses.FEX.ErrorMessages = append(
			chunkTask.TaskStatuses.FEX.ErrorMessages,
			errorMessages...,
		)
	})
}

func (wrapper *redisClientWrapper) onTaskExceededRetries(task *Task, maxRetries int) error {
	err := wrapper.tasksClient.Documents.Update(task.chunkTask.DocID, func(docTask *tasks.DocumentTask) {
		docTask.FailedTasks = append(docTask.FailedTasks, "fex")
		if docTask.FailedChunks == nil {
			docTask.FailedChunks = make(map[string][]string)
		}
		docTask.FailedChunks[task.redisKey] = append(docTask.FailedChunks[task.redisKey], "fex")
	})
	if err != nil {
		return err
	}
	return wrapper.tasksClient.Chunks.Update(task.redisKey, func(chunkTask *tasks.ChunkTask) {
		chunkTask.TaskStatuses.FEX.Status = tasks.TaskStatusCompletedFailure
		chunkTask.TaskStatuses.FEX.StartedAt = getFormattedNow()
		chunkTask.TaskStatuses.FEX.CompletedAt = getFormattedNow()
		chunkTask.TaskStatuses.FEX.Attempts += 1
		chunkTask.TaskStatuses.FEX.ErrorMessages = append(
			chunkTask.TaskStatuses.FEX.ErrorMessages,
			fmt.Sprintf(
				"Task has exceeded retries. (Attempts: %d, max retries: %d )",
				chunkTask.TaskStatuses.FEX.Attempts,
				maxRetries,
			),
		)
	})
}

func (wrapper *redisClientWrapper) onTaskFailedWithError(task *Task, err error) error {
	return wrapper.tasksClient.Chunks.Update(task.redisKey, func(chunkTask *tasks.ChunkTask) {
		chunkTask.TaskStatuses.FEX.Status = tasks.TaskStatusFailed
		chunkTask.TaskStatuses.FEX.CompletedAt = getFormattedNow()
		chunkTask.TaskStatuses.FEX.ErrorMessages = append(chunkTask.TaskStatuses.FEX.ErrorMessages, err.Error())
	})
}

func (wrapper *redisClientWrapper) onTaskComplete(task *Task) error {
	return wrapper.tasksClient.Chunks.Update(task.redisKey, func(chunkTask *tasks.ChunkTask) {
		if !chunkTask.TaskStatuses.FEX.Status.Complete() {
			chunkTask.TaskStatuses.FEX.Status = tasks.TaskStatusCompletedSuccess
		}
		chunkTask.TaskStatuses.FEX.CompletedAt = getFormattedNow()
		chunkTask.TaskStatuses.FEX.ResultsFileKey = getResultsFileKey(task)
	})
}

func (wrapper *redisClientWrapper) getChunkTask(redisKey string) (*tasks.ChunkTask, error) {
	return wrapper.tasksClient.Chunks.Get(redisKey)
}

func (wrapper *redisClientWrapper) getJobTask(task *Task) (*tasks.JobTask, error) {
	return wrapper.tasksClient.Jobs.GetCached(task.chunkTask.JobID)
}

func (wrapper *redisClientWrapper) getDocTask(task *Task) (*tasks.DocumentTaskCached, error) {
	return wrapper.tasksClient.Documents.GetCached(task.chunkTask.DocID)
}
